package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/hosting-storefront/internal/config"
	"github.com/avc/hosting-storefront/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	router     *chi.Mux
	workerPool *worker.Pool
	natsConn   *nats.Conn
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Цены отдаются в JSON числами
	decimal.MarshalJSONWithoutQuotes = true

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	if cfg.InsecureJWTSecret() {
		logger.Warn("JWT_SECRET is not set, using the default secret")
	}
	if cfg.UPIID == "" {
		logger.Warn("UPI_ID is not set, payment QR codes will be incomplete")
	}

	// Инициализация базы данных и миграции
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	// Инициализация зависимостей
	deps, err := initDependencies(cfg, dbPool, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	if err := deps.services.auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		if deps.natsConn != nil {
			deps.natsConn.Close()
		}
		dbPool.Close()
		return nil, fmt.Errorf("failed to ensure admin account: %w", err)
	}

	// Настройка роутера
	router := setupRouter(deps, cfg.CORSAllowedOrigins, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		router:     router,
		workerPool: deps.workerPool,
		natsConn:   deps.natsConn,
		server:     server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск worker pool
	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started")

	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(ctx); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown(cancel)

	return nil
}
