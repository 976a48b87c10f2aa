package app

import (
	"context"
	"fmt"

	"github.com/avc/hosting-storefront/internal/config"
	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/avc/hosting-storefront/internal/handlers"
	"github.com/avc/hosting-storefront/internal/notify"
	"github.com/avc/hosting-storefront/internal/repository/cache"
	"github.com/avc/hosting-storefront/internal/repository/postgres"
	"github.com/avc/hosting-storefront/internal/service"
	"github.com/avc/hosting-storefront/internal/storage"
	"github.com/avc/hosting-storefront/internal/utils/jwt"
	"github.com/avc/hosting-storefront/internal/utils/password"
	"github.com/avc/hosting-storefront/internal/utils/qrcode"
	"github.com/avc/hosting-storefront/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user      domain.UserRepository
	plan      domain.PlanRepository
	promo     domain.PromoRepository
	order     domain.OrderRepository
	analytics domain.AnalyticsRepository
}

// services содержит все сервисы приложения
type services struct {
	auth      *service.AuthService
	catalog   domain.CatalogService
	promo     domain.PromoService
	order     *service.OrderService
	analytics domain.AnalyticsService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth      *handlers.AuthHandler
	plans     *handlers.PlansHandler
	promos    *handlers.PromosHandler
	orders    *handlers.OrdersHandler
	analytics *handlers.AnalyticsHandler
	health    *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos       *repositories
	services    *services
	handlers    *handlerSet
	jwtManager  *jwt.Manager
	rateLimiter *handlers.RateLimiter
	store       *storage.LocalStore
	workerPool  *worker.Pool
	natsConn    *nats.Conn
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	var planRepo domain.PlanRepository = postgres.NewPlanRepository(dbPool)
	if cfg.CatalogCacheTTL > 0 {
		planRepo = cache.NewPlanRepository(planRepo, cfg.CatalogCacheTTL)
	}
	repos := &repositories{
		user:      postgres.NewUserRepository(dbPool),
		plan:      planRepo,
		promo:     postgres.NewPromoRepository(dbPool),
		order:     postgres.NewOrderRepository(dbPool),
		analytics: postgres.NewAnalyticsRepository(dbPool),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)
	qrGenerator := qrcode.NewUPIGenerator(cfg.UPIID, cfg.UPIPayeeName)

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init upload storage: %w", err)
	}

	// Каналы уведомлений
	notifiers := notify.Multi{}
	discord := notify.NewDiscordNotifier(cfg.DiscordWebhookURL, cfg.NotifyTimeout)
	if discord.Enabled() {
		notifiers = append(notifiers, discord)
	} else {
		logger.Warn("discord webhook is not configured, order notifications are disabled")
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = notify.ConnectNATS(cfg.NATSURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		notifiers = append(notifiers, notify.NewNATSNotifier(natsConn))
		logger.Info("order events are published to NATS", zap.String("url", cfg.NATSURL))
	}

	// Worker pool доставляет события заказов и периодически закрывает просроченные.
	// Сервис заказов создается позже, поэтому очистка вызывается через замыкание.
	var orderService *service.OrderService
	workerPool := worker.NewPool(worker.Config{
		Workers:       cfg.NotifyWorkers,
		QueueSize:     cfg.NotifyQueueSize,
		NotifyTimeout: cfg.NotifyTimeout,
		SweepInterval: cfg.ExpirySweepInterval,
	}, notifiers, worker.SweeperFunc(func(ctx context.Context) (int64, error) {
		return orderService.SweepExpired(ctx)
	}), logger)

	// Создание сервисов
	promoService := service.NewPromoService(repos.promo, nil)
	orderService = service.NewOrderService(
		repos.order,
		repos.plan,
		repos.user,
		promoService,
		workerPool,
		qrGenerator,
		store,
		nil,
		logger,
	)
	svcs := &services{
		auth:      service.NewAuthService(repos.user, passwordHasher, password.Policy{MinLength: cfg.MinPasswordLength}, jwtManager, logger),
		catalog:   service.NewCatalogService(repos.plan),
		promo:     promoService,
		order:     orderService,
		analytics: service.NewAnalyticsService(repos.analytics),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:   handlers.NewAuthHandler(svcs.auth, logger),
		plans:  handlers.NewPlansHandler(svcs.catalog, logger),
		promos: handlers.NewPromosHandler(svcs.promo, logger),
		orders: handlers.NewOrdersHandler(svcs.order, store, handlers.UploadConfig{
			BaseURL: cfg.BaseURL,
			MaxSize: cfg.MaxUploadSize,
		}, logger),
		analytics: handlers.NewAnalyticsHandler(svcs.analytics, logger),
		health:    handlers.NewHealthHandler(dbPool, logger),
	}

	return &dependencies{
		repos:       repos,
		services:    svcs,
		handlers:    hdlrs,
		jwtManager:  jwtManager,
		rateLimiter: handlers.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, rateLimiterTTL),
		store:       store,
		workerPool:  workerPool,
		natsConn:    natsConn,
	}, nil
}
