package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/hosting-storefront/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	dbMaxConnLifetime   = time.Hour
	dbMaxConnIdleTime   = 15 * time.Minute
	dbHealthCheckPeriod = time.Minute
	dbConnectTimeout    = 10 * time.Second
)

// initDatabase открывает пул соединений и применяет схему магазина
func initDatabase(ctx context.Context, databaseURI string, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURI)
	if err != nil {
		return nil, fmt.Errorf("invalid database URI: %w", err)
	}
	poolCfg.MaxConnLifetime = dbMaxConnLifetime
	poolCfg.MaxConnIdleTime = dbMaxConnIdleTime
	poolCfg.HealthCheckPeriod = dbHealthCheckPeriod

	connectCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
	defer cancel()

	dbPool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(connectCtx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("database pool ready", zap.Int32("max_conns", poolCfg.MaxConns))

	// Таблицы users, plans, promos, orders
	if err := postgres.RunMigrations(ctx, dbPool, logger); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed successfully")

	return dbPool, nil
}
