package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConns        = 10
	minConns        = 2
	maxConnLifetime = time.Hour

	initialInterval = 2 * time.Second
	maxInterval     = 15 * time.Second
	maxElapsedTime  = time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewConnPool создает пул и ждет доступности базы с экспоненциальным backoff.
// Если база не поднялась за maxElapsedTime, возвращается ошибка и пул закрывается.
func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(newDsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns
	poolCfg.MaxConnLifetime = maxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", poolCfg.ConnConfig.Host),
		logger.NewField("port", poolCfg.ConnConfig.Port),
		logger.NewField("db", poolCfg.ConnConfig.Database),
	)

	err = pingDatabase(ctx, dbLog, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

// newDsn отдает приоритет DATABASE_URL, иначе собирает строку из POSTGRES_*.
func newDsn(cfg *config.Database) string {
	if cfg.URL != "" {
		return cfg.URL
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:   cfg.DBName,
	}
	if cfg.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{cfg.SSLMode}}.Encode()
	}
	return dsn.String()
}

func pingDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("attempting database connection",
			logger.NewField("attempt", attempt),
		)

		return pool.Ping(ctx)
	})
	if err != nil {
		log.Error("database connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established",
		logger.NewField("attempts", attempt),
	)
	return nil
}
