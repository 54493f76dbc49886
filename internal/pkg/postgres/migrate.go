package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"dispatch/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate применяет встроенные миграции goose поверх пула pgx.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close migrations connection", logger.NewField("error", err))
		}
	}()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, result := range results {
		log.Info("migration applied",
			logger.NewField("version", result.Source.Version),
			logger.NewField("path", result.Source.Path),
			logger.NewField("duration", result.Duration.String()),
		)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("migrations version: %w", err)
	}
	log.Info("database schema is up to date", logger.NewField("version", version))
	return nil
}
