package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"parcel-service/pkg/logger"
)

// Migrate накатывает миграции из fsys поверх пула. goose работает через database/sql,
// поэтому пул оборачивается в *sql.DB на время миграции.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, fsys fs.FS) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, result := range results {
		log.With(
			logger.NewField("version", result.Source.Version),
			logger.NewField("duration", result.Duration.String()),
		).Info("migration applied")
	}

	return nil
}
