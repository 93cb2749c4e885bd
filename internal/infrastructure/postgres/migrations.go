package postgres

import (
	"context"
	"fmt"

	"careerbot/backend/internal/infrastructure/migrations"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded Postgres migrations through the pool.
func (db *Database) Migrate(ctx context.Context) error {
	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, migrations.PostgresDir); err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	return nil
}
