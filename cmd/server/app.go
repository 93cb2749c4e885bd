package main

import (
	"context"
	"fmt"
	"os"

	"careerbot/backend/internal/config"
	authdomain "careerbot/backend/internal/domain/auth"
	"careerbot/backend/internal/domain/chat"
	"careerbot/backend/internal/infrastructure/postgres"
	"careerbot/backend/internal/infrastructure/sqlite"
	"careerbot/backend/internal/infrastructure/streak"
	"careerbot/backend/internal/logging"
)

// store is an opened account store of either kind.
type store struct {
	kind    string
	users   authdomain.UserRepository
	migrate func(context.Context) error
	close   func()
}

func openStore(ctx context.Context, cfg config.Config) (*store, error) {
	switch cfg.StoreKind() {
	case config.StorePostgres:
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &store{
			kind:    config.StorePostgres,
			users:   postgres.NewUserRepository(db.Pool),
			migrate: db.Migrate,
			close:   db.Close,
		}, nil
	default:
		db, err := sqlite.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &store{
			kind:    config.StoreSQLite,
			users:   sqlite.NewUserRepository(db.DB),
			migrate: db.Migrate,
			close:   func() { _ = db.Close() },
		}, nil
	}
}

// openStreaks picks Redis when configured, process memory otherwise. The
// returned func releases the client.
func openStreaks(ctx context.Context, cfg config.Config, log logging.Logger) (chat.StreakStore, func(), error) {
	if cfg.RedisURL == "" {
		log.Info(ctx, "chat streaks kept in memory", "scope", cfg.StreakScope)
		return streak.NewMemoryStore(), func() {}, nil
	}
	client, err := streak.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info(ctx, "chat streaks kept in redis", "scope", cfg.StreakScope)
	return streak.NewRedisStore(client, cfg.SessionTTL), func() { _ = client.Close() }, nil
}

func newLogger(cfg config.Config) (logging.Logger, error) {
	log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	return log, nil
}
