// Package storage opens the configured key-value backend.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/internal/config"
	"github.com/jakechorley/save-a-life/pkg/kvstore"
	"github.com/jakechorley/save-a-life/pkg/postgres"
)

// Open connects to the backend named in cfg. Postgres migrations run before it is returned.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (kvstore.Store, error) {
	logger.Debug("Opening store", zap.String("backend", cfg.Backend))

	switch cfg.Backend {
	case "memory":
		return kvstore.NewMemory(), nil

	case "file":
		store, err := kvstore.NewFile(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return store, nil

	case "sqlite":
		store, err := kvstore.NewSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil

	case "leveldb":
		store, err := kvstore.NewLevelDB(cfg.LevelDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open leveldb store: %w", err)
		}
		return store, nil

	case "redis":
		store, err := kvstore.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		return store, nil

	case "postgres":
		store, err := postgres.NewDB(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		logger.Info("Running database migrations")
		if err := store.RunMigrations(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
