package main

import (
	"context"
	"fmt"
	"log/slog"

	"bookloader/internal/catalog"
	"bookloader/internal/config"
	"bookloader/internal/ingest"
	"bookloader/internal/platform/mongodb"
	"bookloader/internal/platform/postgres"
	"bookloader/internal/platform/redisconn"
)

type store struct {
	authors catalog.AuthorRepository
	works   catalog.WorkRepository
	runs    ingest.Repository
	close   func()
}

// openStore connects the configured backend. Run bookkeeping is only kept in
// postgres; the other backends get a no-op run recorder.
func openStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*store, error) {
	switch cfg.Backend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DSN, cfg.MaxConns)
		if err != nil {
			return nil, err
		}
		logger.Info("database connection OK", slog.String("dsn", postgres.RedactDSN(cfg.DSN)))
		repo := catalog.NewPostgresRepo(pool)
		return &store{authors: repo, works: repo, runs: ingest.NewPostgresRepo(pool), close: pool.Close}, nil

	case "mongo":
		db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		logger.Info("mongodb connection OK", slog.String("database", cfg.MongoDB))
		repo := catalog.NewMongoRepo(db.Database)
		return &store{authors: repo, works: repo, runs: ingest.NopRepository{}, close: func() {
			if err := db.Disconnect(context.Background()); err != nil {
				logger.Warn("disconnect mongodb", slog.String("error", err.Error()))
			}
		}}, nil

	case "redis":
		client, err := redisconn.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		logger.Info("redis connection OK", slog.String("addr", cfg.RedisAddr))
		repo := catalog.NewRedisRepo(client, cfg.RedisPrefix)
		return &store{authors: repo, works: repo, runs: ingest.NopRepository{}, close: func() { _ = client.Close() }}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
