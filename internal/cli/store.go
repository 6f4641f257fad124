package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/burrow/internal/config"
	"github.com/aretw0/burrow/pkg/adapters/file"
	"github.com/aretw0/burrow/pkg/adapters/redis"
	"github.com/aretw0/burrow/pkg/persistence/middleware"
	"github.com/aretw0/burrow/pkg/ports"
)

// OpenStore returns the snapshot store selected by cfg, or nil when snapshots are disabled.
// The returned close func is never nil.
func OpenStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.SnapshotStore, func() error, error) {
	noop := func() error { return nil }

	var (
		store   ports.SnapshotStore
		closeFn = noop
	)
	switch {
	case cfg.Redis.Addr != "":
		rs := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redis.WithTTL(cfg.Redis.TTL))
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, noop, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
		}
		logger.Info("recording snapshots to redis", "addr", cfg.Redis.Addr)
		store, closeFn = rs, rs.Close
	case cfg.SnapshotDir != "":
		logger.Info("recording snapshots to directory", "dir", cfg.SnapshotDir)
		store = file.New(cfg.SnapshotDir)
	default:
		return nil, noop, nil
	}

	if len(cfg.RedactNames) > 0 {
		store = middleware.Chain(store, middleware.NewRedactMiddleware(cfg.RedactNames))
	}
	return store, closeFn, nil
}
