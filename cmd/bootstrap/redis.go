package bootstrap

import (
	"context"
	"log/slog"

	"github.com/TOOL2U/LandWise/internal/infra/idempotency"
	"github.com/TOOL2U/LandWise/internal/pkg/config"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore returns nil when Redis is not configured; checkout then
// runs without dedup.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config) commands.IdempotencyStore {
	if !cfg.Redis.Configured() {
		slog.Info("redis not configured, checkout idempotency disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return idempotency.NewRedisStore(client)
}
