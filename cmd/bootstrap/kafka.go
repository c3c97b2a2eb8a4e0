package bootstrap

import (
	"context"
	"log/slog"

	"github.com/TOOL2U/LandWise/internal/infra/events"
	"github.com/TOOL2U/LandWise/internal/pkg/config"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher returns nil when Kafka is not configured; lifecycle
// transitions then go unnotified, which is fine for single-binary setups.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	if !cfg.Kafka.Configured() {
		slog.Info("kafka not configured, booking events disabled")
		return nil
	}

	publisher := events.NewKafkaPublisher(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
