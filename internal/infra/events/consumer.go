package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/TOOL2U/LandWise/internal/pkg/config"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// Handler processes one booking event. A returned error is logged and the
// message is committed anyway: notification delivery is at-most-once by
// choice, a poisoned message must not wedge the consumer group.
type Handler func(ctx context.Context, event commands.BookingEvent) error

type KafkaConsumer struct {
	reader  *kafka.Reader
	handler Handler
}

func NewKafkaConsumer(cfg config.KafkaConfig, handler Handler) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			Topic:   cfg.NotificationsTopic,
			GroupID: cfg.GroupID,
		}),
		handler: handler,
	}
}

// Run consumes until ctx is cancelled.
func (c *KafkaConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		var event commands.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			slog.Error("dropping undecodable booking event",
				"partition", msg.Partition, "offset", msg.Offset, "error", err.Error())
			continue
		}

		if err := c.handler(ctx, event); err != nil {
			slog.Error("booking event handler failed",
				"type", event.Type, "booking_id", event.BookingID, "error", err.Error())
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
