package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/TOOL2U/LandWise/internal/handler/middleware"
	"github.com/TOOL2U/LandWise/internal/infra/db"
	"github.com/TOOL2U/LandWise/internal/infra/email"
	"github.com/TOOL2U/LandWise/internal/infra/events"
	"github.com/TOOL2U/LandWise/internal/infra/payment"
	"github.com/TOOL2U/LandWise/internal/infra/repository"
	"github.com/TOOL2U/LandWise/internal/pkg/clock"
	"github.com/TOOL2U/LandWise/internal/pkg/config"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"
	"github.com/TOOL2U/LandWise/internal/worker"
)

// The worker runs the two background concerns of the booking flow: emailing
// customers on lifecycle events, and sweeping pending bookings that never got
// a payment outcome. It shares the API server's configuration.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	middleware.NewLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	var publisher commands.EventPublisher
	if cfg.Kafka.Configured() {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	bookingRepo := repository.NewBookingRepository(pool)
	verifier := payment.NewStripeWebhookVerifier(cfg.Stripe)
	bookingCommands := commands.NewBookingCommands(bookingRepo, verifier, publisher, clock.NewRealClock())

	if cfg.Kafka.Configured() {
		notifier := worker.NewNotifier(email.NewResendMailer(cfg.Email))
		consumer := events.NewKafkaConsumer(cfg.Kafka, notifier.Handle)
		defer consumer.Close()

		go func() {
			if err := consumer.Run(ctx); err != nil {
				slog.Error("notification consumer stopped", "error", err.Error())
			}
		}()
		slog.Info("notification consumer started", "topic", cfg.Kafka.NotificationsTopic)
	} else {
		slog.Info("kafka not configured, notification consumer disabled")
	}

	sweeper := worker.NewSweeper(bookingCommands, cfg.Booking.SweepInterval, cfg.Booking.PendingSweepAfter)
	go sweeper.Run(ctx)
	slog.Info("pending booking sweeper started",
		"interval", cfg.Booking.SweepInterval, "max_age", cfg.Booking.PendingSweepAfter)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	slog.Info("received signal, shutting down", "signal", s.String())
}
