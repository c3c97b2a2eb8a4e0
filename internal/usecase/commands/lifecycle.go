package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/TOOL2U/LandWise/internal/domain/booking"
	"github.com/TOOL2U/LandWise/internal/pkg/clock"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingCommands drives the payment-status state machine. Webhook-path
// persistence failures are deliberately swallowed (logged only): the provider
// retries on handler failure, and a retry storm against a downed store helps
// nobody. Verification failures, by contrast, are loud.
type BookingCommands interface {
	HandleProviderEvent(ctx context.Context, payload []byte, signatureHeader string) error
	MarkPaid(ctx context.Context, id uuid.UUID, providerTxnRef string)
	MarkFailed(ctx context.Context, id uuid.UUID)
	// ExpireStalePending fails pending bookings older than maxAge and returns
	// how many were swept.
	ExpireStalePending(ctx context.Context, maxAge time.Duration) (int, error)
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	verifier    WebhookVerifier
	publisher   EventPublisher // nil when Kafka is not configured
	clock       clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	verifier WebhookVerifier,
	publisher EventPublisher,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		verifier:    verifier,
		publisher:   publisher,
		clock:       clk,
	}
}

// HandleProviderEvent verifies the payload over the exact bytes received and
// dispatches the resulting internal event. The only error it returns is
// ErrSignatureInvalid; every downstream failure is absorbed so the handler
// can acknowledge receipt.
func (b *bookingCommandsImpl) HandleProviderEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	if signatureHeader == "" {
		return errs.ErrSignatureInvalid
	}

	event, err := b.verifier.VerifyEvent(payload, signatureHeader)
	if err != nil {
		return errs.Mark(err, errs.ErrSignatureInvalid)
	}

	switch event.Kind {
	case EventSessionCompleted:
		b.MarkPaid(ctx, event.BookingID, event.TxnRef)
	case EventSessionFailed:
		b.MarkFailed(ctx, event.BookingID)
	default:
		slog.Info("unhandled provider event type", "type", event.Type)
	}
	return nil
}

func (b *bookingCommandsImpl) MarkPaid(ctx context.Context, id uuid.UUID, providerTxnRef string) {
	var ref *string
	if providerTxnRef != "" {
		ref = &providerTxnRef
	}
	b.transition(ctx, id, booking.StatusPaid, ref)
}

func (b *bookingCommandsImpl) MarkFailed(ctx context.Context, id uuid.UUID) {
	b.transition(ctx, id, booking.StatusFailed, nil)
}

// transition applies pending -> next with a status-guarded update. The guard
// makes duplicate deliveries race-safe: the second delivery sees zero rows
// updated and resolves against the current status.
func (b *bookingCommandsImpl) transition(ctx context.Context, id uuid.UUID, next booking.Status, ref *string) {
	applied, err := b.bookingRepo.UpdateStatusFromPending(ctx, id, next, ref)
	if err != nil {
		slog.Error("booking status update failed", "booking_id", id, "status", next, "error", err.Error())
		return
	}
	if applied {
		slog.Info("booking status updated", "booking_id", id, "status", next)
		b.publishTransition(ctx, id, next)
		return
	}

	current, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		slog.Error("booking lookup failed after no-op transition", "booking_id", id, "error", err.Error())
		return
	}
	if current.PaymentStatus == next {
		// Duplicate delivery of the same outcome: safe no-op.
		slog.Info("duplicate status event ignored", "booking_id", id, "status", next)
		return
	}
	// Contradicting event (e.g. a late "failed" for a paid booking): logged
	// as an anomaly, never applied.
	slog.Warn("conflicting status event not applied",
		"booking_id", id, "current", current.PaymentStatus, "requested", next,
		"error", errs.ErrStatusRegression.Error())
}

func (b *bookingCommandsImpl) publishTransition(ctx context.Context, id uuid.UUID, status booking.Status) {
	if b.publisher == nil {
		return
	}

	rec, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		slog.Warn("skipping event publish, booking lookup failed", "booking_id", id, "error", err.Error())
		return
	}

	eventType := EventTypeBookingFailed
	if status == booking.StatusPaid {
		eventType = EventTypeBookingPaid
	}

	err = b.publisher.PublishBookingEvent(ctx, BookingEvent{
		Type:          eventType,
		BookingID:     rec.ID,
		PackageName:   rec.PackageName,
		CustomerName:  rec.CustomerName,
		CustomerEmail: rec.CustomerEmail,
		BookingDate:   rec.BookingDate,
		PricePaid:     rec.PricePaid,
	})
	if err != nil {
		slog.Warn("failed to publish booking event", "booking_id", id, "type", eventType, "error", err.Error())
	}
}

func (b *bookingCommandsImpl) ExpireStalePending(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := b.clock.Now().Add(-maxAge)
	expired, err := b.bookingRepo.ExpirePendingBefore(ctx, cutoff)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, rec := range expired {
		slog.Info("stale pending booking expired", "booking_id", rec.ID, "created_at", rec.CreatedAt)
		if b.publisher == nil {
			continue
		}
		pubErr := b.publisher.PublishBookingEvent(ctx, BookingEvent{
			Type:          EventTypeBookingExpired,
			BookingID:     rec.ID,
			PackageName:   rec.PackageName,
			CustomerName:  rec.CustomerName,
			CustomerEmail: rec.CustomerEmail,
			BookingDate:   rec.BookingDate,
			PricePaid:     rec.PricePaid,
		})
		if pubErr != nil {
			slog.Warn("failed to publish expiry event", "booking_id", rec.ID, "error", pubErr.Error())
		}
	}
	return len(expired), nil
}
