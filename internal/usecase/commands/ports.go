package commands

import (
	"context"
	"time"

	"github.com/TOOL2U/LandWise/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingRepository is the write side of the record store.
type BookingRepository interface {
	// Create persists a pending booking; the store assigns id and timestamps.
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatusFromPending applies a transition guarded on the current
	// status still being pending. It reports whether the row was updated, so
	// callers can distinguish a duplicate delivery from an anomaly.
	UpdateStatusFromPending(ctx context.Context, id uuid.UUID, next booking.Status, providerTxnRef *string) (bool, error)
	// SetSessionRef records the provider session id after session creation.
	SetSessionRef(ctx context.Context, id uuid.UUID, sessionID string) error
	// ExpirePendingBefore fails every pending booking created before cutoff
	// and returns the affected records.
	ExpirePendingBefore(ctx context.Context, cutoff time.Time) ([]booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

// SessionSpec is everything the payment provider needs to open a hosted
// checkout session. Amount is in major currency units; the gateway converts.
type SessionSpec struct {
	BookingID     uuid.UUID
	PackageID     string
	PackageName   string
	Tagline       string
	Amount        int64
	CustomerEmail string
	BookingDate   string
	IsEarlyAccess bool
}

type SessionResult struct {
	ID  string
	URL string
}

// CheckoutGateway is the narrow contract with the payment provider.
type CheckoutGateway interface {
	Enabled() bool
	CreateSession(ctx context.Context, spec SessionSpec) (*SessionResult, error)
}

type EventKind string

// Provider payloads are mapped into this closed set immediately after
// signature verification; nothing downstream inspects provider shapes.
const (
	EventSessionCompleted EventKind = "session_completed"
	EventSessionFailed    EventKind = "session_failed"
	EventIgnored          EventKind = "ignored"
)

type ProviderEvent struct {
	Kind      EventKind
	Type      string // raw provider event type, for logging only
	BookingID uuid.UUID
	TxnRef    string
}

// WebhookVerifier authenticates a raw webhook payload. Verification runs over
// the exact bytes received; implementations must not re-serialize.
type WebhookVerifier interface {
	VerifyEvent(payload []byte, signatureHeader string) (ProviderEvent, error)
}

// BookingEvent is published after a lifecycle transition for the
// notification worker. Publishing is best-effort.
type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     uuid.UUID `json:"booking_id"`
	PackageName   string    `json:"package_name"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	BookingDate   string    `json:"booking_date"`
	PricePaid     int64     `json:"price_paid"`
}

const (
	EventTypeBookingPaid    = "booking.paid"
	EventTypeBookingFailed  = "booking.failed"
	EventTypeBookingExpired = "booking.expired"
)

type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

// CheckoutReplay is the stored outcome of a completed checkout initiation,
// replayed when the same idempotency key is submitted again.
type CheckoutReplay struct {
	SessionID string    `json:"session_id"`
	URL       string    `json:"url"`
	BookingID uuid.UUID `json:"booking_id"`
}

// IdempotencyStore deduplicates client retries of checkout initiation within
// a TTL window. Absence is (nil, nil); store outages are reported as errors
// and treated as "no dedup" by the caller.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (*CheckoutReplay, error)
	Store(ctx context.Context, key string, result CheckoutReplay, ttl time.Duration) error
}

type MailMessage struct {
	To      string
	Subject string
	Text    string
}

type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, msg MailMessage) error
}
