package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/TOOL2U/LandWise/internal/infra"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	PackageID       string    `json:"package_id"`
	PackageName     string    `json:"package_name"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	LandLocation    string    `json:"land_location,omitempty"`
	LandLat         *float64  `json:"land_lat,omitempty"`
	LandLng         *float64  `json:"land_lng,omitempty"`
	ProjectDetails  string    `json:"project_details,omitempty"`
	BookingDate     string    `json:"booking_date"`
	PricePaid       int64     `json:"price_paid"`
	IsEarlyAccess   bool      `json:"is_early_access"`
	PaymentStatus   string    `json:"payment_status"`
	StripePaymentID *string   `json:"stripe_payment_id,omitempty"`
	StripeSessionID *string   `json:"stripe_session_id,omitempty"`
	DocumentURLs    []string  `json:"document_urls,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	PackageID     string    `json:"package_id"`
	PackageName   string    `json:"package_name"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	BookingDate   string    `json:"booking_date"`
	PricePaid     int64     `json:"price_paid"`
	IsEarlyAccess bool      `json:"is_early_access"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingReadStore is the query side of the record store.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	FindPaidByDate(ctx context.Context, date string) ([]*BookingListItem, error)
	ListAll(ctx context.Context) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingListItem, error)
	// IsDateAvailable is advisory only: the booking form consults it before
	// submission, but nothing on the server path enforces it.
	IsDateAvailable(ctx context.Context, date string) bool
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.ErrStoreUnavailable
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingListItem, error) {
	items, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return items, nil
}

func (q *bookingQueriesImpl) IsDateAvailable(ctx context.Context, date string) bool {
	paid, err := q.store.FindPaidByDate(ctx, date)
	if err != nil {
		// Default-open: a degraded store never blocks the booking form.
		slog.Warn("date availability check failed, defaulting to available", "date", date, "error", err.Error())
		return true
	}
	return len(paid) == 0
}
