package repository

import (
	"context"
	"errors"
	"time"

	"github.com/TOOL2U/LandWise/internal/domain/booking"
	"github.com/TOOL2U/LandWise/internal/infra"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) commands.BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	var lat, lng *float64
	if b.LandCoordinates != nil {
		lat = &b.LandCoordinates.Lat
		lng = &b.LandCoordinates.Lng
	}
	docs := b.DocumentURLs
	if docs == nil {
		docs = []string{} // column is NOT NULL
	}

	const query = `
		INSERT INTO bookings (
			package_id, package_name,
			customer_name, customer_email, customer_phone,
			land_location, land_lat, land_lng, project_details,
			booking_date, price_paid, is_early_access,
			payment_status, document_urls
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		b.PackageID, b.PackageName,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.LandLocation, lat, lng, b.ProjectDetails,
		b.BookingDate, b.PricePaid, b.IsEarlyAccess,
		string(b.PaymentStatus), docs,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking", err)
	}
	return b.ID, nil
}

// UpdateStatusFromPending is the idempotency guard for webhook deliveries: the
// WHERE clause only matches while the row is still pending, so replays and
// out-of-order events fall through to the caller's reconciliation path.
func (r *BookingRepository) UpdateStatusFromPending(ctx context.Context, id uuid.UUID, next booking.Status, providerTxnRef *string) (bool, error) {
	const query = `
		UPDATE bookings
		SET payment_status = $2,
		    stripe_payment_id = COALESCE($3, stripe_payment_id),
		    updated_at = now()
		WHERE id = $1 AND payment_status = 'pending'`

	tag, err := r.pool.Exec(ctx, query, id, string(next), providerTxnRef)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) SetSessionRef(ctx context.Context, id uuid.UUID, sessionID string) error {
	const query = `
		UPDATE bookings
		SET stripe_session_id = $2, updated_at = now()
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, sessionID)
	if err != nil {
		return infra.WrapRepoErr("failed to set session ref", err)
	}
	return nil
}

func (r *BookingRepository) ExpirePendingBefore(ctx context.Context, cutoff time.Time) ([]booking.Booking, error) {
	const query = `
		UPDATE bookings
		SET payment_status = 'failed', updated_at = now()
		WHERE payment_status = 'pending' AND created_at < $1
		RETURNING id, package_id, package_name,
		          customer_name, customer_email, customer_phone,
		          land_location, land_lat, land_lng, project_details,
		          to_char(booking_date, 'YYYY-MM-DD'), price_paid, is_early_access,
		          payment_status, stripe_payment_id, stripe_session_id,
		          document_urls, created_at, updated_at`

	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire pending bookings", err)
	}
	defer rows.Close()

	var expired []booking.Booking
	for rows.Next() {
		b, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan expired booking", scanErr)
		}
		expired = append(expired, *b)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read expired bookings", rows.Err())
	}
	return expired, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, package_id, package_name,
		       customer_name, customer_email, customer_phone,
		       land_location, land_lat, land_lng, project_details,
		       to_char(booking_date, 'YYYY-MM-DD'), price_paid, is_early_access,
		       payment_status, stripe_payment_id, stripe_session_id,
		       document_urls, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		b      booking.Booking
		status string
		lat    *float64
		lng    *float64
	)
	err := row.Scan(
		&b.ID, &b.PackageID, &b.PackageName,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.LandLocation, &lat, &lng, &b.ProjectDetails,
		&b.BookingDate, &b.PricePaid, &b.IsEarlyAccess,
		&status, &b.StripePaymentID, &b.StripeSessionID,
		&b.DocumentURLs, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.PaymentStatus = booking.Status(status)
	if lat != nil && lng != nil {
		b.LandCoordinates = &booking.Coordinates{Lat: *lat, Lng: *lng}
	}
	return &b, nil
}
