package readstore

import (
	"context"
	"errors"

	"github.com/TOOL2U/LandWise/internal/infra"
	"github.com/TOOL2U/LandWise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT id, package_id, package_name,
		       customer_name, customer_email, customer_phone,
		       land_location, land_lat, land_lng, project_details,
		       to_char(booking_date, 'YYYY-MM-DD'), price_paid, is_early_access,
		       payment_status, stripe_payment_id, stripe_session_id,
		       document_urls, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var v queries.BookingView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.PackageID, &v.PackageName,
		&v.CustomerName, &v.CustomerEmail, &v.CustomerPhone,
		&v.LandLocation, &v.LandLat, &v.LandLng, &v.ProjectDetails,
		&v.BookingDate, &v.PricePaid, &v.IsEarlyAccess,
		&v.PaymentStatus, &v.StripePaymentID, &v.StripeSessionID,
		&v.DocumentURLs, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		// Anything else on a single-row read is a store problem, not a data
		// problem; callers map this to their degraded-store handling.
		return nil, infra.WrapRepoErr("failed to find booking", err, infra.KindUnavailable)
	}
	return &v, nil
}

func (s *BookingReadStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	const query = `SELECT count(*) FROM bookings WHERE payment_status = $1`

	var count int64
	err := s.pool.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err, infra.KindUnavailable)
	}
	return count, nil
}

func (s *BookingReadStore) FindPaidByDate(ctx context.Context, date string) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT id, package_id, package_name, customer_name, customer_email,
		       to_char(booking_date, 'YYYY-MM-DD'), price_paid, is_early_access,
		       payment_status, created_at
		FROM bookings
		WHERE booking_date = $1 AND payment_status = 'paid'
		ORDER BY created_at DESC`

	return s.queryList(ctx, query, date)
}

func (s *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT id, package_id, package_name, customer_name, customer_email,
		       to_char(booking_date, 'YYYY-MM-DD'), price_paid, is_early_access,
		       payment_status, created_at
		FROM bookings
		ORDER BY created_at DESC`

	return s.queryList(ctx, query)
}

func (s *BookingReadStore) queryList(ctx context.Context, query string, args ...any) ([]*queries.BookingListItem, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err, infra.KindUnavailable)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		err = rows.Scan(
			&item.ID, &item.PackageID, &item.PackageName,
			&item.CustomerName, &item.CustomerEmail,
			&item.BookingDate, &item.PricePaid, &item.IsEarlyAccess,
			&item.PaymentStatus, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", rows.Err())
	}
	return items, nil
}
