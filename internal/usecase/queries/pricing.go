package queries

import (
	"context"
	"log/slog"

	"github.com/TOOL2U/LandWise/internal/domain/booking"
)

// PricingQueries decides whether early-access pricing currently applies.
//
// The policy is count-based: early access stays open until the configured
// number of bookings have been paid for. Checkout resolves this independently
// from the display endpoint; only the checkout-time read is authoritative.
type PricingQueries interface {
	IsEarlyAccessActive(ctx context.Context) bool
}

type pricingQueriesImpl struct {
	store BookingReadStore
	limit int
}

func NewPricingQueries(store BookingReadStore, limit int) PricingQueries {
	return &pricingQueriesImpl{store: store, limit: limit}
}

// IsEarlyAccessActive defaults to true on any store error. An unconfigured or
// degraded store must never hide a bookable price from a prospective
// customer; this default-open behavior is a deliberate business decision.
func (p *pricingQueriesImpl) IsEarlyAccessActive(ctx context.Context) bool {
	paid, err := p.store.CountByStatus(ctx, booking.StatusPaid.String())
	if err != nil {
		slog.Warn("early-access count unavailable, defaulting to active", "error", err.Error())
		return true
	}
	return paid < int64(p.limit)
}
