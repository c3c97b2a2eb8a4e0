package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/TOOL2U/LandWise/internal/domain/booking"
	"github.com/TOOL2U/LandWise/internal/domain/catalog"
	reqdto "github.com/TOOL2U/LandWise/internal/handler/dto/request"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutResult struct {
	SessionID  string
	URL        string
	BookingID  uuid.UUID
	IsReplayed bool
}

type CheckoutCommands interface {
	// Initiate validates the request, snapshots the price, creates the
	// pending booking and opens a hosted checkout session. idempotencyKey may
	// be empty, in which case no dedup is attempted.
	Initiate(ctx context.Context, req reqdto.CheckoutRequest, idempotencyKey string) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	bookingRepo    BookingRepository
	gateway        CheckoutGateway
	pricing        queries.PricingQueries
	idempotency    IdempotencyStore // nil when Redis is not configured
	idempotencyTTL time.Duration
}

func NewCheckoutCommands(
	bookingRepo BookingRepository,
	gateway CheckoutGateway,
	pricing queries.PricingQueries,
	idempotency IdempotencyStore,
	idempotencyTTL time.Duration,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		bookingRepo:    bookingRepo,
		gateway:        gateway,
		pricing:        pricing,
		idempotency:    idempotency,
		idempotencyTTL: idempotencyTTL,
	}
}

func (c *checkoutCommandsImpl) Initiate(ctx context.Context, req reqdto.CheckoutRequest, idempotencyKey string) (*CheckoutResult, error) {
	// Checked before any write: creating a pending booking that can never be
	// paid for would only produce orphans.
	if !c.gateway.Enabled() {
		return nil, errs.ErrPaymentsNotConfigured
	}

	pkg, ok := catalog.ByID(req.PackageID)
	if !ok {
		return nil, errs.ErrInvalidPackage
	}

	if replay := c.lookupReplay(ctx, idempotencyKey); replay != nil {
		return &CheckoutResult{
			SessionID:  replay.SessionID,
			URL:        replay.URL,
			BookingID:  replay.BookingID,
			IsReplayed: true,
		}, nil
	}

	// Authoritative pricing read. The display endpoint resolves its own copy;
	// the snapshot taken here is what gets charged.
	earlyAccess := c.pricing.IsEarlyAccessActive(ctx)
	price := pkg.PriceFor(earlyAccess)

	pending, err := booking.NewPending(req.ToDetails(), pkg.ID, pkg.Name, price, earlyAccess)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidBooking)
	}

	// The booking is created before the provider call so its id can travel in
	// the session metadata; the webhook later resolves the record from
	// metadata alone.
	bookingID, err := c.bookingRepo.Create(ctx, pending)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	session, err := c.gateway.CreateSession(ctx, SessionSpec{
		BookingID:     bookingID,
		PackageID:     pkg.ID,
		PackageName:   pkg.Name,
		Tagline:       pkg.Tagline,
		Amount:        price,
		CustomerEmail: pending.CustomerEmail,
		BookingDate:   pending.BookingDate,
		IsEarlyAccess: earlyAccess,
	})
	if err != nil {
		// No rollback: the booking stays pending and the sweep reconciles it.
		slog.Error("checkout session creation failed, booking left pending",
			"booking_id", bookingID, "error", err.Error())
		return nil, errs.Mark(err, errs.ErrCheckoutSessionFailed)
	}

	if refErr := c.bookingRepo.SetSessionRef(ctx, bookingID, session.ID); refErr != nil {
		slog.Warn("failed to persist session ref", "booking_id", bookingID, "error", refErr.Error())
	}

	result := &CheckoutResult{
		SessionID: session.ID,
		URL:       session.URL,
		BookingID: bookingID,
	}
	c.storeReplay(ctx, idempotencyKey, result)
	return result, nil
}

// lookupReplay returns a previously stored outcome for the key, or nil. Dedup
// is best-effort: a missing store or a Redis outage degrades to no dedup
// rather than blocking checkout.
func (c *checkoutCommandsImpl) lookupReplay(ctx context.Context, key string) *CheckoutReplay {
	if key == "" || c.idempotency == nil {
		return nil
	}
	replay, err := c.idempotency.Lookup(ctx, key)
	if err != nil {
		slog.Warn("idempotency lookup failed, proceeding without dedup", "error", err.Error())
		return nil
	}
	return replay
}

func (c *checkoutCommandsImpl) storeReplay(ctx context.Context, key string, result *CheckoutResult) {
	if key == "" || c.idempotency == nil {
		return
	}
	err := c.idempotency.Store(ctx, key, CheckoutReplay{
		SessionID: result.SessionID,
		URL:       result.URL,
		BookingID: result.BookingID,
	}, c.idempotencyTTL)
	if err != nil {
		slog.Warn("failed to store idempotency result", "booking_id", result.BookingID, "error", err.Error())
	}
}
