//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	dombooking "github.com/TOOL2U/LandWise/internal/domain/booking"
	"github.com/TOOL2U/LandWise/internal/infra"
	"github.com/TOOL2U/LandWise/internal/infra/readstore"
	"github.com/TOOL2U/LandWise/internal/infra/repository"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"
	"github.com/TOOL2U/LandWise/internal/usecase/queries"
	"github.com/TOOL2U/LandWise/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type BookingStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	repo  commands.BookingRepository
	reads queries.BookingReadStore
}

func (s *BookingStoreTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pool = setupStorePool(s.T())
	s.repo = repository.NewBookingRepository(s.pool)
	s.reads = readstore.NewBookingReadStore(s.pool)
}

func TestBookingStoreSuite(t *testing.T) {
	suite.Run(t, new(BookingStoreTestSuite))
}

func (s *BookingStoreTestSuite) createPending(mutate func(*builder.BookingBuilder)) *dombooking.Booking {
	b := builder.NewBookingBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	pending, err := b.BuildDomain()
	s.Require().NoError(err)

	id, err := s.repo.Create(s.ctx, pending)
	s.Require().NoError(err)
	s.Require().NotEqual(uuid.Nil, id)
	return pending
}

func (s *BookingStoreTestSuite) TestCreateFindRoundTrip() {
	pending := s.createPending(func(b *builder.BookingBuilder) {
		b.CustomerEmail = "roundtrip@example.com"
		b.BookingDate = "2026-10-01"
	})

	found, err := s.repo.FindByID(s.ctx, pending.ID)
	s.Require().NoError(err)

	s.Equal(pending.ID, found.ID)
	s.Equal(pending.PackageID, found.PackageID)
	s.Equal("roundtrip@example.com", found.CustomerEmail)
	s.Equal("2026-10-01", found.BookingDate)
	s.Equal(pending.PricePaid, found.PricePaid)
	s.Equal(dombooking.StatusPending, found.PaymentStatus)
	s.False(found.CreatedAt.IsZero())
	s.False(found.UpdatedAt.IsZero())

	view, err := s.reads.FindByID(s.ctx, pending.ID)
	s.Require().NoError(err)
	s.Equal(pending.ID, view.ID)
	s.Equal(pending.PackageID, view.PackageID)
	s.Equal("2026-10-01", view.BookingDate)
	s.Equal("pending", view.PaymentStatus)
}

func (s *BookingStoreTestSuite) TestStatusGuardAppliesOnlyFromPending() {
	pending := s.createPending(nil)
	ref := "pi_e2e_123"

	applied, err := s.repo.UpdateStatusFromPending(s.ctx, pending.ID, dombooking.StatusPaid, &ref)
	s.Require().NoError(err)
	s.True(applied)

	// A second delivery with a contradicting outcome must not match the guard.
	applied, err = s.repo.UpdateStatusFromPending(s.ctx, pending.ID, dombooking.StatusFailed, nil)
	s.Require().NoError(err)
	s.False(applied)

	found, err := s.repo.FindByID(s.ctx, pending.ID)
	s.Require().NoError(err)
	s.Equal(dombooking.StatusPaid, found.PaymentStatus)
	s.Require().NotNil(found.StripePaymentID)
	s.Equal(ref, *found.StripePaymentID)
}

func (s *BookingStoreTestSuite) TestExpirePendingBefore() {
	pending := s.createPending(nil)

	expired, err := s.repo.ExpirePendingBefore(s.ctx, time.Now().Add(time.Hour))
	s.Require().NoError(err)

	var hit bool
	for _, rec := range expired {
		if rec.ID == pending.ID {
			hit = true
			s.Equal(dombooking.StatusFailed, rec.PaymentStatus)
		}
	}
	s.True(hit, "freshly created pending booking should be swept by a future cutoff")

	// Nothing pending remains from this test; a second sweep over the same
	// cutoff must not pick the row up again.
	expired, err = s.repo.ExpirePendingBefore(s.ctx, time.Now().Add(time.Hour))
	s.Require().NoError(err)
	for _, rec := range expired {
		s.NotEqual(pending.ID, rec.ID)
	}
}

func (s *BookingStoreTestSuite) TestMissingBookingIsNotFound() {
	_, err := s.repo.FindByID(s.ctx, uuid.New())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))

	_, err = s.reads.FindByID(s.ctx, uuid.New())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *BookingStoreTestSuite) TestClosedPoolReadsAreUnavailable() {
	// A dedicated pool so closing it cannot disturb the other tests.
	closed, err := pgxpool.New(s.ctx, s.pool.Config().ConnString())
	s.Require().NoError(err)
	closed.Close()

	reads := readstore.NewBookingReadStore(closed)

	_, err = reads.FindByID(s.ctx, uuid.New())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindUnavailable))

	_, err = reads.CountByStatus(s.ctx, "paid")
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindUnavailable))
}
