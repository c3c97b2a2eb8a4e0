//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/TOOL2U/LandWise/internal/domain/booking"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"
	"github.com/TOOL2U/LandWise/tests/common/builder"
	commandsmock "github.com/TOOL2U/LandWise/tests/mock/commands"
	queriesmock "github.com/TOOL2U/LandWise/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	ctx             context.Context
	mockCtrl        *gomock.Controller
	mockRepo        *commandsmock.MockBookingRepository
	mockGateway     *commandsmock.MockCheckoutGateway
	mockPricing     *queriesmock.MockPricingQueries
	mockIdempotency *commandsmock.MockIdempotencyStore
	checkout        commands.CheckoutCommands
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockGateway = commandsmock.NewMockCheckoutGateway(s.mockCtrl)
	s.mockPricing = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.mockIdempotency = commandsmock.NewMockIdempotencyStore(s.mockCtrl)
	s.checkout = commands.NewCheckoutCommands(s.mockRepo, s.mockGateway, s.mockPricing, s.mockIdempotency, time.Hour)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) TestInitiate() {
	req := builder.NewBookingBuilder().BuildCheckoutRequestDTO()
	bookingID := uuid.New()

	s.Run("success: snapshots early-access price into the booking and the session", func() {
		s.mockGateway.EXPECT().Enabled().Return(true)
		s.mockIdempotency.EXPECT().Lookup(gomock.Any(), "key-1").Return(nil, nil)
		s.mockPricing.EXPECT().IsEarlyAccessActive(gomock.Any()).Return(true)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
				s.Equal(int64(30000), b.PricePaid)
				s.True(b.IsEarlyAccess)
				s.Equal(booking.StatusPending, b.PaymentStatus)
				return bookingID, nil
			})
		s.mockGateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spec commands.SessionSpec) (*commands.SessionResult, error) {
				s.Equal(bookingID, spec.BookingID)
				s.Equal(int64(30000), spec.Amount)
				s.True(spec.IsEarlyAccess)
				return &commands.SessionResult{ID: "cs_123", URL: "https://pay.example/cs_123"}, nil
			})
		s.mockRepo.EXPECT().SetSessionRef(gomock.Any(), bookingID, "cs_123").Return(nil)
		s.mockIdempotency.EXPECT().Store(gomock.Any(), "key-1", gomock.Any(), time.Hour).Return(nil)

		result, err := s.checkout.Initiate(s.ctx, req, "key-1")
		s.NoError(err)
		s.Equal("cs_123", result.SessionID)
		s.Equal(bookingID, result.BookingID)
		s.False(result.IsReplayed)
	})

	s.Run("success: standard price when early access has closed", func() {
		s.mockGateway.EXPECT().Enabled().Return(true)
		s.mockPricing.EXPECT().IsEarlyAccessActive(gomock.Any()).Return(false)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
				s.Equal(int64(35000), b.PricePaid)
				s.False(b.IsEarlyAccess)
				return bookingID, nil
			})
		s.mockGateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			Return(&commands.SessionResult{ID: "cs_456", URL: "https://pay.example/cs_456"}, nil)
		s.mockRepo.EXPECT().SetSessionRef(gomock.Any(), bookingID, "cs_456").Return(nil)

		// Empty key: no idempotency round trips at all.
		result, err := s.checkout.Initiate(s.ctx, req, "")
		s.NoError(err)
		s.Equal("cs_456", result.SessionID)
	})

	s.Run("error: payments not configured, checked before any write", func() {
		s.mockGateway.EXPECT().Enabled().Return(false)

		result, err := s.checkout.Initiate(s.ctx, req, "key-1")
		s.ErrorIs(err, errs.ErrPaymentsNotConfigured)
		s.Nil(result)
	})

	s.Run("error: unknown package", func() {
		badReq := req
		badReq.PackageID = "platinum"
		s.mockGateway.EXPECT().Enabled().Return(true)

		result, err := s.checkout.Initiate(s.ctx, badReq, "")
		s.ErrorIs(err, errs.ErrInvalidPackage)
		s.Nil(result)
	})

	s.Run("error: validation failure creates nothing", func() {
		badReq := req
		badReq.BookingDate = "not-a-date"
		s.mockGateway.EXPECT().Enabled().Return(true)
		s.mockPricing.EXPECT().IsEarlyAccessActive(gomock.Any()).Return(true)

		result, err := s.checkout.Initiate(s.ctx, badReq, "")
		// The sentinel is marked onto the domain error, which stdlib errors.Is
		// cannot see.
		s.True(errs.Is(err, errs.ErrInvalidBooking))
		s.Nil(result)
	})

	s.Run("error: session failure leaves the pending booking in place", func() {
		s.mockGateway.EXPECT().Enabled().Return(true)
		s.mockPricing.EXPECT().IsEarlyAccessActive(gomock.Any()).Return(true)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bookingID, nil)
		s.mockGateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("provider down"))
		// No delete, no status change: the sweep reconciles it later.

		result, err := s.checkout.Initiate(s.ctx, req, "")
		s.True(errs.Is(err, errs.ErrCheckoutSessionFailed))
		s.Nil(result)
	})

	s.Run("replay: stored outcome is returned without touching the store", func() {
		s.mockGateway.EXPECT().Enabled().Return(true)
		s.mockIdempotency.EXPECT().Lookup(gomock.Any(), "key-2").
			Return(&commands.CheckoutReplay{SessionID: "cs_old", URL: "https://pay.example/cs_old", BookingID: bookingID}, nil)

		result, err := s.checkout.Initiate(s.ctx, req, "key-2")
		s.NoError(err)
		s.True(result.IsReplayed)
		s.Equal("cs_old", result.SessionID)
		s.Equal(bookingID, result.BookingID)
	})

	s.Run("replay: lookup failure degrades to no dedup", func() {
		s.mockGateway.EXPECT().Enabled().Return(true)
		s.mockIdempotency.EXPECT().Lookup(gomock.Any(), "key-3").Return(nil, errs.New("redis down"))
		s.mockPricing.EXPECT().IsEarlyAccessActive(gomock.Any()).Return(true)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bookingID, nil)
		s.mockGateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			Return(&commands.SessionResult{ID: "cs_789", URL: "u"}, nil)
		s.mockRepo.EXPECT().SetSessionRef(gomock.Any(), bookingID, "cs_789").Return(nil)
		s.mockIdempotency.EXPECT().Store(gomock.Any(), "key-3", gomock.Any(), time.Hour).Return(errs.New("redis down"))

		result, err := s.checkout.Initiate(s.ctx, req, "key-3")
		s.NoError(err)
		s.False(result.IsReplayed)
	})
}
