//go:build unit

package worker_test

import (
	"context"
	"testing"

	"github.com/TOOL2U/LandWise/internal/usecase/commands"
	"github.com/TOOL2U/LandWise/internal/worker"
	commandsmock "github.com/TOOL2U/LandWise/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNotifierHandle(t *testing.T) {
	ctx := context.Background()
	event := commands.BookingEvent{
		Type:          commands.EventTypeBookingPaid,
		BookingID:     uuid.New(),
		PackageName:   "VISIBILITY REPORT",
		CustomerName:  "Somchai",
		CustomerEmail: "somchai@example.com",
		BookingDate:   "2026-09-15",
		PricePaid:     30000,
	}

	t.Run("paid event sends a confirmation to the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := commandsmock.NewMockMailer(ctrl)
		mailer.EXPECT().Enabled().Return(true)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg commands.MailMessage) error {
				assert.Equal(t, "somchai@example.com", msg.To)
				assert.Contains(t, msg.Subject, "confirmed")
				assert.Contains(t, msg.Text, "VISIBILITY REPORT")
				return nil
			})

		assert.NoError(t, worker.NewNotifier(mailer).Handle(ctx, event))
	})

	t.Run("expired event sends the not-completed notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		expired := event
		expired.Type = commands.EventTypeBookingExpired

		mailer := commandsmock.NewMockMailer(ctrl)
		mailer.EXPECT().Enabled().Return(true)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg commands.MailMessage) error {
				assert.Contains(t, msg.Subject, "not completed")
				return nil
			})

		assert.NoError(t, worker.NewNotifier(mailer).Handle(ctx, expired))
	})

	t.Run("unknown event types are dropped without sending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		unknown := event
		unknown.Type = "booking.refunded"

		mailer := commandsmock.NewMockMailer(ctrl)
		mailer.EXPECT().Enabled().Return(true)

		assert.NoError(t, worker.NewNotifier(mailer).Handle(ctx, unknown))
	})

	t.Run("disabled mailer drops everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := commandsmock.NewMockMailer(ctrl)
		mailer.EXPECT().Enabled().Return(false)

		assert.NoError(t, worker.NewNotifier(mailer).Handle(ctx, event))
	})
}
