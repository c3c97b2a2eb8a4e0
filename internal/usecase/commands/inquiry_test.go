//go:build unit

package commands_test

import (
	"context"
	"testing"

	reqdto "github.com/TOOL2U/LandWise/internal/handler/dto/request"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"
	commandsmock "github.com/TOOL2U/LandWise/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInquirySubmit(t *testing.T) {
	ctx := context.Background()
	const notifyTo = "hello@landwise.example"

	t.Run("email contact gets the notification and an auto-reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := commandsmock.NewMockMailer(ctrl)
		mailer.EXPECT().Enabled().Return(true)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg commands.MailMessage) error {
				assert.Equal(t, notifyTo, msg.To)
				assert.Contains(t, msg.Text, "Somchai")
				return nil
			})
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg commands.MailMessage) error {
				assert.Equal(t, "somchai@example.com", msg.To)
				return nil
			})

		inquiry := commands.NewInquiryCommands(mailer, notifyTo)
		err := inquiry.Submit(ctx, reqdto.InquiryRequest{
			Name:    "Somchai",
			Contact: "somchai@example.com",
			Message: "How long does the survey take?",
		})
		assert.NoError(t, err)
	})

	t.Run("phone contact gets no auto-reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := commandsmock.NewMockMailer(ctrl)
		mailer.EXPECT().Enabled().Return(true)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		inquiry := commands.NewInquiryCommands(mailer, notifyTo)
		err := inquiry.Submit(ctx, reqdto.InquiryRequest{Name: "Somchai", Contact: "+66812345678"})
		assert.NoError(t, err)
	})

	t.Run("send failures never fail the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := commandsmock.NewMockMailer(ctrl)
		mailer.EXPECT().Enabled().Return(true)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errs.New("resend down")).Times(2)

		inquiry := commands.NewInquiryCommands(mailer, notifyTo)
		err := inquiry.Submit(ctx, reqdto.InquiryRequest{Name: "Somchai", Contact: "somchai@example.com"})
		assert.NoError(t, err)
	})

	t.Run("disabled mailer drops the inquiry silently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mailer := commandsmock.NewMockMailer(ctrl)
		mailer.EXPECT().Enabled().Return(false)

		inquiry := commands.NewInquiryCommands(mailer, notifyTo)
		err := inquiry.Submit(ctx, reqdto.InquiryRequest{Name: "Somchai", Contact: "somchai@example.com"})
		assert.NoError(t, err)
	})
}
