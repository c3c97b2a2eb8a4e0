package email

import (
	"context"

	"github.com/TOOL2U/LandWise/internal/pkg/config"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends transactional mail through Resend. Without an API key it
// stays disabled and callers skip sending.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(cfg config.EmailConfig) commands.Mailer {
	m := &ResendMailer{from: cfg.FromAddress}
	if cfg.ResendAPIKey != "" {
		m.client = resend.NewClient(cfg.ResendAPIKey)
	}
	return m
}

func (m *ResendMailer) Enabled() bool {
	return m.client != nil
}

func (m *ResendMailer) Send(ctx context.Context, msg commands.MailMessage) error {
	if m.client == nil {
		return errs.New("mail delivery is not configured")
	}
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return errs.Wrap(err, "failed to send email")
	}
	return nil
}
