package components

import (
	"github.com/TOOL2U/LandWise/internal/infra/email"
	"github.com/TOOL2U/LandWise/internal/infra/payment"
	"github.com/TOOL2U/LandWise/internal/pkg/config"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewCheckoutGateway,
		NewWebhookVerifier,
		NewMailer,
	),
)

func NewCheckoutGateway(cfg config.Config) commands.CheckoutGateway {
	return payment.NewStripeGateway(cfg.Stripe, cfg.Server)
}

func NewWebhookVerifier(cfg config.Config) commands.WebhookVerifier {
	return payment.NewStripeWebhookVerifier(cfg.Stripe)
}

func NewMailer(cfg config.Config) commands.Mailer {
	return email.NewResendMailer(cfg.Email)
}
