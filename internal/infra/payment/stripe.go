package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/TOOL2U/LandWise/internal/pkg/config"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Metadata keys attached to every checkout session. The webhook path resolves
// bookings from these alone, so the names are part of the provider contract.
const (
	metaBookingID     = "bookingId"
	metaPackageID     = "packageId"
	metaBookingDate   = "bookingDate"
	metaIsEarlyAccess = "isEarlyAccess"
)

// StripeGateway opens hosted checkout sessions. A zero-value secret key
// disables it; callers must check Enabled before CreateSession.
type StripeGateway struct {
	api      *client.API
	currency string
	baseURL  string
}

func NewStripeGateway(cfg config.StripeConfig, serverCfg config.ServerConfig) commands.CheckoutGateway {
	g := &StripeGateway{
		currency: cfg.Currency,
		baseURL:  serverCfg.BaseURL,
	}
	if cfg.Configured() {
		g.api = &client.API{}
		g.api.Init(cfg.SecretKey, nil)
	}
	return g
}

func (g *StripeGateway) Enabled() bool {
	return g.api != nil
}

func (g *StripeGateway) CreateSession(ctx context.Context, spec commands.SessionSpec) (*commands.SessionResult, error) {
	if g.api == nil {
		return nil, errs.ErrPaymentsNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Params:        stripe.Params{Context: ctx},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(spec.CustomerEmail),
		SuccessURL: stripe.String(fmt.Sprintf(
			"%s/booking/success?session_id={CHECKOUT_SESSION_ID}&booking_id=%s",
			g.baseURL, spec.BookingID,
		)),
		CancelURL: stripe.String(g.baseURL + "/booking/cancelled"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.currency),
					// Prices are held in major units; Stripe wants satang.
					UnitAmount: stripe.Int64(spec.Amount * 100),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(spec.PackageName),
						Description: stripe.String(spec.Tagline),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				metaBookingID: spec.BookingID.String(),
			},
		},
	}
	params.AddMetadata(metaBookingID, spec.BookingID.String())
	params.AddMetadata(metaPackageID, spec.PackageID)
	params.AddMetadata(metaBookingDate, spec.BookingDate)
	params.AddMetadata(metaIsEarlyAccess, strconv.FormatBool(spec.IsEarlyAccess))

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe session creation failed")
	}
	return &commands.SessionResult{ID: session.ID, URL: session.URL}, nil
}

// StripeWebhookVerifier authenticates webhook deliveries and maps provider
// event shapes into the internal closed set.
type StripeWebhookVerifier struct {
	webhookSecret string
}

func NewStripeWebhookVerifier(cfg config.StripeConfig) commands.WebhookVerifier {
	return &StripeWebhookVerifier{webhookSecret: cfg.WebhookSecret}
}

// VerifyEvent checks the signature over the exact payload bytes. Any
// re-serialization before this point breaks verification, so the handler hands
// the raw body through untouched. The error return is reserved for signature
// failures: once a payload is authenticated it must be acknowledged, so an
// event whose object cannot be resolved comes back as ignored, not as an
// error the provider would retry against.
func (v *StripeWebhookVerifier) VerifyEvent(payload []byte, signatureHeader string) (commands.ProviderEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, v.webhookSecret)
	if err != nil {
		return commands.ProviderEvent{}, errs.Wrap(err, "webhook signature verification failed")
	}
	return mapEvent(event), nil
}

func mapEvent(event stripe.Event) commands.ProviderEvent {
	out := commands.ProviderEvent{Kind: commands.EventIgnored, Type: string(event.Type)}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.expired":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			slog.Warn("unparseable checkout session event",
				"event_id", event.ID, "type", event.Type, "error", err.Error())
			return out
		}
		id, err := bookingIDFromMetadata(session.Metadata)
		if err != nil {
			slog.Warn("checkout session event without a usable booking id",
				"event_id", event.ID, "type", event.Type, "error", err.Error())
			return out
		}
		out.BookingID = id
		if event.Type == "checkout.session.completed" {
			out.Kind = commands.EventSessionCompleted
			if session.PaymentIntent != nil {
				out.TxnRef = session.PaymentIntent.ID
			}
		} else {
			out.Kind = commands.EventSessionFailed
		}

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			slog.Warn("unparseable payment intent event",
				"event_id", event.ID, "error", err.Error())
			return out
		}
		id, err := bookingIDFromMetadata(intent.Metadata)
		if err != nil {
			slog.Warn("payment intent event without a usable booking id",
				"event_id", event.ID, "error", err.Error())
			return out
		}
		out.BookingID = id
		out.Kind = commands.EventSessionFailed
		out.TxnRef = intent.ID
	}

	return out
}

func bookingIDFromMetadata(metadata map[string]string) (uuid.UUID, error) {
	raw, ok := metadata[metaBookingID]
	if !ok {
		return uuid.Nil, errs.New("event metadata is missing the booking id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "event metadata carries a malformed booking id")
	}
	return id, nil
}
