package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	reqdto "github.com/TOOL2U/LandWise/internal/handler/dto/request"
)

// InquiryCommands forwards contact-form submissions to the operator inbox and,
// when the contact looks like an email address, sends an auto-reply. Both
// sends are best-effort: the form always succeeds from the customer's point of
// view once validation passes.
type InquiryCommands interface {
	Submit(ctx context.Context, req reqdto.InquiryRequest) error
}

type inquiryCommandsImpl struct {
	mailer   Mailer
	notifyTo string
}

func NewInquiryCommands(mailer Mailer, notifyTo string) InquiryCommands {
	return &inquiryCommandsImpl{mailer: mailer, notifyTo: notifyTo}
}

func (i *inquiryCommandsImpl) Submit(ctx context.Context, req reqdto.InquiryRequest) error {
	if !i.mailer.Enabled() {
		slog.Warn("inquiry received but mail delivery is not configured", "name", req.Name)
		return nil
	}

	notify := MailMessage{
		To:      i.notifyTo,
		Subject: fmt.Sprintf("New inquiry from %s", req.Name),
		Text:    formatInquiry(req),
	}
	if err := i.mailer.Send(ctx, notify); err != nil {
		slog.Error("failed to send inquiry notification", "name", req.Name, "error", err.Error())
	}

	// Auto-reply only when the contact field is plausibly an email address;
	// phone numbers and LINE ids go through the same field.
	if strings.Contains(req.Contact, "@") {
		reply := MailMessage{
			To:      req.Contact,
			Subject: "We received your inquiry - LandWise",
			Text: fmt.Sprintf(
				"Hi %s,\n\nThanks for reaching out. We have received your inquiry and will get back to you within one business day.\n\nLandWise Team",
				req.Name,
			),
		}
		if err := i.mailer.Send(ctx, reply); err != nil {
			slog.Warn("failed to send inquiry auto-reply", "contact", req.Contact, "error", err.Error())
		}
	}
	return nil
}

func formatInquiry(req reqdto.InquiryRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nContact: %s\n", req.Name, req.Contact)
	if req.LandLocation != "" {
		fmt.Fprintf(&b, "Land location: %s\n", req.LandLocation)
	}
	if req.Latitude != nil && req.Longitude != nil {
		fmt.Fprintf(&b, "Coordinates: %.6f, %.6f\n", *req.Latitude, *req.Longitude)
	}
	if req.MapsLink != "" {
		fmt.Fprintf(&b, "Maps link: %s\n", req.MapsLink)
	}
	if req.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", req.Service)
	}
	if req.FormType != "" {
		fmt.Fprintf(&b, "Form: %s\n", req.FormType)
	}
	if req.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", req.Message)
	}
	return b.String()
}
