package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TOOL2U/LandWise/internal/usecase/commands"
)

// Notifier turns booking lifecycle events into customer emails. One email per
// event; there is no digesting or batching.
type Notifier struct {
	mailer commands.Mailer
}

func NewNotifier(mailer commands.Mailer) *Notifier {
	return &Notifier{mailer: mailer}
}

func (n *Notifier) Handle(ctx context.Context, event commands.BookingEvent) error {
	if !n.mailer.Enabled() {
		slog.Debug("mail delivery not configured, dropping notification", "type", event.Type)
		return nil
	}

	msg, ok := n.compose(event)
	if !ok {
		slog.Info("no notification for event type", "type", event.Type)
		return nil
	}
	return n.mailer.Send(ctx, msg)
}

func (n *Notifier) compose(event commands.BookingEvent) (commands.MailMessage, bool) {
	switch event.Type {
	case commands.EventTypeBookingPaid:
		return commands.MailMessage{
			To:      event.CustomerEmail,
			Subject: "Your LandWise booking is confirmed",
			Text: fmt.Sprintf(
				"Hi %s,\n\nYour payment for the %s package has been received. Your assessment is booked for %s (฿%d).\n\nWe will contact you before the visit to confirm the details.\n\nLandWise Team",
				event.CustomerName, event.PackageName, event.BookingDate, event.PricePaid,
			),
		}, true
	case commands.EventTypeBookingFailed, commands.EventTypeBookingExpired:
		return commands.MailMessage{
			To:      event.CustomerEmail,
			Subject: "Your LandWise booking was not completed",
			Text: fmt.Sprintf(
				"Hi %s,\n\nThe payment for your %s package booking on %s was not completed. No charge was made.\n\nYou can restart the booking at any time from the website.\n\nLandWise Team",
				event.CustomerName, event.PackageName, event.BookingDate,
			),
		}, true
	}
	return commands.MailMessage{}, false
}
