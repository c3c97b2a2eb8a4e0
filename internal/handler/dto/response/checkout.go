package response

import (
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	SessionID string    `json:"sessionId"`
	URL       string    `json:"url"`
	BookingID uuid.UUID `json:"bookingId"`
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		SessionID: result.SessionID,
		URL:       result.URL,
		BookingID: result.BookingID,
	}
}
