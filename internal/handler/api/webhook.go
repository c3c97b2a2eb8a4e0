package api

import (
	"io"
	"net/http"

	"github.com/TOOL2U/LandWise/internal/handler/httperr"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Webhook payloads are capped well above any real provider event size.
const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	bookingCommands commands.BookingCommands
}

func NewWebhookHandler(bookingCommands commands.BookingCommands) *WebhookHandler {
	return &WebhookHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Stripe webhook
// @Description Receive payment lifecycle events from Stripe
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	// The signature covers the exact bytes on the wire, so the body is read
	// raw and never rebound through a struct.
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read request body")
		return
	}

	signature := c.GetHeader("Stripe-Signature")

	// The only error the command layer surfaces here is a signature failure;
	// everything after successful verification is absorbed and acknowledged.
	err = h.bookingCommands.HandleProviderEvent(c.Request.Context(), payload, signature)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature")
		return
	}

	// Always acknowledged once verified; processing failures were logged and
	// must not trigger provider retries.
	c.JSON(http.StatusOK, gin.H{"received": true})
}
