package api

import (
	"net/http"

	reqdto "github.com/TOOL2U/LandWise/internal/handler/dto/request"
	resdto "github.com/TOOL2U/LandWise/internal/handler/dto/response"
	"github.com/TOOL2U/LandWise/internal/handler/httperr"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Start checkout
// @Description Create a pending booking and open a hosted payment session
// @Tags checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Optional key for duplicate prevention"
// @Param request body reqdto.CheckoutRequest true "Booking form payload"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	idempotencyKey := c.GetHeader("Idempotency-Key")

	result, err := h.checkoutCommands.Initiate(c.Request.Context(), req, idempotencyKey)
	if err != nil {
		// Sentinels arrive marked onto their causes, so matching must go
		// through errs.Is rather than the standard library.
		switch {
		case errs.Is(err, errs.ErrPaymentsNotConfigured):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment system is not configured")
		case errs.Is(err, errs.ErrInvalidPackage):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown package")
		case errs.Is(err, errs.ErrInvalidBooking):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking details")
		case errs.Is(err, errs.ErrCheckoutSessionFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Could not start the payment session")
		case errs.Is(err, errs.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Booking store is unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
