package api

import (
	"net/http"

	reqdto "github.com/TOOL2U/LandWise/internal/handler/dto/request"
	resdto "github.com/TOOL2U/LandWise/internal/handler/dto/response"
	"github.com/TOOL2U/LandWise/internal/handler/httperr"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"
	"github.com/TOOL2U/LandWise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authCommands   commands.AuthCommands
	bookingQueries queries.BookingQueries
}

func NewAdminHandler(authCommands commands.AuthCommands, bookingQueries queries.BookingQueries) *AdminHandler {
	return &AdminHandler{
		authCommands:   authCommands,
		bookingQueries: bookingQueries,
	}
}

// @Summary Admin login
// @Description Authenticate the dashboard operator
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Credentials"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrAdminNotConfigured):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Admin access is not configured")
		case errs.Is(err, errs.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AdminLoginResponse{
		Token: result.Token,
		Email: result.Email,
	})
}

// @Summary List bookings
// @Description List all bookings, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	items, err := h.bookingQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}
