package api

import (
	"net/http"
	"time"

	"github.com/TOOL2U/LandWise/internal/domain/catalog"
	resdto "github.com/TOOL2U/LandWise/internal/handler/dto/response"
	"github.com/TOOL2U/LandWise/internal/handler/httperr"
	"github.com/TOOL2U/LandWise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
	bookingQueries queries.BookingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries, bookingQueries queries.BookingQueries) *PricingHandler {
	return &PricingHandler{
		pricingQueries: pricingQueries,
		bookingQueries: bookingQueries,
	}
}

// @Summary Early-access pricing
// @Description Report whether early-access pricing is active and list packages
// @Tags pricing
// @Produce json
// @Success 200 {object} resdto.EarlyAccessResponse
// @Router /early-access [get]
func (h *PricingHandler) GetEarlyAccess(c *gin.Context) {
	active := h.pricingQueries.IsEarlyAccessActive(c.Request.Context())

	pkgs := catalog.All()
	out := make([]resdto.PackageResponse, len(pkgs))
	for i, p := range pkgs {
		out[i] = resdto.PackageResponse{
			ID:               p.ID,
			Name:             p.Name,
			Tagline:          p.Tagline,
			StandardPrice:    p.StandardPrice,
			EarlyAccessPrice: p.EarlyAccessPrice,
			CurrentPrice:     p.PriceFor(active),
			Features:         p.Features,
			Popular:          p.Popular,
		}
	}

	c.JSON(http.StatusOK, resdto.EarlyAccessResponse{
		Available: active,
		Packages:  out,
	})
}

// @Summary Date availability
// @Description Advisory check whether a booking date already has a paid booking
// @Tags pricing
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *PricingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date must be YYYY-MM-DD")
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Date:      date,
		Available: h.bookingQueries.IsDateAvailable(c.Request.Context(), date),
	})
}
