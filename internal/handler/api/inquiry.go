package api

import (
	"net/http"

	reqdto "github.com/TOOL2U/LandWise/internal/handler/dto/request"
	"github.com/TOOL2U/LandWise/internal/handler/httperr"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryCommands commands.InquiryCommands
}

func NewInquiryHandler(inquiryCommands commands.InquiryCommands) *InquiryHandler {
	return &InquiryHandler{
		inquiryCommands: inquiryCommands,
	}
}

// @Summary Submit inquiry
// @Description Forward a contact-form submission to the operator
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body reqdto.InquiryRequest true "Inquiry payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /inquiries [post]
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req reqdto.InquiryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	if err := h.inquiryCommands.Submit(c.Request.Context(), req); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inquiry received. We will get back to you shortly.",
	})
}
