package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniportal/internal/app/models/dto"
	"github.com/yigit/uniportal/internal/app/services"
	"github.com/yigit/uniportal/internal/middleware"
	"github.com/yigit/uniportal/internal/pkg/apperrors"
)

// InquiryController accepts visitor inquiries
type InquiryController struct {
	inquiryService *services.InquiryService
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService *services.InquiryService) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
	}
}

// CreateInquiry stores a visitor inquiry
// @Summary Submit an inquiry
// @Description Validates and stores a visitor inquiry. Email is only checked for presence.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body models.Inquiry true "Inquiry"
// @Success 200 {object} dto.InquiryCreatedResponse "Inquiry stored"
// @Failure 400 {object} dto.ErrorResponse "Malformed JSON body"
// @Failure 422 {object} dto.ErrorResponse "Missing or invalid field"
// @Failure 500 {object} dto.ErrorResponse "Database write failed"
// @Failure 503 {object} dto.ErrorResponse "Database not available"
// @Router /api/inquiries [post]
func (c *InquiryController) CreateInquiry(ctx *gin.Context) {
	var payload map[string]any
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	id, err := c.inquiryService.Create(ctx.Request.Context(), payload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InquiryCreatedResponse{
		Status: "ok",
		ID:     id,
	})
}
