package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniportal/internal/app/models/dto"
	"github.com/yigit/uniportal/internal/app/services"
	"github.com/yigit/uniportal/internal/middleware"
)

// RootMessage is the static liveness message
const RootMessage = "University API is running"

// StatusController serves liveness, diagnostics and demo seeding
type StatusController struct {
	statusService *services.StatusService
}

// NewStatusController creates a new StatusController
func NewStatusController(statusService *services.StatusService) *StatusController {
	return &StatusController{
		statusService: statusService,
	}
}

// Root reports that the API is up
// @Summary Liveness
// @Tags status
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func (c *StatusController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: RootMessage})
}

// Test runs the database diagnostic probe. It always answers 200.
// @Summary Database diagnostic
// @Description Reports whether the database handle exists, whether its settings are present and up to 10 collection names
// @Tags status
// @Produce json
// @Success 200 {object} dto.DiagnosticResponse
// @Router /test [get]
func (c *StatusController) Test(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.statusService.Diagnose(ctx.Request.Context()))
}

// Health reports whether the database answers
// @Summary Health check
// @Tags status
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *StatusController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.statusService.Health(ctx.Request.Context()))
}

// Seed inserts demo content into empty collections
// @Summary Seed demo content
// @Description Inserts demo departments, courses and news into collections that are empty. Returns status no-db when the database is not available.
// @Tags status
// @Produce json
// @Success 200 {object} dto.SeedResponse
// @Failure 500 {object} dto.ErrorResponse "Database write failed"
// @Router /api/seed [get]
func (c *StatusController) Seed(ctx *gin.Context) {
	resp, err := c.statusService.Seed(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
