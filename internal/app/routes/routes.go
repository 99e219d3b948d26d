package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniportal/internal/app/controllers"
	"github.com/yigit/uniportal/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	contentController *controllers.ContentController,
	inquiryController *controllers.InquiryController,
	statusController *controllers.StatusController,
) {
	// --- Status routes ---
	router.GET("/", statusController.Root)
	router.GET("/test", statusController.Test)
	router.GET("/health", statusController.Health)

	api := router.Group("/api")
	{
		// Public content (read only)
		api.GET("/departments", contentController.GetDepartments)
		api.GET("/courses", contentController.GetCourses)
		api.GET("/news", contentController.GetNews)

		// Visitor inquiries (write only)
		api.POST("/inquiries", inquiryController.CreateInquiry)

		// Demo content
		api.GET("/seed", statusController.Seed)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeRouteNotFound, "Route not found").
				WithSeverity(dto.ErrorSeverityInfo),
		))
	})
}
