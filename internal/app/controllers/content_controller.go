package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniportal/internal/app/services"
	"github.com/yigit/uniportal/internal/middleware"
	"github.com/yigit/uniportal/internal/pkg/helpers"
)

// ContentController serves departments, courses and news
type ContentController struct {
	contentService *services.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService *services.ContentService) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetDepartments lists departments
// @Summary List departments
// @Description Retrieves up to limit departments. Returns an empty array when the database is not available.
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of departments" default(50)
// @Success 200 {array} models.Department "Departments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/departments [get]
func (c *ContentController) GetDepartments(ctx *gin.Context) {
	limit, err := helpers.ParseLimit(ctx, helpers.DefaultDepartmentLimit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	departments, err := c.contentService.ListDepartments(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}

// GetCourses lists courses
// @Summary List courses
// @Description Retrieves up to limit courses, optionally only those whose department_id equals department exactly.
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of courses" default(100)
// @Param department query string false "Exact department_id to filter by"
// @Success 200 {array} models.Course "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/courses [get]
func (c *ContentController) GetCourses(ctx *gin.Context) {
	limit, err := helpers.ParseLimit(ctx, helpers.DefaultCourseLimit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.contentService.ListCourses(ctx.Request.Context(), limit, ctx.Query("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetNews lists news items
// @Summary List news
// @Description Retrieves up to limit news items
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of news items" default(10)
// @Success 200 {array} models.News "News retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/news [get]
func (c *ContentController) GetNews(ctx *gin.Context) {
	limit, err := helpers.ParseLimit(ctx, helpers.DefaultNewsLimit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	news, err := c.contentService.ListNews(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, news)
}
