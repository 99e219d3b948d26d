package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/uniportal/internal/pkg/apperrors"
)

// Default page sizes of the listing endpoints.
const (
	DefaultDepartmentLimit = 50
	DefaultCourseLimit     = 100
	DefaultNewsLimit       = 10
)

// ParseLimit reads the "limit" query parameter. A missing or empty value
// yields defaultLimit; anything that is not a positive integer is a bad request.
func ParseLimit(c *gin.Context, defaultLimit int64) (int64, error) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return defaultLimit, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("limit must be a positive integer, got %q", raw)).
			WithDetails(map[string]interface{}{"parameter": "limit", "value": raw})
	}
	return limit, nil
}
