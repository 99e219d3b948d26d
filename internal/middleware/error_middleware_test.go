package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniportal/internal/app/models/dto"
	"github.com/yigit/uniportal/internal/pkg/apperrors"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandleAPIErrorMapping(t *testing.T) {
	outbound := apperrors.NewValidationError("Course", "credits", "must be less than or equal to 10")
	outbound.Outbound = true

	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"bad request", apperrors.NewBadRequestError("limit must be a positive integer"), http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{"inbound validation", apperrors.NewValidationError("Inquiry", "name", "field required"), http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed},
		{"outbound validation", outbound, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
		{"unavailable", apperrors.ErrConnectionUnavailable, http.StatusServiceUnavailable, dto.ErrorCodeDatabaseUnavailable},
		{"persistence", apperrors.NewPersistenceError("insert into", "inquiry", errors.New("timeout")), http.StatusInternalServerError, dto.ErrorCodeDatabaseError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serveError(t, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorCarriesBadRequestDetails(t *testing.T) {
	err := apperrors.NewBadRequestError("limit must be a positive integer").
		WithDetails(map[string]interface{}{"parameter": "limit", "value": "ten"})

	rec, body := serveError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"parameter": "limit", "value": "ten"}, body.Error.Details)
}

func TestHandleAPIErrorNamesField(t *testing.T) {
	_, body := serveError(t, apperrors.NewValidationError("Inquiry", "email", "field required"))
	assert.Equal(t, "email", body.Error.Field)
	assert.Equal(t, "Inquiry.email: field required", body.Error.Message)
}

func TestHandleAPIErrorTruncatesPersistenceMessage(t *testing.T) {
	cause := errors.New(strings.Repeat("e", 500))
	_, body := serveError(t, apperrors.NewPersistenceError("insert into", "inquiry", cause))

	assert.Len(t, []rune(body.Error.Message), apperrors.MaxMessageLength)
	assert.True(t, strings.HasPrefix(body.Error.Message, "insert into inquiry: eee"))
	assert.True(t, strings.HasSuffix(body.Error.Message, "..."))
}

func TestHandleAPIErrorHidesUnknownErrors(t *testing.T) {
	_, body := serveError(t, errors.New("password=hunter2"))
	assert.Equal(t, "Internal server error", body.Error.Message)
}
