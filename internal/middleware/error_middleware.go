package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yigit/uniportal/internal/app/models/dto"
	"github.com/yigit/uniportal/internal/pkg/apperrors"
)

// HandleAPIError maps an error returned by the service layer to a status
// code and the standard error envelope, then aborts the request.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := mapError(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("Request failed")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func mapError(err error) (int, *dto.ErrorDetail) {
	var (
		validationErr  *apperrors.ValidationError
		persistenceErr *apperrors.PersistenceError
		customErr      *apperrors.CustomError
	)

	switch {
	case errors.As(err, &validationErr):
		if validationErr.Outbound {
			// Stored data no longer matches its schema
			return http.StatusInternalServerError,
				dto.NewErrorDetail(dto.ErrorCodeInternalServer, truncate(validationErr.Error())).
					WithSeverity(dto.ErrorSeverityCritical)
		}
		return http.StatusUnprocessableEntity,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, validationErr.Error()).
				WithField(validationErr.Field)

	case errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, truncate(err.Error()))
		if errors.As(err, &customErr) && customErr.Details != nil {
			detail.WithDetails(customErr.Details)
		}
		return http.StatusBadRequest, detail

	case errors.Is(err, apperrors.ErrConnectionUnavailable):
		return http.StatusServiceUnavailable,
			dto.NewErrorDetail(dto.ErrorCodeDatabaseUnavailable, "Database not available").
				WithSeverity(dto.ErrorSeverityWarning)

	case errors.As(err, &persistenceErr):
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, truncate(persistenceErr.Error()))

	default:
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func truncate(msg string) string {
	return apperrors.Truncate(msg, apperrors.MaxMessageLength)
}
