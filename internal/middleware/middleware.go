package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/uniportal/internal/pkg/apperrors"
	"github.com/yigit/uniportal/internal/pkg/metrics"
)

// RequestLogger logs every finished request with its status and latency.
func RequestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		event := lgr.Info()
		switch {
		case status >= 500:
			event = lgr.Error()
		case status >= 400:
			event = lgr.Warn()
		}
		if err := c.Errors.Last(); err != nil {
			event = event.Err(err.Err)
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}

// Metrics records request counts and latencies, labelled by route pattern.
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m.ObserveRequest(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
		if err := c.Errors.Last(); err != nil {
			if class := errorClass(err.Err); class != "" {
				m.RecordStoreError(class)
			}
		}
	}
}

func errorClass(err error) string {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.Is(err, apperrors.ErrConnectionUnavailable):
		return "unavailable"
	case errors.Is(err, apperrors.ErrPersistence):
		return "persistence"
	case errors.As(err, &validationErr) && validationErr.Outbound:
		return "invalid_record"
	}
	return ""
}
