package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniportal/internal/pkg/apperrors"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/news"+query, nil)
	return c
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		query   string
		want    int64
		wantErr bool
	}{
		{"", DefaultNewsLimit, false},
		{"?limit=", DefaultNewsLimit, false},
		{"?limit=3", 3, false},
		{"?limit=%203%20", 3, false},
		{"?limit=0", 0, true},
		{"?limit=-5", 0, true},
		{"?limit=ten", 0, true},
		{"?limit=2.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := ParseLimit(contextWithQuery(tt.query), DefaultNewsLimit)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrBadRequest)

				var customErr *apperrors.CustomError
				require.ErrorAs(t, err, &customErr)
				assert.Equal(t, "limit", customErr.Details["parameter"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDuration("3s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("bogus", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("-1s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}
