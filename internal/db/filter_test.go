package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEncodeFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"nil", nil, "{}"},
		{"empty", Filter{}, "{}"},
		{"string", Filter{"department_id": "Business"}, `{"department_id":"Business"}`},
		{"int", Filter{"credits": 3}, `{"credits":3}`},
		{"null", Filter{"image_url": nil}, `{"image_url":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeFilter(tt.filter)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, got)
		})
	}
}

func TestEncodeFilterRejectsUnencodable(t *testing.T) {
	_, err := encodeFilter(Filter{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestToBSON(t *testing.T) {
	assert.Equal(t, bson.M{}, toBSON(nil))
	assert.NotNil(t, toBSON(nil))
	assert.Equal(t, bson.M{"department_id": "Business"}, toBSON(Filter{"department_id": "Business"}))
}
