package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeID(t *testing.T) {
	oid := primitive.NewObjectID()
	uid := uuid.New()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"object id", oid, oid.Hex()},
		{"uuid", uid, uid.String()},
		{"raw uuid bytes", [16]byte(uid), uid.String()},
		{"number", 42, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeID(tt.in))
		})
	}
}

func TestNormalizeConvertsDriverValues(t *testing.T) {
	oid := primitive.NewObjectID()
	when := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)

	doc := Document{
		IDKey:        oid,
		"name":       "Computer Science",
		"created_at": primitive.NewDateTimeFromTime(when),
		"meta":       primitive.D{{Key: "ref", Value: oid}},
		"tags":       primitive.A{"ai", primitive.M{"x": int32(1)}},
	}

	out := Normalize(doc)

	assert.Equal(t, oid.Hex(), out[IDKey])
	assert.Equal(t, "Computer Science", out["name"])
	assert.Equal(t, when, out["created_at"])
	assert.Equal(t, map[string]any{"ref": oid.Hex()}, out["meta"])
	assert.Equal(t, []any{"ai", map[string]any{"x": int32(1)}}, out["tags"])

	// input untouched
	assert.Equal(t, oid, doc[IDKey])
}

func TestWithoutID(t *testing.T) {
	doc := WithoutID(Document{IDKey: "x", "title": "t"})
	assert.NotContains(t, doc, IDKey)
	assert.Equal(t, "t", doc["title"])
}
