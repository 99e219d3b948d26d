package db

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeID renders a store-assigned identifier as plain text.
func NormalizeID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	case uuid.UUID:
		return id.String()
	case [16]byte:
		return uuid.UUID(id).String()
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}

// Normalize returns a copy of doc where the identifier is plain text and
// driver-specific values (ObjectIDs, BSON documents and arrays, BSON dates)
// are converted to their plain Go equivalents.
func Normalize(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if k == IDKey {
			out[k] = NormalizeID(v)
			continue
		}
		out[k] = normalizeValue(v)
	}
	return out
}

// WithoutID drops the identifier from doc. Listing endpoints return records
// without it, so callers cannot address a record they were handed.
func WithoutID(doc Document) Document {
	delete(doc, IDKey)
	return doc
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = normalizeValue(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalizeValue(e)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalizeValue(e)
		}
		return m
	case primitive.A:
		return normalizeSlice(val)
	case []any:
		return normalizeSlice(val)
	default:
		return v
	}
}

func normalizeSlice(in []any) []any {
	out := make([]any, len(in))
	for i, e := range in {
		out[i] = normalizeValue(e)
	}
	return out
}
