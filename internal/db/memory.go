package db

import (
	"context"
	"maps"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps everything in memory. Data is lost on restart.
// Safe for concurrent use; documents keep insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) InsertOne(_ context.Context, collection string, doc Document) (any, error) {
	stored := maps.Clone(doc)
	if stored == nil {
		stored = Document{}
	}
	id, ok := stored[IDKey]
	if !ok || id == nil {
		id = uuid.New()
		stored[IDKey] = id
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], stored)
	return id, nil
}

func (m *MemoryStore) Find(_ context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []Document{}
	for _, doc := range m.collections[collection] {
		if limit > 0 && int64(len(result)) >= limit {
			break
		}
		if matches(doc, filter) {
			result = append(result, maps.Clone(doc))
		}
	}
	return result, nil
}

func (m *MemoryStore) CountDocuments(_ context.Context, collection string, filter Filter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) ListCollectionNames(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := []string{}
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close(context.Context) error { return nil }

// matches applies exact-match semantics: every filter key must be present
// with an equal value. Numbers compare by value regardless of Go type.
func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !equalValues(got, want) {
			return false
		}
	}
	return true
}

func equalValues(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
