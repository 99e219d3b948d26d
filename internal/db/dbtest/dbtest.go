// Package dbtest provides store doubles for tests.
package dbtest

import (
	"context"
	"sync"

	"github.com/yigit/uniportal/internal/db"
)

// FailingStore wraps a MemoryStore and fails selected operations with Err.
// It also counts inserts so tests can assert that nothing was written.
type FailingStore struct {
	*db.MemoryStore

	Err         error
	FailInsert  bool
	FailFind    bool
	FailCount   bool
	FailList    bool
	FailPing    bool
	FailOnCalls int // fail only from this insert call on (1-based); 0 means every call

	mu      sync.Mutex
	inserts int
}

// NewFailingStore creates a FailingStore over an empty memory store.
func NewFailingStore(err error) *FailingStore {
	return &FailingStore{MemoryStore: db.NewMemoryStore(), Err: err}
}

// Inserts returns how many InsertOne calls were made, failed ones included.
func (s *FailingStore) Inserts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inserts
}

func (s *FailingStore) Name() string { return "failing" }

func (s *FailingStore) InsertOne(ctx context.Context, collection string, doc db.Document) (any, error) {
	s.mu.Lock()
	s.inserts++
	n := s.inserts
	s.mu.Unlock()

	if s.FailInsert && (s.FailOnCalls == 0 || n >= s.FailOnCalls) {
		return nil, s.Err
	}
	return s.MemoryStore.InsertOne(ctx, collection, doc)
}

func (s *FailingStore) Find(ctx context.Context, collection string, filter db.Filter, limit int64) ([]db.Document, error) {
	if s.FailFind {
		return nil, s.Err
	}
	return s.MemoryStore.Find(ctx, collection, filter, limit)
}

func (s *FailingStore) CountDocuments(ctx context.Context, collection string, filter db.Filter) (int64, error) {
	if s.FailCount {
		return 0, s.Err
	}
	return s.MemoryStore.CountDocuments(ctx, collection, filter)
}

func (s *FailingStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.FailList {
		return nil, s.Err
	}
	return s.MemoryStore.ListCollectionNames(ctx)
}

func (s *FailingStore) Ping(ctx context.Context) error {
	if s.FailPing {
		return s.Err
	}
	return s.MemoryStore.Ping(ctx)
}

// Put inserts doc directly, bypassing failure injection and the insert count.
func (s *FailingStore) Put(collection string, doc db.Document) {
	_, _ = s.MemoryStore.InsertOne(context.Background(), collection, doc)
}
