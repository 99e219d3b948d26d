// Package db provides the document store used by the API: a small Store
// interface with MongoDB, PostgreSQL (JSONB) and in-memory backends, and the
// Adapter that owns the process-wide handle.
package db

import "context"

// IDKey is the mapping key holding the store-assigned identifier.
const IDKey = "_id"

// Document is a single stored record.
type Document map[string]any

// Filter selects documents by exact match on every key. An empty filter
// matches all documents in a collection.
type Filter map[string]any

// Store is implemented by every backend. Collections are created lazily on
// first insert; querying a collection that does not exist yields no documents.
type Store interface {
	// Name identifies the backend ("mongo", "postgres", "memory").
	Name() string

	// InsertOne stores doc and returns the identifier assigned to it.
	InsertOne(ctx context.Context, collection string, doc Document) (any, error)

	// Find returns up to limit documents matching filter, in the store's
	// natural order. A limit <= 0 means no limit.
	Find(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)

	// CountDocuments counts documents matching filter.
	CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error)

	// ListCollectionNames returns the names of collections holding data.
	ListCollectionNames(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
