package repositories

import (
	"context"

	"github.com/yigit/uniportal/internal/app/models"
	"github.com/yigit/uniportal/internal/db"
)

// NewsRepository handles database operations for news items
type NewsRepository struct {
	store *db.Adapter
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(store *db.Adapter) *NewsRepository {
	return &NewsRepository{store: store}
}

// List retrieves up to limit news items
func (r *NewsRepository) List(ctx context.Context, limit int64) ([]*models.News, error) {
	return listRecords(ctx, r.store, models.CollectionNews, db.Filter{}, limit, models.NewNews)
}

// Count returns the number of stored news items
func (r *NewsRepository) Count(ctx context.Context) (int64, error) {
	return r.store.CountDocuments(ctx, models.CollectionNews, db.Filter{})
}

// Create stores a news record and returns its identifier
func (r *NewsRepository) Create(ctx context.Context, fields map[string]any) (string, error) {
	return r.store.CreateDocument(ctx, models.CollectionNews, fields)
}
