package repositories

import (
	"context"

	"github.com/yigit/uniportal/internal/app/models"
	"github.com/yigit/uniportal/internal/db"
)

// InquiryRepository stores visitor inquiries
type InquiryRepository struct {
	store *db.Adapter
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(store *db.Adapter) *InquiryRepository {
	return &InquiryRepository{store: store}
}

// Create inserts a validated inquiry and returns its identifier
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) (string, error) {
	return r.store.CreateDocument(ctx, models.CollectionInquiry, inquiry.Fields())
}
