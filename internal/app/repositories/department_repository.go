package repositories

import (
	"context"

	"github.com/yigit/uniportal/internal/app/models"
	"github.com/yigit/uniportal/internal/db"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	store *db.Adapter
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(store *db.Adapter) *DepartmentRepository {
	return &DepartmentRepository{
		store: store,
	}
}

// List retrieves up to limit departments
func (r *DepartmentRepository) List(ctx context.Context, limit int64) ([]*models.Department, error) {
	return listRecords(ctx, r.store, models.CollectionDepartment, db.Filter{}, limit, models.NewDepartment)
}

// Count returns the number of stored departments
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	return r.store.CountDocuments(ctx, models.CollectionDepartment, db.Filter{})
}

// Create stores a department record and returns its identifier
func (r *DepartmentRepository) Create(ctx context.Context, fields map[string]any) (string, error) {
	return r.store.CreateDocument(ctx, models.CollectionDepartment, fields)
}
