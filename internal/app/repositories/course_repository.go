package repositories

import (
	"context"

	"github.com/yigit/uniportal/internal/app/models"
	"github.com/yigit/uniportal/internal/db"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	store *db.Adapter
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(store *db.Adapter) *CourseRepository {
	return &CourseRepository{store: store}
}

// List retrieves up to limit courses. A non-empty department restricts the
// result to courses whose department_id equals it exactly.
func (r *CourseRepository) List(ctx context.Context, limit int64, department string) ([]*models.Course, error) {
	filter := db.Filter{}
	if department != "" {
		filter["department_id"] = department
	}
	return listRecords(ctx, r.store, models.CollectionCourse, filter, limit, models.NewCourse)
}

// Count returns the number of stored courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	return r.store.CountDocuments(ctx, models.CollectionCourse, db.Filter{})
}

// Create stores a course record and returns its identifier
func (r *CourseRepository) Create(ctx context.Context, fields map[string]any) (string, error) {
	return r.store.CreateDocument(ctx, models.CollectionCourse, fields)
}
