package repositories

import (
	"context"
	"errors"

	"github.com/yigit/uniportal/internal/db"
	"github.com/yigit/uniportal/internal/pkg/apperrors"
)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	NewsRepository       *NewsRepository
	InquiryRepository    *InquiryRepository
}

// NewRepositories initializes all repositories over the shared store handle
func NewRepositories(store *db.Adapter) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(store),
		CourseRepository:     NewCourseRepository(store),
		NewsRepository:       NewNewsRepository(store),
		InquiryRepository:    NewInquiryRepository(store),
	}
}

// listRecords reads a collection and turns every document into a validated
// record. The identifier is rendered as text and then dropped before
// validation, because the record shapes do not declare it. One invalid record
// fails the whole listing.
func listRecords[T any](
	ctx context.Context,
	store *db.Adapter,
	collection string,
	filter db.Filter,
	limit int64,
	build func(map[string]any) (*T, error),
) ([]*T, error) {
	docs, err := store.GetDocuments(ctx, collection, filter, limit)
	if err != nil {
		return nil, err
	}

	records := make([]*T, 0, len(docs))
	for _, doc := range docs {
		rec, err := build(db.WithoutID(db.Normalize(doc)))
		if err != nil {
			var ve *apperrors.ValidationError
			if errors.As(err, &ve) {
				ve.Outbound = true
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
