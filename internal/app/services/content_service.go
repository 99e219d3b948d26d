// Package services holds the business logic between controllers and
// repositories.
package services

import (
	"context"

	"github.com/yigit/uniportal/internal/app/models"
	"github.com/yigit/uniportal/internal/app/repositories"
)

// ContentService serves the read-only university content
type ContentService struct {
	departmentRepo *repositories.DepartmentRepository
	courseRepo     *repositories.CourseRepository
	newsRepo       *repositories.NewsRepository
}

// NewContentService creates a new content service instance
func NewContentService(repos *repositories.Repositories) *ContentService {
	return &ContentService{
		departmentRepo: repos.DepartmentRepository,
		courseRepo:     repos.CourseRepository,
		newsRepo:       repos.NewsRepository,
	}
}

// ListDepartments returns up to limit departments
func (s *ContentService) ListDepartments(ctx context.Context, limit int64) ([]*models.Department, error) {
	return s.departmentRepo.List(ctx, limit)
}

// ListCourses returns up to limit courses, optionally only those of one
// department
func (s *ContentService) ListCourses(ctx context.Context, limit int64, department string) ([]*models.Course, error) {
	return s.courseRepo.List(ctx, limit, department)
}

// ListNews returns up to limit news items
func (s *ContentService) ListNews(ctx context.Context, limit int64) ([]*models.News, error) {
	return s.newsRepo.List(ctx, limit)
}
