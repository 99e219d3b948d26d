// Package seed inserts the demo content used by /api/seed and SEED_ON_STARTUP.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appRepos "github.com/yigit/uniportal/internal/app/repositories"
)

// Result reports how many demo records were inserted per collection.
type Result struct {
	Departments int `json:"departments"`
	Courses     int `json:"courses"`
	News        int `json:"news"`
}

// Total is the number of records inserted across collections.
func (r Result) Total() int {
	return r.Departments + r.Courses + r.News
}

// Departments is the fixed demo set for the department collection.
func Departments() []map[string]any {
	return []map[string]any{
		{"name": "Computer Science", "description": "CS, AI and Systems", "chair": "Dr. Ada"},
		{"name": "Business", "description": "Management and Finance", "chair": "Dr. Drucker"},
		{"name": "Design", "description": "UX, Visual and Product", "chair": "Prof. Rams"},
	}
}

// Courses is the fixed demo set for the course collection.
func Courses() []map[string]any {
	return []map[string]any{
		{"code": "CS101", "title": "Intro to CS", "description": "Fundamentals of computing", "department_id": "Computer Science", "credits": 3, "level": "Undergraduate"},
		{"code": "BUS201", "title": "Marketing", "description": "Principles of marketing", "department_id": "Business", "credits": 3, "level": "Undergraduate"},
	}
}

// News is the fixed demo set for the news collection.
func News() []map[string]any {
	return []map[string]any{
		{"title": "Welcome to Our University", "summary": "Orientation starts next week.", "content": "Join us for a week of events.", "image_url": nil},
		{"title": "New AI Lab Opened", "summary": "Cutting-edge research facilities.", "content": "The CS dept opens new lab.", "image_url": nil},
	}
}

// collectionSeeder is the slice of a repository that seeding needs.
type collectionSeeder interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, fields map[string]any) (string, error)
}

// CreateDemoData inserts the demo records into every collection that is
// currently empty and leaves populated collections alone, so calling it again
// inserts nothing. Errors are collected per collection; the counts of what
// did get inserted are returned alongside them.
func CreateDemoData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) (Result, error) {
	var res Result
	lgr.Info().Msg("Checking/Creating demo content (Departments/Courses/News)...")
	var finalErr error // To collect potential errors without stopping the process

	steps := []struct {
		name    string
		repo    collectionSeeder
		records []map[string]any
		counter *int
	}{
		{"departments", repos.DepartmentRepository, Departments(), &res.Departments},
		{"courses", repos.CourseRepository, Courses(), &res.Courses},
		{"news", repos.NewsRepository, News(), &res.News},
	}

	for _, step := range steps {
		n, err := seedCollection(ctx, step.repo, step.records)
		*step.counter = n
		if err != nil {
			lgr.Error().Err(err).Str("collection", step.name).Msg("Error seeding collection")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if n == 0 {
			lgr.Debug().Str("collection", step.name).Msg("Collection already populated, skipping")
		}
	}

	lgr.Info().Int("departments", res.Departments).Int("courses", res.Courses).Int("news", res.News).
		Int("total", res.Total()).Msg("Demo content check/creation finished.")
	return res, finalErr
}

func seedCollection(ctx context.Context, repo collectionSeeder, records []map[string]any) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, rec := range records {
		if _, err := repo.Create(ctx, rec); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
