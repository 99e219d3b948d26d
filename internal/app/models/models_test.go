package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniportal/internal/pkg/apperrors"
)

func requireValidationError(t *testing.T, err error, field string) *apperrors.ValidationError {
	t.Helper()
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, field, ve.Field)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	return ve
}

func TestNewDepartment(t *testing.T) {
	d, err := NewDepartment(map[string]any{
		"name":        "Computer Science",
		"description": "CS, AI and Systems",
		"created_at":  "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", d.Name)
	require.NotNil(t, d.Description)
	assert.Equal(t, "CS, AI and Systems", *d.Description)
	assert.Nil(t, d.Chair)

	_, err = NewDepartment(map[string]any{"chair": "Dr. Ada"})
	requireValidationError(t, err, "name")

	_, err = NewDepartment(map[string]any{"name": ""})
	requireValidationError(t, err, "name")
}

func TestKeysMatchCaseSensitively(t *testing.T) {
	_, err := NewDepartment(map[string]any{"NAME": "Shouty"})
	requireValidationError(t, err, "name")

	d, err := NewDepartment(map[string]any{"name": "Design", "Chair": "Prof. Rams"})
	require.NoError(t, err)
	assert.Nil(t, d.Chair)

	_, err = NewInquiry(map[string]any{"Name": "Jo", "EMAIL": "jo@x.com", "message": "Hi"})
	requireValidationError(t, err, "name")

	c, err := NewCourse(map[string]any{"code": "CS101", "title": "Intro", "Credits": 9})
	require.NoError(t, err)
	assert.Equal(t, DefaultCredits, c.Credits)
}

func TestNewCourseDefaults(t *testing.T) {
	c, err := NewCourse(map[string]any{"code": "CS101", "title": "Intro to CS"})
	require.NoError(t, err)
	assert.Equal(t, DefaultCredits, c.Credits)
	assert.Equal(t, DefaultLevel, c.Level)
	assert.Nil(t, c.DepartmentID)
}

func TestNewCourseCredits(t *testing.T) {
	tests := []struct {
		credits any
		ok      bool
	}{
		{0, true},
		{10, true},
		{float64(7), true},
		{-1, false},
		{11, false},
		{"three", false},
	}
	for _, tt := range tests {
		_, err := NewCourse(map[string]any{"code": "X1", "title": "X", "credits": tt.credits})
		if tt.ok {
			assert.NoError(t, err, "credits=%v", tt.credits)
			continue
		}
		requireValidationError(t, err, "credits")
	}
}

func TestNewCourseRequiredFields(t *testing.T) {
	_, err := NewCourse(map[string]any{"title": "Marketing"})
	requireValidationError(t, err, "code")

	_, err = NewCourse(map[string]any{"code": "BUS201"})
	requireValidationError(t, err, "title")
}

func TestNewNews(t *testing.T) {
	n, err := NewNews(map[string]any{"title": "New AI Lab Opened", "image_url": nil, "extra": 1})
	require.NoError(t, err)
	assert.Equal(t, "New AI Lab Opened", n.Title)
	assert.Nil(t, n.ImageURL)

	_, err = NewNews(map[string]any{"summary": "no title"})
	requireValidationError(t, err, "title")
}

func TestNewInquiry(t *testing.T) {
	i, err := NewInquiry(map[string]any{"name": "Jo", "email": "jo@x.com", "message": "Hi"})
	require.NoError(t, err)
	assert.Nil(t, i.Topic)
	assert.Equal(t, map[string]any{
		"name":    "Jo",
		"email":   "jo@x.com",
		"message": "Hi",
		"topic":   nil,
	}, i.Fields())

	// email is checked for presence only
	_, err = NewInquiry(map[string]any{"name": "Jo", "email": "not-an-email", "message": "Hi"})
	assert.NoError(t, err)

	for _, missing := range []string{"name", "email", "message"} {
		payload := map[string]any{"name": "Jo", "email": "jo@x.com", "message": "Hi"}
		delete(payload, missing)
		_, err := NewInquiry(payload)
		requireValidationError(t, err, missing)
	}
}

func TestNewInquiryWrongType(t *testing.T) {
	_, err := NewInquiry(map[string]any{"name": 5, "email": "jo@x.com", "message": "Hi"})
	requireValidationError(t, err, "name")
}
