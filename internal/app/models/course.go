package models

// Course defaults
const (
	DefaultCredits = 3
	DefaultLevel   = "Undergraduate"
)

// Course represents a course offered by a department. DepartmentID is a loose
// text reference (a department name or identifier); it is not checked.
type Course struct {
	Code         string  `json:"code" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	DepartmentID *string `json:"department_id"`
	Credits      int     `json:"credits" validate:"min=0,max=10"`
	Level        string  `json:"level"`
}

// NewCourse builds a Course from a raw record, applying defaults for credits
// and level, and validates it.
func NewCourse(raw map[string]any) (*Course, error) {
	c := &Course{
		Credits: DefaultCredits,
		Level:   DefaultLevel,
	}
	if err := decode("Course", raw, c); err != nil {
		return nil, err
	}
	return c, nil
}
