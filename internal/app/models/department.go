package models

// Department is an academic department.
type Department struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Chair       *string `json:"chair"`
}

// NewDepartment builds a Department from a raw record and validates it.
func NewDepartment(raw map[string]any) (*Department, error) {
	d := &Department{}
	if err := decode("Department", raw, d); err != nil {
		return nil, err
	}
	return d, nil
}
