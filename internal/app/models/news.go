package models

// News is a news item shown on the site.
type News struct {
	Title    string  `json:"title" validate:"required"`
	Summary  *string `json:"summary"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

// NewNews builds a News item from a raw record and validates it.
func NewNews(raw map[string]any) (*News, error) {
	n := &News{}
	if err := decode("News", raw, n); err != nil {
		return nil, err
	}
	return n, nil
}
