package models

// Inquiry is a message left by a site visitor. Email is only checked for
// presence.
type Inquiry struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required"`
	Message string  `json:"message" validate:"required"`
	Topic   *string `json:"topic"`
}

// NewInquiry builds an Inquiry from a request payload and validates it.
func NewInquiry(raw map[string]any) (*Inquiry, error) {
	i := &Inquiry{}
	if err := decode("Inquiry", raw, i); err != nil {
		return nil, err
	}
	return i, nil
}

// Fields returns the inquiry as a plain mapping for storage. An absent topic
// is stored as null.
func (i *Inquiry) Fields() map[string]any {
	var topic any
	if i.Topic != nil {
		topic = *i.Topic
	}
	return map[string]any{
		"name":    i.Name,
		"email":   i.Email,
		"message": i.Message,
		"topic":   topic,
	}
}
