package models

// Category groups campaigns for filtering.
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	AccentColor string `json:"accentColor,omitempty"`
}

// Ref returns the embedded form used inside campaigns.
func (c Category) Ref() *CategoryRef {
	return &CategoryRef{ID: c.ID, Title: c.Title, Slug: c.Slug}
}
