package model

// Book is a catalog entry loaded from the static books file. Books are
// not persisted; likes and comments reference them by title and
// category as opaque strings.
type Book struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Cover       string `json:"cover,omitempty"`
	Description string `json:"description,omitempty"`
}
