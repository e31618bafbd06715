// Package catalog serves the static book catalog shipped with the
// application. The catalog is read once at startup and is immutable;
// likes and comments reference its entries by (title, category) but
// existence is not enforced against it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"bookshelf/internal/model"
)

// Catalog is a read-only lookup over the books file.
type Catalog struct {
	books      []model.Book
	byCategory map[string][]model.Book
}

// Load reads and decodes the books JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var books []model.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	byCategory := make(map[string][]model.Book)
	for _, b := range books {
		byCategory[b.Category] = append(byCategory[b.Category], b)
	}

	return &Catalog{books: books, byCategory: byCategory}, nil
}

// List returns all books in file order.
func (c *Catalog) List() []model.Book {
	return c.books
}

// ListByCategory returns the books of one category, or false if the
// category does not exist. Category matching is literal and
// case-sensitive.
func (c *Catalog) ListByCategory(category string) ([]model.Book, bool) {
	books, ok := c.byCategory[category]
	return books, ok
}

// Find returns the book with the exact (title, category) pair.
func (c *Catalog) Find(title, category string) (model.Book, bool) {
	for _, b := range c.byCategory[category] {
		if b.Title == title {
			return b, true
		}
	}
	return model.Book{}, false
}
