// Package model defines the core data types of the book manager.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// Book is a single catalog entry.
// Name and Category are stored exactly as entered; comparisons ignore case.
type Book struct {
	Name     string
	Category string
	ID       uuid.UUID
}

// NewBook creates a book with a fresh ID.
func NewBook(name, category string) Book {
	return Book{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
	}
}

// HasName reports whether the book's name matches name, ignoring case.
func (b Book) HasName(name string) bool {
	return strings.EqualFold(b.Name, name)
}

// InCategory reports whether the book's category matches category, ignoring case.
func (b Book) InCategory(category string) bool {
	return strings.EqualFold(b.Category, category)
}
