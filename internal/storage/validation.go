// Package storage provides the book stores behind the catalog.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/bookmgr/internal/model"
	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrInvalidBook  = errors.New("invalid book")
	ErrDuplicateID  = errors.New("duplicate book id")
	ErrUnknownStore = errors.New("unknown storage backend")

	// ErrBookMissing is returned by Delete when no stored book has the id.
	ErrBookMissing = errors.New("book missing from store")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateBook validates a book before it is stored.
func validateBook(book model.Book) error {
	if book.ID == uuid.Nil {
		return fmt.Errorf("%w: missing ID", ErrInvalidBook)
	}
	if err := validateString(book.Name, "name"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBook, err)
	}
	if err := validateString(book.Category, "category"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBook, err)
	}
	return nil
}
