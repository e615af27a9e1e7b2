package storage

import (
	"context"
	"fmt"
	"slices"

	"github.com/Veraticus/bookmgr/internal/model"
	"github.com/google/uuid"
)

// MemoryStore implements service.BookStore on a plain slice.
type MemoryStore struct {
	books []model.Book
}

// NewMemoryStore creates an empty slice-backed store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds a book after all existing ones.
func (s *MemoryStore) Append(ctx context.Context, book model.Book) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBook(book); err != nil {
		return err
	}
	if slices.ContainsFunc(s.books, func(b model.Book) bool { return b.ID == book.ID }) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, book.ID)
	}

	s.books = append(s.books, book)
	return nil
}

// Delete removes the book with the given ID, keeping the order of the rest.
func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	idx := slices.IndexFunc(s.books, func(b model.Book) bool { return b.ID == id })
	if idx < 0 {
		return fmt.Errorf("book %s: %w", id, ErrBookMissing)
	}

	s.books = slices.Delete(s.books, idx, idx+1)
	return nil
}

// Books returns a copy of all books in insertion order.
func (s *MemoryStore) Books(ctx context.Context) ([]model.Book, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(s.books), nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
