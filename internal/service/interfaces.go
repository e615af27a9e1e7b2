// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/bookmgr/internal/model"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_book_store.go -package=mocks github.com/Veraticus/bookmgr/internal/service BookStore

// BookStore defines the contract for the catalog's record storage.
// Books must come back in the order they were appended.
type BookStore interface {
	Append(ctx context.Context, book model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	Books(ctx context.Context) ([]model.Book, error)
	Close() error
}
