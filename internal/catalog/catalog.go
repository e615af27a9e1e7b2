// Package catalog manages the ordered collection of books: adding, listing
// and removing entries while keeping name/category pairs unique.
package catalog

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/Veraticus/bookmgr/internal/common"
	"github.com/Veraticus/bookmgr/internal/model"
	"github.com/Veraticus/bookmgr/internal/service"
	"github.com/samber/lo"
)

// Catalog is the book collection. Insertion order is preserved and decides
// which entry wins when several match.
type Catalog struct {
	store service.BookStore
}

// New creates a catalog backed by store.
func New(store service.BookStore) *Catalog {
	if store == nil {
		panic("store cannot be nil")
	}
	return &Catalog{store: store}
}

// Add validates and appends a book. Name and category are stored as given.
func (c *Catalog) Add(ctx context.Context, name, category string) (model.Book, error) {
	if _, ok := model.ParseCategory(category); !ok {
		return model.Book{}, newError(common.ErrInvalidCategory, name, category)
	}
	if strings.TrimSpace(name) == "" {
		return model.Book{}, newError(common.ErrEmptyName, name, category)
	}

	books, err := c.store.Books(ctx)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to load books: %w", err)
	}

	exists := lo.ContainsBy(books, func(b model.Book) bool {
		return b.HasName(name) && b.InCategory(category)
	})
	if exists {
		return model.Book{}, newError(common.ErrDuplicateEntry, name, category)
	}

	book := model.NewBook(name, category)
	if err := c.store.Append(ctx, book); err != nil {
		return model.Book{}, fmt.Errorf("failed to store book: %w", err)
	}

	common.LogDebug("book added", common.Fields{"name": book.Name, "category": book.Category})
	return book, nil
}

// Removal is the outcome of the first phase of removing a book by name.
// Either Removed is set, or Candidates holds the same-named books and the
// caller must pick one with RemoveInCategory.
type Removal struct {
	Removed    *model.Book
	Candidates []model.Book
}

// NeedsCategory reports whether the name was ambiguous.
func (r Removal) NeedsCategory() bool {
	return r.Removed == nil && len(r.Candidates) > 1
}

// Remove deletes the only book called name. When several books share the
// name nothing is removed and the candidates are returned instead.
func (c *Catalog) Remove(ctx context.Context, name string) (Removal, error) {
	matches, err := c.named(ctx, name)
	if err != nil {
		return Removal{}, err
	}

	if len(matches) > 1 {
		return Removal{Candidates: matches}, nil
	}

	book := matches[0]
	if err := c.delete(ctx, book); err != nil {
		return Removal{}, err
	}
	return Removal{Removed: &book}, nil
}

// RemoveInCategory deletes the first book, in insertion order, matching both
// name and category.
func (c *Catalog) RemoveInCategory(ctx context.Context, name, category string) (model.Book, error) {
	matches, err := c.named(ctx, name)
	if err != nil {
		return model.Book{}, err
	}

	book, ok := lo.Find(matches, func(b model.Book) bool {
		return b.InCategory(category)
	})
	if !ok {
		return model.Book{}, newError(common.ErrAmbiguousNotFound, name, category)
	}

	if err := c.delete(ctx, book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// List snapshots the catalog for display.
func (c *Catalog) List(ctx context.Context) (Listing, error) {
	books, err := c.store.Books(ctx)
	if err != nil {
		return Listing{}, fmt.Errorf("failed to load books: %w", err)
	}
	return Listing{books: books}, nil
}

// named returns the books called name in insertion order, or ErrNotFound.
func (c *Catalog) named(ctx context.Context, name string) ([]model.Book, error) {
	books, err := c.store.Books(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}

	matches := lo.Filter(books, func(b model.Book, _ int) bool {
		return b.HasName(name)
	})
	if len(matches) == 0 {
		return nil, newError(common.ErrNotFound, name, "")
	}
	return matches, nil
}

func (c *Catalog) delete(ctx context.Context, book model.Book) error {
	if err := c.store.Delete(ctx, book.ID); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	common.LogDebug("book removed", common.Fields{"name": book.Name, "category": book.Category})
	return nil
}

// Listing is a point-in-time view of the catalog.
type Listing struct {
	books []model.Book
}

// IsEmpty reports whether there is nothing to show.
func (l Listing) IsEmpty() bool {
	return len(l.books) == 0
}

// Len returns the number of books.
func (l Listing) Len() int {
	return len(l.books)
}

// All yields the books in insertion order. It can be ranged over any number of times.
func (l Listing) All() iter.Seq[model.Book] {
	return slices.Values(l.books)
}
