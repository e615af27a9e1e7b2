// Package testutil provides test helpers for the packages built on the catalog.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/Veraticus/bookmgr/internal/catalog"
	"github.com/Veraticus/bookmgr/internal/model"
	"github.com/Veraticus/bookmgr/internal/service"
	"github.com/Veraticus/bookmgr/internal/storage"
)

// TestCatalog is a catalog over a throwaway store.
type TestCatalog struct {
	Catalog *catalog.Catalog
	Store   service.BookStore
	t       *testing.T
}

// SetupCatalog opens a store on backend, seeds it with books in order and
// wraps it in a catalog. The store is closed when the test ends.
//
// Seeding goes straight to the store, so it can set up states Add refuses,
// such as two books differing only in case.
//
// Example:
//
//	tc := testutil.SetupCatalog(t, storage.BackendSQLite,
//		testutil.Book("Dune", "Adventure"),
//		testutil.Book("Dune", "Teen"),
//	)
func SetupCatalog(t *testing.T, backend string, books ...model.Book) *TestCatalog {
	t.Helper()

	ctx := context.Background()
	store, err := storage.Open(ctx, backend)
	if err != nil {
		t.Fatalf("failed to open %s store: %v", backend, err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close %s store: %v", backend, err)
		}
	})

	for _, b := range books {
		if err := store.Append(ctx, b); err != nil {
			t.Fatalf("failed to seed book %q: %v", b.Name, err)
		}
	}

	return &TestCatalog{
		Catalog: catalog.New(store),
		Store:   store,
		t:       t,
	}
}

// Book builds a book fixture.
func Book(name, category string) model.Book {
	return model.NewBook(name, category)
}

// Entries returns the stored books as "Name (Category)" in catalog order.
func (tc *TestCatalog) Entries() []string {
	tc.t.Helper()

	books, err := tc.Store.Books(context.Background())
	if err != nil {
		tc.t.Fatalf("failed to read books: %v", err)
	}

	entries := make([]string, len(books))
	for i, b := range books {
		entries[i] = fmt.Sprintf("%s (%s)", b.Name, b.Category)
	}
	return entries
}
