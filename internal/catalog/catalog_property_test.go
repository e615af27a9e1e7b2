package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Veraticus/bookmgr/internal/common"
	"github.com/Veraticus/bookmgr/internal/model"
	"github.com/Veraticus/bookmgr/internal/storage"
	"pgregory.net/rapid"
)

func nameGen() *rapid.Generator[string] {
	// A small alphabet makes same-name collisions common.
	return rapid.StringMatching(`[AaBb][AaBb ]{0,2}`)
}

func categoryGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		c := string(rapid.SampledFrom(model.Categories).Draw(t, "category"))
		switch rapid.IntRange(0, 2).Draw(t, "casing") {
		case 1:
			return strings.ToLower(c)
		case 2:
			return strings.ToUpper(c)
		default:
			return c
		}
	})
}

func countPair(t *rapid.T, c *Catalog, name, category string) int {
	listing, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	n := 0
	for b := range listing.All() {
		if b.HasName(name) && b.InCategory(category) {
			n++
		}
	}
	return n
}

func TestProperty_AddThenListHasExactlyOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(storage.NewMemoryStore())
		name := nameGen().Draw(t, "name")
		category := categoryGen().Draw(t, "category")

		_, err := c.Add(context.Background(), name, category)
		if err != nil {
			t.Fatalf("Add(%q, %q) failed: %v", name, category, err)
		}
		_, err = c.Add(context.Background(), strings.ToUpper(name), strings.ToLower(category))
		if !errors.Is(err, common.ErrDuplicateEntry) {
			t.Fatalf("second Add error = %v, want ErrDuplicateEntry", err)
		}
		if n := countPair(t, c, name, category); n != 1 {
			t.Fatalf("found %d records for (%q, %q), want 1", n, name, category)
		}
	})
}

func TestProperty_InvalidCategoryLeavesCatalogUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(storage.NewMemoryStore())
		ctx := context.Background()
		for i := range rapid.IntRange(0, 5).Draw(t, "seed") {
			_, _ = c.Add(ctx, strings.Repeat("x", i+1), string(model.CategoryAI))
		}
		before, _ := c.List(ctx)

		category := rapid.StringMatching(`[A-Za-z]{1,12}`).Filter(func(s string) bool {
			_, ok := model.ParseCategory(s)
			return !ok
		}).Draw(t, "invalid")
		if _, err := c.Add(ctx, "Anything", category); !errors.Is(err, common.ErrInvalidCategory) {
			t.Fatalf("Add with %q error = %v, want ErrInvalidCategory", category, err)
		}

		after, _ := c.List(ctx)
		if before.Len() != after.Len() {
			t.Fatalf("catalog changed from %d to %d books", before.Len(), after.Len())
		}
	})
}

// TestProperty_MatchesReferenceModel drives the catalog with random operations
// and compares it with a plain slice after every step.
func TestProperty_MatchesReferenceModel(t *testing.T) {
	for _, backend := range []string{storage.BackendMemory, storage.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				ctx := context.Background()
				store, err := storage.Open(ctx, backend)
				if err != nil {
					t.Fatalf("Open failed: %v", err)
				}
				defer func() { _ = store.Close() }()

				c := New(store)
				var ref []model.Book

				t.Repeat(map[string]func(*rapid.T){
					"add": func(t *rapid.T) {
						name := nameGen().Draw(t, "name")
						category := categoryGen().Draw(t, "category")
						_, err := c.Add(ctx, name, category)

						dup := false
						for _, b := range ref {
							if b.HasName(name) && b.InCategory(category) {
								dup = true
							}
						}
						switch {
						case strings.TrimSpace(name) == "":
							if !errors.Is(err, common.ErrEmptyName) {
								t.Fatalf("Add(%q) error = %v, want ErrEmptyName", name, err)
							}
						case dup:
							if !errors.Is(err, common.ErrDuplicateEntry) {
								t.Fatalf("Add(%q, %q) error = %v, want ErrDuplicateEntry", name, category, err)
							}
						default:
							if err != nil {
								t.Fatalf("Add(%q, %q) failed: %v", name, category, err)
							}
							ref = append(ref, model.Book{Name: name, Category: category})
						}
					},
					"remove": func(t *rapid.T) {
						name := nameGen().Draw(t, "name")
						category := categoryGen().Draw(t, "category")

						var idx []int
						for i, b := range ref {
							if b.HasName(name) {
								idx = append(idx, i)
							}
						}

						removal, err := c.Remove(ctx, name)
						switch len(idx) {
						case 0:
							if !errors.Is(err, common.ErrNotFound) {
								t.Fatalf("Remove(%q) error = %v, want ErrNotFound", name, err)
							}
							return
						case 1:
							if err != nil || removal.Removed == nil {
								t.Fatalf("Remove(%q) = %+v, %v; want removal", name, removal, err)
							}
							ref = append(ref[:idx[0]], ref[idx[0]+1:]...)
							return
						}

						if !removal.NeedsCategory() || len(removal.Candidates) != len(idx) {
							t.Fatalf("Remove(%q) = %+v, want %d candidates", name, removal, len(idx))
						}

						_, err = c.RemoveInCategory(ctx, name, category)
						for _, i := range idx {
							if ref[i].InCategory(category) {
								if err != nil {
									t.Fatalf("RemoveInCategory(%q, %q) failed: %v", name, category, err)
								}
								ref = append(ref[:i], ref[i+1:]...)
								return
							}
						}
						if !errors.Is(err, common.ErrAmbiguousNotFound) {
							t.Fatalf("RemoveInCategory(%q, %q) error = %v, want ErrAmbiguousNotFound", name, category, err)
						}
					},
					"": func(t *rapid.T) {
						listing, err := c.List(ctx)
						if err != nil {
							t.Fatalf("List failed: %v", err)
						}
						if listing.IsEmpty() != (len(ref) == 0) {
							t.Fatalf("IsEmpty = %v with %d reference books", listing.IsEmpty(), len(ref))
						}
						i := 0
						for b := range listing.All() {
							if i >= len(ref) || b.Name != ref[i].Name || b.Category != ref[i].Category {
								t.Fatalf("book %d = %+v, reference %+v", i, b, ref)
							}
							i++
						}
						if i != len(ref) {
							t.Fatalf("listed %d books, reference has %d", i, len(ref))
						}
					},
				})
			})
		})
	}
}
