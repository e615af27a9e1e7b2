package tui

import (
	"github.com/Veraticus/bookmgr/internal/catalog"
	"github.com/Veraticus/bookmgr/internal/model"
)

// Catalog result messages.
type booksLoadedMsg struct {
	listing catalog.Listing
	viewed  bool
}

type bookAddedMsg struct {
	book model.Book
}

type removalMsg struct {
	name    string
	removal catalog.Removal
}

type bookRemovedMsg struct {
	book model.Book
}

// catalogErrorMsg carries any failure from a catalog command.
type catalogErrorMsg struct {
	err error
}
