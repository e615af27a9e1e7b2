package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/bookmgr/internal/catalog"
	"github.com/Veraticus/bookmgr/internal/common"
	"github.com/Veraticus/bookmgr/internal/model"
)

// Menu choices.
const (
	ChoiceAdd    = "1"
	ChoiceView   = "2"
	ChoiceRemove = "3"
	ChoiceExit   = "4"
)

// Menu is the interactive add/view/remove loop over a catalog.
type Menu struct {
	term    *Terminal
	catalog *catalog.Catalog
}

// NewMenu creates a menu reading from and writing to term.
func NewMenu(term *Terminal, cat *catalog.Catalog) *Menu {
	return &Menu{term: term, catalog: cat}
}

// Run shows the menu until the user exits or input ends.
// Catalog errors are reported and the loop continues; anything else is returned.
func (m *Menu) Run(ctx context.Context) error {
	m.term.Title("Welcome to Book Manager!")

	for {
		m.showMenu()

		choice, err := m.term.AskInline(ctx, "Enter your choice:")
		if err != nil {
			return m.finish(err)
		}
		m.term.Println("")

		switch choice {
		case ChoiceAdd:
			err = m.addBook(ctx)
		case ChoiceView:
			err = m.viewBooks(ctx)
		case ChoiceRemove:
			err = m.removeBook(ctx)
		case ChoiceExit:
			return m.finish(nil)
		default:
			m.term.Error("Invalid choice. Please try again.")
		}

		if err != nil {
			if !common.IsUserError(err) {
				return m.finish(err)
			}
			m.term.Error(err.Error())
		}

		if err := m.term.Err(); err != nil {
			return err
		}
	}
}

func (m *Menu) showMenu() {
	m.term.Println("")
	m.term.Title("Menu:")
	m.term.Println(ChoiceAdd + ". Add Book")
	m.term.Println(ChoiceView + ". View Books")
	m.term.Println(ChoiceRemove + ". Remove Book")
	m.term.Println(ChoiceExit + ". Exit")
}

// finish says goodbye on a normal exit. End of input counts as one.
func (m *Menu) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	m.term.Println("Exiting Book Manager. Goodbye!")
	return m.term.Err()
}

func (m *Menu) addBook(ctx context.Context) error {
	name, err := m.term.Ask(ctx, "Enter the book name:")
	if err != nil {
		return err
	}

	category, err := m.term.Ask(ctx, fmt.Sprintf("Choose a category (%s):", model.CategoryNames()))
	if err != nil {
		return err
	}

	book, err := m.catalog.Add(ctx, name, category)
	if err != nil {
		return err
	}

	m.term.Success(fmt.Sprintf("Book '%s' added successfully to category '%s'.", book.Name, book.Category))
	return nil
}

func (m *Menu) viewBooks(ctx context.Context) error {
	listing, err := m.catalog.List(ctx)
	if err != nil {
		return err
	}

	if listing.IsEmpty() {
		m.term.Warning("No books available.")
		return nil
	}

	m.term.Println("")
	m.term.Title("List of Books:")
	m.term.BookTable(listing.All())
	return nil
}

func (m *Menu) removeBook(ctx context.Context) error {
	name, err := m.term.Ask(ctx, "Enter the name of the book to remove:")
	if err != nil {
		return err
	}

	removal, err := m.catalog.Remove(ctx, name)
	if err != nil {
		return err
	}

	book := removal.Removed
	if removal.NeedsCategory() {
		m.term.Warning(fmt.Sprintf("Multiple books found with the name '%s'. Please specify the category:", name))
		for i, c := range removal.Candidates {
			m.term.Println(fmt.Sprintf("%d. %s (%s)", i+1, c.Name, c.Category))
		}

		category, err := m.term.Ask(ctx, "Enter the category of the book to remove:")
		if err != nil {
			return err
		}

		removed, err := m.catalog.RemoveInCategory(ctx, name, category)
		if err != nil {
			return err
		}
		book = &removed
	}

	m.term.Success(fmt.Sprintf("Book '%s' from category '%s' removed successfully.", book.Name, book.Category))
	return nil
}
