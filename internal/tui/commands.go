package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// loadBooks snapshots the catalog for display.
func (m Model) loadBooks() tea.Cmd {
	return m.listBooks(false)
}

// viewBooks is loadBooks on explicit request, which reports an empty catalog.
func (m Model) viewBooks() tea.Cmd {
	return m.listBooks(true)
}

func (m Model) listBooks(viewed bool) tea.Cmd {
	return func() tea.Msg {
		listing, err := m.catalog.List(m.ctx)
		if err != nil {
			return catalogErrorMsg{err: err}
		}
		return booksLoadedMsg{listing: listing, viewed: viewed}
	}
}

func (m Model) addBook(name, category string) tea.Cmd {
	return func() tea.Msg {
		book, err := m.catalog.Add(m.ctx, name, category)
		if err != nil {
			return catalogErrorMsg{err: err}
		}
		return bookAddedMsg{book: book}
	}
}

func (m Model) removeBook(name string) tea.Cmd {
	return func() tea.Msg {
		removal, err := m.catalog.Remove(m.ctx, name)
		if err != nil {
			return catalogErrorMsg{err: err}
		}
		return removalMsg{name: name, removal: removal}
	}
}

func (m Model) removeBookInCategory(name, category string) tea.Cmd {
	return func() tea.Msg {
		book, err := m.catalog.RemoveInCategory(m.ctx, name, category)
		if err != nil {
			return catalogErrorMsg{err: err}
		}
		return bookRemovedMsg{book: book}
	}
}
