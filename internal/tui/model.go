package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/bookmgr/internal/catalog"
	"github.com/Veraticus/bookmgr/internal/common"
	"github.com/Veraticus/bookmgr/internal/model"
	"github.com/Veraticus/bookmgr/internal/tui/themes"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the TUI.
type State int

const (
	StateMenu State = iota
	StateAddName
	StateAddCategory
	StateRemoveName
	StateRemoveCategory
)

// statusKind selects the style of the status line.
type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

// Model holds the main TUI state.
type Model struct {
	ctx         context.Context
	err         error
	catalog     *catalog.Catalog
	theme       themes.Theme
	keymap      KeyMap
	help        help.Model
	input       textinput.Model
	listing     catalog.Listing
	pendingName string
	status      string
	candidates  []model.Book
	width       int
	height      int
	state       State
	statusKind  statusKind
	quitting    bool

	// busy is set while a catalog command is in flight; the catalog is
	// not safe for concurrent use.
	busy bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	input := textinput.New()
	input.CharLimit = 256
	_ = input.Cursor.SetMode(cursor.CursorStatic)

	return Model{
		ctx:     cfg.Context,
		catalog: cfg.Catalog,
		theme:   cfg.Theme,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		input:   input,
		width:   cfg.Width,
		height:  cfg.Height,
		state:   StateMenu,
		busy:    true, // Init loads the books
	}
}

// Init loads the current books.
func (m Model) Init() tea.Cmd {
	return m.loadBooks()
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.state == StateMenu {
			return m.handleMenuKey(msg)
		}
		return m.handleInputKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case booksLoadedMsg:
		m.busy = false
		m.listing = msg.listing
		if msg.viewed && m.listing.IsEmpty() {
			m.setStatus(statusWarning, "No books available.")
		}
		return m, nil

	case bookAddedMsg:
		m.setStatus(statusSuccess, fmt.Sprintf("Book '%s' added successfully to category '%s'.", msg.book.Name, msg.book.Category))
		m.toMenu()
		return m, m.loadBooks()

	case removalMsg:
		if msg.removal.NeedsCategory() {
			m.busy = false
			m.pendingName = msg.name
			m.candidates = msg.removal.Candidates
			m.setStatus(statusWarning, fmt.Sprintf("Multiple books found with the name '%s'. Please specify the category:", msg.name))
			return m, m.prompt(StateRemoveCategory, "Category")
		}
		m.setStatus(statusSuccess, removedMessage(*msg.removal.Removed))
		m.toMenu()
		return m, m.loadBooks()

	case bookRemovedMsg:
		m.setStatus(statusSuccess, removedMessage(msg.book))
		m.toMenu()
		return m, m.loadBooks()

	case catalogErrorMsg:
		m.busy = false
		if !common.IsUserError(msg.err) {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.setStatus(statusError, msg.err.Error())
		m.toMenu()
		return m, nil
	}

	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy && !key.Matches(msg, m.keymap.Quit) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Add):
		m.setStatus(statusNone, "")
		return m, m.prompt(StateAddName, "Book name")
	case key.Matches(msg, m.keymap.View):
		m.setStatus(statusNone, "")
		m.busy = true
		return m, m.viewBooks()
	case key.Matches(msg, m.keymap.Remove):
		m.setStatus(statusNone, "")
		return m, m.prompt(StateRemoveName, "Book name")
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	default:
		m.setStatus(statusError, "Invalid choice. Please try again.")
		return m, nil
	}
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.toMenu()
		return m, nil
	case key.Matches(msg, m.keymap.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit acts on the entered text for the current step. At most one
// catalog command runs at a time; Enter is ignored until it reports back.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	value := m.input.Value()

	switch m.state {
	case StateAddName:
		m.pendingName = value
		return m, m.prompt(StateAddCategory, fmt.Sprintf("Category (%s)", model.CategoryNames()))
	case StateAddCategory:
		m.busy = true
		return m, m.addBook(m.pendingName, value)
	case StateRemoveName:
		m.busy = true
		return m, m.removeBook(value)
	case StateRemoveCategory:
		m.busy = true
		return m, m.removeBookInCategory(m.pendingName, value)
	}
	return m, nil
}

// prompt switches to an input state with an empty, focused text field.
func (m *Model) prompt(state State, placeholder string) tea.Cmd {
	m.state = state
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Model) toMenu() {
	m.state = StateMenu
	m.pendingName = ""
	m.candidates = nil
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func removedMessage(book model.Book) string {
	return fmt.Sprintf("Book '%s' from category '%s' removed successfully.", book.Name, book.Category)
}
