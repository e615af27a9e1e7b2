package tui

import (
	"errors"
	"testing"

	"github.com/Veraticus/bookmgr/internal/catalog"
	"github.com/Veraticus/bookmgr/internal/service/mocks"
	"github.com/Veraticus/bookmgr/internal/storage"
	"github.com/Veraticus/bookmgr/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// update feeds msg to the model and runs resulting commands to completion.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return drain(t, nm, cmd)
}

func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case nil, tea.QuitMsg:
		return m
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
		return m
	default:
		return update(t, m, msg)
	}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		m = update(t, m, msg)
	}
	return m
}

func newTestModel(t *testing.T, cat *catalog.Catalog) Model {
	t.Helper()
	if cat == nil {
		cat = catalog.New(storage.NewMemoryStore())
	}
	cfg := defaultConfig()
	WithCatalog(cat)(&cfg)
	WithSize(100, 30)(&cfg)
	m := newModel(cfg)
	return drain(t, m, m.Init())
}

func TestModel_AddBook(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, keys("a"))
	assert.Equal(t, StateAddName, m.state)
	assert.Contains(t, m.View(), "Enter the book name:")

	m = send(t, m, keys("Atlas"), enter)
	assert.Equal(t, StateAddCategory, m.state)
	assert.Contains(t, m.View(), "Choose a category (Teen, Adventure, AI, Geography):")

	m = send(t, m, keys("geography"), enter)
	assert.Equal(t, StateMenu, m.state)
	assert.Equal(t, "Book 'Atlas' added successfully to category 'geography'.", m.status)
	assert.Equal(t, 1, m.listing.Len())

	view := m.View()
	assert.Contains(t, view, "List of Books:")
	assert.Contains(t, view, "Atlas")
}

func TestModel_AddErrorsStayRecoverable(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, keys("a"), keys("Atlas"), enter, keys("Poetry"), enter)
	assert.Equal(t, StateMenu, m.state)
	assert.Equal(t, statusError, m.statusKind)
	assert.Equal(t, "Invalid category selected. Please choose from Teen, Adventure, AI, Geography.", m.status)
	assert.True(t, m.listing.IsEmpty())
	assert.NoError(t, m.Err())

	m = send(t, m, keys("a"), keys("Atlas"), enter, keys("AI"), enter)
	m = send(t, m, keys("a"), keys("atlas"), enter, keys("ai"), enter)
	assert.Equal(t, "Error: Book with name 'atlas' already exists in category 'ai'.", m.status)
	assert.Equal(t, 1, m.listing.Len())
}

func TestModel_RemoveWithDisambiguation(t *testing.T) {
	tc := testutil.SetupCatalog(t, storage.BackendSQLite,
		testutil.Book("DuplicateName", "Teen"),
		testutil.Book("DuplicateName", "AI"),
	)
	m := newTestModel(t, tc.Catalog)

	m = send(t, m, keys("r"), keys("DuplicateName"), enter)
	assert.Equal(t, StateRemoveCategory, m.state)
	assert.Len(t, m.candidates, 2)
	assert.Equal(t, "Multiple books found with the name 'DuplicateName'. Please specify the category:", m.status)
	view := m.View()
	assert.Contains(t, view, "1. DuplicateName (Teen)")
	assert.Contains(t, view, "2. DuplicateName (AI)")

	m = send(t, m, keys("Geography"), enter)
	assert.Equal(t, "Error: Book with name 'DuplicateName' and category 'Geography' not found.", m.status)
	assert.Equal(t, 2, m.listing.Len())

	m = send(t, m, keys("r"), keys("DuplicateName"), enter, keys("AI"), enter)
	assert.Equal(t, "Book 'DuplicateName' from category 'AI' removed successfully.", m.status)
	assert.Equal(t, []string{"DuplicateName (Teen)"}, tc.Entries())

	m = send(t, m, keys("r"), keys("duplicatename"), enter)
	assert.Equal(t, "Book 'DuplicateName' from category 'Teen' removed successfully.", m.status)
	assert.True(t, m.listing.IsEmpty())
}

func TestModel_MenuKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, keys("v"))
	assert.Equal(t, "No books available.", m.status)

	m = send(t, m, keys("x"))
	assert.Equal(t, "Invalid choice. Please try again.", m.status)

	m = send(t, m, keys("a"), keys("typing q does not quit"))
	assert.False(t, m.quitting)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateMenu, m.state)

	m = send(t, m, keys("q"))
	assert.True(t, m.quitting)
	assert.Equal(t, "Exiting Book Manager. Goodbye!\n", m.View())
}

func TestModel_StoreFailureQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBookStore(ctrl)
	storeErr := errors.New("disk I/O error")
	store.EXPECT().Books(gomock.Any()).Return(nil, storeErr)

	m := newTestModel(t, catalog.New(store))
	assert.True(t, m.quitting)
	assert.ErrorIs(t, m.Err(), storeErr)
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestRun_RequiresCatalog(t *testing.T) {
	assert.ErrorIs(t, Run(), ErrNoCatalog)
}

func TestModel_OneCatalogCommandAtATime(t *testing.T) {
	m := newTestModel(t, nil)
	assert.False(t, m.busy)
	m = send(t, m, keys("a"), keys("Dune"), enter, keys("Teen"))

	next, addCmd := m.Update(enter)
	m = next.(Model)
	require.NotNil(t, addCmd)
	assert.True(t, m.busy)

	next, repeat := m.Update(enter)
	m = next.(Model)
	assert.Nil(t, repeat, "a second Enter must not start another add")

	next, loadCmd := m.Update(addCmd())
	m = next.(Model)
	require.NotNil(t, loadCmd)
	assert.Equal(t, StateMenu, m.state)
	assert.True(t, m.busy, "still busy until the listing is reloaded")

	next, viewCmd := m.Update(keys("v"))
	m = next.(Model)
	assert.Nil(t, viewCmd)
	assert.NotEqual(t, "Invalid choice. Please try again.", m.status, "ignored keys are not reported")

	m = update(t, m, loadCmd())
	assert.False(t, m.busy)
	assert.Equal(t, []string{"Dune"}, bookNames(m))

	_, viewCmd = m.Update(keys("v"))
	assert.NotNil(t, viewCmd)
}

func TestModel_RemoveIgnoresRepeatedEnter(t *testing.T) {
	tc := testutil.SetupCatalog(t, storage.BackendMemory,
		testutil.Book("Dune", "Teen"),
		testutil.Book("Dune", "AI"),
	)
	m := newTestModel(t, tc.Catalog)
	m = send(t, m, keys("r"), keys("Dune"), enter)
	require.Equal(t, StateRemoveCategory, m.state)
	assert.False(t, m.busy, "choosing a category is user input, not catalog work")

	m = send(t, m, keys("AI"))
	next, removeCmd := m.Update(enter)
	m = next.(Model)
	require.NotNil(t, removeCmd)

	_, repeat := m.Update(enter)
	assert.Nil(t, repeat)

	m = update(t, m, removeCmd())
	assert.Equal(t, "Book 'Dune' from category 'AI' removed successfully.", m.status)
	assert.Equal(t, []string{"Dune (Teen)"}, tc.Entries())
}

func bookNames(m Model) []string {
	var names []string
	for b := range m.listing.All() {
		names = append(names, b.Name)
	}
	return names
}
