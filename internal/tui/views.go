package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/bookmgr/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return "Exiting Book Manager. Goodbye!\n"
	}

	sections := []string{
		m.theme.Title.Render("Book Manager"),
		m.renderBooks(),
	}

	if m.state != StateMenu {
		sections = append(sections, m.renderPrompt())
	}
	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderBooks() string {
	if m.listing.IsEmpty() {
		return m.theme.Subtitle.Render("No books available.")
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.theme.Border)).
		Headers("Name", "Category").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.theme.TableHeader
			}
			return m.theme.TableCell
		})
	if m.width > 0 {
		tbl = tbl.Width(m.width)
	}

	for b := range m.listing.All() {
		tbl.Row(b.Name, b.Category)
	}

	return m.theme.Bold.Render("List of Books:") + "\n" + tbl.Render()
}

func (m Model) renderPrompt() string {
	var b strings.Builder

	switch m.state {
	case StateAddName:
		b.WriteString("Enter the book name:")
	case StateAddCategory:
		b.WriteString(fmt.Sprintf("Choose a category (%s):", model.CategoryNames()))
	case StateRemoveName:
		b.WriteString("Enter the name of the book to remove:")
	case StateRemoveCategory:
		for i, c := range m.candidates {
			b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, c.Name, c.Category))
		}
		b.WriteString("Enter the category of the book to remove:")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())

	return m.theme.BorderedBox.Render(b.String())
}

func (m Model) renderStatus() string {
	switch m.statusKind {
	case statusSuccess:
		return m.theme.StatusSuccess.Render(m.status)
	case statusWarning:
		return m.theme.StatusWarning.Render(m.status)
	case statusError:
		return m.theme.StatusError.Render(m.status)
	default:
		return ""
	}
}

func (m Model) renderHelp() string {
	if m.state == StateMenu {
		return m.help.View(menuKeys{m.keymap})
	}
	return m.help.View(inputKeys{m.keymap})
}
