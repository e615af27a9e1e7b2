package cli

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/Veraticus/bookmgr/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Terminal reads answers line by line and writes styled output.
// The first write error is kept and reported by Err.
type Terminal struct {
	reader *NonBlockingReader
	writer io.Writer
	styles Styles
	err    error
}

// NewTerminal creates a terminal over the given streams.
func NewTerminal(reader io.Reader, writer io.Writer, color bool) *Terminal {
	return &Terminal{
		reader: NewNonBlockingReader(reader),
		writer: writer,
		styles: NewStyles(lipgloss.NewRenderer(writer), color),
	}
}

// Err returns the first error that occurred while writing.
func (t *Terminal) Err() error {
	return t.err
}

func (t *Terminal) write(s string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.writer, s); err != nil {
		t.err = fmt.Errorf("failed to write output: %w", err)
	}
}

// Println writes an unstyled line.
func (t *Terminal) Println(line string) {
	t.write(line + "\n")
}

// Title writes a heading line.
func (t *Terminal) Title(line string) {
	t.write(t.styles.Title.Render(line) + "\n")
}

// Success writes a line in the success style.
func (t *Terminal) Success(line string) {
	t.write(t.styles.Success.Render(line) + "\n")
}

// Warning writes a line in the warning style.
func (t *Terminal) Warning(line string) {
	t.write(t.styles.Warning.Render(line) + "\n")
}

// Error writes a line in the error style.
func (t *Terminal) Error(line string) {
	t.write(t.styles.Error.Render(line) + "\n")
}

// Ask prints question on its own line and reads the answer.
func (t *Terminal) Ask(ctx context.Context, question string) (string, error) {
	t.write(t.styles.Prompt.Render(question) + "\n")
	return t.reader.ReadLine(ctx)
}

// AskInline prints prompt without a newline and reads the answer.
func (t *Terminal) AskInline(ctx context.Context, prompt string) (string, error) {
	t.write(t.styles.Prompt.Render(prompt) + " ")
	return t.reader.ReadLine(ctx)
}

// BookTable writes books as a two-column Name/Category table.
func (t *Terminal) BookTable(books iter.Seq[model.Book]) {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.styles.TableBorder).
		BorderRow(false).
		Headers("Name", "Category").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.styles.TableHeader
			}
			return t.styles.TableCell
		})

	for b := range books {
		tbl.Row(b.Name, b.Category)
	}

	t.write(tbl.Render() + "\n")
}
