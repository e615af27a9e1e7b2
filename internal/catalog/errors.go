package catalog

import (
	"fmt"

	"github.com/Veraticus/bookmgr/internal/common"
	"github.com/Veraticus/bookmgr/internal/model"
)

// Error is a recoverable catalog failure. Its message is the text shown to the user.
type Error struct {
	Kind     error
	Name     string
	Category string
}

func (e *Error) Error() string {
	switch e.Kind {
	case common.ErrInvalidCategory:
		return fmt.Sprintf("Invalid category selected. Please choose from %s.", model.CategoryNames())
	case common.ErrDuplicateEntry:
		return fmt.Sprintf("Error: Book with name '%s' already exists in category '%s'.", e.Name, e.Category)
	case common.ErrNotFound:
		return fmt.Sprintf("Error: Book with name '%s' not found.", e.Name)
	case common.ErrAmbiguousNotFound:
		return fmt.Sprintf("Error: Book with name '%s' and category '%s' not found.", e.Name, e.Category)
	case common.ErrEmptyName:
		return "Error: Book name cannot be empty."
	default:
		return fmt.Sprintf("Error: %v", e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, name, category string) *Error {
	return &Error{Kind: kind, Name: name, Category: category}
}
