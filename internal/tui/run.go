// Package tui provides a full-screen bubbletea interface to the catalog.
package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoCatalog is returned when Run is called without WithCatalog.
var ErrNoCatalog = errors.New("tui: catalog not configured")

// Run starts the interface and blocks until the user quits or the context
// is canceled.
func Run(opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Catalog == nil {
		return ErrNoCatalog
	}

	programOpts := []tea.ProgramOption{tea.WithContext(cfg.Context)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(newModel(cfg), programOpts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
