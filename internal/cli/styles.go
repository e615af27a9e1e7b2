// Package cli provides the line-oriented terminal interface: input reading,
// styled output using lipgloss, and the interactive menu.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#5B8DEF")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray
)

// Styles holds the lipgloss styles for one output stream.
type Styles struct {
	Title       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Subtle      lipgloss.Style
	Prompt      lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style
}

// NewStyles builds styles bound to r. With color disabled every style
// renders text unchanged.
func NewStyles(r *lipgloss.Renderer, color bool) Styles {
	if !color {
		plain := r.NewStyle()
		return Styles{
			Title:       plain,
			Success:     plain,
			Warning:     plain,
			Error:       plain,
			Subtle:      plain,
			Prompt:      plain,
			TableHeader: plain.PaddingRight(1).PaddingLeft(1),
			TableCell:   plain.PaddingRight(1).PaddingLeft(1),
			TableBorder: plain,
		}
	}

	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(PrimaryColor),
		Success: r.NewStyle().Foreground(SuccessColor),
		Warning: r.NewStyle().Foreground(WarningColor),
		Error:   r.NewStyle().Foreground(ErrorColor),
		Subtle:  r.NewStyle().Foreground(SubtleColor),
		Prompt:  r.NewStyle().Bold(true).Foreground(PrimaryColor),
		TableHeader: r.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			PaddingLeft(1).
			PaddingRight(1),
		TableCell: r.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),
		TableBorder: r.NewStyle().Foreground(SubtleColor),
	}
}
