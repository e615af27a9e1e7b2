package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	Add    key.Binding
	View   key.Binding
	Remove key.Binding
	Quit   key.Binding

	Submit key.Binding
	Cancel key.Binding

	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a", "1"),
			key.WithHelp("a/1", "add book"),
		),
		View: key.NewBinding(
			key.WithKeys("v", "l", "2"),
			key.WithHelp("v/2", "view books"),
		),
		Remove: key.NewBinding(
			key.WithKeys("r", "3"),
			key.WithHelp("r/3", "remove book"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "4"),
			key.WithHelp("q/4", "exit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// menuKeys is the help.KeyMap shown on the main screen.
type menuKeys struct{ KeyMap }

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.View, k.Remove, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.ForceQuit}}
}

// inputKeys is the help.KeyMap shown while entering text.
type inputKeys struct{ KeyMap }

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.ForceQuit}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
