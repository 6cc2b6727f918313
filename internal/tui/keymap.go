package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the dashboard. Rune keys are reserved
// for the value input, so commands live on control and escape sequences.
type KeyMap struct {
	Quit  key.Binding
	Run   key.Binding
	Clear key.Binding
	Up    key.Binding
	Down  key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "compare"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear history"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "older input"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "newer input"),
		),
	}
}
