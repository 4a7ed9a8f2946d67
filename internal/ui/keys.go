package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings. The city input owns printable keys,
// so actions live on control chords and arrows.
type keyMap struct {
	Submit      key.Binding
	Quit        key.Binding
	Dismiss     key.Binding
	Up          key.Binding
	Down        key.Binding
	ToggleUnits key.Binding
	Forecast    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Fetch weather"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Dismiss"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Previous suggestion"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Next suggestion"),
		),
		ToggleUnits: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Toggle °C/°F"),
		),
		Forecast: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "5-day forecast"),
		),
	}
}
