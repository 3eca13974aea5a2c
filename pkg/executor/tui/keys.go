package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the fpview key bindings.
type keyMap struct {
	Scan   key.Binding
	Copy   key.Binding
	Toggle key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Scan: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s/enter", "scan"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy hash"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "raw json"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "pgup"),
			key.WithHelp("↑/pgup", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "pgdown"),
			key.WithHelp("↓/pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scan, k.Copy, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scan, k.Copy, k.Toggle}, {k.Up, k.Down, k.Quit}}
}
