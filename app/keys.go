package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Prev      key.Binding
	Next      key.Binding
	Toggle    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "left", "k", "h"),
			key.WithHelp("↑/←", "previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "right", "j", "l"),
			key.WithHelp("↓/→", "next page"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}

// helpFor lists the bindings worth showing for the focused control.
func (k keyMap) helpFor(focus focusArea) []key.Binding {
	switch focus {
	case focusMenu:
		return []key.Binding{k.Prev, k.Next, k.NextFocus, k.Quit}
	case focusUsername, focusMenuTitle:
		return []key.Binding{k.NextFocus, k.PrevFocus}
	default:
		return []key.Binding{k.Toggle, k.NextFocus, k.Quit}
	}
}
