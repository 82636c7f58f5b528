package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"rota/internal/config"
)

// keyMap holds one binding per browser action. Bindings come from
// config so remapped keys show up in the help footer automatically.
type keyMap struct {
	Quit    key.Binding
	Down    key.Binding
	Up      key.Binding
	Open    key.Binding
	Parent  key.Binding
	Refresh key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Hidden  key.Binding
}

func newKeyMap(k config.Keys) keyMap {
	return keyMap{
		Quit:    newBinding(k.Quit, "quit"),
		Down:    newBinding(k.Down, "down"),
		Up:      newBinding(k.Up, "up"),
		Open:    newBinding(k.Open, "open dir"),
		Parent:  newBinding(k.Parent, "parent"),
		Refresh: newBinding(k.Refresh, "refresh"),
		Top:     newBinding(k.Top, "top"),
		Bottom:  newBinding(k.Bottom, "bottom"),
		Hidden:  newBinding(k.Hidden, "dotfiles"),
	}
}

func newBinding(keys []string, action string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), action),
	)
}

// ShortHelp satisfies help.KeyMap for the footer hint line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Open, k.Parent, k.Refresh, k.Hidden, k.Quit}
}

// FullHelp satisfies help.KeyMap; the browser only shows the short
// form.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
