// Package input defines the events delivered by the input source and the key
// bindings the dispatcher matches them against.
package input

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings of the dashboard.
type KeyMap struct {
	Quit  key.Binding
	Down  key.Binding
	Up    key.Binding
	Claim key.Binding
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Down:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "down")),
	Up:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "up")),
	Claim: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "download")),
}

// Matches reports whether the key code triggers the binding.
func Matches(code KeyCode, b key.Binding) bool {
	return b.Enabled() && slices.Contains(b.Keys(), code.String())
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Claim, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up},
		{k.Claim, k.Quit},
	}
}

// IsZero reports whether no binding has been configured.
func (k KeyMap) IsZero() bool {
	return len(k.Quit.Keys()) == 0 && len(k.Down.Keys()) == 0 &&
		len(k.Up.Keys()) == 0 && len(k.Claim.Keys()) == 0
}
