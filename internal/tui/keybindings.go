package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
)

// KeyMap holds the global bindings. Tab-specific keys live in each view.
type KeyMap struct {
	Quit      key.Binding
	SwitchTab key.Binding
	Refresh   key.Binding
	Theme     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		SwitchTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refetch")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	}
}

// ShortHelp returns the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTab, k.Refresh, k.Theme, k.Quit}
}

// HelpLine renders bindings as "key desc • key desc".
func HelpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
