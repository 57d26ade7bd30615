package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/charla/internal/config"
)

// keyMap holds the list view bindings built from the configured key mappings
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Add         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	View        key.Binding
	Refresh     key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys(displayKey(km.PrevComment), "up"),
			key.WithHelp(displayKey(km.PrevComment)+"/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(displayKey(km.NextComment), "down"),
			key.WithHelp(displayKey(km.NextComment)+"/↓", "down"),
		),
		Add:         binding(km.AddComment, "add"),
		Edit:        key.NewBinding(key.WithKeys(displayKey(km.EditComment), "enter"), key.WithHelp(displayKey(km.EditComment), "edit")),
		Delete:      binding(km.DeleteComment, "delete"),
		View:        binding(km.ViewComment, "view"),
		Refresh:     binding(km.Refresh, "refresh"),
		Filter:      binding(km.Filter, "filter by task"),
		ClearFilter: binding(km.ClearFilter, "clear filter"),
		Help:        binding(km.ShowHelp, "help"),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(
			key.WithKeys(displayKey(km.Quit), "ctrl+c"),
			key.WithHelp(displayKey(km.Quit), "quit"),
		),
	}
}

func binding(k, help string) key.Binding {
	return key.NewBinding(key.WithKeys(displayKey(k)), key.WithHelp(displayKey(k), help))
}

// displayKey names keys that do not print. Older configs wrote the
// space bar as a literal " ".
func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.View},
		{k.Add, k.Edit, k.Delete},
		{k.Refresh, k.Filter, k.ClearFilter},
		{k.Help, k.Back, k.Quit},
	}
}
