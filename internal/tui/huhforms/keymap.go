package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateKeyMap creates the form keymap. shift+enter adds a newline in text
// fields next to the default alt+enter and ctrl+j, esc aborts the form,
// and saveKey submits from the last field.
func CreateKeyMap(saveKey string) *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	)

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)

	if saveKey != "" {
		keymap.Text.Submit = key.NewBinding(
			key.WithKeys("enter", saveKey),
			key.WithHelp(saveKey, "save"),
		)
		keymap.Input.Submit = key.NewBinding(
			key.WithKeys("enter", saveKey),
			key.WithHelp("enter", "save"),
		)
	}

	return keymap
}
