package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateKeyMap creates the dialog keymap: shift+enter also inserts a newline
// in text fields, and esc no longer aborts the form since the dialog owns closing.
func CreateKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "nouvelle ligne"),
	)
	keymap.Quit = key.NewBinding(key.WithDisabled())

	return keymap
}
