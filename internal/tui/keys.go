package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tasknest/internal/config"
)

// keyMap holds the normal-mode bindings built from the configured key mappings
type keyMap struct {
	AddTask        key.Binding
	ToggleDone     key.Binding
	DeleteTask     key.Binding
	EditCollection key.Binding
	PrevCollection key.Binding
	NextCollection key.Binding
	PrevTask       key.Binding
	NextTask       key.Binding
	SwitchFocus    key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		AddTask: key.NewBinding(
			key.WithKeys(km.AddTask),
			key.WithHelp(km.AddTask, "nouvelle tâche"),
		),
		ToggleDone: key.NewBinding(
			key.WithKeys(km.ToggleDone),
			key.WithHelp(km.ToggleDone, "terminer"),
		),
		DeleteTask: key.NewBinding(
			key.WithKeys(km.DeleteTask),
			key.WithHelp(km.DeleteTask, "supprimer"),
		),
		EditCollection: key.NewBinding(
			key.WithKeys(km.EditCollection),
			key.WithHelp(km.EditCollection, "modifier la collection"),
		),
		PrevCollection: key.NewBinding(
			key.WithKeys(km.PrevCollection, "left"),
			key.WithHelp(km.PrevCollection, "collection précédente"),
		),
		NextCollection: key.NewBinding(
			key.WithKeys(km.NextCollection, "right"),
			key.WithHelp(km.NextCollection, "collection suivante"),
		),
		PrevTask: key.NewBinding(
			key.WithKeys(km.PrevTask, "up"),
			key.WithHelp(km.PrevTask, "haut"),
		),
		NextTask: key.NewBinding(
			key.WithKeys(km.NextTask, "down"),
			key.WithHelp(km.NextTask, "bas"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "changer de panneau"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "aide"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quitter"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.ToggleDone, k.EditCollection, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTask, k.NextTask, k.PrevCollection, k.NextCollection, k.SwitchFocus},
		{k.AddTask, k.ToggleDone, k.DeleteTask},
		{k.EditCollection, k.Help, k.Quit},
	}
}
