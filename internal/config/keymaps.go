package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	ToggleDone string `yaml:"toggle_done"`
	DeleteTask string `yaml:"delete_task"`

	// Collections
	EditCollection string `yaml:"edit_collection"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevCollection string `yaml:"prev_collection"`
	NextCollection string `yaml:"next_collection"`
	PrevTask       string `yaml:"prev_task"`
	NextTask       string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:    "n",
		ToggleDone: "x",
		DeleteTask: "d",

		EditCollection: "e",

		SaveForm: "ctrl+s",

		PrevCollection: "h",
		NextCollection: "l",
		PrevTask:       "k",
		NextTask:       "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.ToggleDone == "" {
		k.ToggleDone = defaults.ToggleDone
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.EditCollection == "" {
		k.EditCollection = defaults.EditCollection
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevCollection == "" {
		k.PrevCollection = defaults.PrevCollection
	}
	if k.NextCollection == "" {
		k.NextCollection = defaults.NextCollection
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
