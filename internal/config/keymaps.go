package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Comments
	AddComment    string `yaml:"add_comment"`
	EditComment   string `yaml:"edit_comment"`
	DeleteComment string `yaml:"delete_comment"`
	ViewComment   string `yaml:"view_comment"`

	// List
	Refresh     string `yaml:"refresh"`
	Filter      string `yaml:"filter"`
	ClearFilter string `yaml:"clear_filter"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevComment string `yaml:"prev_comment"`
	NextComment string `yaml:"next_comment"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddComment:    "a",
		EditComment:   "e",
		DeleteComment: "d",
		ViewComment:   "space",

		Refresh:     "r",
		Filter:      "f",
		ClearFilter: "F",

		SaveForm: "ctrl+s",

		PrevComment: "k",
		NextComment: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.AddComment, defaults.AddComment)
	fill(&k.EditComment, defaults.EditComment)
	fill(&k.DeleteComment, defaults.DeleteComment)
	fill(&k.ViewComment, defaults.ViewComment)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.Filter, defaults.Filter)
	fill(&k.ClearFilter, defaults.ClearFilter)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.PrevComment, defaults.PrevComment)
	fill(&k.NextComment, defaults.NextComment)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
