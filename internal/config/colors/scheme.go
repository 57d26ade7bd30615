package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (titles, selection, spinner)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // add form and new-comment highlight
	Edit   string `yaml:"edit"`   // edit form
	Delete string `yaml:"delete"` // pending delete cue

	// Comment cards
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	HighlightBg    string `yaml:"highlight_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Banners (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	SuccessFg string `yaml:"success_fg"`
	SuccessBg string `yaml:"success_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name.
// Unknown names fall back to the default preset.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.MergeFrom(*preset, false)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
}

// MergeFrom copies colors from other. With override set, every non-empty
// color in other wins; otherwise only empty fields in c are filled.
func (c *ColorScheme) MergeFrom(other ColorScheme, override bool) {
	for _, f := range c.fields(&other) {
		if *f.src != "" && (override || *f.dst == "") {
			*f.dst = *f.src
		}
	}
}

type fieldPair struct {
	dst *string
	src *string
}

func (c *ColorScheme) fields(other *ColorScheme) []fieldPair {
	return []fieldPair{
		{&c.Accent, &other.Accent},
		{&c.Create, &other.Create},
		{&c.Edit, &other.Edit},
		{&c.Delete, &other.Delete},
		{&c.CardBorder, &other.CardBorder},
		{&c.SelectedBorder, &other.SelectedBorder},
		{&c.HighlightBg, &other.HighlightBg},
		{&c.Title, &other.Title},
		{&c.Author, &other.Author},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.InfoFg, &other.InfoFg},
		{&c.InfoBg, &other.InfoBg},
		{&c.SuccessFg, &other.SuccessFg},
		{&c.SuccessBg, &other.SuccessBg},
		{&c.ErrorFg, &other.ErrorFg},
		{&c.ErrorBg, &other.ErrorBg},
	}
}
