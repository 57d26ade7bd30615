package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		HighlightBg:    "#1F3A1F",

		Title:  "#D75FD7",
		Author: "#5F87D7",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		SuccessFg: "#87FF87",
		SuccessBg: "#005F00",
		ErrorFg:   "#FF5F5F",
		ErrorBg:   "#5F0000",
	}
}
