package theme

import "github.com/thenoetrevino/charla/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Title          string
	Author         string
	Subtle         string
	Normal         string
	Create         string
	Edit           string
	Delete         string
	CardBorder     string
	SelectedBorder string
	HighlightBg    string
	InfoFg         string
	InfoBg         string
	SuccessFg      string
	SuccessBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Title = colors.Title
	Author = colors.Author
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	CardBorder = colors.CardBorder
	SelectedBorder = colors.SelectedBorder
	HighlightBg = colors.HighlightBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	SuccessFg = colors.SuccessFg
	SuccessBg = colors.SuccessBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
