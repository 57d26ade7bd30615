package notifications

import "github.com/thenoetrevino/charla/internal/tui/theme"

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

func (s Severity) style() style {
	switch s {
	case Success:
		return style{
			icon:       "✓",
			title:      "Done",
			foreground: theme.SuccessFg,
			background: theme.SuccessBg,
		}
	case Error:
		return style{
			icon:       "✕",
			title:      "Error",
			foreground: theme.ErrorFg,
			background: theme.ErrorBg,
		}
	default:
		return style{
			icon:       "🔔",
			title:      "Info",
			foreground: theme.InfoFg,
			background: theme.InfoBg,
		}
	}
}
