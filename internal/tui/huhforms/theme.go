package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/charla/internal/config"
)

// CreateCharlaTheme creates a huh theme matching charla's color scheme.
// The border takes formColor so add and edit forms are told apart.
func CreateCharlaTheme(colorScheme config.ColorScheme, formColor string) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		return charlaStyles(huh.ThemeBase(isDark), colorScheme, formColor)
	})
}

func charlaStyles(t *huh.Styles, colorScheme config.ColorScheme, formColor string) *huh.Styles {
	border := lipgloss.Color(formColor)
	accent := lipgloss.Color(colorScheme.Accent)
	subtle := lipgloss.Color(colorScheme.Subtle)
	normal := lipgloss.Color(colorScheme.Normal)
	errorColor := lipgloss.Color(colorScheme.ErrorFg)
	title := lipgloss.Color(colorScheme.Title)

	// Focused field styles
	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(subtle)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(accent).
		Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(normal).
		Background(subtle)

	// TextInput styles
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(normal)

	// Blurred field styles (inherit from focused but with hidden border)
	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

	return t
}
