package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// Render renders a notification banner. A positive width wraps the message
// so the banner never grows past it.
func Render(severity Severity, message string, width int) string {
	s := severity.style()

	if width > 4 {
		message = wordwrap.String(message, width-4)
	}

	headerText := s.icon + " " + s.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Width(maxWidth).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderInline renders a compact single-line notification (for the status bar)
func RenderInline(severity Severity, message string) string {
	s := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(s.icon + " " + message)
}
