package components

import (
	"strconv"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/charla/internal/models"
	"github.com/thenoetrevino/charla/internal/tui/theme"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders content as markdown, falling back to the raw text
func RenderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No content")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}

// RenderCommentDetail renders one comment in full, with its content as markdown
func RenderCommentDetail(comment models.Comment, width int) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))

	rows := []string{
		title.Render("Comment #" + strconv.Itoa(comment.ID)),
		label.Render("Author:  ") + value.Render(comment.Author),
		label.Render("Task:    ") + value.Render(strconv.Itoa(comment.TaskID)),
		label.Render("Created: ") + value.Render(comment.CreatedAt.Local().Format("Mon Jan 2 2006 15:04")),
		"",
		RenderMarkdown(comment.Content, max(width-6, 20)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(rows, "\n"))
}
