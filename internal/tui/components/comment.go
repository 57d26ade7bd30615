package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/charla/internal/models"
	"github.com/thenoetrevino/charla/internal/tui/theme"
)

// CardState carries the per-comment flags that change how a card is drawn
type CardState struct {
	Selected bool
	// Highlighted marks a comment that was just added
	Highlighted bool
	Deleting    bool
	Editing     bool
}

// RenderCommentCard renders a single comment as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓  (selected)
//	┃ 󰀄 asha   Jan 2 15:04   #12  task 3   ┃
//	┃ this is a new comment                ┃
//	┃ with multiple lines                  ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func RenderCommentCard(comment models.Comment, cs CardState, width int) string {
	border := lipgloss.NormalBorder()
	borderColor := theme.CardBorder
	if cs.Selected {
		border = lipgloss.ThickBorder()
		borderColor = theme.SelectedBorder
	}
	switch {
	case cs.Deleting:
		borderColor = theme.Delete
	case cs.Editing:
		borderColor = theme.Edit
	case cs.Highlighted:
		borderColor = theme.Create
	}

	style := lipgloss.NewStyle().
		BorderStyle(border).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(width).
		Padding(0, 1)

	if cs.Highlighted {
		style = style.
			Background(lipgloss.Color(theme.HighlightBg)).
			BorderBackground(lipgloss.Color(theme.HighlightBg))
	}
	if cs.Deleting {
		style = style.Faint(true)
	}

	return style.Render(renderCommentHeader(comment, cs) + "\n" + renderCommentContent(comment, width))
}

// renderCommentHeader renders the author, date, id and task, followed by a status tag
func renderCommentHeader(comment models.Comment, cs CardState) string {
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	author := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Author)).
		Bold(true).
		Render(comment.Author)

	header := subtle.Render("󰀄 ") + author +
		subtle.Render("  "+comment.CreatedAt.Local().Format("Jan 2 15:04")) +
		subtle.Render(fmt.Sprintf("  #%d  task %d", comment.ID, comment.TaskID))

	if tag := statusTag(cs); tag != "" {
		header += " " + tag
	}
	return header
}

func statusTag(cs CardState) string {
	tag := lipgloss.NewStyle().Italic(true)
	switch {
	case cs.Deleting:
		return tag.Foreground(lipgloss.Color(theme.Delete)).Render("deleting…")
	case cs.Editing:
		return tag.Foreground(lipgloss.Color(theme.Edit)).Render("editing")
	case cs.Highlighted:
		return tag.Foreground(lipgloss.Color(theme.Create)).Render("new")
	}
	return ""
}

// renderCommentContent renders the comment content with word wrapping
func renderCommentContent(comment models.Comment, width int) string {
	// Reserve space for padding/borders
	contentWidth := max(width-4, 20)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Render(wordwrap.String(comment.Content, contentWidth))
}
