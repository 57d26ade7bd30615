package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/charla/internal/models"
	"github.com/thenoetrevino/charla/internal/tui/components"
	"github.com/thenoetrevino/charla/internal/tui/state"
	"github.com/thenoetrevino/charla/internal/tui/theme"
)

// renderCommentList renders the visible window of comment cards with scroll indicators
func (m Model) renderCommentList() string {
	comments := m.snapshot.Comments
	if len(comments) == 0 {
		return m.renderEmptyState()
	}

	available := m.listHeight()
	start := min(m.commentState.ScrollOffset, len(comments)-1)

	var cards []string
	used := 0
	end := start
	for end < len(comments) {
		card := m.renderCard(end, comments[end])
		h := lipgloss.Height(card)
		if len(cards) > 0 && used+h > available {
			break
		}
		cards = append(cards, card)
		used += h
		end++
	}

	indicator := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	top, bottom := "", ""
	if start > 0 {
		top = indicator.Render(fmt.Sprintf("↑ %d more above", start))
	}
	if end < len(comments) {
		bottom = indicator.Render(fmt.Sprintf("↓ %d more below", len(comments)-end))
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, strings.Join(cards, "\n"), bottom)
}

// renderCard renders the comment at index i with its transient flags
func (m Model) renderCard(i int, c models.Comment) string {
	mode := m.uiState.Mode()
	cs := components.CardState{
		Selected:    i == m.commentState.Cursor && (mode == state.ListMode || mode == state.FilterMode),
		Highlighted: c.ID == m.snapshot.RecentlyAddedID,
		Deleting:    c.ID == m.snapshot.DeletingID,
		Editing:     c.ID == m.snapshot.EditingID,
	}
	return components.RenderCommentCard(c, cs, m.cardWidth())
}

// renderEmptyState renders the placeholder shown when no comments are cached
func (m Model) renderEmptyState() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.cardWidth())

	if m.snapshot.Loading {
		return emptyStyle.Render("Loading comments...")
	}

	headline := "No comments yet."
	if m.snapshot.FilterTaskID > 0 {
		headline = fmt.Sprintf("No comments for task %d.", m.snapshot.FilterTaskID)
	}

	lines := []string{
		"",
		headline,
		"",
		fmt.Sprintf("Press '%s' to add the first one.", m.keys.Add.Help().Key),
		"",
	}
	return emptyStyle.Render(strings.Join(lines, "\n"))
}

// cardWidth is 80% of the terminal, clamped to a readable range
func (m Model) cardWidth() int {
	w := (m.uiState.Width() * 8) / 10
	w = min(max(w, 60), 100)
	return max(min(w, m.uiState.Width()-2), 20)
}

// listHeight is the number of lines left for cards, minus the two scroll indicators
func (m Model) listHeight() int {
	return max(m.uiState.Height()-m.chromeHeight()-2, 1)
}
