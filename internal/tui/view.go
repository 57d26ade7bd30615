package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/charla/internal/tui/components"
	"github.com/thenoetrevino/charla/internal/tui/notifications"
	"github.com/thenoetrevino/charla/internal/tui/state"
	"github.com/thenoetrevino/charla/internal/tui/theme"
)

// View renders the current UI state in the alternate screen
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.WindowTitle = "charla"
	view.Content = m.render()
	return view
}

// render draws the screen content. It waits for the terminal size.
func (m Model) render() string {
	if !m.uiState.Ready() {
		return "Loading..."
	}

	sections := []string{m.renderTitleBar()}
	if banners := m.renderBanners(); banners != "" {
		sections = append(sections, banners)
	}
	sections = append(sections, "", m.renderBody(), "", m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderBody() string {
	switch m.uiState.Mode() {
	case state.AddFormMode, state.EditFormMode:
		if m.formState.Active() {
			return m.formState.Form.View()
		}
	case state.DetailMode:
		if c, ok := m.commentState.Selected(m.snapshot.Comments); ok {
			return components.RenderCommentDetail(c, m.cardWidth())
		}
	case state.HelpMode:
		return m.help.View(m.keys)
	case state.FilterMode:
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true)
		return lipgloss.JoinVertical(lipgloss.Left,
			label.Render("Filter: ")+m.filterInput.View(),
			"",
			m.renderCommentList(),
		)
	}
	return m.renderCommentList()
}

// renderTitleBar shows the filter, the comment count and a spinner while loading
func (m Model) renderTitleBar() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	scope := "all tasks"
	if m.snapshot.FilterTaskID > 0 {
		scope = fmt.Sprintf("task %d", m.snapshot.FilterTaskID)
	}

	title := titleStyle.Render("Comments") +
		subtle.Render(fmt.Sprintf(" · %s (%d)", scope, len(m.snapshot.Comments)))
	if m.snapshot.Loading {
		title += " " + m.spinner.View()
	}
	return title
}

// renderBanners renders the error, success and pending delete notifications, if any
func (m Model) renderBanners() string {
	var banners []string
	if m.snapshot.DeletingID != 0 && !m.snapshot.HasError() {
		msg := fmt.Sprintf("Deleting comment #%d…", m.snapshot.DeletingID)
		banners = append(banners, notifications.Render(notifications.Info, msg, m.uiState.Width()))
	}
	if m.snapshot.HasError() {
		banners = append(banners, notifications.Render(notifications.Error, m.snapshot.Error, m.uiState.Width()))
	}
	if m.snapshot.HasSuccess() {
		banners = append(banners, notifications.Render(notifications.Success, m.snapshot.Success, m.uiState.Width()))
	}
	return strings.Join(banners, "\n")
}

// renderStatusBar shows the mode and the short key help
func (m Model) renderStatusBar() string {
	mode := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Render(m.uiState.Mode().String())

	switch m.uiState.Mode() {
	case state.AddFormMode, state.EditFormMode, state.HelpMode:
		return mode
	case state.FilterMode:
		return mode + " " + m.help.Styles.ShortDesc.Render("enter apply · esc cancel · empty clears")
	case state.DetailMode:
		return mode + " " + m.help.ShortHelpView([]key.Binding{m.keys.Edit, m.keys.Back})
	}
	return mode + " " + m.help.View(m.keys)
}

// formWidth is the width given to huh forms
func (m Model) formWidth() int {
	return max(min(m.uiState.Width()-4, 80), 30)
}

// chromeHeight counts the lines around the list body
func (m Model) chromeHeight() int {
	// title + blank + blank + status bar
	h := 4
	if banners := m.renderBanners(); banners != "" {
		h += lipgloss.Height(banners)
	}
	if m.uiState.Mode() == state.FilterMode {
		h += 2
	}
	return h
}
