package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/charla/internal/tui/state"
)

// handleListInput processes input in the comment list
func (m Model) handleListInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.commentState.MoveCursorUp(m.snapshot.Comments)
		m.fitCursor()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.commentState.MoveCursorDown(m.snapshot.Comments)
		m.fitCursor()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		return m.openAddForm(taskIDText(m.snapshot.FilterTaskID), m.app.Author(), "")
	case key.Matches(msg, m.keys.Edit):
		return m.handleEditSelected()
	case key.Matches(msg, m.keys.Delete):
		return m.handleDeleteSelected()
	case key.Matches(msg, m.keys.View):
		if _, ok := m.commentState.Selected(m.snapshot.Comments); ok {
			m.uiState.SetMode(state.DetailMode)
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()
	case key.Matches(msg, m.keys.Filter):
		return m.openFilter()
	case key.Matches(msg, m.keys.ClearFilter):
		return m, m.setFilterCmd(0)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	}

	return m, nil
}

// handleEditSelected puts the selected comment under edit and opens the
// form pre-filled from the cached record
func (m Model) handleEditSelected() (tea.Model, tea.Cmd) {
	selected, ok := m.commentState.Selected(m.snapshot.Comments)
	if !ok || selected.ID == m.snapshot.DeletingID {
		return m, nil
	}
	if !m.ctrl.StartEdit(selected.ID) {
		return m, nil
	}
	m.refresh()
	return m.openEditForm(selected.ID, selected.Author, selected.Content)
}

// handleDeleteSelected deletes the selected comment. The card is marked
// as deleting until the controller finishes.
func (m Model) handleDeleteSelected() (tea.Model, tea.Cmd) {
	selected, ok := m.commentState.Selected(m.snapshot.Comments)
	if !ok || m.snapshot.DeletingID != 0 {
		return m, nil
	}
	return m, m.deleteCmd(selected.ID)
}

// handleDetailInput processes input while one comment is shown in full
func (m Model) handleDetailInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		m.uiState.SetMode(state.ListMode)
		return m.handleEditSelected()
	case key.Matches(msg, m.keys.Back, m.keys.View, m.keys.Quit):
		m.uiState.SetMode(state.ListMode)
	}
	return m, nil
}

// handleHelpInput closes the full help on back, help or quit
func (m Model) handleHelpInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back, m.keys.Help, m.keys.Quit) {
		m.help.ShowAll = false
		m.uiState.SetMode(state.ListMode)
	}
	return m, nil
}
