package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/charla/internal/store"
	"github.com/thenoetrevino/charla/internal/tui/state"
)

// openFilter focuses the task filter box, pre-filled with the current filter
func (m Model) openFilter() (tea.Model, tea.Cmd) {
	m.filterInput.SetValue(taskIDText(m.snapshot.FilterTaskID))
	m.filterInput.CursorEnd()
	m.uiState.SetMode(state.FilterMode)
	return m, m.filterInput.Focus()
}

// handleFilterInput processes input in the filter box. Only digits are
// kept; enter applies the filter and an empty box clears it.
func (m Model) handleFilterInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterInput.Blur()
		m.uiState.SetMode(state.ListMode)
		return m, nil
	case "enter":
		m.filterInput.Blur()
		m.uiState.SetMode(state.ListMode)
		return m, m.setFilterCmd(store.ParseTaskID(m.filterInput.Value()))
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if v := m.filterInput.Value(); store.DigitsOnly(v) != v {
		m.filterInput.SetValue(store.DigitsOnly(v))
	}
	return m, cmd
}
