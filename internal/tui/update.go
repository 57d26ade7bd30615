package tui

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/charla/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		m.help.SetWidth(msg.Width)
		if m.formState.Active() {
			m.formState.Form = m.formState.Form.WithWidth(m.formWidth())
		}
		m.fitCursor()
		return m, nil

	case stateChangedMsg:
		m.refresh()
		return m, waitForChange(m.ctrl.Changed())

	case controllerClosedMsg:
		return m, nil

	case opDoneMsg:
		return m.handleOpDone(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Blink and field messages belong to whichever input is active
	switch m.uiState.Mode() {
	case state.AddFormMode, state.EditFormMode:
		if m.formState.Active() {
			return m.updateForm(msg)
		}
	case state.FilterMode:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes a key press to the handler for the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.AddFormMode, state.EditFormMode:
		return m.updateForm(msg)
	case state.FilterMode:
		return m.handleFilterInput(msg)
	case state.DetailMode:
		return m.handleDetailInput(msg)
	case state.HelpMode:
		return m.handleHelpInput(msg)
	default:
		return m.handleListInput(msg)
	}
}

// handleOpDone refreshes the view after a controller call. A failed submit
// reopens its form with the values the user typed.
func (m Model) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	m.refresh()

	if msg.err == nil {
		if msg.op == opCreate && msg.id != 0 {
			m.commentState.Select(m.snapshot.Comments, msg.id)
			m.fitCursor()
		}
		return m, nil
	}

	if errors.Is(msg.err, context.Canceled) {
		// superseded load or shutdown
		return m, nil
	}
	m.logger.Debug("comment operation failed", "op", msg.op.String(), "id", msg.id, "error", msg.err)

	// Only reopen a form if the user has not moved on
	if m.uiState.Mode() != state.ListMode {
		return m, nil
	}

	switch msg.op {
	case opCreate:
		return m.openAddForm(msg.taskID, msg.author, msg.content)
	case opUpdate:
		if m.snapshot.EditingID == msg.id && msg.id != 0 {
			return m.openEditForm(msg.id, msg.author, msg.content)
		}
	}
	return m, nil
}
