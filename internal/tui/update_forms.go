package tui

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/charla/internal/tui/huhforms"
	"github.com/thenoetrevino/charla/internal/tui/state"
	"github.com/thenoetrevino/charla/internal/tui/theme"
)

// openAddForm opens the new comment form with the given values
func (m Model) openAddForm(taskID, author, content string) (tea.Model, tea.Cmd) {
	fs := m.formState
	fs.Reset(taskID, author, content)
	fs.Form = m.decorateForm(
		huhforms.CreateAddCommentForm(&fs.TaskID, &fs.Author, &fs.Content),
		theme.Create,
	)

	m.uiState.SetMode(state.AddFormMode)
	return m, fs.Form.Init()
}

// openEditForm opens the edit form for the comment under edit
func (m Model) openEditForm(id int, author, content string) (tea.Model, tea.Cmd) {
	fs := m.formState
	fs.Reset("", author, content)
	fs.Form = m.decorateForm(
		huhforms.CreateEditCommentForm(strconv.Itoa(id), &fs.Author, &fs.Content),
		theme.Edit,
	)

	m.uiState.SetMode(state.EditFormMode)
	return m, fs.Form.Init()
}

func (m Model) decorateForm(form *huh.Form, color string) *huh.Form {
	return form.
		WithTheme(huhforms.CreateCharlaTheme(m.config.ColorScheme, color)).
		WithKeyMap(huhforms.CreateKeyMap(m.config.KeyMappings.SaveForm)).
		WithShowHelp(true).
		WithWidth(m.formWidth())
}

// updateForm forwards a message to the open form and acts on completion
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.formState

	updated, cmd := fs.Form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		fs.Form = f
	}

	switch fs.Form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		return m.cancelForm()
	}
	return m, cmd
}

// submitForm closes the form and hands its values to the controller.
// Validation happens there, so an invalid submit surfaces as the error banner.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	fs := m.formState
	mode := m.uiState.Mode()
	fs.Close()
	m.uiState.SetMode(state.ListMode)

	if mode == state.EditFormMode {
		return m, m.saveEditCmd(m.snapshot.EditingID, fs.Author, fs.Content)
	}
	return m, m.createCmd(fs.TaskID, fs.Author, fs.Content)
}

// cancelForm closes the form without saving
func (m Model) cancelForm() (tea.Model, tea.Cmd) {
	mode := m.uiState.Mode()
	m.formState.Close()
	m.uiState.SetMode(state.ListMode)

	if mode == state.EditFormMode {
		m.ctrl.CancelEdit()
		m.refresh()
	}
	return m, nil
}
