package tui

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/charla/internal/store"
)

// waitForChange blocks until the controller signals, then reports it.
// It is re-armed after every stateChangedMsg.
func waitForChange(changed <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changed; !ok {
			return controllerClosedMsg{}
		}
		return stateChangedMsg{}
	}
}

func (m Model) startCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return opDoneMsg{op: opLoad, err: ctrl.Start(ctx)}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return opDoneMsg{op: opLoad, err: ctrl.Refresh(ctx)}
	}
}

func (m Model) setFilterCmd(taskID int) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return opDoneMsg{op: opLoad, err: ctrl.SetFilter(ctx, taskID)}
	}
}

func (m Model) createCmd(taskID, author, content string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		msg := opDoneMsg{op: opCreate, taskID: taskID, author: author, content: content}
		created, err := ctrl.Create(ctx, store.CreateInput{
			TaskID:  store.ParseTaskID(taskID),
			Author:  author,
			Content: content,
		})
		msg.err = err
		if created != nil {
			msg.id = created.ID
		}
		return msg
	}
}

func (m Model) saveEditCmd(id int, author, content string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		_, err := ctrl.SaveEdit(ctx, author, content)
		return opDoneMsg{op: opUpdate, err: err, id: id, author: author, content: content}
	}
}

func (m Model) deleteCmd(id int) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return opDoneMsg{op: opDelete, err: ctrl.Delete(ctx, id), id: id}
	}
}

func taskIDText(taskID int) string {
	if taskID <= 0 {
		return ""
	}
	return strconv.Itoa(taskID)
}
