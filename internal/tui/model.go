// Package tui is the terminal interface over the comment store controller.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/charla/internal/app"
	"github.com/thenoetrevino/charla/internal/config"
	"github.com/thenoetrevino/charla/internal/store"
	"github.com/thenoetrevino/charla/internal/tui/state"
	"github.com/thenoetrevino/charla/internal/tui/theme"
)

// Model represents the application state for the TUI.
// Comment data lives in the controller; snapshot is the copy last read from it.
type Model struct {
	ctx    context.Context
	app    *app.App
	ctrl   *store.Controller
	config *config.Config
	logger *slog.Logger
	keys   keyMap

	snapshot store.State

	uiState      *state.UIState
	commentState *state.CommentState
	formState    *state.FormState

	filterInput textinput.Model
	spinner     spinner.Model
	help        help.Model
}

// InitialModel creates the TUI model. The controller is started by Init.
func InitialModel(ctx context.Context, a *app.App, ctrl *store.Controller) Model {
	cfg := a.Config
	theme.Init(cfg.ColorScheme)

	filter := textinput.New()
	filter.Prompt = "task #"
	filter.Placeholder = "all tasks"
	filter.CharLimit = 9
	filter.SetWidth(12)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))),
	)

	m := Model{
		ctx:          ctx,
		app:          a,
		ctrl:         ctrl,
		config:       cfg,
		logger:       a.Logger(),
		keys:         newKeyMap(cfg.KeyMappings),
		snapshot:     ctrl.Snapshot(),
		uiState:      state.NewUIState(),
		commentState: state.NewCommentState(),
		formState:    state.NewFormState(),
		filterInput:  filter,
		spinner:      sp,
		help:         help.New(),
	}
	m.commentState.Sync(m.snapshot.Comments)
	return m
}

// Init starts the initial load, the change listener and the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.startCmd(),
		waitForChange(m.ctrl.Changed()),
		m.spinner.Tick,
	)
}

// refresh copies the controller state and keeps the cursor on the same comment
func (m *Model) refresh() {
	m.snapshot = m.ctrl.Snapshot()
	m.commentState.Sync(m.snapshot.Comments)

	// The comment under edit vanished in a reload
	if m.uiState.Mode() == state.EditFormMode && m.snapshot.EditingID == 0 {
		m.formState.Close()
		m.uiState.SetMode(state.ListMode)
	}

	m.fitCursor()
}

// fitCursor scrolls the list so the selected card is on screen
func (m *Model) fitCursor() {
	if !m.uiState.Ready() {
		return
	}
	heights := make([]int, len(m.snapshot.Comments))
	for i, c := range m.snapshot.Comments {
		heights[i] = lipgloss.Height(m.renderCard(i, c))
	}
	m.commentState.FitCursor(heights, m.listHeight())
}

// Run starts the TUI and blocks until the user quits. taskID > 0 starts
// with a task filter.
func Run(ctx context.Context, a *app.App, taskID int) error {
	ctrl := a.NewController(taskID)
	defer ctrl.Close()

	p := tea.NewProgram(InitialModel(ctx, a, ctrl), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
