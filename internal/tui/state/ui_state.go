package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	ListMode     Mode = iota // Default navigation mode
	FilterMode               // Typing a task id filter
	AddFormMode              // New comment form with huh
	EditFormMode             // Edit comment form with huh
	DetailMode               // Full comment rendered as markdown
	HelpMode                 // Displaying the full key help
)

// String returns a short label for the mode, shown in the status bar
func (m Mode) String() string {
	switch m {
	case FilterMode:
		return "FILTER"
	case AddFormMode:
		return "ADD"
	case EditFormMode:
		return "EDIT"
	case DetailMode:
		return "VIEW"
	case HelpMode:
		return "HELP"
	default:
		return "LIST"
	}
}

// UIState manages the user interface state.
// This includes terminal dimensions and the current interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState in ListMode
func NewUIState() *UIState {
	return &UIState{mode: ListMode}
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Ready reports whether the terminal size is known
func (s *UIState) Ready() bool {
	return s.width > 0 && s.height > 0
}
