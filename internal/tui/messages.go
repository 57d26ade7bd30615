package tui

// stateChangedMsg is sent when the controller signals a state change
type stateChangedMsg struct{}

// controllerClosedMsg is sent once the controller's change channel closes
type controllerClosedMsg struct{}

type opKind int

const (
	opLoad opKind = iota
	opCreate
	opUpdate
	opDelete
)

func (o opKind) String() string {
	switch o {
	case opCreate:
		return "create"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	default:
		return "load"
	}
}

// opDoneMsg reports a finished controller call. The controller has already
// recorded the outcome in its state; the values are kept so a failed
// submit can reopen its form.
type opDoneMsg struct {
	op  opKind
	err error

	// id of the comment the call produced or touched
	id int

	taskID  string
	author  string
	content string
}
