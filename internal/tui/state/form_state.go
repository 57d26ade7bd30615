package state

import "charm.land/huh/v2"

// FormState holds the active huh form and the values it is bound to.
// huh writes through pointers, so the model keeps FormState by pointer.
type FormState struct {
	Form *huh.Form

	// Bound field values
	TaskID  string
	Author  string
	Content string
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// Reset drops the form and fills the bound values
func (s *FormState) Reset(taskID, author, content string) {
	s.Form = nil
	s.TaskID = taskID
	s.Author = author
	s.Content = content
}

// Active reports whether a form is open
func (s *FormState) Active() bool {
	return s.Form != nil
}

// Close drops the form, keeping the last values
func (s *FormState) Close() {
	s.Form = nil
}
