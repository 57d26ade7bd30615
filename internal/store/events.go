package store

import "github.com/thenoetrevino/charla/internal/models"

// Event is an input to Reduce
type Event interface {
	isEvent()
}

// LoadStarted marks the start of a list request and supersedes earlier loads.
type LoadStarted struct{}

// LoadSucceeded carries the list result of load Seq
type LoadSucceeded struct {
	Seq      uint64
	Comments []models.Comment
}

// LoadFailed carries the failure message of load Seq
type LoadFailed struct {
	Seq     uint64
	Message string
}

// FilterChanged sets the task filter for subsequent loads
type FilterChanged struct {
	TaskID int
}

// SubmitStarted clears the previous error before a write request
type SubmitStarted struct{}

// SubmitRejected reports a local validation failure; no request was sent
type SubmitRejected struct {
	Message string
}

// CreateSucceeded carries the record returned by the service
type CreateSucceeded struct {
	Comment models.Comment
}

// CreateFailed carries the failure message of a create request
type CreateFailed struct {
	Message string
}

// EditStarted selects the comment under edit
type EditStarted struct {
	ID int
}

// EditCancelled leaves edit mode without changes
type EditCancelled struct{}

// UpdateSucceeded carries the record returned by the service
type UpdateSucceeded struct {
	Comment models.Comment
}

// UpdateFailed carries the failure message of an update request
type UpdateFailed struct {
	Message string
}

// DeleteStarted marks a comment as pending removal
type DeleteStarted struct {
	ID int
}

// DeleteSucceeded removes a comment confirmed deleted by the service
type DeleteSucceeded struct {
	ID int
}

// DeleteFailed aborts a pending removal. An empty Message leaves Error untouched.
type DeleteFailed struct {
	ID      int
	Message string
}

// SuccessExpired clears the success message if Gen is still current
type SuccessExpired struct {
	Gen uint64
}

// HighlightExpired clears RecentlyAddedID if Gen is still current
type HighlightExpired struct {
	Gen uint64
}

func (LoadStarted) isEvent()      {}
func (LoadSucceeded) isEvent()    {}
func (LoadFailed) isEvent()       {}
func (FilterChanged) isEvent()    {}
func (SubmitStarted) isEvent()    {}
func (SubmitRejected) isEvent()   {}
func (CreateSucceeded) isEvent()  {}
func (CreateFailed) isEvent()     {}
func (EditStarted) isEvent()      {}
func (EditCancelled) isEvent()    {}
func (UpdateSucceeded) isEvent()  {}
func (UpdateFailed) isEvent()     {}
func (DeleteStarted) isEvent()    {}
func (DeleteSucceeded) isEvent()  {}
func (DeleteFailed) isEvent()     {}
func (SuccessExpired) isEvent()   {}
func (HighlightExpired) isEvent() {}
