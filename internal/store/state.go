// Package store holds the client-side comment cache and the transient UI flags
// around it. State is an immutable snapshot; every change is an Event applied by
// Reduce. Controller orchestrates the comment service calls that produce events.
package store

import "github.com/thenoetrevino/charla/internal/models"

// State is a snapshot of the cached comments and transient UI flags.
// Optional IDs use 0 for "none" since the service assigns positive IDs.
type State struct {
	// Comments is the cache, most recently created first after local creates
	Comments []models.Comment

	// Loading is true while a list request is in flight
	Loading bool

	// Error is the user-facing message of the last failure, "" for none
	Error string

	// Success is a short-lived confirmation message, "" for none
	Success string

	// FilterTaskID restricts loads to one task, 0 for all comments
	FilterTaskID int

	// EditingID is the comment under edit, 0 for none
	EditingID int

	// RecentlyAddedID marks a just-created comment for a short highlight
	RecentlyAddedID int

	// DeletingID marks a comment whose removal is pending
	DeletingID int

	loadSeq      uint64
	successGen   uint64
	highlightGen uint64
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	s.Comments = models.CloneComments(s.Comments)
	return s
}

// Find returns the cached comment with the given ID
func (s State) Find(id int) (models.Comment, bool) {
	if i := models.IndexOfComment(s.Comments, id); i >= 0 {
		return s.Comments[i], true
	}
	return models.Comment{}, false
}

// Editing returns the comment under edit, if it is still cached
func (s State) Editing() (models.Comment, bool) {
	if s.EditingID == 0 {
		return models.Comment{}, false
	}
	return s.Find(s.EditingID)
}

// HasError returns true if an error message is set
func (s State) HasError() bool {
	return s.Error != ""
}

// HasSuccess returns true if a success message is set
func (s State) HasSuccess() bool {
	return s.Success != ""
}

// IsEmpty returns true if no comments are cached
func (s State) IsEmpty() bool {
	return len(s.Comments) == 0
}
