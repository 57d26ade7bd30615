package store

import (
	"slices"

	"github.com/thenoetrevino/charla/internal/models"
)

// Success messages shown after a confirmed write
const (
	SuccessCreated = "Comment added!"
	SuccessUpdated = "Comment updated!"
	SuccessDeleted = "Deleted successfully!"
)

// Reduce applies an event to a state and returns the next state.
// It never mutates s or the slices it references.
func Reduce(s State, evt Event) State {
	switch e := evt.(type) {
	case LoadStarted:
		s.loadSeq++
		s.Loading = true
		s.Error = ""

	case LoadSucceeded:
		if e.Seq != s.loadSeq {
			return s
		}
		s.Loading = false
		s.Comments = models.CloneComments(e.Comments)
		if s.Comments == nil {
			s.Comments = []models.Comment{}
		}
		if s.EditingID != 0 && models.IndexOfComment(s.Comments, s.EditingID) < 0 {
			s.EditingID = 0
		}

	case LoadFailed:
		if e.Seq != s.loadSeq {
			return s
		}
		s.Loading = false
		s.Error = e.Message

	case FilterChanged:
		s.FilterTaskID = max(e.TaskID, 0)

	case SubmitStarted:
		s.Error = ""

	case SubmitRejected:
		s.Error = e.Message

	case CreateSucceeded:
		rest := s.Comments
		if i := models.IndexOfComment(rest, e.Comment.ID); i >= 0 {
			rest = slices.Delete(models.CloneComments(rest), i, i+1)
		}
		comments := make([]models.Comment, 0, len(rest)+1)
		comments = append(comments, e.Comment)
		s.Comments = append(comments, rest...)
		s.Error = ""
		s.RecentlyAddedID = e.Comment.ID
		s.highlightGen++
		s = withSuccess(s, SuccessCreated)

	case CreateFailed:
		s.Error = e.Message

	case EditStarted:
		if models.IndexOfComment(s.Comments, e.ID) >= 0 {
			s.EditingID = e.ID
		}

	case EditCancelled:
		s.EditingID = 0

	case UpdateSucceeded:
		if i := models.IndexOfComment(s.Comments, e.Comment.ID); i >= 0 {
			comments := models.CloneComments(s.Comments)
			// Identity fields are immutable; only author and content change
			comments[i].Author = e.Comment.Author
			comments[i].Content = e.Comment.Content
			s.Comments = comments
		}
		if s.EditingID == e.Comment.ID {
			s.EditingID = 0
		}
		s.Error = ""
		s = withSuccess(s, SuccessUpdated)

	case UpdateFailed:
		s.Error = e.Message

	case DeleteStarted:
		s.DeletingID = e.ID
		s.Error = ""

	case DeleteSucceeded:
		if i := models.IndexOfComment(s.Comments, e.ID); i >= 0 {
			s.Comments = slices.Delete(models.CloneComments(s.Comments), i, i+1)
		}
		if s.DeletingID == e.ID {
			s.DeletingID = 0
		}
		if s.EditingID == e.ID {
			s.EditingID = 0
		}
		if s.RecentlyAddedID == e.ID {
			s.RecentlyAddedID = 0
		}
		s = withSuccess(s, SuccessDeleted)

	case DeleteFailed:
		if s.DeletingID == e.ID {
			s.DeletingID = 0
		}
		if e.Message != "" {
			s.Error = e.Message
		}

	case SuccessExpired:
		if e.Gen == s.successGen {
			s.Success = ""
		}

	case HighlightExpired:
		if e.Gen == s.highlightGen {
			s.RecentlyAddedID = 0
		}
	}

	return s
}

func withSuccess(s State, msg string) State {
	s.Success = msg
	s.successGen++
	return s
}
