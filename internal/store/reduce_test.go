package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/charla/internal/models"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func comment(id, taskID int, author, content string) models.Comment {
	return models.Comment{
		ID:        id,
		TaskID:    taskID,
		Author:    author,
		Content:   content,
		CreatedAt: base.Add(time.Duration(id) * time.Minute),
	}
}

// loaded returns a state holding the given comments after a successful load
func loaded(comments ...models.Comment) State {
	s := Reduce(State{}, LoadStarted{})
	return Reduce(s, LoadSucceeded{Seq: s.loadSeq, Comments: comments})
}

func ids(comments []models.Comment) []int {
	out := make([]int, len(comments))
	for i, c := range comments {
		out[i] = c.ID
	}
	return out
}

// ============================================================================
// LOAD
// ============================================================================

func TestReduce_LoadReplacesCacheInServerOrder(t *testing.T) {
	s := loaded(comment(9, 1, "old", "stale"))

	s = Reduce(s, LoadStarted{})
	assert.True(t, s.Loading)

	server := []models.Comment{comment(2, 1, "a", "x"), comment(1, 2, "b", "y")}
	s = Reduce(s, LoadSucceeded{Seq: s.loadSeq, Comments: server})

	assert.False(t, s.Loading)
	assert.Equal(t, server, s.Comments)

	// cache does not alias the input slice
	server[0].Author = "changed"
	assert.Equal(t, "a", s.Comments[0].Author)
}

func TestReduce_LoadFailureKeepsCache(t *testing.T) {
	s := loaded(comment(1, 1, "a", "x"))
	before := models.CloneComments(s.Comments)

	s = Reduce(s, LoadStarted{})
	s = Reduce(s, LoadFailed{Seq: s.loadSeq, Message: "Failed to load comments"})

	assert.False(t, s.Loading)
	assert.Equal(t, "Failed to load comments", s.Error)
	assert.Equal(t, before, s.Comments)
}

func TestReduce_LoadStartClearsError(t *testing.T) {
	s := Reduce(State{}, SubmitRejected{Message: "bad"})
	s = Reduce(s, LoadStarted{})
	assert.Empty(t, s.Error)
}

func TestReduce_SupersededLoadIsDropped(t *testing.T) {
	s := Reduce(State{}, LoadStarted{})
	first := s.loadSeq
	s = Reduce(s, LoadStarted{})
	second := s.loadSeq

	s = Reduce(s, LoadSucceeded{Seq: second, Comments: []models.Comment{comment(2, 2, "new", "n")}})
	s = Reduce(s, LoadSucceeded{Seq: first, Comments: []models.Comment{comment(1, 1, "old", "o")}})
	s = Reduce(s, LoadFailed{Seq: first, Message: "late failure"})

	assert.Equal(t, []int{2}, ids(s.Comments))
	assert.Empty(t, s.Error)
	assert.False(t, s.Loading)
}

func TestReduce_LoadDropsEditOfVanishedComment(t *testing.T) {
	s := loaded(comment(1, 1, "a", "x"), comment(2, 1, "b", "y"))
	s = Reduce(s, EditStarted{ID: 2})
	require.Equal(t, 2, s.EditingID)

	s = Reduce(s, LoadStarted{})
	s = Reduce(s, LoadSucceeded{Seq: s.loadSeq, Comments: []models.Comment{comment(1, 1, "a", "x")}})

	assert.Zero(t, s.EditingID)
}

func TestReduce_FilterChanged(t *testing.T) {
	s := Reduce(State{}, FilterChanged{TaskID: 4})
	assert.Equal(t, 4, s.FilterTaskID)

	s = Reduce(s, FilterChanged{TaskID: -3})
	assert.Zero(t, s.FilterTaskID)
}

// ============================================================================
// CREATE
// ============================================================================

func TestReduce_CreatePrepends(t *testing.T) {
	s := loaded(comment(2, 1, "a", "x"), comment(1, 1, "b", "y"))
	s = Reduce(s, SubmitRejected{Message: "stale error"})

	created := comment(3, 1, "Asha", "hi")
	next := Reduce(s, CreateSucceeded{Comment: created})

	require.Len(t, next.Comments, len(s.Comments)+1)
	assert.Equal(t, created, next.Comments[0])
	assert.Equal(t, []int{3, 2, 1}, ids(next.Comments))
	assert.Equal(t, 3, next.RecentlyAddedID)
	assert.Equal(t, SuccessCreated, next.Success)
	assert.Empty(t, next.Error)

	// previous snapshot untouched
	assert.Equal(t, []int{2, 1}, ids(s.Comments))
}

func TestReduce_CreateOfAlreadyCachedIDKeepsIDsUnique(t *testing.T) {
	s := loaded(comment(3, 1, "Asha", "hi"), comment(1, 1, "b", "y"))

	s = Reduce(s, CreateSucceeded{Comment: comment(3, 1, "Asha", "hi")})

	assert.Equal(t, []int{3, 1}, ids(s.Comments))
}

func TestReduce_CreateFailedKeepsCache(t *testing.T) {
	s := loaded(comment(1, 1, "a", "x"))
	before := models.CloneComments(s.Comments)

	s = Reduce(s, CreateFailed{Message: "Failed to create"})

	assert.Equal(t, before, s.Comments)
	assert.Equal(t, "Failed to create", s.Error)
	assert.Zero(t, s.RecentlyAddedID)
	assert.Empty(t, s.Success)
}

// ============================================================================
// EDIT
// ============================================================================

func TestReduce_EditSelection(t *testing.T) {
	s := loaded(comment(1, 1, "a", "x"), comment(2, 1, "b", "y"))

	s = Reduce(s, EditStarted{ID: 1})
	assert.Equal(t, 1, s.EditingID)

	s = Reduce(s, EditStarted{ID: 2})
	assert.Equal(t, 2, s.EditingID, "a new edit replaces the previous one")

	s = Reduce(s, EditStarted{ID: 99})
	assert.Equal(t, 2, s.EditingID, "unknown ids are ignored")

	editing, ok := s.Editing()
	require.True(t, ok)
	assert.Equal(t, "b", editing.Author)

	s = Reduce(s, EditCancelled{})
	assert.Zero(t, s.EditingID)
}

func TestReduce_UpdateReplacesOnlyMatchingEntry(t *testing.T) {
	s := loaded(comment(2, 1, "a", "x"), comment(1, 1, "b", "y"))
	s = Reduce(s, EditStarted{ID: 1})
	before := models.CloneComments(s.Comments)

	returned := before[1]
	returned.Author = "Bob"
	returned.Content = "x"
	s = Reduce(s, UpdateSucceeded{Comment: returned})

	require.Len(t, s.Comments, 2)
	assert.Equal(t, before[0], s.Comments[0])
	assert.Equal(t, "Bob", s.Comments[1].Author)
	assert.Equal(t, "x", s.Comments[1].Content)
	assert.Equal(t, before[1].ID, s.Comments[1].ID)
	assert.Equal(t, before[1].TaskID, s.Comments[1].TaskID)
	assert.True(t, before[1].CreatedAt.Equal(s.Comments[1].CreatedAt))
	assert.Zero(t, s.EditingID)
	assert.Equal(t, SuccessUpdated, s.Success)
}

func TestReduce_UpdateKeepsIdentityFields(t *testing.T) {
	s := loaded(comment(1, 1, "b", "y"))
	original := s.Comments[0]

	returned := original
	returned.TaskID = 77
	returned.CreatedAt = base.Add(time.Hour)
	returned.Content = "z"
	s = Reduce(s, UpdateSucceeded{Comment: returned})

	assert.Equal(t, original.TaskID, s.Comments[0].TaskID)
	assert.True(t, original.CreatedAt.Equal(s.Comments[0].CreatedAt))
	assert.Equal(t, "z", s.Comments[0].Content)
}

func TestReduce_UpdateOfUncachedIDLeavesCache(t *testing.T) {
	s := loaded(comment(1, 1, "b", "y"))
	before := models.CloneComments(s.Comments)

	s = Reduce(s, UpdateSucceeded{Comment: comment(5, 1, "z", "z")})

	assert.Equal(t, before, s.Comments)
}

func TestReduce_UpdateFailedKeepsEditAndCache(t *testing.T) {
	s := loaded(comment(1, 1, "b", "y"))
	s = Reduce(s, EditStarted{ID: 1})
	before := models.CloneComments(s.Comments)

	s = Reduce(s, UpdateFailed{Message: "Comment not found"})

	assert.Equal(t, before, s.Comments)
	assert.Equal(t, 1, s.EditingID)
	assert.Equal(t, "Comment not found", s.Error)
}

// ============================================================================
// DELETE
// ============================================================================

func TestReduce_DeleteRemovesEntry(t *testing.T) {
	s := loaded(comment(2, 1, "a", "x"), comment(1, 1, "b", "y"))

	s = Reduce(s, DeleteStarted{ID: 2})
	assert.Equal(t, 2, s.DeletingID)
	assert.Len(t, s.Comments, 2, "entry stays until the service confirms")

	s = Reduce(s, DeleteSucceeded{ID: 2})
	assert.Equal(t, []int{1}, ids(s.Comments))
	assert.Zero(t, s.DeletingID)
	assert.Equal(t, SuccessDeleted, s.Success)
}

func TestReduce_DeleteOfAbsentIDIsNoop(t *testing.T) {
	s := loaded(comment(1, 1, "b", "y"))
	before := models.CloneComments(s.Comments)

	s = Reduce(s, DeleteSucceeded{ID: 2})

	assert.Equal(t, before, s.Comments)
}

func TestReduce_DeleteClearsFlagsOfRemovedComment(t *testing.T) {
	s := loaded(comment(1, 1, "b", "y"))
	s = Reduce(s, CreateSucceeded{Comment: comment(2, 1, "a", "x")})
	s = Reduce(s, EditStarted{ID: 2})

	s = Reduce(s, DeleteSucceeded{ID: 2})

	assert.Zero(t, s.EditingID)
	assert.Zero(t, s.RecentlyAddedID)
}

func TestReduce_DeleteFailed(t *testing.T) {
	s := loaded(comment(1, 1, "b", "y"))
	before := models.CloneComments(s.Comments)

	s = Reduce(s, DeleteStarted{ID: 1})
	s = Reduce(s, DeleteFailed{ID: 1, Message: "Failed to delete"})

	assert.Equal(t, before, s.Comments)
	assert.Zero(t, s.DeletingID)
	assert.Equal(t, "Failed to delete", s.Error)
}

func TestReduce_DeleteAbortedWithoutMessage(t *testing.T) {
	s := loaded(comment(1, 1, "b", "y"))

	s = Reduce(s, DeleteStarted{ID: 1})
	s = Reduce(s, DeleteFailed{ID: 1})

	assert.Zero(t, s.DeletingID)
	assert.Empty(t, s.Error)
}

// ============================================================================
// EXPIRY
// ============================================================================

func TestReduce_StaleExpiryDoesNotClearNewerValue(t *testing.T) {
	s := loaded()
	s = Reduce(s, CreateSucceeded{Comment: comment(1, 1, "a", "x")})
	firstSuccess, firstHighlight := s.successGen, s.highlightGen

	s = Reduce(s, CreateSucceeded{Comment: comment(2, 1, "b", "y")})

	s = Reduce(s, SuccessExpired{Gen: firstSuccess})
	s = Reduce(s, HighlightExpired{Gen: firstHighlight})
	assert.Equal(t, SuccessCreated, s.Success)
	assert.Equal(t, 2, s.RecentlyAddedID)

	s = Reduce(s, SuccessExpired{Gen: s.successGen})
	s = Reduce(s, HighlightExpired{Gen: s.highlightGen})
	assert.Empty(t, s.Success)
	assert.Zero(t, s.RecentlyAddedID)
}

func TestState_CloneIsDeep(t *testing.T) {
	s := loaded(comment(1, 1, "b", "y"))
	clone := s.Clone()
	clone.Comments[0].Author = "changed"
	assert.Equal(t, "b", s.Comments[0].Author)
}
