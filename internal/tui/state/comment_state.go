package state

import "github.com/thenoetrevino/charla/internal/models"

// CommentState tracks the cursor over the cached comment list.
// The list itself lives in the store snapshot; this only remembers
// which comment is selected and how far the list is scrolled.
type CommentState struct {
	// Cursor is the index of the selected comment
	Cursor int

	// SelectedID is the id under the cursor, used to follow the
	// selection when the list is replaced
	SelectedID int

	// ScrollOffset is the index of the first visible card
	ScrollOffset int
}

// NewCommentState creates a new CommentState with default values.
func NewCommentState() *CommentState {
	return &CommentState{}
}

// MoveCursorUp moves the cursor up one position if possible.
// Returns true if the cursor moved, false if already at top.
func (s *CommentState) MoveCursorUp(comments []models.Comment) bool {
	if s.Cursor > 0 {
		s.Cursor--
		s.remember(comments)
		return true
	}
	return false
}

// MoveCursorDown moves the cursor down one position if possible.
// Returns true if the cursor moved, false if already at bottom.
func (s *CommentState) MoveCursorDown(comments []models.Comment) bool {
	if s.Cursor < len(comments)-1 {
		s.Cursor++
		s.remember(comments)
		return true
	}
	return false
}

// Sync re-positions the cursor after the list changed. The cursor follows
// the previously selected id when it is still present, otherwise it is
// clamped to the list bounds.
func (s *CommentState) Sync(comments []models.Comment) {
	if s.SelectedID != 0 {
		for i, c := range comments {
			if c.ID == s.SelectedID {
				s.Cursor = i
				return
			}
		}
	}

	s.Cursor = min(s.Cursor, len(comments)-1)
	s.Cursor = max(s.Cursor, 0)
	s.remember(comments)
}

// Select moves the cursor onto the comment with the given id.
// Returns false if the id is not in the list.
func (s *CommentState) Select(comments []models.Comment, id int) bool {
	for i, c := range comments {
		if c.ID == id {
			s.Cursor = i
			s.SelectedID = id
			return true
		}
	}
	return false
}

// Selected returns the comment under the cursor
func (s *CommentState) Selected(comments []models.Comment) (models.Comment, bool) {
	if s.Cursor >= 0 && s.Cursor < len(comments) {
		return comments[s.Cursor], true
	}
	return models.Comment{}, false
}

// FitCursor adjusts ScrollOffset so the cards from the offset through the
// cursor fit in the available lines. heights holds the rendered height of
// every card. The cursor card is always shown, even when it alone is taller.
func (s *CommentState) FitCursor(heights []int, available int) {
	if len(heights) == 0 {
		s.ScrollOffset = 0
		return
	}
	s.Cursor = min(max(s.Cursor, 0), len(heights)-1)
	s.ScrollOffset = min(max(s.ScrollOffset, 0), s.Cursor)

	for s.ScrollOffset < s.Cursor && sum(heights[s.ScrollOffset:s.Cursor+1]) > available {
		s.ScrollOffset++
	}
}

func (s *CommentState) remember(comments []models.Comment) {
	if c, ok := s.Selected(comments); ok {
		s.SelectedID = c.ID
		return
	}
	s.SelectedID = 0
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
