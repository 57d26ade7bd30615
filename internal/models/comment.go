package models

import "time"

// Comment represents a comment attached to a task.
// ID and CreatedAt are assigned by the comment service on creation.
type Comment struct {
	ID        int       `json:"id"`
	TaskID    int       `json:"task_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the comment ID (used by quiet CLI output)
func (c Comment) GetID() int {
	return c.ID
}

// CloneComments returns a copy of the slice that shares no backing array with the input
func CloneComments(comments []Comment) []Comment {
	if comments == nil {
		return nil
	}
	out := make([]Comment, len(comments))
	copy(out, comments)
	return out
}

// IndexOfComment returns the position of the comment with the given ID, or -1
func IndexOfComment(comments []Comment, id int) int {
	for i := range comments {
		if comments[i].ID == id {
			return i
		}
	}
	return -1
}
