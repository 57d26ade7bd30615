package store

import (
	"errors"
	"strconv"
	"strings"

	"github.com/thenoetrevino/charla/internal/client"
)

// ErrNotEditing is returned by SaveEdit when no comment is under edit
var ErrNotEditing = errors.New("no comment is being edited")

// ValidationError is a local input check that failed before any request was sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CreateInput is the raw form input for a new comment
type CreateInput struct {
	TaskID  int
	Author  string
	Content string
}

// ValidateCreate trims the input and builds the request body.
// Task IDs must be positive; author and content must be non-blank.
func ValidateCreate(in CreateInput) (client.CreateRequest, error) {
	if in.TaskID <= 0 {
		return client.CreateRequest{}, &ValidationError{Field: "task_id", Message: "Task ID must be a positive number"}
	}

	update, err := ValidateEdit(in.Author, in.Content)
	if err != nil {
		return client.CreateRequest{}, err
	}

	return client.CreateRequest{
		TaskID:  in.TaskID,
		Author:  update.Author,
		Content: update.Content,
	}, nil
}

// ValidateEdit trims author and content and rejects blank values
func ValidateEdit(author, content string) (client.UpdateRequest, error) {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)

	if author == "" {
		return client.UpdateRequest{}, &ValidationError{Field: "author", Message: "Author is required"}
	}
	if content == "" {
		return client.UpdateRequest{}, &ValidationError{Field: "content", Message: "Content is required"}
	}

	return client.UpdateRequest{Author: author, Content: content}, nil
}

// DigitsOnly strips every non-digit rune from s
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseTaskID reads a task ID typed by the user.
// Non-digits are ignored and an empty result means no task (0).
func ParseTaskID(s string) int {
	digits := DigitsOnly(s)
	if digits == "" {
		return 0
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		// overflow
		return 0
	}
	return id
}
