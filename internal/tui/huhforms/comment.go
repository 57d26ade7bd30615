package huhforms

import "charm.land/huh/v2"

// ContentCharLimit caps comment content typed in the form
const ContentCharLimit = 2000

// CreateAddCommentForm creates the form for a new comment.
// Values are written through the pointers.
func CreateAddCommentForm(taskID, author, content *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("task_id").
			Title("Task ID").
			Placeholder("e.g. 42").
			CharLimit(9).
			Value(taskID),

		huh.NewInput().
			Key("author").
			Title("Author").
			Placeholder("Your name...").
			Value(author),

		huh.NewText().
			Key("content").
			Title("Comment").
			Placeholder("Write a comment...").
			CharLimit(ContentCharLimit).
			Lines(5).
			Value(content),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// CreateEditCommentForm creates the form for editing a comment.
// Only author and content can change.
func CreateEditCommentForm(commentID string, author, content *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("author").
			Title("Edit Comment #" + commentID).
			Description("Author").
			Value(author),

		huh.NewText().
			Key("content").
			Title("Comment").
			CharLimit(ContentCharLimit).
			Lines(5).
			Value(content),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
