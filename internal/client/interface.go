package client

import (
	"context"

	"github.com/thenoetrevino/charla/internal/models"
)

// API defines the operations offered by the remote comment service.
// The store controller and the CLI depend on this interface rather than
// on *Client so they can be exercised against fakes.
type API interface {
	// List returns all comments, or only those of taskID when taskID > 0
	List(ctx context.Context, taskID int) ([]models.Comment, error)

	// Get returns a single comment by ID
	Get(ctx context.Context, id int) (*models.Comment, error)

	// Create creates a comment and returns the server-assigned record
	Create(ctx context.Context, req CreateRequest) (*models.Comment, error)

	// Update replaces author and content of a comment and returns the full record
	Update(ctx context.Context, id int, req UpdateRequest) (*models.Comment, error)

	// Delete removes a comment
	Delete(ctx context.Context, id int) error
}

// CreateRequest is the body of a create call
type CreateRequest struct {
	TaskID  int    `json:"task_id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// UpdateRequest is the body of an update call.
// Only author and content are updatable; the server keeps id, task_id and created_at.
type UpdateRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// Compile-time verification that *Client implements API
var _ API = (*Client)(nil)
