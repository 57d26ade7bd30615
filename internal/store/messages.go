package store

import (
	"errors"

	"github.com/thenoetrevino/charla/internal/client"
)

// Fallback messages used when the service gives no usable message
const (
	FallbackLoad   = "Failed to load comments"
	FallbackCreate = "Failed to create"
	FallbackUpdate = "Failed to update"
	FallbackDelete = "Failed to delete"
)

// Message converts an operation error into the text shown to the user.
// A 404 always reads "Comment not found", since the service answers it with
// a stock page. Other server-provided messages win; otherwise the fallback
// is used, with the transport reason appended for network failures.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var serverErr *client.ServerError
	if errors.As(err, &serverErr) {
		if errors.Is(serverErr, client.ErrNotFound) {
			return "Comment not found"
		}
		if serverErr.Message != "" {
			return serverErr.Message
		}
		return fallback
	}

	var netErr *client.NetworkError
	if errors.As(err, &netErr) {
		return fallback + ": " + netErr.Reason()
	}

	return fallback
}
