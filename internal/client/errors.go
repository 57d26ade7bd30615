package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
)

var (
	// ErrNotFound matches (via errors.Is) a ServerError for an unknown comment ID
	ErrNotFound = errors.New("comment not found")

	// ErrInvalid matches (via errors.Is) a ServerError rejecting the request payload
	ErrInvalid = errors.New("invalid comment")

	// ErrInvalidBaseURL is returned by New for an empty or non-HTTP base URL
	ErrInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")
)

// NetworkError reports a transport failure: the service was unreachable,
// refused the connection, or the request timed out.
type NetworkError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason(), e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a timeout or deadline expiry.
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// Reason classifies the failure into a short human-readable phrase.
func (e *NetworkError) Reason() string {
	var errno syscall.Errno
	switch {
	case errors.Is(e.Err, context.Canceled):
		return "request cancelled"
	case e.Timeout():
		return "request timed out"
	case errors.As(e.Err, &errno) && errno == syscall.ECONNREFUSED:
		return "connection refused"
	default:
		return "service unreachable"
	}
}

// ServerError reports a non-success HTTP response.
// Message carries the server's explanation when the body provided one.
type ServerError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is lets errors.Is match ErrNotFound and ErrInvalid by status code.
func (e *ServerError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrInvalid:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	}
	return false
}
