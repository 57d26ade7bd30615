package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/charla/internal/client"
	"github.com/thenoetrevino/charla/internal/store"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, server errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested comment was not found.
	ExitNotFound = 3

	// ExitDataErr indicates the service returned data that could not be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error, local or reported by the service.
	ExitValidation = 5
)

// Error codes reported in JSON output
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeNetwork    = "NETWORK_ERROR"
	CodeServer     = "SERVER_ERROR"
	CodeUsage      = "USAGE_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// ExitCodeError carries the process exit code for a failed command.
// The message has already been reported to the user.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// UsageError wraps a usage problem detected after flag parsing
func UsageError(format string, args ...any) error {
	return &ExitCodeError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var validationErr *store.ValidationError
	switch {
	case errors.As(err, &validationErr), errors.Is(err, client.ErrInvalid):
		return ExitValidation
	case errors.Is(err, client.ErrNotFound):
		return ExitNotFound
	}

	var serverErr *client.ServerError
	if errors.As(err, &serverErr) && serverErr.StatusCode >= 200 && serverErr.StatusCode < 300 {
		return ExitDataErr
	}

	return ExitError
}

// ErrorCode maps an error to the code reported in JSON output
func ErrorCode(err error) string {
	var (
		validationErr *store.ValidationError
		netErr        *client.NetworkError
		serverErr     *client.ServerError
		exitErr       *ExitCodeError
	)

	switch {
	case errors.As(err, &validationErr), errors.Is(err, client.ErrInvalid):
		return CodeValidation
	case errors.Is(err, client.ErrNotFound):
		return CodeNotFound
	case errors.As(err, &netErr):
		return CodeNetwork
	case errors.As(err, &serverErr):
		return CodeServer
	case errors.As(err, &exitErr) && exitErr.Code == ExitUsage:
		return CodeUsage
	default:
		return CodeInternal
	}
}
