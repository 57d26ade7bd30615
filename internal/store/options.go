package store

import (
	"log/slog"
	"time"
)

// Default durations for transient UI flags
const (
	DefaultSuccessDuration   = 1500 * time.Millisecond
	DefaultHighlightDuration = 600 * time.Millisecond
	DefaultDeleteDelay       = 200 * time.Millisecond
)

// Option is a functional option for configuring a Controller
type Option func(*controllerConfig)

type controllerConfig struct {
	successDuration   time.Duration
	highlightDuration time.Duration
	deleteDelay       time.Duration
	filterTaskID      int
	logger            *slog.Logger
}

// WithSuccessDuration sets how long success messages stay visible
func WithSuccessDuration(d time.Duration) Option {
	return func(cfg *controllerConfig) {
		cfg.successDuration = d
	}
}

// WithHighlightDuration sets how long a newly created comment stays highlighted
func WithHighlightDuration(d time.Duration) Option {
	return func(cfg *controllerConfig) {
		cfg.highlightDuration = d
	}
}

// WithDeleteDelay sets the pause between marking a comment as deleting and
// sending the request. Zero sends immediately.
func WithDeleteDelay(d time.Duration) Option {
	return func(cfg *controllerConfig) {
		cfg.deleteDelay = max(d, 0)
	}
}

// WithFilter sets the initial task filter
func WithFilter(taskID int) Option {
	return func(cfg *controllerConfig) {
		cfg.filterTaskID = max(taskID, 0)
	}
}

// WithLogger sets the controller logger
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *controllerConfig) {
		cfg.logger = logger
	}
}
