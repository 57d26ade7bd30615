package store

import (
	"sync"
	"time"
)

// Field names a transient state flag that expires on a timer
type Field string

const (
	FieldSuccess       Field = "success"
	FieldRecentlyAdded Field = "recently_added"
)

// Timers runs at most one pending callback per field. Scheduling a field
// again cancels the previous callback, so an older timer can never clear a
// newer value.
type Timers struct {
	mu      sync.Mutex
	pending map[Field]*time.Timer
	stopped bool
}

// NewTimers creates an empty timer set
func NewTimers() *Timers {
	return &Timers{pending: make(map[Field]*time.Timer)}
}

// Schedule runs fn after d, replacing any callback pending for field.
// It does nothing once Stop has been called.
func (t *Timers) Schedule(field Field, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	if prev, ok := t.pending[field]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		current, ok := t.pending[field]
		if !ok || current != timer || t.stopped {
			t.mu.Unlock()
			return
		}
		delete(t.pending, field)
		t.mu.Unlock()

		fn()
	})
	t.pending[field] = timer
}

// Cancel drops the callback pending for field.
// Returns true if one was pending.
func (t *Timers) Cancel(field Field) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	timer, ok := t.pending[field]
	if !ok {
		return false
	}
	timer.Stop()
	delete(t.pending, field)
	return true
}

// Pending returns true if a callback is scheduled for field
func (t *Timers) Pending(field Field) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.pending[field]
	return ok
}

// Stop cancels every pending callback and rejects new ones
func (t *Timers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for field, timer := range t.pending {
		timer.Stop()
		delete(t.pending, field)
	}
	t.stopped = true
}
