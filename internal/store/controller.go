package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/charla/internal/client"
	"github.com/thenoetrevino/charla/internal/models"
)

// Controller owns the comment cache. It calls the service, feeds the
// outcomes through Reduce and signals observers on every change.
//
// Methods that talk to the service block until the request finishes and
// are safe to call from multiple goroutines.
type Controller struct {
	api    client.API
	logger *slog.Logger
	timers *Timers

	successDuration   time.Duration
	highlightDuration time.Duration
	deleteDelay       time.Duration

	mu         sync.Mutex
	state      State
	loadCancel context.CancelFunc
	changed    chan struct{}
	closed     bool
}

// New creates a controller backed by api. Call Start to perform the initial load.
func New(api client.API, opts ...Option) *Controller {
	cfg := controllerConfig{
		successDuration:   DefaultSuccessDuration,
		highlightDuration: DefaultHighlightDuration,
		deleteDelay:       DefaultDeleteDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		api:               api,
		logger:            logger,
		timers:            NewTimers(),
		successDuration:   cfg.successDuration,
		highlightDuration: cfg.highlightDuration,
		deleteDelay:       cfg.deleteDelay,
		state: State{
			Comments:     []models.Comment{},
			FilterTaskID: cfg.filterTaskID,
		},
		changed: make(chan struct{}, 1),
	}
}

// Snapshot returns a deep copy of the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Changed signals after state transitions. Signals coalesce: a receiver
// that falls behind sees one pending signal, then reads Snapshot.
// The channel is closed by Close.
func (c *Controller) Changed() <-chan struct{} {
	return c.changed
}

// Start performs the initial load
func (c *Controller) Start(ctx context.Context) error {
	return c.load(ctx)
}

// Refresh reloads the cache with the current filter
func (c *Controller) Refresh(ctx context.Context) error {
	return c.load(ctx)
}

// SetFilter changes the task filter and reloads. Values <= 0 clear the
// filter. Setting the current value again does nothing.
func (c *Controller) SetFilter(ctx context.Context, taskID int) error {
	taskID = max(taskID, 0)

	c.mu.Lock()
	if c.state.FilterTaskID == taskID {
		c.mu.Unlock()
		return nil
	}
	c.state = Reduce(c.state, FilterChanged{TaskID: taskID})
	c.mu.Unlock()
	c.notify()

	return c.load(ctx)
}

// load replaces the cache with a fresh list. A newer load cancels this one
// and its result is dropped.
func (c *Controller) load(ctx context.Context) error {
	c.mu.Lock()
	if c.loadCancel != nil {
		c.loadCancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	c.loadCancel = cancel
	c.state = Reduce(c.state, LoadStarted{})
	seq := c.state.loadSeq
	filter := c.state.FilterTaskID
	c.mu.Unlock()
	c.notify()

	defer cancel()

	comments, err := c.api.List(loadCtx, filter)
	if err != nil {
		if c.superseded(seq) {
			c.logger.Debug("superseded comment load dropped", "seq", seq)
			return err
		}
		c.logger.Warn("failed to load comments", "task_id", filter, "error", err)
		c.dispatch(LoadFailed{Seq: seq, Message: Message(err, FallbackLoad)})
		return err
	}

	c.dispatch(LoadSucceeded{Seq: seq, Comments: comments})
	return nil
}

// Create validates the input, posts it, and prepends the returned record
func (c *Controller) Create(ctx context.Context, in CreateInput) (*models.Comment, error) {
	req, err := ValidateCreate(in)
	if err != nil {
		c.dispatch(SubmitRejected{Message: Message(err, FallbackCreate)})
		return nil, err
	}

	c.dispatch(SubmitStarted{})

	created, err := c.api.Create(ctx, req)
	if err != nil {
		c.logger.Warn("failed to create comment", "task_id", req.TaskID, "error", err)
		c.dispatch(CreateFailed{Message: Message(err, FallbackCreate)})
		return nil, err
	}

	s := c.dispatch(CreateSucceeded{Comment: *created})
	c.expireSuccess(s.successGen)
	c.expireHighlight(s.highlightGen)

	c.logger.Info("comment created", "id", created.ID, "task_id", created.TaskID)
	return created, nil
}

// StartEdit puts the comment with the given ID under edit, replacing any
// previous selection. Returns false if the ID is not cached.
func (c *Controller) StartEdit(id int) bool {
	s := c.dispatch(EditStarted{ID: id})
	return s.EditingID == id && id != 0
}

// CancelEdit leaves edit mode
func (c *Controller) CancelEdit() {
	c.dispatch(EditCancelled{})
}

// SaveEdit sends the new author and content of the comment under edit
func (c *Controller) SaveEdit(ctx context.Context, author, content string) (*models.Comment, error) {
	c.mu.Lock()
	id := c.state.EditingID
	c.mu.Unlock()
	if id == 0 {
		return nil, ErrNotEditing
	}

	req, err := ValidateEdit(author, content)
	if err != nil {
		c.dispatch(SubmitRejected{Message: Message(err, FallbackUpdate)})
		return nil, err
	}

	c.dispatch(SubmitStarted{})

	updated, err := c.api.Update(ctx, id, req)
	if err != nil {
		c.logger.Warn("failed to update comment", "id", id, "error", err)
		c.dispatch(UpdateFailed{Message: Message(err, FallbackUpdate)})
		return nil, err
	}

	s := c.dispatch(UpdateSucceeded{Comment: *updated})
	c.expireSuccess(s.successGen)

	c.logger.Info("comment updated", "id", id)
	return updated, nil
}

// Delete marks the comment as deleting, waits for the delete delay, then
// removes it on the service and from the cache.
func (c *Controller) Delete(ctx context.Context, id int) error {
	c.dispatch(DeleteStarted{ID: id})

	if c.deleteDelay > 0 {
		timer := time.NewTimer(c.deleteDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			c.dispatch(DeleteFailed{ID: id})
			return ctx.Err()
		case <-timer.C:
		}
	}

	if err := c.api.Delete(ctx, id); err != nil {
		c.logger.Warn("failed to delete comment", "id", id, "error", err)
		c.dispatch(DeleteFailed{ID: id, Message: Message(err, FallbackDelete)})
		return err
	}

	s := c.dispatch(DeleteSucceeded{ID: id})
	c.expireSuccess(s.successGen)

	c.logger.Info("comment deleted", "id", id)
	return nil
}

// Close stops pending timers and any in-flight load, and closes Changed.
func (c *Controller) Close() {
	c.timers.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if c.loadCancel != nil {
		c.loadCancel()
		c.loadCancel = nil
	}
	close(c.changed)
}

func (c *Controller) dispatch(evt Event) State {
	c.mu.Lock()
	c.state = Reduce(c.state, evt)
	s := c.state
	c.mu.Unlock()

	c.notify()
	return s
}

func (c *Controller) notify() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.changed <- struct{}{}:
	default:
	}
}

func (c *Controller) superseded(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.loadSeq != seq
}

func (c *Controller) expireSuccess(gen uint64) {
	c.timers.Schedule(FieldSuccess, c.successDuration, func() {
		c.dispatch(SuccessExpired{Gen: gen})
	})
}

func (c *Controller) expireHighlight(gen uint64) {
	c.timers.Schedule(FieldRecentlyAdded, c.highlightDuration, func() {
		c.dispatch(HighlightExpired{Gen: gen})
	})
}
