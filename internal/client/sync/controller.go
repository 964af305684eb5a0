// Package sync implements the load/mutate/refetch discipline shared by
// the record views. A controller owns one view's snapshot of employee
// records and guarantees that after any successful mutation the snapshot
// equals a fresh server query for the view's active filter — the client
// never speculatively edits local state.
package sync

import (
	"context"
	"errors"
	"sync"

	"github.com/pvolkovs/staffdesk/internal/client/models"
	"github.com/pvolkovs/staffdesk/internal/logging"
)

// State is the view lifecycle phase of a controller.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateMutating
	StateError
)

// ErrNoPendingDelete is returned by ConfirmDelete when no delete target
// was requested (or it was cancelled).
var ErrNoPendingDelete = errors.New("no pending delete target")

// Notifier receives transient, user-facing operation notices.
type Notifier interface {
	Notify(msg string)
}

// Fetcher runs the view's defining query for the given filter.
type Fetcher func(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error)

// Deleter removes the record with the given id on the server.
type Deleter func(ctx context.Context, id string) error

// Option configures a Controller.
type Option func(*Controller)

// WithClearOnError makes a failed load clear the snapshot instead of
// keeping the previous one. The filtered search view uses this: a failed
// filtered query has no meaningful previous state to show.
func WithClearOnError() Option {
	return func(c *Controller) { c.clearOnError = true }
}

// Controller is the per-view record sync state machine.
type Controller struct {
	fetch        Fetcher
	del          Deleter
	notifier     Notifier
	log          logging.Logger
	clearOnError bool

	mu            sync.Mutex
	state         State
	filter        models.SearchFilter
	snapshot      []models.Employee
	seq           uint64
	pendingDelete string
}

// NewController builds a controller in StateIdle.
func NewController(fetch Fetcher, del Deleter, notifier Notifier, log logging.Logger, opts ...Option) *Controller {
	c := &Controller{fetch: fetch, del: del, notifier: notifier, log: log, state: StateIdle}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load issues the defining query for filter and, on success, replaces
// the snapshot wholesale. Responses to a superseded load (a newer Load
// was issued meanwhile) are dropped silently: a view must never apply a
// response to criteria no longer active.
func (c *Controller) Load(ctx context.Context, filter models.SearchFilter) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.filter = filter
	c.state = StateLoading
	c.mu.Unlock()

	records, err := c.fetch(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.log.Debug(ctx, "dropping stale query response", "seq", seq, "latest", c.seq)
		return nil
	}

	if err != nil {
		c.state = StateError
		if c.clearOnError {
			c.snapshot = nil
		}
		c.log.Error(ctx, "query failed", "error", err)
		c.notifier.Notify(err.Error())
		return err
	}

	c.snapshot = append([]models.Employee(nil), records...)
	c.state = StateReady
	return nil
}

// Reload re-runs the defining query with the currently active filter.
func (c *Controller) Reload(ctx context.Context) error {
	return c.Load(ctx, c.Filter())
}

// Mutate runs op and, on success, refetches with the filter active at
// that moment so the snapshot reflects server truth. On failure the
// snapshot stays untouched, a notification is raised, and there is no
// retry.
func (c *Controller) Mutate(ctx context.Context, op func(ctx context.Context) error, successMsg string) error {
	c.mu.Lock()
	c.state = StateMutating
	c.mu.Unlock()

	if err := op(ctx); err != nil {
		c.mu.Lock()
		c.state = StateError
		c.mu.Unlock()
		c.log.Error(ctx, "mutation failed", "error", err)
		c.notifier.Notify(err.Error())
		return err
	}

	if successMsg != "" {
		c.notifier.Notify(successMsg)
	}
	return c.Reload(ctx)
}

// RequestDelete records id as the pending delete target. No server call
// happens until ConfirmDelete.
func (c *Controller) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

// CancelDelete discards the pending target with zero server calls.
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}

// ConfirmDelete fires the delete mutation for the pending target and
// refetches. Without a pending target it returns ErrNoPendingDelete.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	c.mu.Unlock()

	if id == "" {
		return ErrNoPendingDelete
	}
	return c.Mutate(ctx, func(ctx context.Context) error {
		return c.del(ctx, id)
	}, "Employee deleted successfully!")
}

// Snapshot returns a copy of the view's current record snapshot.
func (c *Controller) Snapshot() []models.Employee {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Employee(nil), c.snapshot...)
}

// State returns the controller's current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Filter returns the currently active filter.
func (c *Controller) Filter() models.SearchFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// PendingDelete returns the id awaiting confirmation, if any.
func (c *Controller) PendingDelete() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingDelete
}
