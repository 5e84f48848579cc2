// Package controller manages fetched collections for the admin views: a
// generic list controller holding server-ordered items with local filter and
// search state, plus project and contact instances that reconcile mutations
// with the backend. The server is authoritative: items change only after it
// confirms.
package controller

import (
	"context"
	"sync"
)

// State is the top-level lifecycle of a list controller.
type State int

const (
	// StateIdle means no fetch has been dispatched yet.
	StateIdle State = iota
	// StateLoading means a refresh is outstanding.
	StateLoading
	// StateReady means the last refresh succeeded.
	StateReady
	// StateError means the last refresh failed.
	StateError
)

// FilterAll is the filter value that matches every item.
const FilterAll = "all"

// TokenFunc supplies the bearer token at call time, so the controllers always
// see the current session.
type TokenFunc func() string

// matchFunc reports whether an item passes the active filter and search text.
type matchFunc[T any] func(item T, filter, search string) bool

// Controller holds a fetched collection and its view state. All methods are
// safe for concurrent use; overlapping refreshes are resolved by generation:
// a response older than the latest dispatched refresh is dropped.
type Controller[T any] struct {
	mu      sync.Mutex
	items   []T
	state   State
	loading bool
	lastErr error
	filter  string
	search  string
	gen     uint64

	fetch func(ctx context.Context) ([]T, error)
	match matchFunc[T]
}

func newController[T any](fetch func(ctx context.Context) ([]T, error), match matchFunc[T]) *Controller[T] {
	return &Controller[T]{
		filter: FilterAll,
		fetch:  fetch,
		match:  match,
	}
}

// Refresh fetches the collection and replaces the items wholesale on
// success. On failure the previous items are kept and the error is recorded
// as LastError. Loading is cleared when the latest dispatched refresh
// completes, success or failure.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.loading = true
	c.state = StateLoading
	fetch := c.fetch
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer refresh has been dispatched; this response is stale and
		// must not clobber its outcome.
		return err
	}
	c.loading = false
	if err != nil {
		c.state = StateError
		c.lastErr = err
		return err
	}
	c.state = StateReady
	c.lastErr = nil
	c.items = items
	return nil
}

// Items returns a copy of the collection in server order.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether a refresh is outstanding.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// State returns the controller lifecycle state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the error recorded by the most recent failed refresh, or
// nil after a successful one.
func (c *Controller[T]) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// SetFilter sets the filter predicate value; FilterAll matches everything.
func (c *Controller[T]) SetFilter(filter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if filter == "" {
		filter = FilterAll
	}
	c.filter = filter
}

// SetSearch sets the case-insensitive search text.
func (c *Controller[T]) SetSearch(search string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = search
}

// VisibleItems derives the filtered, searched view of the collection. It is
// recomputed on every call; there is no caching to go stale.
func (c *Controller[T]) VisibleItems() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.match(item, c.filter, c.search) {
			out = append(out, item)
		}
	}
	return out
}

// appendItem adds a server-confirmed item to the end of the collection.
func (c *Controller[T]) appendItem(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// removeWhere deletes the items matching pred, preserving order of the rest.
func (c *Controller[T]) removeWhere(pred func(T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// updateWhere replaces items matching pred with the result of fn.
func (c *Controller[T]) updateWhere(pred func(T) bool, fn func(T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if pred(item) {
			c.items[i] = fn(item)
		}
	}
}
