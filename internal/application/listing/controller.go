// Package listing is the paginated, filterable, refetchable collection
// state machine shared by every list view: users, pending users, deposits,
// withdrawals and notifications all drive the same controller with a
// per-resource fetch function.
package listing

import (
	"context"
	"errors"
	"maps"
	"sync"
)

// ErrClosed is returned by operations on a torn-down controller.
var ErrClosed = errors.New("listing: controller closed")

// ErrSuperseded is returned to the caller whose fetch settled after a newer
// operation was issued; its result has been discarded, not applied.
var ErrSuperseded = errors.New("listing: fetch superseded by a newer request")

// Filters holds the active filter values, e.g. {"status": "pending"} or
// {"search": "smith"}.
type Filters map[string]string

// Result is a fetched page. An empty Items slice with any TotalCount is a
// valid success state, not an error.
type Result[T any] struct {
	Items      []T
	TotalCount int
}

// FetchFunc loads one page. The page index is zero-based; gateways convert
// to the backend's 1-based pages at the wire boundary.
type FetchFunc[T any] func(ctx context.Context, page, pageSize int, filters Filters) (Result[T], error)

// Snapshot is an atomic copy of the controller's view state.
type Snapshot[T any] struct {
	Page       int
	PageSize   int
	Filters    Filters
	Items      []T
	TotalCount int
	Loading    bool
	Err        error
}

// TotalPages derives the page count from TotalCount and PageSize.
func (s Snapshot[T]) TotalPages() int {
	if s.PageSize <= 0 {
		return 0
	}
	return (s.TotalCount + s.PageSize - 1) / s.PageSize
}

// Controller runs paginated fetches with race protection: every
// state-changing operation bumps a generation counter before fetching, and
// a fetch result is only applied while its generation is still the latest.
// A slow early fetch can therefore never overwrite a later one, and Close
// guarantees nothing is applied after teardown.
type Controller[T any] struct {
	fetch FetchFunc[T]

	mu         sync.Mutex
	page       int
	pageSize   int
	filters    Filters
	items      []T
	totalCount int
	loading    bool
	err        error
	gen        uint64
	closed     bool
}

type Option[T any] func(*Controller[T])

// WithPage sets the initial zero-based page without fetching.
func WithPage[T any](n int) Option[T] {
	return func(c *Controller[T]) {
		if n >= 0 {
			c.page = n
		}
	}
}

// WithFilter sets an initial filter value without fetching.
func WithFilter[T any](key, value string) Option[T] {
	return func(c *Controller[T]) {
		if value != "" {
			c.filters[key] = value
		}
	}
}

func New[T any](fetch FetchFunc[T], pageSize int, opts ...Option[T]) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 20
	}
	c := &Controller[T]{
		fetch:    fetch,
		pageSize: pageSize,
		filters:  Filters{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetPage moves to the zero-based page n and fetches it.
func (c *Controller[T]) SetPage(ctx context.Context, n int) error {
	return c.run(ctx, func() {
		if n < 0 {
			n = 0
		}
		c.page = n
	})
}

// SetPageSize changes the page size and resets to the first page.
func (c *Controller[T]) SetPageSize(ctx context.Context, n int) error {
	return c.run(ctx, func() {
		if n > 0 {
			c.pageSize = n
		}
		c.page = 0
	})
}

// SetFilter sets or clears (value == "") one filter and resets to the
// first page. A filter change while a fetch is in flight still applies;
// the older fetch is superseded.
func (c *Controller[T]) SetFilter(ctx context.Context, key, value string) error {
	return c.run(ctx, func() {
		if value == "" {
			delete(c.filters, key)
		} else {
			c.filters[key] = value
		}
		c.page = 0
	})
}

// Refetch re-runs the current query without resetting the page.
func (c *Controller[T]) Refetch(ctx context.Context) error {
	return c.run(ctx, func() {})
}

// Close tears the controller down. In-flight fetches settle but their
// results are discarded.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
}

func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot[T]{
		Page:       c.page,
		PageSize:   c.pageSize,
		Filters:    maps.Clone(c.filters),
		Items:      c.items,
		TotalCount: c.totalCount,
		Loading:    c.loading,
		Err:        c.err,
	}
}

// run applies the state mutation, issues exactly one fetch for it, and
// applies the result if no newer operation has been issued meanwhile.
func (c *Controller[T]) run(ctx context.Context, mutate func()) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	mutate()
	c.gen++
	gen := c.gen
	page, pageSize := c.page, c.pageSize
	filters := maps.Clone(c.filters)
	c.loading = true
	c.mu.Unlock()

	result, err := c.fetch(ctx, page, pageSize, filters)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return ErrSuperseded
	}

	c.loading = false
	if err != nil {
		// Prior items stay visible behind the error banner.
		c.err = err
		return err
	}

	c.items = result.Items
	c.totalCount = result.TotalCount
	c.err = nil
	return nil
}
