// Package pagelist implements the paginated-list state machine shared by
// every list view: fetch a page, accumulate or replace, expose
// load-more/refresh/retry. One generic Controller serves all entities; the
// entity-specific part is the FetchFunc capability it is constructed with.
package pagelist

import (
	"context"
	"sync"

	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/common"
)

// FetchFunc retrieves one page of T. Implementations come from the services
// layer and fail fast with common.ErrUnauthorized when no session exists.
type FetchFunc[T any] func(ctx context.Context, page, limit int) (models.Page[T], error)

// Controller tracks the state of one paginated listing.
//
// At most one Load may be in flight per controller; a second call is
// rejected with common.ErrBusy rather than silently interleaving results.
// A failed load never corrupts previously accumulated items.
type Controller[T any] struct {
	fetch FetchFunc[T]
	limit int

	mu            sync.Mutex
	items         []T
	currentPage   int
	totalPages    int
	requestedPage int
	loading       bool
	errMsg        string
}

// New builds a controller over fetch with a fixed page size.
func New[T any](fetch FetchFunc[T], limit int) *Controller[T] {
	return &Controller[T]{fetch: fetch, limit: limit}
}

// Load fetches the given page. Page 1 replaces the accumulated items; any
// later page appends in arrival order. currentPage and totalPages are
// recomputed from the response metadata. On failure the error message is
// recorded and items, currentPage and totalPages keep their prior values.
func (c *Controller[T]) Load(ctx context.Context, page int) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return common.ErrBusy
	}
	c.loading = true
	c.requestedPage = page
	c.mu.Unlock()

	result, err := c.fetch(ctx, page, c.limit)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.errMsg = err.Error()
		return err
	}

	c.errMsg = ""
	if page == 1 {
		// Replace-after-success: the old items stayed visible until here,
		// so a failed refresh never blanks the view.
		c.items = result.Data
	} else {
		c.items = append(c.items, result.Data...)
	}
	c.currentPage = result.Meta.CurrentPage
	c.totalPages = result.Meta.TotalPages
	return nil
}

// LoadMore fetches the next page. It is a no-op when there is nothing more
// to load and returns common.ErrBusy while a load is in flight. The page
// counter advances only when the fetch succeeds.
func (c *Controller[T]) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return common.ErrBusy
	}
	if c.currentPage >= c.totalPages {
		c.mu.Unlock()
		return nil
	}
	next := c.currentPage + 1
	c.mu.Unlock()

	return c.Load(ctx, next)
}

// Refresh reloads the listing from page 1, discarding accumulated items
// only once the new first page has arrived.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.Load(ctx, 1)
}

// Retry re-issues the last requested page with identical arguments. Each
// call is a fresh user-triggered attempt; there is no backoff and no limit.
func (c *Controller[T]) Retry(ctx context.Context) error {
	c.mu.Lock()
	page := c.requestedPage
	c.mu.Unlock()

	if page == 0 {
		page = 1
	}
	return c.Load(ctx, page)
}

// Items returns a copy of the accumulated items.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of accumulated items.
func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Controller[T]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage
}

func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

// HasMore reports whether pages beyond the current one exist.
func (c *Controller[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage < c.totalPages
}

func (c *Controller[T]) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the message of the last failed load, or "" after a success.
func (c *Controller[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}
