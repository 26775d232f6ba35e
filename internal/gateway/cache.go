package gateway

import (
	"context"
	"sync"
)

// collection is the cached view of one resource tag's full list. The backend
// has no pagination or server-side filtering, so the unit of caching is the
// whole collection.
type collection[T any] struct {
	mu     sync.Mutex
	items  []T
	loaded bool
	stale  bool
}

// get returns the cached items, fetching first when the cache is cold or has
// been invalidated. On fetch failure the cached items are left exactly as
// they were before the attempt.
func (c *collection[T]) get(ctx context.Context, fetch func(context.Context) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded || c.stale {
		items, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.items = items
		c.loaded = true
		c.stale = false
	}

	// Copy so callers can't mutate the cached slice.
	return append([]T(nil), c.items...), nil
}

// snapshot returns the current cached items without fetching, plus a fresh
// flag: false while the collection is still loading or has been invalidated.
func (c *collection[T]) snapshot() ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...), c.loaded && !c.stale
}

func (c *collection[T]) invalidate() {
	c.mu.Lock()
	c.stale = true
	c.mu.Unlock()
}
