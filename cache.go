package depgraph

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"
)

// cacheKey identifies one cached instance inside a graph. The graph itself
// owns the cache, so graph identity is implicit.
type cacheKey struct {
	typ   reflect.Type
	scope string
	args  string
}

// flightKey is the singleflight group key. The type is keyed by its runtime
// identity: types from different packages can share a String() form, and a
// factory for one may resolve the other while its own flight is open.
func (k cacheKey) flightKey() string {
	return fmt.Sprintf("%p|%s|%s", k.typ, k.scope, k.args)
}

// scopedCache stores Named and Shared instances for a single graph.
type scopedCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]any

	// order records insertion order; Close walks it in reverse.
	order []cacheKey

	flight singleflight.Group
}

func newScopedCache() *scopedCache {
	return &scopedCache{entries: make(map[cacheKey]any)}
}

func (c *scopedCache) load(k cacheKey) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[k]
	return v, ok
}

// loadOrCompute returns the cached value for k, calling compute to populate
// it on a miss. Concurrent first callers for the same key share a single
// compute call. compute runs with no lock held, so it may resolve other keys.
// The second return value reports whether the value came from the cache.
func (c *scopedCache) loadOrCompute(k cacheKey, compute func() any) (any, bool) {
	if v, ok := c.load(k); ok {
		return v, true
	}
	computed := false
	for {
		c.flight.Do(k.flightKey(), func() (any, error) {
			if _, ok := c.load(k); ok {
				return nil, nil
			}
			v := compute()
			computed = true
			c.store(k, v)
			return nil, nil
		})
		if v, ok := c.load(k); ok {
			return v, !computed
		}
	}
}

func (c *scopedCache) store(k cacheKey, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[k]; !exists {
		c.order = append(c.order, k)
	}
	c.entries[k] = v
}

// drain empties the cache and returns the values in insertion order.
func (c *scopedCache) drain() []any {
	c.mu.Lock()
	defer c.mu.Unlock()

	values := make([]any, 0, len(c.order))
	for _, k := range c.order {
		values = append(values, c.entries[k])
	}
	c.entries = make(map[cacheKey]any)
	c.order = nil
	return values
}

func (c *scopedCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
