package purestate

import (
	"sync"
)

// ============================================================================
// Memoization
// ============================================================================

// Cache is a memo table owned by the caller. It is safe for concurrent use.
//
// Example:
//
//	cache := NewCache[int, uint64]()
//	fib := Fix(cache, func(self func(int) uint64, n int) uint64 {
//	    if n < 2 {
//	        return uint64(n)
//	    }
//	    return self(n-1) + self(n-2)
//	})
//	fib(90)
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewCache creates an empty cache.
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// Get returns the cached value for k.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[k]
	return v, ok
}

// Put stores v under k.
func (c *Cache[K, V]) Put(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Memoize returns f backed by c. f must be pure; two concurrent misses on the
// same key may both call f.
func Memoize[K comparable, V any](c *Cache[K, V], f func(K) V) func(K) V {
	return func(k K) V {
		if v, ok := c.Get(k); ok {
			return v
		}
		v := f(k)
		c.Put(k, v)
		return v
	}
}

// Fix memoizes a recursive definition. f receives the memoized function as
// self so recursive calls also go through c.
func Fix[K comparable, V any](c *Cache[K, V], f func(self func(K) V, k K) V) func(K) V {
	var self func(K) V
	self = Memoize(c, func(k K) V {
		return f(self, k)
	})
	return self
}
