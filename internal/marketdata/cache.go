package marketdata

import (
	"sync"
	"time"

	"MarketWatch/internal/model"
)

type cacheEntry struct {
	data      *model.Dataset
	expiresAt time.Time
}

type inflightCall struct {
	done chan struct{}
	data *model.Dataset
}

// Cache memoizes fetch results for a bounded time-to-live. Concurrent
// lookups of the same key share a single in-flight fetch; lookups of
// different keys fetch independently. Invalidate clears all entries but
// does not cancel a fetch already in flight; that fetch completes and
// its result is cached.
type Cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	entries  map[string]cacheEntry
	inflight map[string]*inflightCall
}

// NewCache creates a cache with the given TTL. The clock is injectable
// for tests; pass nil to use time.Now.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:      ttl,
		now:      now,
		entries:  make(map[string]cacheEntry),
		inflight: make(map[string]*inflightCall),
	}
}

// GetOrFetch returns the cached dataset for key, or runs fetch once and
// caches its result for the TTL. Followers arriving while a fetch for the
// same key is running wait for it instead of refetching.
func (c *Cache) GetOrFetch(key string, fetch func() *model.Dataset) *model.Dataset {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.data
	}
	if call, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		<-call.done
		return call.data
	}
	call := &inflightCall{done: make(chan struct{})}
	c.inflight[key] = call
	c.mu.Unlock()

	call.data = fetch()

	c.mu.Lock()
	c.entries[key] = cacheEntry{data: call.data, expiresAt: c.now().Add(c.ttl)}
	delete(c.inflight, key)
	c.mu.Unlock()

	close(call.done)
	return call.data
}

// Invalidate clears all cached entries immediately, forcing the next
// lookup to refetch regardless of TTL.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
