package utils

import (
	"sync"
	"time"
)

type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Size() int
}

// TTLCache keeps values for a fixed lifetime. A zero ttl keeps them for the
// lifetime of the cache.
type TTLCache[V any] struct {
	mu    sync.Mutex
	items map[string]CacheItem[V]
	ttl   time.Duration
	now   func() time.Time
}

type CacheItem[V any] struct {
	value    V
	storedAt time.Time
}

func NewTTLCache[V any](ttl time.Duration) *TTLCache[V] {
	return &TTLCache[V]{
		items: make(map[string]CacheItem[V]),
		ttl:   ttl,
		now:   time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (c *TTLCache[V]) WithClock(now func() time.Time) *TTLCache[V] {
	c.now = now
	return c
}

func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[key]
	if !exists || c.expired(item, c.now()) {
		if exists {
			delete(c.items, key)
		}
		var zero V
		return zero, false
	}

	return item.value, true
}

// Set stores value under key and drops every expired entry.
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, item := range c.items {
		if c.expired(item, now) {
			delete(c.items, k)
		}
	}

	c.items[key] = CacheItem[V]{value: value, storedAt: now}
}

func (c *TTLCache[V]) expired(item CacheItem[V], now time.Time) bool {
	return c.ttl > 0 && now.Sub(item.storedAt) >= c.ttl
}

func (c *TTLCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
