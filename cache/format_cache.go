package cache

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultFormatCacheSize bounds the process-wide format cache.
const DefaultFormatCacheSize = 10000

// FormatCache memoizes formatted display strings with least-recently-used
// eviction. lru.Cache is internally synchronized, so a FormatCache is safe
// for concurrent use.
type FormatCache struct {
	cache    *lru.Cache[FormatKey, string]
	capacity int
	hits     atomic.Uint64
	misses   atomic.Uint64
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// NewFormatCache creates a cache holding at most size entries. Non-positive
// sizes fall back to DefaultFormatCacheSize.
func NewFormatCache(size int) *FormatCache {
	if size <= 0 {
		size = DefaultFormatCacheSize
	}
	c, _ := lru.New[FormatKey, string](size) // only fails for size <= 0

	return &FormatCache{
		cache:    c,
		capacity: size,
	}
}

var (
	defaultOnce  sync.Once
	defaultCache *FormatCache
)

// Default returns the process-wide format cache. It lives as long as the
// process.
func Default() *FormatCache {
	defaultOnce.Do(func() {
		defaultCache = NewFormatCache(DefaultFormatCacheSize)
	})
	return defaultCache
}

func (c *FormatCache) Get(key FormatKey) (string, bool) {
	s, ok := c.cache.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return s, ok
}

func (c *FormatCache) Put(key FormatKey, s string) {
	c.cache.Add(key, s)
}

func (c *FormatCache) Capacity() int {
	return c.capacity
}

func (c *FormatCache) Len() int {
	return c.cache.Len()
}

// Purge drops every entry and resets the counters.
func (c *FormatCache) Purge() {
	c.cache.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

func (c *FormatCache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.cache.Len(),
	}
}
