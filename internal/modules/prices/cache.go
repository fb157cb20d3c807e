package prices

import (
	"sync"
	"time"
)

// CacheEntry owns a quote and the time it was fetched.
type CacheEntry struct {
	Quote     Quote
	FetchedAt time.Time
}

// QuoteCache is a TTL-bounded symbol-to-quote store shared across requests.
// Entries are overwritten on refresh and never evicted; the symbol universe
// is small enough (tens to low hundreds) that unbounded growth is a known,
// accepted scaling limit. Safe for concurrent use.
type QuoteCache struct {
	mu      sync.RWMutex
	entries map[string]CacheEntry
	ttl     time.Duration
}

// NewQuoteCache creates a quote cache with the given TTL
func NewQuoteCache(ttl time.Duration) *QuoteCache {
	return &QuoteCache{
		entries: make(map[string]CacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cache entry for a symbol, stale or not
func (c *QuoteCache) Get(symbol string) (CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[symbol]
	return entry, ok
}

// Put stores a quote for a symbol, superseding any previous entry
func (c *QuoteCache) Put(symbol string, quote Quote, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[symbol] = CacheEntry{Quote: quote, FetchedAt: now}
}

// IsStale reports whether an entry has outlived the TTL
func (c *QuoteCache) IsStale(entry CacheEntry, now time.Time) bool {
	return now.Sub(entry.FetchedAt) >= c.ttl
}

// Fresh returns the cached quote for a symbol if present and not stale
func (c *QuoteCache) Fresh(symbol string, now time.Time) (Quote, bool) {
	entry, ok := c.Get(symbol)
	if !ok || c.IsStale(entry, now) {
		return Quote{}, false
	}
	return entry.Quote, true
}

// TTL returns the configured time-to-live
func (c *QuoteCache) TTL() time.Duration {
	return c.ttl
}
