package services

import (
	"sync"
	"time"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// rateCacheEntry is the ephemeral in-memory record for a resolved rate.
type rateCacheEntry struct {
	rate      decimal.Decimal
	fetchedAt time.Time
}

// rateCache is the process-local rate cache. Entries are keyed by a flat
// composite "date|from|to" string. Expiry is checked lazily by callers at
// read time; stale entries are never evicted, only superseded on the next
// write. An empty cache is always a valid state.
type rateCache struct {
	mu      sync.Mutex
	entries map[string]rateCacheEntry
}

func newRateCache() *rateCache {
	return &rateCache{entries: make(map[string]rateCacheEntry)}
}

// rateCacheKey builds the composite cache key for a pair and day.
func rateCacheKey(date time.Time, from, to domain.CurrencyCode) string {
	return date.Format("2006-01-02") + "|" + string(from) + "|" + string(to)
}

func (c *rateCache) get(key string) (rateCacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	return entry, ok
}

func (c *rateCache) put(key string, rate decimal.Decimal, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = rateCacheEntry{rate: rate, fetchedAt: fetchedAt}
}
