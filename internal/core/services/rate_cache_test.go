package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/domain"
)

func TestRateCache_MissOnColdCache(t *testing.T) {
	cache := newRateCache()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, ok := cache.get(rateCacheKey(day, domain.USD, domain.EGP))
	assert.False(t, ok)
}

func TestRateCache_PutThenGet(t *testing.T) {
	cache := newRateCache()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	fetchedAt := time.Date(2024, 5, 1, 9, 15, 0, 0, time.UTC)
	key := rateCacheKey(day, domain.USD, domain.EGP)

	cache.put(key, decimal.NewFromFloat(47.9), fetchedAt)

	entry, ok := cache.get(key)
	assert.True(t, ok)
	assert.True(t, entry.rate.Equal(decimal.NewFromFloat(47.9)))
	assert.True(t, entry.fetchedAt.Equal(fetchedAt))
}

func TestRateCache_WriteSupersedesStaleEntry(t *testing.T) {
	cache := newRateCache()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	key := rateCacheKey(day, domain.USD, domain.EGP)

	cache.put(key, decimal.NewFromFloat(47.0), day.Add(1*time.Hour))
	cache.put(key, decimal.NewFromFloat(47.9), day.Add(9*time.Hour))

	entry, ok := cache.get(key)
	assert.True(t, ok)
	assert.True(t, entry.rate.Equal(decimal.NewFromFloat(47.9)))
}

func TestRateCacheKey_DistinguishesDateAndDirection(t *testing.T) {
	day1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-05-01|USD|EGP", rateCacheKey(day1, domain.USD, domain.EGP))
	assert.NotEqual(t,
		rateCacheKey(day1, domain.USD, domain.EGP),
		rateCacheKey(day2, domain.USD, domain.EGP))
	assert.NotEqual(t,
		rateCacheKey(day1, domain.USD, domain.EGP),
		rateCacheKey(day1, domain.EGP, domain.USD))
}
