package repositories

import (
	"context"
	"time"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRateForDate retrieves the stored rate for a currency pair
	// on a specific calendar day. Returns apperrors.ErrNotFound when no row
	// exists for that key.
	FindExchangeRateForDate(ctx context.Context, from, to domain.CurrencyCode, date time.Time) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// UpsertExchangeRate persists a rate for a (from, to, date) key. The
	// write is idempotent: a second upsert for the same key overwrites the
	// rate and its update timestamp instead of creating a duplicate row.
	UpsertExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
