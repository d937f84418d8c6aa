package providers

import (
	"context"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateProvider is the external source of live conversion rates. Given a base
// currency it returns the current rate for every target currency the remote
// service supports, keyed by code. Implementations map error payloads and
// timeouts to apperrors.ErrProvider and transport failures to
// apperrors.ErrRateUnavailable; no retry is built in.
type RateProvider interface {
	FetchLatestRates(ctx context.Context, base domain.CurrencyCode) (map[string]decimal.Decimal, error)
}
