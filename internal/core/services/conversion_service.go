package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/apperrors"
	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/domain"
	portsprov "github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/ports/providers"
	portsrepo "github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/ports/repositories"
	portssvc "github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/ports/services"
	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/utils"
)

const (
	defaultRateTTL           = 6 * time.Hour
	defaultProviderCallLimit = 30
	defaultProviderWindow    = time.Minute
)

// conversionService resolves exchange rates through a two-tier cache
// (in-memory, persistent store) backed by a rate-limited external provider,
// and applies resolved rates to monetary amounts. The in-memory cache and
// the provider-call limiter are owned by this service for the lifetime of
// the process; constructing a fresh instance yields fully isolated state.
type conversionService struct {
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	provider portsprov.RateProvider
	cache    *rateCache
	limiter  *callLimiter
	rateTTL  time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// ConversionServiceOption configures a conversion service.
type ConversionServiceOption func(*conversionService)

// WithRateTTL overrides the freshness window applied to both cache tiers.
func WithRateTTL(ttl time.Duration) ConversionServiceOption {
	return func(s *conversionService) { s.rateTTL = ttl }
}

// WithProviderCallBudget overrides the sliding-window budget for external
// provider calls.
func WithProviderCallBudget(maxCalls int, window time.Duration) ConversionServiceOption {
	return func(s *conversionService) { s.limiter = newCallLimiter(maxCalls, window) }
}

// WithClock overrides the time source. Used by tests to cross freshness and
// limiter window boundaries deterministically.
func WithClock(now func() time.Time) ConversionServiceOption {
	return func(s *conversionService) { s.now = now }
}

// WithConversionLogger overrides the service logger.
func WithConversionLogger(logger *slog.Logger) ConversionServiceOption {
	return func(s *conversionService) { s.logger = logger }
}

// NewConversionService creates a new conversion service.
func NewConversionService(rateRepo portsrepo.ExchangeRateRepositoryFacade, provider portsprov.RateProvider, opts ...ConversionServiceOption) portssvc.ConversionSvcFacade {
	s := &conversionService{
		rateRepo: rateRepo,
		provider: provider,
		cache:    newRateCache(),
		limiter:  newCallLimiter(defaultProviderCallLimit, defaultProviderWindow),
		rateTTL:  defaultRateTTL,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetExchangeRate resolves the rate for a currency pair on a calendar day.
// Resolution order: identity short-circuit, in-memory cache, persistent
// store, then the rate-limited external provider. A stale cached or stored
// rate is returned as a fallback only when the limiter denies a provider
// call; on any other failure the error propagates, never a default rate.
func (s *conversionService) GetExchangeRate(ctx context.Context, fromCode, toCode string, date time.Time) (decimal.Decimal, error) {
	from, err := domain.ParseCurrencyCode(fromCode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	to, err := domain.ParseCurrencyCode(toCode)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if from == to {
		return decimal.NewFromInt(1), nil
	}

	day := domain.TruncateToDay(date)
	now := s.now()
	key := rateCacheKey(day, from, to)

	cached, inCache := s.cache.get(key)
	if inCache && now.Sub(cached.fetchedAt) < s.rateTTL {
		return cached.rate, nil
	}

	stored, err := s.rateRepo.FindExchangeRateForDate(ctx, from, to, day)
	switch {
	case err == nil:
		if now.Sub(stored.LastUpdatedAt) < s.rateTTL {
			s.cache.put(key, stored.Rate, stored.LastUpdatedAt)
			return stored.Rate, nil
		}
	case errors.Is(err, apperrors.ErrNotFound):
		stored = nil
	default:
		// A failing store read must not sink the conversion while the
		// provider can still serve it. Treat as a miss.
		s.logger.WarnContext(ctx, "exchange rate store lookup failed, continuing to provider",
			slog.String("from", string(from)), slog.String("to", string(to)), slog.String("error", err.Error()))
		stored = nil
	}

	if !s.limiter.tryAdmit(now) {
		if inCache {
			return cached.rate, nil
		}
		if stored != nil {
			s.cache.put(key, stored.Rate, stored.LastUpdatedAt)
			return stored.Rate, nil
		}
		return decimal.Decimal{}, fmt.Errorf("%w: no usable rate for %s/%s on %s",
			apperrors.ErrRateLimitExceeded, from, to, day.Format("2006-01-02"))
	}

	rates, err := s.provider.FetchLatestRates(ctx, from)
	if err != nil {
		return decimal.Decimal{}, err
	}
	rate, ok := rates[string(to)]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate for %s in response for base %s", apperrors.ErrProvider, to, from)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%w: non-positive rate %s for %s/%s", apperrors.ErrProvider, rate, from, to)
	}

	s.persistRate(ctx, from, to, day, rate, now)
	s.cache.put(key, rate, now)
	return rate, nil
}

// persistRate writes a freshly fetched rate to the durable store. The write
// is awaited so outcomes are observable, but its failure is logged and never
// propagated: the fetched rate is still cached and returned, and the store
// simply refetches after the next restart.
func (s *conversionService) persistRate(ctx context.Context, from, to domain.CurrencyCode, day time.Time, rate decimal.Decimal, now time.Time) {
	record := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             rate,
		DateEffective:    day,
		CreatedAt:        now,
		LastUpdatedAt:    now,
	}
	if err := s.rateRepo.UpsertExchangeRate(ctx, record); err != nil {
		s.logger.WarnContext(ctx, apperrors.ErrStoreWrite.Error(),
			slog.String("from", string(from)),
			slog.String("to", string(to)),
			slog.String("date", day.Format("2006-01-02")),
			slog.String("error", err.Error()))
	}
}

// ConvertAmount resolves the rate for the pair and day and returns
// amount multiplied by it.
func (s *conversionService) ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string, date time.Time) (decimal.Decimal, error) {
	rate, err := s.GetExchangeRate(ctx, fromCode, toCode, date)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.Mul(rate), nil
}

// FormatAmount renders an amount for display in the given currency.
func (s *conversionService) FormatAmount(amount decimal.Decimal, currencyCode string) (string, error) {
	code, err := domain.ParseCurrencyCode(currencyCode)
	if err != nil {
		return "", err
	}
	currency, err := domain.CurrencyByCode(code)
	if err != nil {
		return "", err
	}
	return utils.FormatAmount(amount, currency), nil
}
