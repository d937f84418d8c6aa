package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/apperrors"
	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/domain"
)

// PgxExchangeRateRepository implements the exchange rate repository facade
// using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// UpsertExchangeRate inserts or updates the rate for a (from, to, date) key.
// The write rides on the table's unique constraint so concurrent callers
// resolving the same missing rate cannot duplicate the row; the later write
// wins on rate and last_updated_at.
func (r *PgxExchangeRateRepository) UpsertExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, last_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (from_currency_code, to_currency_code, date_effective)
		DO UPDATE SET rate = EXCLUDED.rate, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		rate.ExchangeRateID, string(rate.FromCurrencyCode), string(rate.ToCurrencyCode),
		rate.Rate, rate.DateEffective, rate.CreatedAt, rate.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreWrite, err)
	}
	return nil
}

// FindExchangeRateForDate retrieves the stored rate for a currency pair on a
// specific calendar day.
func (r *PgxExchangeRateRepository) FindExchangeRateForDate(ctx context.Context, from, to domain.CurrencyCode, date time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, last_updated_at
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2 AND date_effective = $3;
	`

	var (
		record   domain.ExchangeRate
		fromCode string
		toCode   string
		rateVal  decimal.Decimal
	)
	err := r.Pool.QueryRow(ctx, query, string(from), string(to), date).Scan(
		&record.ExchangeRateID, &fromCode, &toCode, &rateVal,
		&record.DateEffective, &record.CreatedAt, &record.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	record.FromCurrencyCode = domain.CurrencyCode(fromCode)
	record.ToCurrencyCode = domain.CurrencyCode(toCode)
	record.Rate = rateVal
	return &record, nil
}
