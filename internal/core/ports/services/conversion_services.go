package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ConversionReaderSvc defines rate resolution operations
type ConversionReaderSvc interface {
	// GetExchangeRate resolves the rate between two currencies for a given
	// calendar day (time-of-day is ignored). Resolution order: in-memory
	// cache, persistent store, then the rate-limited external provider.
	GetExchangeRate(ctx context.Context, fromCode, toCode string, date time.Time) (decimal.Decimal, error)

	// ConvertAmount resolves the rate like GetExchangeRate and returns
	// amount multiplied by it.
	ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string, date time.Time) (decimal.Decimal, error)

	// FormatAmount renders an amount as a display string for a currency
	// (symbol, thousands separators, two fraction digits). Pure, no I/O.
	FormatAmount(amount decimal.Decimal, currencyCode string) (string, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces.
// These three operations are the entire contract the rest of the
// application depends on.
type ConversionSvcFacade interface {
	ConversionReaderSvc
}
