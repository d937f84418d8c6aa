package services

import (
	"context"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for the supported currency set
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
// The currency set is a closed enumeration, so there is no writer side.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
