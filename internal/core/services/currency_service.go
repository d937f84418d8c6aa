package services

import (
	"context"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/domain"
	portssvc "github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/ports/services"
)

// currencyService serves the closed set of supported currencies. The set is
// static, so there is no repository behind it.
type currencyService struct{}

// NewCurrencyService creates a new currency service.
func NewCurrencyService() portssvc.CurrencySvcFacade {
	return &currencyService{}
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code, err := domain.ParseCurrencyCode(currencyCode)
	if err != nil {
		return nil, err
	}
	currency, err := domain.CurrencyByCode(code)
	if err != nil {
		return nil, err
	}
	return &currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return domain.SupportedCurrencies(), nil
}
