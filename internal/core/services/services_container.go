package services

import (
	portsprov "github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/ports/providers"
	portsrepo "github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/ports/repositories"
	portssvc "github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/ports/services"
	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateProvider portsprov.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService()
	container.Conversion = NewConversionService(
		repos.ExchangeRateRepo,
		rateProvider,
		WithRateTTL(cfg.RateCacheTTL),
		WithProviderCallBudget(cfg.ProviderCallLimit, cfg.ProviderCallWindow),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade   = (*currencyService)(nil)
	_ portssvc.ConversionSvcFacade = (*conversionService)(nil)
)
