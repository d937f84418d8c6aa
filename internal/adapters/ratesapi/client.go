// Package ratesapi is the HTTP adapter for the external exchange rate
// provider (ExchangeRate-API style contract: /{api_key}/latest/{base}).
package ratesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/apperrors"
	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/domain"
	portsprov "github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/ports/providers"
)

// Client queries the remote rate provider over HTTP. Calls are bounded by
// the configured timeout; an unbounded hang would hold an admitted limiter
// slot until it resolved.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// latestRatesResponse is the provider's response for a latest-rates request.
// On success Result is "success" and ConversionRates maps every supported
// target code to its rate; on failure Result is "error" and ErrorType names
// the cause.
type latestRatesResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// NewClient creates a new provider client.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchLatestRates fetches the current conversion rates for a base currency.
// Error payloads, unparseable bodies, non-2xx statuses and timeouts map to
// apperrors.ErrProvider; transport failures with no response map to
// apperrors.ErrRateUnavailable.
func (c *Client) FetchLatestRates(ctx context.Context, base domain.CurrencyCode) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", apperrors.ErrRateUnavailable, err)
	}

	c.logger.DebugContext(ctx, "fetching latest rates from provider", slog.String("base", string(base)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: request timed out: %v", apperrors.ErrProvider, err)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrProvider, resp.StatusCode)
	}

	var payload latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", apperrors.ErrProvider, err)
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("%w: result=%q error-type=%q", apperrors.ErrProvider, payload.Result, payload.ErrorType)
	}

	rates := make(map[string]decimal.Decimal, len(payload.ConversionRates))
	for code, rate := range payload.ConversionRates {
		rates[code] = decimal.NewFromFloat(rate)
	}
	return rates, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Compile-time interface check.
var _ portsprov.RateProvider = (*Client)(nil)
