package domain

import (
	"fmt"
	"strings"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/apperrors"
)

// CurrencyCode is a supported three-letter currency code.
// The set of valid values is closed; use ParseCurrencyCode at the boundary
// so invalid codes are rejected before they reach rate resolution.
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EGP CurrencyCode = "EGP"
	SAR CurrencyCode = "SAR"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	AED CurrencyCode = "AED"
)

// Currency represents a supported currency.
type Currency struct {
	Code   CurrencyCode `json:"currencyCode"` // e.g., "USD"
	Symbol string       `json:"symbol"`       // e.g., "$"
	Name   string       `json:"name"`         // e.g., "US Dollar"
}

// supportedCurrencies is the closed set of currencies the application knows.
// Order here is the order ListCurrencies presents them in.
var supportedCurrencies = []Currency{
	{Code: USD, Symbol: "$", Name: "US Dollar"},
	{Code: EGP, Symbol: "E£", Name: "Egyptian Pound"},
	{Code: SAR, Symbol: "SR", Name: "Saudi Riyal"},
	{Code: EUR, Symbol: "€", Name: "Euro"},
	{Code: GBP, Symbol: "£", Name: "British Pound"},
	{Code: AED, Symbol: "AED ", Name: "UAE Dirham"},
}

var currenciesByCode = func() map[CurrencyCode]Currency {
	m := make(map[CurrencyCode]Currency, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		m[c.Code] = c
	}
	return m
}()

// ParseCurrencyCode validates a raw currency code against the supported set.
// Codes are normalized to uppercase before the lookup.
func ParseCurrencyCode(raw string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := currenciesByCode[code]; !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, raw)
	}
	return code, nil
}

// CurrencyByCode returns the currency metadata for a supported code.
func CurrencyByCode(code CurrencyCode) (Currency, error) {
	c, ok := currenciesByCode[code]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, code)
	}
	return c, nil
}

// SupportedCurrencies returns a copy of the closed currency set.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsSupported reports whether code belongs to the supported set.
func IsSupported(code CurrencyCode) bool {
	_, ok := currenciesByCode[code]
	return ok
}
