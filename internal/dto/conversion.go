package dto

import (
	"github.com/shopspring/decimal"
)

// ConvertAmountRequest defines the structure for converting a monetary amount.
// Amount binds through decimal.Decimal, so non-finite JSON inputs are
// rejected at the binding boundary. Date defaults to today when omitted.
type ConvertAmountRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3,currencycode"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3,currencycode"`
	Date             string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ConvertAmountResponse defines the structure for conversion results.
type ConvertAmountResponse struct {
	Amount           decimal.Decimal `json:"amount"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Date             string          `json:"date"`
	Rate             decimal.Decimal `json:"rate"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	Formatted        string          `json:"formatted"`
}

// ExchangeRateResponse defines the structure for API responses containing a
// resolved exchange rate.
type ExchangeRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Date             string          `json:"date"`
	Rate             decimal.Decimal `json:"rate"`
}
