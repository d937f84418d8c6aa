package utils

import (
	"strings"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount formats an amount for display in the given currency: symbol,
// thousands separators, exactly two fraction digits. The sign precedes the
// symbol for negative amounts.
// Example: amount 1234.5 with USD returns "$1,234.50"
// Example: amount -5 with EGP returns "-E£5.00"
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(currency.Symbol)
	b.WriteString(groupThousands(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// groupThousands inserts comma separators into a non-negative integer string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
