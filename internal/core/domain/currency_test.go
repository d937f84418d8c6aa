package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/apperrors"
)

func TestParseCurrencyCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CurrencyCode
		wantErr bool
	}{
		{name: "valid uppercase", input: "USD", want: USD},
		{name: "lowercase normalized", input: "egp", want: EGP},
		{name: "surrounding whitespace", input: " SAR ", want: SAR},
		{name: "outside the set", input: "DOGE", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong length", input: "US", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCurrencyCode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrencyByCode(t *testing.T) {
	usd, err := CurrencyByCode(USD)
	require.NoError(t, err)
	assert.Equal(t, "$", usd.Symbol)
	assert.Equal(t, "US Dollar", usd.Name)

	_, err = CurrencyByCode(CurrencyCode("ZZZ"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
}

func TestSupportedCurrencies_EveryCodeParses(t *testing.T) {
	currencies := SupportedCurrencies()
	require.NotEmpty(t, currencies)
	for _, c := range currencies {
		parsed, err := ParseCurrencyCode(string(c.Code))
		require.NoError(t, err)
		assert.Equal(t, c.Code, parsed)
		assert.True(t, IsSupported(c.Code))
	}
}

func TestTruncateToDay(t *testing.T) {
	ts := time.Date(2024, 6, 1, 23, 45, 12, 999, time.UTC)
	day := TruncateToDay(ts)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), day)

	// Time zone offsets resolve to the UTC calendar day.
	offset := time.FixedZone("UTC+3", 3*60*60)
	ts = time.Date(2024, 6, 2, 1, 30, 0, 0, offset) // 2024-06-01 22:30 UTC
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), TruncateToDay(ts))
}
