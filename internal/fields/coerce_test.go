package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64 // nil means "no value"
	}{
		{name: "brazilian thousands and decimal", in: "R$ 1.234,56", want: floatPtr(1234.56)},
		{name: "comma only", in: "68,14", want: floatPtr(68.14)},
		{name: "dot as decimal", in: "1234.56", want: floatPtr(1234.56)},
		{name: "dot as thousands", in: "1.234", want: floatPtr(1234)},
		{name: "multiple thousands dots", in: "1.234.567", want: floatPtr(1234567)},
		{name: "zero", in: "0,00", want: floatPtr(0)},
		{name: "currency sign lower case", in: "r$68,14", want: floatPtr(68.14)},
		{name: "no digits", in: "abc", want: nil},
		{name: "empty", in: "", want: nil},
		{name: "whitespace only", in: "   ", want: nil},
		{name: "implausibly large", in: "999999999999", want: nil},
		{name: "plain integer", in: "150", want: floatPtr(150)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCurrency(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestParseCurrencyRoundsHalfAwayFromZero(t *testing.T) {
	got := ParseCurrency("10.005")
	// three digits after the dot: treated as thousands separator
	require.NotNil(t, got)
	assert.InDelta(t, 10005, *got, 1e-9)

	got = ParseCurrency("10,005")
	require.NotNil(t, got)
	assert.InDelta(t, 10.01, *got, 1e-9)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		strict bool
		want   *string
	}{
		{name: "well formed", in: "15/06/2024", strict: true, want: strPtr("2024-06-15")},
		{name: "ocr separator", in: "15I06I2024", strict: true, want: strPtr("2024-06-15")},
		{name: "dot separator", in: "15.06.2024", strict: true, want: strPtr("2024-06-15")},
		{name: "impossible calendar date strict", in: "31/02/2024", strict: true, want: nil},
		{name: "impossible calendar date lenient", in: "31/02/2024", strict: false, want: strPtr("2024-02-31")},
		{name: "month out of range", in: "15/13/2024", strict: false, want: nil},
		{name: "day zero", in: "00/06/2024", strict: false, want: nil},
		{name: "ancient year", in: "15/06/1899", strict: false, want: nil},
		{name: "empty", in: "", strict: true, want: nil},
		{name: "no date shape", in: "Vencimento", strict: true, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.in, tt.strict)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestCleanOCRDigits(t *testing.T) {
	assert.Equal(t, "150,00", CleanOCRDigits("1S0,00"))
	assert.Equal(t, "10", CleanOCRDigits("lO"))
	assert.Equal(t, "882", CleanOCRDigits("BBZ"))
	assert.Equal(t, "", CleanOCRDigits(""))
}
