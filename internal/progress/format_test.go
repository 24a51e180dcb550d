package progress

import (
	"math"
	"testing"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnglish(t *testing.T) *Formatter {
	t.Helper()
	f, err := NewFormatter("en-US", "KGS")
	require.NoError(t, err)
	return f
}

func TestNewFormatter_Errors(t *testing.T) {
	_, err := NewFormatter("not a locale!!", "KGS")
	require.Error(t, err)

	_, err = NewFormatter("en-US", "ZZZ")
	require.ErrorIs(t, err, common.ErrUnsupportedCurrency)
}

func TestFormatCurrency(t *testing.T) {
	f := newEnglish(t)

	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"default currency", 12500, "", "KGS 12,500"},
		{"explicit code", 1234567, "USD", "USD 1,234,567"},
		{"lowercase code", 99, "eur", "EUR 99"},
		{"rounds fraction", 1234.6, "GBP", "GBP 1,235"},
		{"zero", 0, "KGS", "KGS 0"},
		{"nan as zero", math.NaN(), "KGS", "KGS 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.FormatCurrency(tt.amount, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCurrency_UnsupportedCode(t *testing.T) {
	f := newEnglish(t)

	_, err := f.FormatCurrency(10, "DOGE")
	require.ErrorIs(t, err, common.ErrUnsupportedCurrency)

	assert.Equal(t, "10", f.FormatOrPlain(10.2, "DOGE"))
	assert.Equal(t, "KGS 10", f.FormatOrPlain(10.2, ""))
}

func TestDescribe(t *testing.T) {
	f := newEnglish(t)

	v := f.Describe(4500, 18000, 37, "USD")
	assert.Equal(t, View{Percent: 25, Raised: "USD 4,500", Goal: "USD 18,000", DonorCount: 37}, v)

	v = f.Describe(10, 0, -3, "DOGE")
	assert.Equal(t, View{Percent: 0, Raised: "10", Goal: "0", DonorCount: 0}, v)
}
