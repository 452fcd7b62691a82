package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		discount decimal.NullDecimal
		want     string
	}{
		{"no discount", 10000, decimal.NullDecimal{}, "10000"},
		{"zero discount", 10000, pct(0), "10000"},
		{"quarter off", 10000, pct(25), "7500"},
		{"fractional result", 15000, pct(33), "10050"},
		{"full discount", 8000, pct(100), "0"},
		{"fractional percent", 20000, decimal.NewNullDecimal(decimal.RequireFromString("12.5")), "17500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountedPrice(decimal.NewFromInt(tt.price), tt.discount)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(decimal.NewFromInt(10000), pct(25), 3)
	assert.True(t, got.Equal(decimal.NewFromInt(22500)), got.String())
}

func TestNormalizeDiscount(t *testing.T) {
	assert.False(t, NormalizeDiscount(pct(0)).Valid)
	assert.False(t, NormalizeDiscount(decimal.NullDecimal{}).Valid)
	assert.True(t, NormalizeDiscount(pct(10)).Valid)
}

func TestFormatter(t *testing.T) {
	f, err := NewFormatter("en")
	require.NoError(t, err)

	assert.Equal(t, "25,000", f.Format(decimal.NewFromInt(25000)))
	assert.Equal(t, "7,500.5", f.Format(decimal.RequireFromString("7500.5")))
	assert.Equal(t, "800", f.Format(decimal.NewFromInt(800)))
}

func TestFormatterUzbekGroupsDigits(t *testing.T) {
	f := MustFormatter("uz-UZ")
	out := f.Format(decimal.NewFromInt(1250000))
	assert.NotEqual(t, "1250000", out)
	assert.Contains(t, out, "250")
}

func TestNewFormatterRejectsBadLocale(t *testing.T) {
	_, err := NewFormatter("not a locale!")
	assert.Error(t, err)
}
