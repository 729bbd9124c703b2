package formatters

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		decimals []int
		expected string
	}{
		{name: "zero", value: 0, expected: "0"},
		{name: "negative_zero", value: math.Copysign(0, -1), expected: "0"},
		{name: "zero_with_precision", value: 0, decimals: []int{3}, expected: "0"},
		{name: "below_thousand", value: 999, expected: "999"},
		{name: "below_thousand_fraction", value: 12.5, expected: "12,5"},
		{name: "negative_below_thousand", value: -42, expected: "-42"},
		{name: "thousand_boundary", value: 1_000, expected: "1K"},
		{name: "dau", value: 12_450, expected: "12.5K"},
		{name: "mau", value: 98_500, expected: "98.5K"},
		{name: "negative_thousands", value: -1_500, expected: "-1.5K"},
		{name: "million_trailing_zero_stripped", value: 1_000_000, expected: "1M"},
		{name: "millions", value: 1_234_567, expected: "1.2M"},
		{name: "billion_boundary", value: 1_000_000_000, expected: "1B"},
		{name: "negative_billions", value: -2_750_000_000, expected: "-2.8B"},
		{name: "two_decimals_keep_zeros", value: 1_500_000, decimals: []int{2}, expected: "1.50M"},
		{name: "no_decimals", value: 45_230, decimals: []int{0}, expected: "45K"},
		{name: "negative_decimals_clamped", value: 45_230, decimals: []int{-2}, expected: "45K"},
		{name: "rounding_not_reselected", value: 999_950, expected: "1000K"},
		{name: "nan", value: math.NaN(), expected: NotAvailable},
		{name: "inf", value: math.Inf(1), expected: NotAvailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatNumber(tc.value, tc.decimals...))
		})
	}
}

func TestFormatRawNumber(t *testing.T) {
	testCases := []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1_500, "1.500"},
		{12_450, "12.450"},
		{1_234_567, "1.234.567"},
		{-1_500, "-1.500"},
		{12.5, "12,5"},
		{0.42, "0,42"},
		{math.NaN(), NotAvailable},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.value), func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatRawNumber(tc.value))
		})
	}
}

func TestFormatNumberMatchesRawBelowThousand(t *testing.T) {
	for v := 0; v < 1000; v++ {
		assert.Equal(t, FormatRawNumber(float64(v)), FormatNumber(float64(v)), "value %d", v)
	}
}

func TestFormatNumberZeroForAnyPrecision(t *testing.T) {
	for d := -1; d <= maxDecimals+1; d++ {
		assert.Equal(t, "0", FormatNumber(0, d))
	}
}

func BenchmarkFormatNumber(b *testing.B) {
	values := []float64{0, 999, 12_450, 1_234_567, -2_750_000_000}
	for i := 0; i < b.N; i++ {
		FormatNumber(values[i%len(values)])
	}
}

func BenchmarkFormatRawNumber(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FormatRawNumber(1_234_567)
	}
}
