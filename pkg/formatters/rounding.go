package formatters

import (
	"strings"

	"github.com/shopspring/decimal"
)

// toFixed renders value with exactly decimals fraction digits, ties away from
// zero. A negative value that rounds to zero keeps its sign ("-0.0").
func toFixed(value float64, decimals int) string {
	s := decimal.NewFromFloat(value).StringFixed(int32(decimals))
	if value < 0 && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// roundHalfUp rounds a non-negative value to the nearest integer, ties up
func roundHalfUp(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(0)
}
