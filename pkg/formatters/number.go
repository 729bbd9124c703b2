package formatters

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type magnitude struct {
	threshold float64
	suffix    string
}

// ordered from largest to smallest, first match wins
var magnitudes = []magnitude{
	{threshold: 1_000_000_000, suffix: "B"},
	{threshold: 1_000_000, suffix: "M"},
	{threshold: 1_000, suffix: "K"},
}

var germanPrinter = message.NewPrinter(language.German)

// FormatNumber abbreviates large values with a B, M or K suffix.
//
//	FormatNumber(12450)   => "12.5K"
//	FormatNumber(1234567) => "1.2M"
//	FormatNumber(-1500)   => "-1.5K"
//
// Values below 1000 are rendered with FormatRawNumber.
func FormatNumber(value float64, decimals ...int) string {
	if !isFinite(value) {
		return NotAvailable
	}
	if value == 0 {
		return "0"
	}
	d := resolveDecimals(decimals)

	absValue := math.Abs(value)
	sign := ""
	if value < 0 {
		sign = "-"
	}

	for _, m := range magnitudes {
		if absValue >= m.threshold {
			scaled := toFixed(absValue/m.threshold, d)
			return sign + strings.TrimSuffix(scaled, ".0") + m.suffix
		}
	}

	return sign + FormatRawNumber(absValue)
}

// FormatRawNumber renders value with German grouping and no abbreviation.
//
//	FormatRawNumber(12450) => "12.450"
//	FormatRawNumber(12.5)  => "12,5"
func FormatRawNumber(value float64) string {
	if !isFinite(value) {
		return NotAvailable
	}
	if value == 0 {
		// drop the sign of negative zero
		value = 0
	}
	return germanPrinter.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(3)))
}
