package formatters

// FormatPercent renders a change with an explicit sign.
//
//	FormatPercent(8.3)  => "+8.3%"
//	FormatPercent(-1.2) => "-1.2%"
//	FormatPercent(0)    => "0.0%"
func FormatPercent(value float64, decimals ...int) string {
	if !isFinite(value) {
		return NotAvailable
	}
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return sign + toFixed(value, resolveDecimals(decimals)) + "%"
}

// FormatPercentSimple renders a percentage without a "+" prefix, for places
// where the direction is shown by color.
func FormatPercentSimple(value float64, decimals ...int) string {
	if !isFinite(value) {
		return NotAvailable
	}
	return toFixed(value, resolveDecimals(decimals)) + "%"
}
