package formatters

// FormatConversionRate renders current as a whole percentage of previous.
// A zero previous count yields "0%".
//
//	FormatConversionRate(4500, 10000) => "45%"
func FormatConversionRate(current, previous float64) string {
	if !isFinite(current) || !isFinite(previous) {
		return NotAvailable
	}
	if previous == 0 {
		return "0%"
	}
	rate := (current / previous) * 100
	if !isFinite(rate) {
		return NotAvailable
	}
	return roundHalfUp(rate).String() + "%"
}
