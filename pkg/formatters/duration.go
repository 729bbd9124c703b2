package formatters

import (
	"math"
	"strconv"
)

// FormatDuration renders a duration given in minutes.
//
//	FormatDuration(0.5)  => "30s"
//	FormatDuration(12.5) => "12.5 min"
//	FormatDuration(125)  => "2h 5m"
//	FormatDuration(120)  => "2h"
//
// The remainder minutes are rounded and never carried into the hours, so
// 119.6 renders as "1h 60m". Negative durations are clamped to zero.
func FormatDuration(minutes float64) string {
	if !isFinite(minutes) {
		return NotAvailable
	}
	if minutes < 0 {
		minutes = 0
	}

	if minutes < 1 {
		return roundHalfUp(minutes*60).String() + "s"
	}
	if minutes >= 60 {
		hours := strconv.FormatFloat(math.Floor(minutes/60), 'f', 0, 64)
		mins := roundHalfUp(math.Mod(minutes, 60))
		if mins.IsPositive() {
			return hours + "h " + mins.String() + "m"
		}
		return hours + "h"
	}
	return toFixed(minutes, 1) + " min"
}
