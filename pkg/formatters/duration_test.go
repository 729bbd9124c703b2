package formatters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		name     string
		minutes  float64
		expected string
	}{
		{name: "half_minute", minutes: 0.5, expected: "30s"},
		{name: "zero", minutes: 0, expected: "0s"},
		{name: "seconds_round_up_to_sixty", minutes: 0.999, expected: "60s"},
		{name: "one_minute", minutes: 1, expected: "1.0 min"},
		{name: "session", minutes: 12.5, expected: "12.5 min"},
		{name: "just_below_hour", minutes: 59.5, expected: "59.5 min"},
		{name: "hours_and_minutes", minutes: 125, expected: "2h 5m"},
		{name: "whole_hours", minutes: 120, expected: "2h"},
		{name: "remainder_rounded", minutes: 90.4, expected: "1h 30m"},
		{name: "remainder_not_carried", minutes: 119.6, expected: "1h 60m"},
		{name: "negative_clamped", minutes: -5, expected: "0s"},
		{name: "nan", minutes: math.NaN(), expected: NotAvailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatDuration(tc.minutes))
		})
	}
}
