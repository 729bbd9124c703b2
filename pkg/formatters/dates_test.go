package formatters

import (
	"testing"
	"time"

	"github.com/Slach/dashboard-kit/pkg/clock"
	"github.com/stretchr/testify/assert"
)

var referenceNow = time.Date(2025, 12, 7, 14, 32, 0, 0, time.UTC)

func TestRelativeDate(t *testing.T) {
	f := NewFormatter(clock.NewFixedClock(referenceNow), time.UTC)

	testCases := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{name: "now", at: referenceNow, expected: "Heute, 14:32"},
		{name: "earlier_today", at: referenceNow.Add(-2 * time.Hour), expected: "Heute, 12:32"},
		{name: "elapsed_not_calendar", at: referenceNow.Add(-23*time.Hour - 59*time.Minute), expected: "Heute, 14:33"},
		{name: "yesterday", at: referenceNow.Add(-24 * time.Hour), expected: "Gestern, 14:32"},
		{name: "two_days", at: referenceNow.Add(-48 * time.Hour), expected: "Vor 2 Tagen"},
		{name: "six_days", at: referenceNow.Add(-7*24*time.Hour + time.Millisecond), expected: "Vor 6 Tagen"},
		{name: "seven_days", at: referenceNow.Add(-7 * 24 * time.Hour), expected: "30.11.2025"},
		{name: "eight_days", at: referenceNow.Add(-8 * 24 * time.Hour), expected: "29.11.2025"},
		{name: "future_clamped", at: referenceNow.Add(time.Hour), expected: "Heute, 15:32"},
		{name: "zero_instant", at: time.Time{}, expected: NotAvailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, f.RelativeDate(tc.at))
		})
	}
}

func TestRelativeDateFollowsClock(t *testing.T) {
	c := clock.NewFixedClock(referenceNow)
	f := NewFormatter(c, time.UTC)
	at := referenceNow.Add(-time.Hour)

	assert.Equal(t, "Heute, 13:32", f.RelativeDate(at))
	c.Advance(24 * time.Hour)
	assert.Equal(t, "Gestern, 13:32", f.RelativeDate(at))
	c.Advance(10 * 24 * time.Hour)
	assert.Equal(t, "07.12.2025", f.RelativeDate(at))
}

func TestRelativeDateUsesLocation(t *testing.T) {
	cet := time.FixedZone("CET", 60*60)
	f := NewFormatter(clock.NewFixedClock(referenceNow), cet)
	assert.Equal(t, "Heute, 15:32", f.RelativeDate(referenceNow))
	assert.Equal(t, cet, f.Location())
}

func TestDateAndTimestamp(t *testing.T) {
	f := NewFormatter(clock.NewFixedClock(referenceNow), time.UTC)

	assert.Equal(t, "07.12.2025", f.Date(referenceNow))
	assert.Equal(t, "07.12.2025, 14:32", f.Timestamp(referenceNow))

	padded := time.Date(2026, 1, 5, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "05.01.2026", f.Date(padded))
	assert.Equal(t, "05.01.2026, 09:05", f.Timestamp(padded))

	assert.Equal(t, NotAvailable, f.Date(time.Time{}))
	assert.Equal(t, NotAvailable, f.Timestamp(time.Time{}))
}

func TestDefaultFormatterDates(t *testing.T) {
	now := time.Now()
	assert.Contains(t, FormatRelativeDate(now), "Heute, ")
	eightDaysAgo := now.Add(-8 * 24 * time.Hour)
	assert.Equal(t, eightDaysAgo.Format("02.01.2006"), FormatRelativeDate(eightDaysAgo))
	assert.Equal(t, now.Format("02.01.2006"), FormatDate(now))
	assert.Equal(t, now.Format("02.01.2006, 15:04"), FormatTimestamp(now))
}

func TestElapsedDays(t *testing.T) {
	assert.Equal(t, int64(0), ElapsedDays(referenceNow, referenceNow))
	assert.Equal(t, int64(1), ElapsedDays(referenceNow, referenceNow.Add(-25*time.Hour)))
	assert.Equal(t, int64(-1), ElapsedDays(referenceNow, referenceNow.Add(time.Millisecond)))
	assert.Equal(t, int64(-2), ElapsedDays(referenceNow, referenceNow.Add(24*time.Hour+time.Millisecond)))
}
