package formatters

import (
	"fmt"
	"time"
)

const (
	dateLayout      = "02.01.2006"
	timeLayout      = "15:04"
	timestampLayout = dateLayout + ", " + timeLayout

	msPerDay = 24 * 60 * 60 * 1000

	labelToday     = "Heute"
	labelYesterday = "Gestern"
	labelDaysAgo   = "Vor %d Tagen"
)

// RelativeDate renders t relative to the formatter's clock.
//
//	same day       => "Heute, 14:32"
//	one day ago    => "Gestern, 14:32"
//	2 to 6 days    => "Vor 3 Tagen"
//	7 days or more => "07.12.2025"
//
// Days are whole 24h periods of elapsed time, not calendar days. Instants in
// the future count as zero days.
func (f *Formatter) RelativeDate(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	days := ElapsedDays(f.clock.Now(), t)
	local := t.In(f.location)

	switch {
	case days <= 0:
		return labelToday + ", " + local.Format(timeLayout)
	case days == 1:
		return labelYesterday + ", " + local.Format(timeLayout)
	case days < 7:
		return fmt.Sprintf(labelDaysAgo, days)
	}
	return local.Format(dateLayout)
}

// Date renders t as DD.MM.YYYY
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.In(f.location).Format(dateLayout)
}

// Timestamp renders t as DD.MM.YYYY, HH:MM
func (f *Formatter) Timestamp(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.In(f.location).Format(timestampLayout)
}

// ElapsedDays floors the millisecond difference now-t to whole 24h days
func ElapsedDays(now, t time.Time) int64 {
	diff := now.UnixMilli() - t.UnixMilli()
	days := diff / msPerDay
	if diff%msPerDay != 0 && diff < 0 {
		days--
	}
	return days
}

// FormatRelativeDate is RelativeDate on the default formatter
func FormatRelativeDate(t time.Time) string {
	return defaultFormatter.RelativeDate(t)
}

// FormatDate is Date on the default formatter
func FormatDate(t time.Time) string {
	return defaultFormatter.Date(t)
}

// FormatTimestamp is Timestamp on the default formatter
func FormatTimestamp(t time.Time) string {
	return defaultFormatter.Timestamp(t)
}
