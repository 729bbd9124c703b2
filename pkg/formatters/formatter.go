// Package formatters turns raw dashboard values into de-DE display strings.
//
// Every function is total: values outside the documented domain render as
// NotAvailable instead of failing. Callers that need to reject bad input up
// front use CheckValue and CheckDuration.
package formatters

import (
	"math"
	"time"

	"github.com/Slach/dashboard-kit/pkg/clock"
	"github.com/pkg/errors"
)

const (
	// DefaultDecimals is used when a formatter is called without a decimal count
	DefaultDecimals = 1
	maxDecimals     = 20

	// NotAvailable is rendered for NaN, infinite values and zero instants
	NotAvailable = "n/a"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Formatter renders instants relative to an injected clock in a fixed location.
// The zero value is not usable, use NewFormatter.
type Formatter struct {
	clock    clock.Clock
	location *time.Location
}

// NewFormatter creates a Formatter. A nil clock falls back to the wall clock,
// a nil location to time.Local.
func NewFormatter(c clock.Clock, loc *time.Location) *Formatter {
	if c == nil {
		c = clock.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{clock: c, location: loc}
}

// Location returns the location instants are rendered in
func (f *Formatter) Location() *time.Location {
	return f.location
}

// Now returns the formatter's notion of the current time
func (f *Formatter) Now() time.Time {
	return f.clock.Now()
}

var defaultFormatter = NewFormatter(nil, nil)

// Default returns the package level formatter backed by the wall clock and time.Local
func Default() *Formatter {
	return defaultFormatter
}

// CheckValue reports NaN and infinite values as ErrInvalidArgument
func CheckValue(value float64) error {
	if !isFinite(value) {
		return errors.Wrapf(ErrInvalidArgument, "value %v is not a finite number", value)
	}
	return nil
}

// CheckDuration is CheckValue plus a rejection of negative minute counts
func CheckDuration(minutes float64) error {
	if err := CheckValue(minutes); err != nil {
		return err
	}
	if minutes < 0 {
		return errors.Wrapf(ErrInvalidArgument, "duration %v min is negative", minutes)
	}
	return nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// resolveDecimals picks the optional decimal count, clamped to [0, maxDecimals]
func resolveDecimals(decimals []int) int {
	d := DefaultDecimals
	if len(decimals) > 0 {
		d = decimals[0]
	}
	if d < 0 {
		return 0
	}
	if d > maxDecimals {
		return maxDecimals
	}
	return d
}
