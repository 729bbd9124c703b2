package clock

import "time"

// Clock provides the current instant to code that renders time relative to "now".
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// RealClock reads the system wall clock
type RealClock struct{}

// NewRealClock creates a new RealClock instance
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a FixedClock pinned to t
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// Now returns the pinned time
func (c *FixedClock) Now() time.Time {
	return c.current
}

// Advance moves the pinned time by d
func (c *FixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Set pins the clock to t
func (c *FixedClock) Set(t time.Time) {
	c.current = t
}

// Since returns the time elapsed between t and c.Now()
func Since(c Clock, t time.Time) time.Duration {
	return c.Now().Sub(t)
}
