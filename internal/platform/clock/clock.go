// Package clock abstracts time so scheduling decisions and daily stats
// bucketing stay deterministic under test. All times are UTC; the day
// boundary for stats never depends on the machine's local clock.
package clock

import "time"

// Clock supplies the current time. recordResponse-style operations read it
// exactly once per call and reuse the value for every derived timestamp.
type Clock interface {
	Now() time.Time
}

// systemClock reads the wall clock, normalized to UTC.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// NewSystem returns the real UTC wall clock.
func NewSystem() Clock {
	return systemClock{}
}

// fixedClock always returns the same instant.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// NewFixed returns a clock frozen at t (normalized to UTC), for tests and
// replay tooling.
func NewFixed(t time.Time) Clock {
	return fixedClock{t: t.UTC()}
}
