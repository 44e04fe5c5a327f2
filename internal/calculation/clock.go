package calculation

import "time"

// Clock abstracts time.Now so "today" can be pinned in tests and from the
// command line.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

// Now returns T unchanged.
func (c FixedClock) Now() time.Time {
	return c.T
}
