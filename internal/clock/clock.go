// Package clock abstracts the current time so date-sensitive logic can be
// tested deterministically.
package clock

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System is the wall clock, in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Today formats c's current date as YYYY-MM-DD in UTC.
func Today(c Clock) string {
	return c.Now().UTC().Format("2006-01-02")
}
