package usecase

import (
	"time"

	"adgate/internal/core/domain"
)

// Clock pins "now" and the calendar used for daily counters.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// NewClock returns a clock in loc. A nil now uses time.Now and a nil loc
// uses UTC.
func NewClock(loc *time.Location, now func() time.Time) Clock {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return Clock{now: now, loc: loc}
}

// Now returns the current instant in the engine location.
func (c Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns midnight of the current calendar day.
func (c Clock) Today() time.Time {
	return domain.Day(c.now(), c.loc)
}

// Location returns the engine location.
func (c Clock) Location() *time.Location {
	return c.loc
}
