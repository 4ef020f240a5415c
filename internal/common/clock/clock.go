package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/tutortrack/internal/common/clock Clock

// Clock is the only source of "now" for services and repositories. The
// accounting engine never reads it directly; callers pass the time in.
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock in the
// configured location
type DefaultClock struct {
	loc *time.Location
}

// New returns a clock reporting local wall-clock time. A nil location means
// the process-wide local time zone.
func New(loc *time.Location) *DefaultClock {
	if loc == nil {
		loc = time.Local
	}
	return &DefaultClock{loc: loc}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	if c == nil || c.loc == nil {
		return time.Now()
	}
	return time.Now().In(c.loc)
}
