package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock
var SystemClock Clock = ClockFunc(time.Now)

// FixedYearClock reports the first instant of year, in UTC
func FixedYearClock(year int) Clock {
	at := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return ClockFunc(func() time.Time { return at })
}

// CurrentYear returns the calendar year of clock, using the system clock when nil
func CurrentYear(clock Clock) int {
	if clock == nil {
		clock = SystemClock
	}
	return clock.Now().Year()
}

// ClockForYear returns a fixed clock for a positive override year, otherwise the system clock.
// Used when configuration pins the calendar year.
func ClockForYear(year int) Clock {
	if year <= 0 {
		if year < 0 {
			log.Warn().Int("year", year).Msg("Ignoring negative current year override, using system clock")
		}
		return SystemClock
	}
	return FixedYearClock(year)
}
