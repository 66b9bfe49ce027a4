package clock

import (
	"time"

	"github.com/julianstephens/habitctl/internal/constants"
)

// Clock is the single source of "now" for the domain. Injecting it lets tests
// drive time-sensitive habit logic with deterministic dates.
type Clock interface {
	Now() time.Time
}

// System reads the host's local time.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// At returns a Fixed clock for the given date string (YYYY-MM-DD) and hour.
// Invalid dates yield the zero time; callers own the input.
func At(date string, hour int) Fixed {
	t, _ := time.ParseInLocation(constants.DateFormat, date, time.Local)
	return Fixed(t.Add(time.Duration(hour) * time.Hour))
}

// Today returns the clock's current civil date (YYYY-MM-DD, local).
func Today(c Clock) string {
	return c.Now().Format(constants.DateFormat)
}

// Hour returns the clock's current hour of day (0..23).
func Hour(c Clock) int {
	return c.Now().Hour()
}

// PreviousDay returns the civil date immediately before the given one.
// An unparseable date yields "".
func PreviousDay(date string) string {
	t, err := time.ParseInLocation(constants.DateFormat, date, time.Local)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat)
}
