// Package clock abstracts "now" so date-dependent logic can run against
// a fixed instant in tests.
package clock

import "time"

// DateLayout is the storage format of task and expense dates.
const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type systemClock struct{ loc *time.Location }

// System returns the wall clock, reported in loc (time.Local when nil).
func System(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time { return time.Now().In(c.loc) }

type fixedClock struct{ t time.Time }

// Fixed always returns t.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

func (c fixedClock) Now() time.Time { return c.t }

// Today returns the calendar date of c.Now() as midnight UTC, the same
// representation ParseDate produces, so differences are whole days.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DateOf drops the time of day from t, keeping t's calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD value.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DaysBetween returns to - from in whole days. Both must be values from
// DateOf or ParseDate.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
