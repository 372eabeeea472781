package tracker

import (
	"fmt"
	"time"
)

// DayFormat is the on-disk date layout for day rows and achievement dates.
const DayFormat = "2006-01-02"

// Day is a calendar date with no time-of-day component.
// The zero value is not a valid day; construct via DayOf or ParseDay.
type Day struct {
	year  int
	month time.Month
	day   int
}

// DayOf truncates t to its calendar date in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

func (d Day) String() string {
	return d.time().Format(DayFormat)
}

// AddDays returns the day n calendar days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.time().AddDate(0, 0, n))
}

func (d Day) Before(other Day) bool {
	return d.time().Before(other.time())
}

func (d Day) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}
