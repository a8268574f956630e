package period

import (
	"time"

	derr "github.com/tanvik/dayplan/internal/errors"
)

// Day is a single calendar date. The zero value is January 1, year 1;
// construct through NewDay to get validation. Days are immutable and
// usable as map keys.
type Day struct {
	t time.Time
}

// NewDay validates year/month/day as a real calendar date. Impossible
// combinations (Feb 30, April 31) are rejected.
func NewDay(year, month, day int) (Day, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Day{}, derr.NewValidation("day", "invalid date %04d-%02d-%02d", year, month, day)
	}
	return Day{t: t}, nil
}

// DayFromTime truncates a time.Time to its calendar date.
func DayFromTime(t time.Time) Day {
	return Day{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today is the current local date.
func Today() Day {
	return DayFromTime(time.Now())
}

func (d Day) Year() int  { return d.t.Year() }
func (d Day) Month() int { return int(d.t.Month()) }
func (d Day) Date() int  { return d.t.Day() }

// Weekday follows time.Weekday numbering (Sunday = 0).
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

// WeekdayName is the English weekday name ("Monday").
func (d Day) WeekdayName() string { return d.t.Weekday().String() }

// WeekdayNumber counts Monday as 0 through Sunday as 6.
func (d Day) WeekdayNumber() int {
	return (int(d.t.Weekday()) + 6) % 7
}

func (d Day) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays returns the day n days later; n may be negative.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

func (d Day) Next() Day { return d.AddDays(1) }
func (d Day) Prev() Day { return d.AddDays(-1) }

func (d Day) Equal(other Day) bool  { return d.t.Equal(other.t) }
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool  { return d.t.After(other.t) }

// Compare returns -1, 0 or 1 by calendar order.
func (d Day) Compare(other Day) int { return d.t.Compare(other.t) }

// Time exposes the underlying UTC-midnight instant.
func (d Day) Time() time.Time { return d.t }

// String formats like "Monday, January 2, 2025".
func (d Day) String() string {
	return d.t.Format("Monday, January 2, 2006")
}

// ISO formats like "2025-01-02".
func (d Day) ISO() string {
	return d.t.Format("2006-01-02")
}
