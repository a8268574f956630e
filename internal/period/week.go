package period

import (
	derr "github.com/tanvik/dayplan/internal/errors"
)

// Week runs Monday through Sunday and is identified by its starting
// Monday. Two weeks are equal iff they start on the same Monday.
type Week struct {
	start Day
}

// NewWeek builds the week containing the given date.
func NewWeek(year, month, day int) (Week, error) {
	d, err := NewDay(year, month, day)
	if err != nil {
		return Week{}, err
	}
	return WeekOf(d), nil
}

// WeekOf is the week containing d.
func WeekOf(d Day) Week {
	return Week{start: d.AddDays(-d.WeekdayNumber())}
}

// CurrentWeek is the week containing today.
func CurrentWeek() Week { return WeekOf(Today()) }

// Start is the Monday this week begins on.
func (w Week) Start() Day { return w.start }

// End is the Sunday this week ends on.
func (w Week) End() Day { return w.start.AddDays(6) }

// Number is the ISO 8601 week number of the starting Monday.
func (w Week) Number() int {
	_, wk := w.start.Time().ISOWeek()
	return wk
}

// Days lists the 7 days Monday through Sunday.
func (w Week) Days() []Day {
	days := make([]Day, 7)
	for i := range days {
		days[i] = w.start.AddDays(i)
	}
	return days
}

// Day returns the day at offset weekday, 0 = Monday through 6 = Sunday.
func (w Week) Day(weekday int) (Day, error) {
	if weekday < 0 || weekday > 6 {
		return Day{}, derr.NewValidation("weekday", "weekday must be between 0 (Monday) and 6 (Sunday), got %d", weekday)
	}
	return w.start.AddDays(weekday), nil
}

func (w Week) Next() Week { return Week{start: w.start.AddDays(7)} }
func (w Week) Prev() Week { return Week{start: w.start.AddDays(-7)} }

func (w Week) Contains(d Day) bool {
	return !d.Before(w.start) && !d.After(w.End())
}

func (w Week) Equal(other Week) bool { return w.start.Equal(other.start) }

func (w Week) String() string {
	return "Week of " + w.start.ISO()
}
