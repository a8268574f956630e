package period

import (
	"fmt"
	"time"

	derr "github.com/tanvik/dayplan/internal/errors"
)

// Month is a (year, month) pair. Day counts come from calendar rules,
// leap-year February included.
type Month struct {
	year  int
	month int
}

func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, derr.NewValidation("month", "month must be between 1 and 12, got %d", month)
	}
	return Month{year: year, month: month}, nil
}

// CurrentMonth is the month containing today.
func CurrentMonth() Month {
	t := Today()
	return Month{year: t.Year(), month: t.Month()}
}

func (m Month) Year() int  { return m.year }
func (m Month) Month() int { return m.month }

// Name is the English month name ("January").
func (m Month) Name() string { return time.Month(m.month).String() }

// NumDays is the number of days in the month.
func (m Month) NumDays() int {
	// Day 0 of the next month normalizes to this month's last day.
	return time.Date(m.year, time.Month(m.month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (m Month) First() Day {
	d, _ := NewDay(m.year, m.month, 1)
	return d
}

func (m Month) Last() Day {
	d, _ := NewDay(m.year, m.month, m.NumDays())
	return d
}

// Days lists every day of the month in order.
func (m Month) Days() []Day {
	n := m.NumDays()
	days := make([]Day, 0, n)
	d := m.First()
	for i := 0; i < n; i++ {
		days = append(days, d)
		d = d.Next()
	}
	return days
}

// Weeks lists the distinct weeks intersecting the month, in
// first-encountered order. A month spans 4 to 6 weeks.
func (m Month) Weeks() []Week {
	var weeks []Week
	seen := make(map[Day]bool)
	for _, d := range m.Days() {
		w := WeekOf(d)
		if !seen[w.Start()] {
			weeks = append(weeks, w)
			seen[w.Start()] = true
		}
	}
	return weeks
}

func (m Month) Next() Month {
	if m.month == 12 {
		return Month{year: m.year + 1, month: 1}
	}
	return Month{year: m.year, month: m.month + 1}
}

func (m Month) Prev() Month {
	if m.month == 1 {
		return Month{year: m.year - 1, month: 12}
	}
	return Month{year: m.year, month: m.month - 1}
}

func (m Month) Contains(d Day) bool {
	return d.Year() == m.year && d.Month() == m.month
}

func (m Month) Equal(other Month) bool {
	return m.year == other.year && m.month == other.month
}

func (m Month) Before(other Month) bool {
	if m.year != other.year {
		return m.year < other.year
	}
	return m.month < other.month
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Name(), m.year)
}
