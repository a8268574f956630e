package period

import (
	"fmt"

	derr "github.com/tanvik/dayplan/internal/errors"
)

// Year is a calendar year; leapness is derived, never stored by callers.
type Year struct {
	year int
}

func NewYear(year int) Year { return Year{year: year} }

// CurrentYear is the year containing today.
func CurrentYear() Year { return Year{year: Today().Year()} }

func (y Year) Year() int { return y.year }

func (y Year) IsLeap() bool {
	return y.year%4 == 0 && (y.year%100 != 0 || y.year%400 == 0)
}

func (y Year) NumDays() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// Months lists the 12 months in order.
func (y Year) Months() []Month {
	months := make([]Month, 12)
	for i := range months {
		months[i] = Month{year: y.year, month: i + 1}
	}
	return months
}

func (y Year) Month(month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, derr.NewValidation("month", "month must be between 1 and 12, got %d", month)
	}
	return Month{year: y.year, month: month}, nil
}

// Days lists every day of the year, 365 or 366 entries.
func (y Year) Days() []Day {
	days := make([]Day, 0, y.NumDays())
	for _, m := range y.Months() {
		days = append(days, m.Days()...)
	}
	return days
}

func (y Year) Next() Year { return Year{year: y.year + 1} }
func (y Year) Prev() Year { return Year{year: y.year - 1} }

func (y Year) Contains(d Day) bool { return d.Year() == y.year }

func (y Year) ContainsMonth(m Month) bool { return m.Year() == y.year }

func (y Year) Equal(other Year) bool  { return y.year == other.year }
func (y Year) Before(other Year) bool { return y.year < other.year }

func (y Year) String() string {
	if y.IsLeap() {
		return fmt.Sprintf("Year %d (leap)", y.year)
	}
	return fmt.Sprintf("Year %d", y.year)
}
