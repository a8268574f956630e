package clock

import (
	"fmt"
	"strconv"
	"strings"

	derr "github.com/tanvik/dayplan/internal/errors"
)

// Time is a wall-clock instant within a day. It carries no date, so
// arithmetic that crosses midnight wraps and the caller owns the day
// rollover.
type Time struct {
	hour   int
	minute int
	second int
}

func NewTime(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, derr.NewValidation("hour", "hour must be between 0 and 23, got %d", hour)
	}
	if minute < 0 || minute > 59 {
		return Time{}, derr.NewValidation("minute", "minute must be between 0 and 59, got %d", minute)
	}
	if second < 0 || second > 59 {
		return Time{}, derr.NewValidation("second", "second must be between 0 and 59, got %d", second)
	}
	return Time{hour: hour, minute: minute, second: second}, nil
}

// Parse reads "HH:MM" or "HH:MM:SS".
func Parse(s string) (Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Time{}, derr.NewValidation("time", "expected HH:MM or HH:MM:SS, got %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Time{}, derr.NewValidation("time", "expected HH:MM or HH:MM:SS, got %q", s)
		}
		nums[i] = n
	}
	return NewTime(nums[0], nums[1], nums[2])
}

func (t Time) Hour() int   { return t.hour }
func (t Time) Minute() int { return t.minute }
func (t Time) Second() int { return t.second }

// Minutes is minutes since midnight; seconds are ignored.
func (t Time) Minutes() int { return t.hour*60 + t.minute }

func (t Time) seconds() int { return t.Minutes()*60 + t.second }

// AddMinutes returns a time delta minutes later, wrapping modulo 24h in
// either direction. Seconds are preserved. The date is not tracked:
// 23:50 plus 20 minutes is 00:10 of the conceptual next day.
func (t Time) AddMinutes(delta int) Time {
	const dayMinutes = 24 * 60
	total := (t.Minutes() + delta) % dayMinutes
	if total < 0 {
		total += dayMinutes
	}
	return Time{hour: total / 60, minute: total % 60, second: t.second}
}

// Sub is the signed difference t minus other in whole minutes.
func (t Time) Sub(other Time) int {
	return t.Minutes() - other.Minutes()
}

func (t Time) Before(other Time) bool { return t.seconds() < other.seconds() }
func (t Time) After(other Time) bool  { return t.seconds() > other.seconds() }
func (t Time) Equal(other Time) bool  { return t == other }

// Compare returns -1, 0 or 1 by wall-clock order.
func (t Time) Compare(other Time) int {
	switch {
	case t.seconds() < other.seconds():
		return -1
	case t.seconds() > other.seconds():
		return 1
	}
	return 0
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

// Format12 renders 12-hour clock notation: hour 0 is 12 AM, 12 is 12 PM.
func (t Time) Format12() string {
	hour, period := t.hour, "AM"
	switch {
	case t.hour == 0:
		hour = 12
	case t.hour == 12:
		period = "PM"
	case t.hour > 12:
		hour, period = t.hour-12, "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.minute, period)
}
