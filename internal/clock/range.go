package clock

import (
	"fmt"

	derr "github.com/tanvik/dayplan/internal/errors"
)

// Range is a [start, end) interval within one day. End may equal start
// (a zero-duration range) but never precede it.
type Range struct {
	start Time
	end   Time
}

func NewRange(start, end Time) (Range, error) {
	if end.Before(start) {
		return Range{}, derr.NewValidation("time_range", "end time %s is before start time %s", end, start)
	}
	return Range{start: start, end: end}, nil
}

// RangeFromDuration builds a range starting at start and lasting the
// given number of minutes.
func RangeFromDuration(start Time, minutes int) (Range, error) {
	if minutes < 0 {
		return Range{}, derr.NewValidation("duration", "duration must not be negative, got %d", minutes)
	}
	return NewRange(start, start.AddMinutes(minutes))
}

func (r Range) Start() Time { return r.start }
func (r Range) End() Time   { return r.end }

// Duration is the range length in minutes.
func (r Range) Duration() int { return r.end.Sub(r.start) }

// Overlaps reports whether the two ranges share an open instant.
// Touching endpoints do not overlap: [9:00,10:00) and [10:00,11:00)
// are disjoint.
func (r Range) Overlaps(other Range) bool {
	return r.end.After(other.start) && other.end.After(r.start)
}

// OverlapMinutes is the length of the intersection, 0 when disjoint.
func (r Range) OverlapMinutes(other Range) int {
	if !r.Overlaps(other) {
		return 0
	}
	start := r.start
	if other.start.After(start) {
		start = other.start
	}
	end := r.end
	if other.end.Before(end) {
		end = other.end
	}
	return end.Sub(start)
}

// Contains reports whether t falls inside the range, endpoints included.
func (r Range) Contains(t Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

func (r Range) Equal(other Range) bool { return r == other }

func (r Range) String() string {
	return fmt.Sprintf("%s - %s", r.start, r.end)
}

// Format12 renders the range in 12-hour notation ("2:30 PM - 3:30 PM").
func (r Range) Format12() string {
	return fmt.Sprintf("%s - %s", r.start.Format12(), r.end.Format12())
}
