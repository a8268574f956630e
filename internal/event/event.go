package event

import (
	"github.com/google/uuid"

	"github.com/tanvik/dayplan/internal/clock"
	derr "github.com/tanvik/dayplan/internal/errors"
	"github.com/tanvik/dayplan/internal/period"
)

// Event is a dated, timed entry in a schedule. The common fields live
// here; the variant-specific payload is the Details value. Events are
// created fully formed and mutated in place through the methods below.
//
// Once an event is owned by a Schedule its Day and Range must only
// change through Schedule.Reschedule, which keeps the day index
// consistent. Direct field writes bypass that maintenance.
type Event struct {
	ID          string
	Title       string
	Day         period.Day
	Range       clock.Range
	Description string
	Priority    Priority
	Status      Status
	Tags        []string
	Notes       string
	Details     Details
}

// Details is the per-kind payload. The variant set is closed: the kind
// method is unexported so only this package's types satisfy it.
type Details interface {
	kind() Kind
	snapshot(into map[string]any)
}

// Options carries the optional common fields of a new event. A zero
// Priority means "use the variant default".
type Options struct {
	Description string
	Priority    Priority
	Tags        []string
	Notes       string
}

// New builds an event of the kind carried by details. Status starts as
// scheduled. Tag order is preserved and duplicates are dropped.
func New(title string, day period.Day, rng clock.Range, details Details, opts Options) (*Event, error) {
	if details == nil {
		return nil, derr.NewValidation("details", "event details must not be nil")
	}
	if opts.Priority != 0 && !opts.Priority.Valid() {
		return nil, derr.NewValidation("priority", "invalid priority value %d", int(opts.Priority))
	}
	ev := &Event{
		ID:          uuid.NewString(),
		Title:       title,
		Day:         day,
		Range:       rng,
		Description: opts.Description,
		Priority:    resolvePriority(opts.Priority, details),
		Status:      StatusScheduled,
		Notes:       opts.Notes,
		Details:     details,
	}
	for _, tag := range opts.Tags {
		ev.AddTag(tag)
	}
	return ev, nil
}

// resolvePriority applies the variant default when the caller omitted a
// priority. Doctor appointments default to HIGH, everything else to
// MEDIUM.
func resolvePriority(requested Priority, details Details) Priority {
	if requested != 0 {
		return requested
	}
	if details.kind() == KindDoctor {
		return PriorityHigh
	}
	return PriorityMedium
}

func (e *Event) Kind() Kind { return e.Details.kind() }

// Duration is the event length in minutes.
func (e *Event) Duration() int { return e.Range.Duration() }

// ConflictsWith reports whether the two events are on the same day with
// overlapping ranges. Touching ranges do not conflict.
func (e *Event) ConflictsWith(other *Event) bool {
	if !e.Day.Equal(other.Day) {
		return false
	}
	return e.Range.Overlaps(other.Range)
}

// Status mutators are unguarded: any status is reachable from any other.

func (e *Event) MarkCompleted()  { e.Status = StatusCompleted }
func (e *Event) MarkCancelled()  { e.Status = StatusCancelled }
func (e *Event) MarkInProgress() { e.Status = StatusInProgress }

// Reschedule moves the event and forces status to rescheduled. For
// events owned by a Schedule, use Schedule.Reschedule instead so the
// day index follows.
func (e *Event) Reschedule(day period.Day, rng clock.Range) {
	e.Day = day
	e.Range = rng
	e.Status = StatusRescheduled
}

// AddTag appends tag unless already present.
func (e *Event) AddTag(tag string) {
	if !e.HasTag(tag) {
		e.Tags = append(e.Tags, tag)
	}
}

// RemoveTag drops tag if present.
func (e *Event) RemoveTag(tag string) {
	for i, t := range e.Tags {
		if t == tag {
			e.Tags = append(e.Tags[:i], e.Tags[i+1:]...)
			return
		}
	}
}

func (e *Event) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NextOccurrence returns a fresh copy of a recurring chore dated
// RecurrenceDays after this one, tags copied by value and the original
// untouched. It returns nil for non-chores and non-recurring chores.
func (e *Event) NextOccurrence() *Event {
	chore, ok := e.Details.(*ChoreDetails)
	if !ok || !chore.IsRecurring {
		return nil
	}
	next := *chore
	return &Event{
		ID:          uuid.NewString(),
		Title:       e.Title,
		Day:         e.Day.AddDays(chore.RecurrenceDays),
		Range:       e.Range,
		Description: e.Description,
		Priority:    e.Priority,
		Status:      StatusScheduled,
		Tags:        append([]string(nil), e.Tags...),
		Notes:       e.Notes,
		Details:     &next,
	}
}

// Snapshot flattens the event into a field map suitable for
// serialization: the common fields plus the variant-specific ones.
func (e *Event) Snapshot() map[string]any {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	m := map[string]any{
		"id":               e.ID,
		"type":             string(e.Kind()),
		"title":            e.Title,
		"day":              e.Day.String(),
		"time_range":       e.Range.String(),
		"description":      e.Description,
		"priority":         e.Priority.Name(),
		"status":           string(e.Status),
		"tags":             tags,
		"notes":            e.Notes,
		"duration_minutes": e.Duration(),
	}
	e.Details.snapshot(m)
	return m
}

func (e *Event) String() string {
	return string(e.Kind()) + ": " + e.Title + " on " + e.Day.String() + " at " + e.Range.Format12()
}
