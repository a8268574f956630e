package schedule

import (
	"sort"
	"sync"

	"github.com/tanvik/dayplan/internal/clock"
	derr "github.com/tanvik/dayplan/internal/errors"
	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/period"
)

// DefaultWindow is the working window used for free-slot search:
// [09:00, 21:00).
func DefaultWindow() clock.Range {
	start, _ := clock.NewTime(9, 0, 0)
	end, _ := clock.NewTime(21, 0, 0)
	r, _ := clock.NewRange(start, end)
	return r
}

// Schedule owns a collection of events plus a day index kept in sync
// incrementally on add and remove. A single mutex covers both, since an
// add or remove touches the list and the index as a non-atomic pair.
//
// Events are held by identity: the same *Event must not be added twice,
// and a schedule-owned event's Day must only change via Reschedule.
type Schedule struct {
	mu     sync.Mutex
	name   string
	events []*event.Event
	byDay  map[period.Day][]*event.Event
	window clock.Range
}

func New(name string) *Schedule {
	return &Schedule{
		name:   name,
		byDay:  make(map[period.Day][]*event.Event),
		window: DefaultWindow(),
	}
}

func (s *Schedule) Name() string { return s.name }

// SetWindow overrides the working window used by FreeSlots.
func (s *Schedule) SetWindow(w clock.Range) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = w
}

// AddEvent registers ev. With checkConflicts set it refuses, returning
// a ConflictError and leaving the schedule untouched, when ev overlaps
// any event already on its day.
func (s *Schedule) AddEvent(ev *event.Event, checkConflicts bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if checkConflicts {
		if conflicts := s.conflictingLocked(ev); len(conflicts) > 0 {
			titles := make([]string, len(conflicts))
			for i, c := range conflicts {
				titles[i] = c.Title
			}
			return &derr.ConflictError{Title: ev.Title, Conflicts: titles}
		}
	}
	s.addLocked(ev)
	return nil
}

func (s *Schedule) addLocked(ev *event.Event) {
	s.events = append(s.events, ev)
	s.byDay[ev.Day] = append(s.byDay[ev.Day], ev)
}

// RemoveEvent removes ev by identity from the list and its day bucket.
// It reports whether the event was found.
func (s *Schedule) RemoveEvent(ev *event.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ev)
}

func (s *Schedule) removeLocked(ev *event.Event) bool {
	found := false
	for i, e := range s.events {
		if e == ev {
			s.events = append(s.events[:i], s.events[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}
	bucket := s.byDay[ev.Day]
	for i, e := range bucket {
		if e == ev {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(s.byDay, ev.Day)
	} else {
		s.byDay[ev.Day] = bucket
	}
	return true
}

// Reschedule is the sanctioned way to move a schedule-owned event: it
// removes the event from its current bucket, rewrites day and range
// (forcing status to rescheduled), and re-indexes it. A failed lookup
// mutates nothing.
func (s *Schedule) Reschedule(ev *event.Event, day period.Day, rng clock.Range) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.removeLocked(ev) {
		return &derr.NotFoundError{Resource: "event", Name: ev.Title}
	}
	ev.Reschedule(day, rng)
	s.addLocked(ev)
	return nil
}

// EventsOnDay lists the day's events sorted ascending by start time;
// equal starts keep insertion order.
func (s *Schedule) EventsOnDay(day period.Day) []*event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eventsOnDayLocked(day)
}

func (s *Schedule) eventsOnDayLocked(day period.Day) []*event.Event {
	bucket := s.byDay[day]
	out := append([]*event.Event(nil), bucket...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Range.Start().Before(out[j].Range.Start())
	})
	return out
}

// EventsInWeek lists each day's sorted events, Monday through Sunday.
func (s *Schedule) EventsInWeek(w period.Week) []*event.Event {
	var out []*event.Event
	for _, d := range w.Days() {
		out = append(out, s.EventsOnDay(d)...)
	}
	return out
}

func (s *Schedule) EventsInMonth(m period.Month) []*event.Event {
	var out []*event.Event
	for _, d := range m.Days() {
		out = append(out, s.EventsOnDay(d)...)
	}
	return out
}

func (s *Schedule) EventsInYear(y period.Year) []*event.Event {
	return s.Filter(func(e *event.Event) bool { return y.Contains(e.Day) })
}

// EventsInRange lists events with start <= day <= end, in insertion
// order.
func (s *Schedule) EventsInRange(start, end period.Day) []*event.Event {
	return s.Filter(func(e *event.Event) bool {
		return !e.Day.Before(start) && !e.Day.After(end)
	})
}

// ConflictingEvents scans only ev's day bucket and returns every other
// event whose range overlaps ev's. The event itself is excluded by
// identity.
func (s *Schedule) ConflictingEvents(ev *event.Event) []*event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conflictingLocked(ev)
}

func (s *Schedule) conflictingLocked(ev *event.Event) []*event.Event {
	var out []*event.Event
	for _, other := range s.eventsOnDayLocked(ev.Day) {
		if other != ev && ev.ConflictsWith(other) {
			out = append(out, other)
		}
	}
	return out
}

func (s *Schedule) HasConflicts(ev *event.Event) bool {
	return len(s.ConflictingEvents(ev)) > 0
}

func (s *Schedule) EventsByKind(k event.Kind) []*event.Event {
	return s.Filter(func(e *event.Event) bool { return e.Kind() == k })
}

func (s *Schedule) EventsByPriority(p event.Priority) []*event.Event {
	return s.Filter(func(e *event.Event) bool { return e.Priority == p })
}

func (s *Schedule) EventsByStatus(st event.Status) []*event.Event {
	return s.Filter(func(e *event.Event) bool { return e.Status == st })
}

func (s *Schedule) EventsByTag(tag string) []*event.Event {
	return s.Filter(func(e *event.Event) bool { return e.HasTag(tag) })
}

// Filter returns the events matching pred in insertion order.
func (s *Schedule) Filter(pred func(*event.Event) bool) []*event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*event.Event
	for _, e := range s.events {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Upcoming lists events with day >= from sorted by (day, start time)
// ascending, truncated to limit when limit > 0.
func (s *Schedule) Upcoming(from period.Day, limit int) []*event.Event {
	out := s.Filter(func(e *event.Event) bool { return !e.Day.Before(from) })
	sortByDayAndStart(out, false)
	return truncate(out, limit)
}

// Past lists events with day < until sorted by (day, start time)
// descending, truncated to limit when limit > 0.
func (s *Schedule) Past(until period.Day, limit int) []*event.Event {
	out := s.Filter(func(e *event.Event) bool { return e.Day.Before(until) })
	sortByDayAndStart(out, true)
	return truncate(out, limit)
}

func sortByDayAndStart(events []*event.Event, desc bool) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if desc {
			a, b = b, a
		}
		if c := a.Day.Compare(b.Day); c != 0 {
			return c < 0
		}
		return a.Range.Start().Before(b.Range.Start())
	})
}

func truncate(events []*event.Event, limit int) []*event.Event {
	if limit > 0 && len(events) > limit {
		return events[:limit]
	}
	return events
}

// FreeSlots walks the day's events in start order and collects the gaps
// of at least minDuration minutes inside the working window. A day with
// no events yields the whole window as a single slot regardless of
// minDuration; callers rely on that behavior. Events are assumed
// non-overlapping: the cursor only advances, so an event nested inside
// an earlier one does not pull it back.
func (s *Schedule) FreeSlots(day period.Day, minDuration int) []clock.Range {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.eventsOnDayLocked(day)
	window := s.window
	if len(events) == 0 {
		return []clock.Range{window}
	}

	var slots []clock.Range
	cursor := window.Start()
	for _, ev := range events {
		start := ev.Range.Start()
		if start.Sub(cursor) >= minDuration {
			if gap, err := clock.NewRange(cursor, start); err == nil {
				slots = append(slots, gap)
			}
		}
		if ev.Range.End().After(cursor) {
			cursor = ev.Range.End()
		}
	}
	if window.End().Sub(cursor) >= minDuration {
		if gap, err := clock.NewRange(cursor, window.End()); err == nil {
			slots = append(slots, gap)
		}
	}
	return slots
}

// DayCount pairs a day with its event count.
type DayCount struct {
	Day   period.Day
	Count int
}

// BusiestDays counts events per day and returns the top limit entries
// by count descending; ties keep first-encountered order.
func (s *Schedule) BusiestDays(limit int) []DayCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[period.Day]int)
	var order []period.Day
	for _, e := range s.events {
		if counts[e.Day] == 0 {
			order = append(order, e.Day)
		}
		counts[e.Day]++
	}

	out := make([]DayCount, 0, len(order))
	for _, d := range order {
		out = append(out, DayCount{Day: d, Count: counts[d]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TotalMinutes sums durations across every event in the schedule.
func (s *Schedule) TotalMinutes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, e := range s.events {
		total += e.Duration()
	}
	return total
}

// TotalMinutesOn sums durations for one day only.
func (s *Schedule) TotalMinutesOn(day period.Day) int {
	total := 0
	for _, e := range s.EventsOnDay(day) {
		total += e.Duration()
	}
	return total
}

// Statistics aggregates schedule-wide counts and durations.
type Statistics struct {
	TotalEvents           int                `json:"total_events"`
	UpcomingEvents        int                `json:"upcoming_events"`
	CompletedEvents       int                `json:"completed_events"`
	CancelledEvents       int                `json:"cancelled_events"`
	EventsByType          map[string]int     `json:"events_by_type"`
	TotalScheduledMinutes int                `json:"total_scheduled_minutes"`
	AverageEventDuration  float64            `json:"average_event_duration"`
}

// Stats computes Statistics as of fromDay (the cutoff for the upcoming
// count). An empty schedule yields zero values, never a division by
// zero.
func (s *Schedule) Stats(fromDay period.Day) Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Statistics{EventsByType: make(map[string]int)}
	totalMinutes := 0
	for _, e := range s.events {
		st.TotalEvents++
		st.EventsByType[string(e.Kind())]++
		totalMinutes += e.Duration()
		if !e.Day.Before(fromDay) {
			st.UpcomingEvents++
		}
		switch e.Status {
		case event.StatusCompleted:
			st.CompletedEvents++
		case event.StatusCancelled:
			st.CancelledEvents++
		}
	}
	st.TotalScheduledMinutes = totalMinutes
	if st.TotalEvents > 0 {
		st.AverageEventDuration = float64(totalMinutes) / float64(st.TotalEvents)
	}
	return st
}

// Clear removes every event.
func (s *Schedule) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
	s.byDay = make(map[period.Day][]*event.Event)
}

func (s *Schedule) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// Events lists every event in insertion order.
func (s *Schedule) Events() []*event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*event.Event(nil), s.events...)
}

// FindByTitle returns the first event with the given title, or a
// NotFoundError. Lookup never mutates state.
func (s *Schedule) FindByTitle(title string) (*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.Title == title {
			return e, nil
		}
	}
	return nil, &derr.NotFoundError{Resource: "event", Name: title}
}
