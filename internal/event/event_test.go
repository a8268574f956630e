package event

import (
	"testing"

	"github.com/tanvik/dayplan/internal/clock"
	"github.com/tanvik/dayplan/internal/period"
)

func testDay(t *testing.T, y, m, d int) period.Day {
	t.Helper()
	day, err := period.NewDay(y, m, d)
	if err != nil {
		t.Fatalf("NewDay failed: %v", err)
	}
	return day
}

func testRange(t *testing.T, sh, sm, eh, em int) clock.Range {
	t.Helper()
	start, err := clock.NewTime(sh, sm, 0)
	if err != nil {
		t.Fatalf("NewTime failed: %v", err)
	}
	end, err := clock.NewTime(eh, em, 0)
	if err != nil {
		t.Fatalf("NewTime failed: %v", err)
	}
	rng, err := clock.NewRange(start, end)
	if err != nil {
		t.Fatalf("NewRange failed: %v", err)
	}
	return rng
}

func newAppointment(t *testing.T, title string, day period.Day, rng clock.Range, opts Options) *Event {
	t.Helper()
	d := DefaultAppointmentDetails()
	ev, err := New(title, day, rng, &d, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return ev
}

func TestNewDefaults(t *testing.T) {
	day := testDay(t, 2025, 6, 16)
	ev := newAppointment(t, "Dentist", day, testRange(t, 10, 0, 11, 0), Options{})

	if ev.ID == "" {
		t.Error("ID should be generated")
	}
	if ev.Status != StatusScheduled {
		t.Errorf("Status = %s, want scheduled", ev.Status)
	}
	if ev.Priority != PriorityMedium {
		t.Errorf("Priority = %s, want MEDIUM", ev.Priority.Name())
	}
	if ev.Kind() != KindAppointment {
		t.Errorf("Kind = %s", ev.Kind())
	}
	if ev.Duration() != 60 {
		t.Errorf("Duration = %d, want 60", ev.Duration())
	}
}

func TestNewRejectsNilDetails(t *testing.T) {
	if _, err := New("x", testDay(t, 2025, 1, 1), testRange(t, 9, 0, 10, 0), nil, Options{}); err == nil {
		t.Error("nil details should fail")
	}
}

func TestNewRejectsInvalidPriority(t *testing.T) {
	d := DefaultAppointmentDetails()
	_, err := New("x", testDay(t, 2025, 1, 1), testRange(t, 9, 0, 10, 0), &d, Options{Priority: Priority(9)})
	if err == nil {
		t.Error("priority 9 should fail")
	}
}

func TestDoctorDefaultsToHighPriority(t *testing.T) {
	d := DefaultDoctorDetails()
	ev, err := New("Checkup", testDay(t, 2025, 6, 16), testRange(t, 10, 0, 11, 0), &d, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if ev.Priority != PriorityHigh {
		t.Errorf("doctor Priority = %s, want HIGH", ev.Priority.Name())
	}

	// An explicit priority wins over the variant default.
	d2 := DefaultDoctorDetails()
	ev2, err := New("Checkup", testDay(t, 2025, 6, 16), testRange(t, 10, 0, 11, 0), &d2, Options{Priority: PriorityLow})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if ev2.Priority != PriorityLow {
		t.Errorf("explicit Priority = %s, want LOW", ev2.Priority.Name())
	}
}

func TestConflictsWith(t *testing.T) {
	day := testDay(t, 2025, 6, 16)
	a := newAppointment(t, "A", day, testRange(t, 9, 0, 11, 0), Options{})
	b := newAppointment(t, "B", day, testRange(t, 10, 0, 12, 0), Options{})
	c := newAppointment(t, "C", day, testRange(t, 11, 0, 12, 0), Options{})
	otherDay := newAppointment(t, "D", day.Next(), testRange(t, 9, 0, 11, 0), Options{})

	if !a.ConflictsWith(b) || !b.ConflictsWith(a) {
		t.Error("overlapping same-day events should conflict both ways")
	}
	if a.ConflictsWith(c) {
		t.Error("touching ranges should not conflict")
	}
	if a.ConflictsWith(otherDay) {
		t.Error("different days should never conflict")
	}
}

func TestTags(t *testing.T) {
	ev := newAppointment(t, "A", testDay(t, 2025, 6, 16), testRange(t, 9, 0, 10, 0),
		Options{Tags: []string{"work", "urgent", "work"}})

	if len(ev.Tags) != 2 {
		t.Fatalf("duplicate tags should be dropped, got %v", ev.Tags)
	}
	if ev.Tags[0] != "work" || ev.Tags[1] != "urgent" {
		t.Errorf("tag order should be preserved, got %v", ev.Tags)
	}

	ev.RemoveTag("work")
	if ev.HasTag("work") || !ev.HasTag("urgent") {
		t.Errorf("after removal Tags = %v", ev.Tags)
	}
	ev.RemoveTag("missing") // no-op
}

func TestRescheduleSetsStatus(t *testing.T) {
	ev := newAppointment(t, "A", testDay(t, 2025, 6, 16), testRange(t, 9, 0, 10, 0), Options{})
	newDay := testDay(t, 2025, 6, 17)
	newRange := testRange(t, 14, 0, 15, 0)

	ev.Reschedule(newDay, newRange)
	if !ev.Day.Equal(newDay) || !ev.Range.Equal(newRange) {
		t.Error("Reschedule should move the event")
	}
	if ev.Status != StatusRescheduled {
		t.Errorf("Status = %s, want rescheduled", ev.Status)
	}
}

func TestNextOccurrence(t *testing.T) {
	d := DefaultChoreDetails()
	d.IsRecurring = true
	d.RecurrenceDays = 7
	ev, err := New("Laundry", testDay(t, 2025, 6, 16), testRange(t, 9, 0, 10, 0), &d,
		Options{Tags: []string{"home"}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	next := ev.NextOccurrence()
	if next == nil {
		t.Fatal("recurring chore should have a next occurrence")
	}
	if next.ID == ev.ID {
		t.Error("next occurrence should get a fresh ID")
	}
	if got := next.Day.ISO(); got != "2025-06-23" {
		t.Errorf("next Day = %s, want 2025-06-23", got)
	}
	if next.Status != StatusScheduled {
		t.Errorf("next Status = %s, want scheduled", next.Status)
	}

	// Tags and details are copies, not aliases.
	next.AddTag("extra")
	if ev.HasTag("extra") {
		t.Error("mutating the copy should not touch the original")
	}
	next.Details.(*ChoreDetails).Category = "Changed"
	if ev.Details.(*ChoreDetails).Category == "Changed" {
		t.Error("details should be copied by value")
	}
}

func TestNextOccurrenceNonRecurring(t *testing.T) {
	d := DefaultChoreDetails()
	ev, err := New("Dishes", testDay(t, 2025, 6, 16), testRange(t, 9, 0, 10, 0), &d, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if ev.NextOccurrence() != nil {
		t.Error("non-recurring chore should have no next occurrence")
	}

	appt := newAppointment(t, "A", testDay(t, 2025, 6, 16), testRange(t, 9, 0, 10, 0), Options{})
	if appt.NextOccurrence() != nil {
		t.Error("non-chore should have no next occurrence")
	}
}

func TestSnapshot(t *testing.T) {
	d := DefaultMeetingDetails()
	d.Organizer = "Sam"
	d.Attendees = []string{"Ana", "Bo"}
	ev, err := New("Standup", testDay(t, 2025, 6, 16), testRange(t, 9, 0, 9, 30), &d, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	snap := ev.Snapshot()
	if snap["type"] != string(KindMeeting) {
		t.Errorf("type = %v", snap["type"])
	}
	if snap["duration_minutes"] != 30 {
		t.Errorf("duration_minutes = %v", snap["duration_minutes"])
	}
	if snap["organizer"] != "Sam" {
		t.Errorf("organizer = %v", snap["organizer"])
	}
	if tags, ok := snap["tags"].([]string); !ok || tags == nil {
		t.Error("tags should be a non-nil slice")
	}
}

func TestParseHelpers(t *testing.T) {
	if _, err := ParseKind("Gym Time"); err != nil {
		t.Errorf("ParseKind failed: %v", err)
	}
	if _, err := ParseKind("Bogus"); err == nil {
		t.Error("unknown kind should fail")
	}

	p, err := ParsePriority("URGENT")
	if err != nil || p != PriorityUrgent {
		t.Errorf("ParsePriority = %v, %v", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("priority tokens are case-sensitive")
	}

	st, err := ParseStatus("in_progress")
	if err != nil || st != StatusInProgress {
		t.Errorf("ParseStatus = %v, %v", st, err)
	}
	if _, err := ParseStatus("done"); err == nil {
		t.Error("unknown status should fail")
	}
}
