package event

import (
	derr "github.com/tanvik/dayplan/internal/errors"
)

// Kind tags the closed set of event variants.
type Kind string

const (
	KindAppointment Kind = "Appointment"
	KindDoctor      Kind = "Doctor Appointment"
	KindChore       Kind = "Chore"
	KindMeeting     Kind = "Work Meeting"
	KindGym         Kind = "Gym Time"
	KindPersonal    Kind = "Personal Event"
)

// Kinds lists every variant tag in declaration order.
func Kinds() []Kind {
	return []Kind{KindAppointment, KindDoctor, KindChore, KindMeeting, KindGym, KindPersonal}
}

// ParseKind resolves a case-sensitive kind token.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", derr.NewValidation("event_type", "unknown event type %q", s)
}

type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4
)

// Name is the enumeration token ("LOW" through "URGENT").
func (p Priority) Name() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	case PriorityUrgent:
		return "URGENT"
	}
	return "UNKNOWN"
}

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

// ParsePriority resolves a case-sensitive priority token from the
// closed set; anything else is rejected.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "LOW":
		return PriorityLow, nil
	case "MEDIUM":
		return PriorityMedium, nil
	case "HIGH":
		return PriorityHigh, nil
	case "URGENT":
		return PriorityUrgent, nil
	}
	return 0, derr.NewValidation("priority", "unknown priority %q (want LOW, MEDIUM, HIGH or URGENT)", s)
}

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// ParseStatus resolves a case-sensitive status token from the closed set.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", derr.NewValidation("status", "unknown status %q", s)
	}
	return st, nil
}
