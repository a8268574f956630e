package event

import (
	"github.com/tanvik/dayplan/internal/clock"
)

// AppointmentDetails is the payload of a general appointment.
type AppointmentDetails struct {
	Location        string
	Attendees       []string
	ReminderMinutes int
}

// DefaultAppointmentDetails carries the stock 15-minute reminder.
func DefaultAppointmentDetails() AppointmentDetails {
	return AppointmentDetails{ReminderMinutes: 15}
}

func (*AppointmentDetails) kind() Kind { return KindAppointment }

func (d *AppointmentDetails) snapshot(into map[string]any) {
	into["location"] = d.Location
	into["attendees"] = stringList(d.Attendees)
	into["reminder_minutes"] = d.ReminderMinutes
}

func (d *AppointmentDetails) AddAttendee(name string)    { d.Attendees = addUnique(d.Attendees, name) }
func (d *AppointmentDetails) RemoveAttendee(name string) { d.Attendees = remove(d.Attendees, name) }

// ReminderTime is the instant a reminder should fire, ReminderMinutes
// before start.
func (d *AppointmentDetails) ReminderTime(rng clock.Range) clock.Time {
	return rng.Start().AddMinutes(-d.ReminderMinutes)
}

// DoctorDetails is the payload of a medical appointment. Events built
// on it default to HIGH priority unless the caller supplies one.
type DoctorDetails struct {
	Location          string
	Attendees         []string
	ReminderMinutes   int
	DoctorName        string
	Specialty         string
	InsuranceRequired bool
	MedicalNotes      string
}

// DefaultDoctorDetails requires insurance and keeps the 15-minute
// reminder.
func DefaultDoctorDetails() DoctorDetails {
	return DoctorDetails{ReminderMinutes: 15, InsuranceRequired: true}
}

func (*DoctorDetails) kind() Kind { return KindDoctor }

func (d *DoctorDetails) snapshot(into map[string]any) {
	into["location"] = d.Location
	into["attendees"] = stringList(d.Attendees)
	into["reminder_minutes"] = d.ReminderMinutes
	into["doctor_name"] = d.DoctorName
	into["specialty"] = d.Specialty
	into["insurance_required"] = d.InsuranceRequired
	into["medical_notes"] = d.MedicalNotes
}

// ChoreDetails is the payload of a household chore. RecurrenceDays is
// the repeat interval used by Event.NextOccurrence; it is not a
// materialized series.
type ChoreDetails struct {
	Category        string
	IsRecurring     bool
	RecurrenceDays  int
	EstimatedEffort string
}

// DefaultChoreDetails is a one-off weekly-interval chore of medium
// effort in the General category.
func DefaultChoreDetails() ChoreDetails {
	return ChoreDetails{Category: "General", RecurrenceDays: 7, EstimatedEffort: "Medium"}
}

func (*ChoreDetails) kind() Kind { return KindChore }

func (d *ChoreDetails) snapshot(into map[string]any) {
	into["category"] = d.Category
	into["is_recurring"] = d.IsRecurring
	into["recurrence_days"] = d.RecurrenceDays
	into["estimated_effort"] = d.EstimatedEffort
}

// MeetingDetails is the payload of a work meeting.
type MeetingDetails struct {
	MeetingLink string
	Agenda      []string
	Organizer   string
	Attendees   []string
	IsVirtual   bool
	Room        string
}

// DefaultMeetingDetails is a virtual meeting with an empty agenda.
func DefaultMeetingDetails() MeetingDetails {
	return MeetingDetails{IsVirtual: true}
}

func (*MeetingDetails) kind() Kind { return KindMeeting }

func (d *MeetingDetails) snapshot(into map[string]any) {
	into["meeting_link"] = d.MeetingLink
	into["agenda"] = stringList(d.Agenda)
	into["organizer"] = d.Organizer
	into["attendees"] = stringList(d.Attendees)
	into["is_virtual"] = d.IsVirtual
	into["room"] = d.Room
}

func (d *MeetingDetails) AddAgendaItem(item string)   { d.Agenda = append(d.Agenda, item) }
func (d *MeetingDetails) AddAttendee(name string)     { d.Attendees = addUnique(d.Attendees, name) }
func (d *MeetingDetails) RemoveAttendee(name string)  { d.Attendees = remove(d.Attendees, name) }

// LocationInfo describes where the meeting happens: the link when
// virtual, the room otherwise.
func (d *MeetingDetails) LocationInfo() string {
	if d.IsVirtual {
		if d.MeetingLink != "" {
			return "Virtual: " + d.MeetingLink
		}
		return "Virtual (link TBD)"
	}
	if d.Room != "" {
		return "Room: " + d.Room
	}
	return "Location TBD"
}

// GymDetails is the payload of an exercise session.
type GymDetails struct {
	WorkoutType    string
	GymLocation    string
	Trainer        string
	Exercises      []string
	TargetCalories int
}

// DefaultGymDetails is a General workout with no target.
func DefaultGymDetails() GymDetails {
	return GymDetails{WorkoutType: "General"}
}

func (*GymDetails) kind() Kind { return KindGym }

func (d *GymDetails) snapshot(into map[string]any) {
	into["workout_type"] = d.WorkoutType
	into["gym_location"] = d.GymLocation
	into["trainer"] = d.Trainer
	into["exercises"] = stringList(d.Exercises)
	into["target_calories"] = d.TargetCalories
}

func (d *GymDetails) AddExercise(name string)    { d.Exercises = append(d.Exercises, name) }
func (d *GymDetails) RemoveExercise(name string) { d.Exercises = remove(d.Exercises, name) }

// PersonalDetails is the payload of a general personal event.
type PersonalDetails struct {
	Category     string
	Participants []string
	Cost         float64
	Location     string
}

// DefaultPersonalDetails is a free event in the General category.
func DefaultPersonalDetails() PersonalDetails {
	return PersonalDetails{Category: "General"}
}

func (*PersonalDetails) kind() Kind { return KindPersonal }

func (d *PersonalDetails) snapshot(into map[string]any) {
	into["category"] = d.Category
	into["participants"] = stringList(d.Participants)
	into["cost"] = d.Cost
	into["location"] = d.Location
}

func (d *PersonalDetails) AddParticipant(name string)    { d.Participants = addUnique(d.Participants, name) }
func (d *PersonalDetails) RemoveParticipant(name string) { d.Participants = remove(d.Participants, name) }

func addUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func remove(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// stringList keeps snapshots JSON-friendly: nil slices render as [].
func stringList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
