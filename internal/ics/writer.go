package ics

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/schedule"
)

// Variant fields ride in X- properties so a round trip through an ICS
// file preserves the event kind and its payload.
const (
	propType           = "X-DAYPLAN-TYPE"
	propPriority       = "X-DAYPLAN-PRIORITY"
	propStatus         = "X-DAYPLAN-STATUS"
	propNotes          = "X-DAYPLAN-NOTES"
	propAttendees      = "X-DAYPLAN-ATTENDEES"
	propReminder       = "X-DAYPLAN-REMINDER-MINUTES"
	propDoctor         = "X-DAYPLAN-DOCTOR"
	propSpecialty      = "X-DAYPLAN-SPECIALTY"
	propInsurance      = "X-DAYPLAN-INSURANCE"
	propMedicalNotes   = "X-DAYPLAN-MEDICAL-NOTES"
	propCategory       = "X-DAYPLAN-CATEGORY"
	propRecurring      = "X-DAYPLAN-RECURRING"
	propRecurrenceDays = "X-DAYPLAN-RECURRENCE-DAYS"
	propEffort         = "X-DAYPLAN-EFFORT"
	propMeetingLink    = "X-DAYPLAN-MEETING-LINK"
	propAgenda         = "X-DAYPLAN-AGENDA"
	propOrganizer      = "X-DAYPLAN-ORGANIZER"
	propVirtual        = "X-DAYPLAN-VIRTUAL"
	propRoom           = "X-DAYPLAN-ROOM"
	propWorkoutType    = "X-DAYPLAN-WORKOUT-TYPE"
	propTrainer        = "X-DAYPLAN-TRAINER"
	propExercises      = "X-DAYPLAN-EXERCISES"
	propCalories       = "X-DAYPLAN-TARGET-CALORIES"
	propParticipants   = "X-DAYPLAN-PARTICIPANTS"
	propCost           = "X-DAYPLAN-COST"
)

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) WriteFile(s *schedule.Schedule, filePath string) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create ICS file: %w", err)
	}
	defer f.Close()

	return w.Write(s, f)
}

func (w *Writer) Write(s *schedule.Schedule, writer io.Writer) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//tanvik//dayplan//EN")

	for _, ev := range s.Events() {
		cal.Children = append(cal.Children, w.writeEvent(ev))
	}

	enc := ical.NewEncoder(writer)
	return enc.Encode(cal)
}

func (w *Writer) writeEvent(ev *event.Event) *ical.Component {
	comp := ical.NewComponent("VEVENT")

	comp.Props.SetText("UID", ev.ID)
	comp.Props.SetText("SUMMARY", ev.Title)
	comp.Props.SetDateTime("DTSTAMP", time.Now().UTC())
	comp.Props.SetDateTime("DTSTART", dayTime(ev, ev.Range.Start().Hour(), ev.Range.Start().Minute(), ev.Range.Start().Second()))
	comp.Props.SetDateTime("DTEND", dayTime(ev, ev.Range.End().Hour(), ev.Range.End().Minute(), ev.Range.End().Second()))

	if ev.Description != "" {
		comp.Props.SetText("DESCRIPTION", ev.Description)
	}
	if len(ev.Tags) > 0 {
		comp.Props.SetText("CATEGORIES", strings.Join(ev.Tags, ","))
	}
	comp.Props.SetText(propType, string(ev.Kind()))
	comp.Props.SetText(propPriority, ev.Priority.Name())
	comp.Props.SetText(propStatus, string(ev.Status))
	if ev.Notes != "" {
		comp.Props.SetText(propNotes, ev.Notes)
	}

	switch d := ev.Details.(type) {
	case *event.AppointmentDetails:
		setText(comp, "LOCATION", d.Location)
		setList(comp, propAttendees, d.Attendees)
		comp.Props.SetText(propReminder, strconv.Itoa(d.ReminderMinutes))
	case *event.DoctorDetails:
		setText(comp, "LOCATION", d.Location)
		setList(comp, propAttendees, d.Attendees)
		comp.Props.SetText(propReminder, strconv.Itoa(d.ReminderMinutes))
		setText(comp, propDoctor, d.DoctorName)
		setText(comp, propSpecialty, d.Specialty)
		comp.Props.SetText(propInsurance, formatBool(d.InsuranceRequired))
		setText(comp, propMedicalNotes, d.MedicalNotes)
	case *event.ChoreDetails:
		setText(comp, propCategory, d.Category)
		comp.Props.SetText(propRecurring, formatBool(d.IsRecurring))
		comp.Props.SetText(propRecurrenceDays, strconv.Itoa(d.RecurrenceDays))
		setText(comp, propEffort, d.EstimatedEffort)
	case *event.MeetingDetails:
		setText(comp, propMeetingLink, d.MeetingLink)
		setList(comp, propAgenda, d.Agenda)
		setText(comp, propOrganizer, d.Organizer)
		setList(comp, propAttendees, d.Attendees)
		comp.Props.SetText(propVirtual, formatBool(d.IsVirtual))
		setText(comp, propRoom, d.Room)
	case *event.GymDetails:
		setText(comp, propWorkoutType, d.WorkoutType)
		setText(comp, "LOCATION", d.GymLocation)
		setText(comp, propTrainer, d.Trainer)
		setList(comp, propExercises, d.Exercises)
		comp.Props.SetText(propCalories, strconv.Itoa(d.TargetCalories))
	case *event.PersonalDetails:
		setText(comp, propCategory, d.Category)
		setList(comp, propParticipants, d.Participants)
		comp.Props.SetText(propCost, strconv.FormatFloat(d.Cost, 'f', 2, 64))
		setText(comp, "LOCATION", d.Location)
	}

	return comp
}

func dayTime(ev *event.Event, h, m, sec int) time.Time {
	return time.Date(ev.Day.Year(), time.Month(ev.Day.Month()), ev.Day.Date(), h, m, sec, 0, time.UTC)
}

func setText(comp *ical.Component, name, value string) {
	if value != "" {
		comp.Props.SetText(name, value)
	}
}

func setList(comp *ical.Component, name string, values []string) {
	if len(values) > 0 {
		comp.Props.SetText(name, strings.Join(values, ","))
	}
}

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
