package ics

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/tanvik/dayplan/internal/clock"
	derr "github.com/tanvik/dayplan/internal/errors"
	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/period"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) ParseFile(filePath string) ([]*event.Event, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, &derr.ParseError{File: filePath, Message: "cannot open file", Err: err}
	}
	defer f.Close()

	return p.Parse(f, filePath)
}

func (p *Parser) Parse(r io.Reader, sourcePath string) ([]*event.Event, error) {
	decoded, _, err := TranscodeToUTF8(r)
	if err != nil {
		return nil, &derr.ParseError{File: sourcePath, Message: "cannot transcode file", Err: err}
	}

	var events []*event.Event
	dec := ical.NewDecoder(decoded)
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &derr.ParseError{File: sourcePath, Message: "invalid iCalendar data", Err: err}
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			ev, err := p.parseEvent(comp, sourcePath)
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
		}
	}

	return events, nil
}

func (p *Parser) parseEvent(comp *ical.Component, sourcePath string) (*event.Event, error) {
	start := comp.Props.Get("DTSTART")
	end := comp.Props.Get("DTEND")
	if start == nil || end == nil {
		return nil, &derr.ParseError{File: sourcePath, Message: "VEVENT missing DTSTART or DTEND"}
	}
	startAt, err := start.DateTime(time.UTC)
	if err != nil {
		return nil, &derr.ParseError{File: sourcePath, Message: "invalid DTSTART", Err: err}
	}
	endAt, err := end.DateTime(time.UTC)
	if err != nil {
		return nil, &derr.ParseError{File: sourcePath, Message: "invalid DTEND", Err: err}
	}

	day := period.DayFromTime(startAt)
	startTime, err := clock.NewTime(startAt.Hour(), startAt.Minute(), startAt.Second())
	if err != nil {
		return nil, err
	}
	endTime, err := clock.NewTime(endAt.Hour(), endAt.Minute(), endAt.Second())
	if err != nil {
		return nil, err
	}
	rng, err := clock.NewRange(startTime, endTime)
	if err != nil {
		return nil, err
	}

	ev := &event.Event{
		ID:          text(comp, "UID"),
		Title:       text(comp, "SUMMARY"),
		Day:         day,
		Range:       rng,
		Description: text(comp, "DESCRIPTION"),
		Priority:    event.PriorityMedium,
		Status:      event.StatusScheduled,
		Notes:       text(comp, propNotes),
		Tags:        list(comp, "CATEGORIES"),
		Details:     p.parseDetails(comp),
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if pr, err := event.ParsePriority(text(comp, propPriority)); err == nil {
		ev.Priority = pr
	}
	if st, err := event.ParseStatus(text(comp, propStatus)); err == nil {
		ev.Status = st
	}
	return ev, nil
}

// parseDetails reconstructs the variant payload from the X- properties.
// Unknown or absent kinds fall back to a personal event so foreign ICS
// files still import.
func (p *Parser) parseDetails(comp *ical.Component) event.Details {
	kind, err := event.ParseKind(text(comp, propType))
	if err != nil {
		d := event.DefaultPersonalDetails()
		d.Location = text(comp, "LOCATION")
		return &d
	}

	switch kind {
	case event.KindAppointment:
		d := event.DefaultAppointmentDetails()
		d.Location = text(comp, "LOCATION")
		d.Attendees = list(comp, propAttendees)
		d.ReminderMinutes = number(comp, propReminder, d.ReminderMinutes)
		return &d
	case event.KindDoctor:
		d := event.DefaultDoctorDetails()
		d.Location = text(comp, "LOCATION")
		d.Attendees = list(comp, propAttendees)
		d.ReminderMinutes = number(comp, propReminder, d.ReminderMinutes)
		d.DoctorName = text(comp, propDoctor)
		d.Specialty = text(comp, propSpecialty)
		d.InsuranceRequired = boolean(comp, propInsurance, d.InsuranceRequired)
		d.MedicalNotes = text(comp, propMedicalNotes)
		return &d
	case event.KindChore:
		d := event.DefaultChoreDetails()
		if c := text(comp, propCategory); c != "" {
			d.Category = c
		}
		d.IsRecurring = boolean(comp, propRecurring, false)
		d.RecurrenceDays = number(comp, propRecurrenceDays, d.RecurrenceDays)
		if e := text(comp, propEffort); e != "" {
			d.EstimatedEffort = e
		}
		return &d
	case event.KindMeeting:
		d := event.DefaultMeetingDetails()
		d.MeetingLink = text(comp, propMeetingLink)
		d.Agenda = list(comp, propAgenda)
		d.Organizer = text(comp, propOrganizer)
		d.Attendees = list(comp, propAttendees)
		d.IsVirtual = boolean(comp, propVirtual, true)
		d.Room = text(comp, propRoom)
		return &d
	case event.KindGym:
		d := event.DefaultGymDetails()
		if w := text(comp, propWorkoutType); w != "" {
			d.WorkoutType = w
		}
		d.GymLocation = text(comp, "LOCATION")
		d.Trainer = text(comp, propTrainer)
		d.Exercises = list(comp, propExercises)
		d.TargetCalories = number(comp, propCalories, 0)
		return &d
	default:
		d := event.DefaultPersonalDetails()
		if c := text(comp, propCategory); c != "" {
			d.Category = c
		}
		d.Participants = list(comp, propParticipants)
		d.Location = text(comp, "LOCATION")
		if raw := text(comp, propCost); raw != "" {
			if cost, err := strconv.ParseFloat(raw, 64); err == nil {
				d.Cost = cost
			}
		}
		return &d
	}
}

func text(comp *ical.Component, name string) string {
	v, err := comp.Props.Text(name)
	if err != nil {
		return ""
	}
	return v
}

func list(comp *ical.Component, name string) []string {
	raw := text(comp, name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func number(comp *ical.Component, name string, fallback int) int {
	raw := text(comp, name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func boolean(comp *ical.Component, name string, fallback bool) bool {
	switch text(comp, name) {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	return fallback
}
