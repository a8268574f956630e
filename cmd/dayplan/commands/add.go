package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanvik/dayplan/internal/config"
	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/ui"
)

func NewAddCmd() *cobra.Command {
	var (
		kindRaw     string
		dateRaw     string
		startRaw    string
		endRaw      string
		priorityRaw string
		description string
		tagsRaw     string
		location    string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event to the schedule file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			kind, err := event.ParseKind(kindRaw)
			if err != nil {
				return err
			}
			day, err := parseDate(dateRaw)
			if err != nil {
				return err
			}
			rng, err := parseTimes(startRaw, endRaw)
			if err != nil {
				return err
			}

			opts := event.Options{
				Description: description,
				Tags:        splitList(tagsRaw),
			}
			if priorityRaw != "" {
				p, err := event.ParsePriority(priorityRaw)
				if err != nil {
					return err
				}
				opts.Priority = p
			}

			ev, err := event.New(args[0], day, rng, detailsForKind(kind, location), opts)
			if err != nil {
				return err
			}

			path := scheduleFile(cmd)
			s, err := loadSchedule(path, cfg)
			if err != nil {
				return err
			}
			if err := s.AddEvent(ev, !force); err != nil {
				return err
			}
			if err := saveSchedule(s, path); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "%s %s on %s at %s\n",
				ui.Accent.Render("Added:"), ev.Title, day.ISO(), ev.Range.Format12())
			return nil
		},
	}

	cmd.Flags().StringVar(&kindRaw, "type", string(event.KindAppointment), "Event type")
	cmd.Flags().StringVar(&dateRaw, "date", "today", "Day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startRaw, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&endRaw, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&priorityRaw, "priority", "", "Priority: LOW, MEDIUM, HIGH or URGENT")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&tagsRaw, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&location, "location", "", "Event location")
	cmd.Flags().BoolVar(&force, "force", false, "Add even when the slot conflicts")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

// detailsForKind builds the variant payload for the CLI path, where only
// the location is settable; everything else keeps its defaults.
func detailsForKind(kind event.Kind, location string) event.Details {
	switch kind {
	case event.KindDoctor:
		d := event.DefaultDoctorDetails()
		d.Location = location
		return &d
	case event.KindChore:
		d := event.DefaultChoreDetails()
		return &d
	case event.KindMeeting:
		d := event.DefaultMeetingDetails()
		d.Room = location
		return &d
	case event.KindGym:
		d := event.DefaultGymDetails()
		d.GymLocation = location
		return &d
	case event.KindPersonal:
		d := event.DefaultPersonalDetails()
		d.Location = location
		return &d
	default:
		d := event.DefaultAppointmentDetails()
		d.Location = location
		return &d
	}
}
