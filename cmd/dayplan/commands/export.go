package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanvik/dayplan/internal/config"
	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/ics"
	"github.com/tanvik/dayplan/internal/schedule"
)

func NewExportCmd() *cobra.Command {
	var fromRaw, toRaw, kindRaw string

	cmd := &cobra.Command{
		Use:   "export <output-file>",
		Short: "Export events to an iCalendar file, optionally filtered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			s, err := loadSchedule(scheduleFile(cmd), cfg)
			if err != nil {
				return err
			}

			events := s.Events()
			if fromRaw != "" || toRaw != "" {
				from, err := parseDate(fromRaw)
				if err != nil {
					return err
				}
				to := from
				if toRaw != "" {
					if to, err = parseDate(toRaw); err != nil {
						return err
					}
				}
				events = s.EventsInRange(from, to)
			}
			if kindRaw != "" {
				kind, err := event.ParseKind(kindRaw)
				if err != nil {
					return err
				}
				filtered := events[:0]
				for _, ev := range events {
					if ev.Kind() == kind {
						filtered = append(filtered, ev)
					}
				}
				events = filtered
			}

			out := schedule.New(s.Name())
			for _, ev := range events {
				if err := out.AddEvent(ev, false); err != nil {
					return err
				}
			}
			if err := ics.NewWriter().WriteFile(out, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Exported %d event(s) to %s\n", len(events), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&fromRaw, "from", "", "Start day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toRaw, "to", "", "End day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&kindRaw, "type", "", "Only export events of this type")

	return cmd
}
