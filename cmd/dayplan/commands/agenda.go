package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanvik/dayplan/internal/config"
	"github.com/tanvik/dayplan/internal/period"
	"github.com/tanvik/dayplan/internal/ui"
)

func NewAgendaCmd() *cobra.Command {
	var dateRaw string
	var week bool

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show events for a day or a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			day, err := parseDate(dateRaw)
			if err != nil {
				return err
			}
			s, err := loadSchedule(scheduleFile(cmd), cfg)
			if err != nil {
				return err
			}

			days := []period.Day{day}
			if week {
				days = period.WeekOf(day).Days()
			}

			for _, d := range days {
				events := s.EventsOnDay(d)
				if week && len(events) == 0 {
					continue
				}
				fmt.Println(ui.Header.Render(d.String()))
				if len(events) == 0 {
					fmt.Println(ui.Label.Render("  no events"))
					continue
				}
				for _, ev := range events {
					printEvent(ev)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateRaw, "date", "today", "Day (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&week, "week", false, "Show the whole week containing the day")

	return cmd
}
