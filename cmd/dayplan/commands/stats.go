package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tanvik/dayplan/internal/config"
	"github.com/tanvik/dayplan/internal/period"
	"github.com/tanvik/dayplan/internal/ui"
)

func NewStatsCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show schedule statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			s, err := loadSchedule(scheduleFile(cmd), cfg)
			if err != nil {
				return err
			}
			stats := s.Stats(period.Today())

			if outputFormat == "json" {
				data, err := json.MarshalIndent(stats, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(ui.Header.Render(fmt.Sprintf("Schedule: %s", s.Name())))
			fmt.Printf("  Events:            %d\n", stats.TotalEvents)
			fmt.Printf("  Upcoming:          %d\n", stats.UpcomingEvents)
			fmt.Printf("  Completed:         %d\n", stats.CompletedEvents)
			fmt.Printf("  Cancelled:         %d\n", stats.CancelledEvents)
			fmt.Printf("  Scheduled minutes: %d\n", stats.TotalScheduledMinutes)
			fmt.Printf("  Average duration:  %.1f min\n", stats.AverageEventDuration)

			if len(stats.EventsByType) > 0 {
				fmt.Println(ui.Header.Render("By type"))
				types := make([]string, 0, len(stats.EventsByType))
				for t := range stats.EventsByType {
					types = append(types, t)
				}
				sort.Strings(types)
				for _, t := range types {
					fmt.Printf("  %-20s %d\n", t, stats.EventsByType[t])
				}
			}

			busiest := s.BusiestDays(cfg.BusiestDayLimit)
			if len(busiest) > 0 {
				fmt.Println(ui.Header.Render("Busiest days"))
				for _, dc := range busiest {
					fmt.Printf("  %s  %s\n", dc.Day.ISO(),
						ui.Accent.Render(fmt.Sprintf("%d event(s)", dc.Count)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output-format", "text", "Output format: text or json")

	return cmd
}
