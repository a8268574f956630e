package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanvik/dayplan/internal/config"
	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/ui"
)

func NewConflictsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List overlapping event pairs in the schedule",
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
			var pairs [][2]*event.Event
			for i := 0; i < len(events); i++ {
				for j := i + 1; j < len(events); j++ {
					if events[i].ConflictsWith(events[j]) {
						pairs = append(pairs, [2]*event.Event{events[i], events[j]})
					}
				}
			}

			if len(pairs) == 0 {
				fmt.Println(ui.Green("No conflicts found"))
				return nil
			}
			fmt.Println(ui.Red(fmt.Sprintf("%d conflict(s):", len(pairs))))
			for _, pair := range pairs {
				fmt.Printf("  %s: %q (%s) overlaps %q (%s)\n",
					pair[0].Day.ISO(),
					pair[0].Title, pair[0].Range.Format12(),
					pair[1].Title, pair[1].Range.Format12())
			}
			return nil
		},
	}
	return cmd
}
