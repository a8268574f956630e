package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanvik/dayplan/internal/config"
	"github.com/tanvik/dayplan/internal/ui"
)

func NewFreeCmd() *cobra.Command {
	var dateRaw string
	var minDuration int

	cmd := &cobra.Command{
		Use:   "free",
		Short: "Show free time slots on a day",
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

			if minDuration == 0 {
				minDuration = cfg.MinSlotMinutes
			}
			slots := s.FreeSlots(day, minDuration)

			fmt.Println(ui.Header.Render(day.String()))
			if len(slots) == 0 {
				fmt.Println(ui.Label.Render(fmt.Sprintf("  no free slots of %d+ minutes", minDuration)))
				return nil
			}
			for _, slot := range slots {
				fmt.Printf("  %s  %s\n",
					slot.Format12(),
					ui.Accent.Render(fmt.Sprintf("%d min", slot.Duration())))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateRaw, "date", "today", "Day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&minDuration, "min", 0, "Minimum slot length in minutes (default from config)")

	return cmd
}
