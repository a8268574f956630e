package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanvik/dayplan/internal/clock"
	"github.com/tanvik/dayplan/internal/config"
	derr "github.com/tanvik/dayplan/internal/errors"
	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/ics"
	"github.com/tanvik/dayplan/internal/period"
	"github.com/tanvik/dayplan/internal/schedule"
	"github.com/tanvik/dayplan/internal/ui"
)

// scheduleFile resolves the --file flag, falling back to schedule.ics
// in the data directory.
func scheduleFile(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return path
	}
	return config.DataDir() + string(os.PathSeparator) + "schedule.ics"
}

// loadSchedule reads the schedule file into memory. A missing file is
// an empty schedule, not an error.
func loadSchedule(path string, cfg *config.Config) (*schedule.Schedule, error) {
	s := schedule.New(cfg.ScheduleName)
	if w, err := cfg.Window(); err == nil {
		s.SetWindow(w)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	events, err := ics.NewParser().ParseFile(path)
	if err != nil {
		return nil, err
	}
	for _, ev := range events {
		if err := s.AddEvent(ev, false); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func saveSchedule(s *schedule.Schedule, path string) error {
	return ics.NewWriter().WriteFile(s, path)
}

// parseDate accepts YYYY-MM-DD, "today" or an empty string.
func parseDate(s string) (period.Day, error) {
	if s == "" || strings.EqualFold(s, "today") {
		return period.Today(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return period.Day{}, derr.NewValidation("date", "expected YYYY-MM-DD, got %q", s)
	}
	return period.DayFromTime(t), nil
}

// parseTimes builds a range from HH:MM start and end strings.
func parseTimes(startRaw, endRaw string) (clock.Range, error) {
	start, err := clock.Parse(startRaw)
	if err != nil {
		return clock.Range{}, err
	}
	end, err := clock.Parse(endRaw)
	if err != nil {
		return clock.Range{}, err
	}
	return clock.NewRange(start, end)
}

func splitList(raw string) []string {
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

// printEvent renders one agenda line.
func printEvent(ev *event.Event) {
	line := fmt.Sprintf("  %s  %-12s %s",
		ev.Range.Format12(),
		ui.PriorityStyle(ev.Priority.Name()).Render(ev.Priority.Name()),
		ev.Title,
	)
	if ev.Details != nil {
		line += ui.Label.Render(fmt.Sprintf("  [%s]", ev.Kind()))
	}
	if ev.Status != event.StatusScheduled {
		line += ui.Label.Render(fmt.Sprintf("  (%s)", ev.Status))
	}
	fmt.Println(line)
}
