package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tanvik/dayplan/internal/config"
	derr "github.com/tanvik/dayplan/internal/errors"
	"github.com/tanvik/dayplan/internal/ics"
	"github.com/tanvik/dayplan/internal/ui"
)

func NewImportCmd() *cobra.Command {
	var skipConflicts, quiet bool

	cmd := &cobra.Command{
		Use:   "import <input-file>",
		Short: "Merge events from an iCalendar file into the schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path := scheduleFile(cmd)
			s, err := loadSchedule(path, cfg)
			if err != nil {
				return err
			}

			incoming, err := ics.NewParser().ParseFile(args[0])
			if err != nil {
				return err
			}

			var bar *progressbar.ProgressBar
			if !quiet && len(incoming) > 10 {
				bar = progressbar.NewOptions(len(incoming),
					progressbar.OptionSetDescription("Importing"),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}

			added, skipped := 0, 0
			for _, ev := range incoming {
				err := s.AddEvent(ev, true)
				if err != nil {
					var conflictErr *derr.ConflictError
					if skipConflicts && errors.As(err, &conflictErr) {
						skipped++
						if bar != nil {
							bar.Add(1)
						}
						continue
					}
					return err
				}
				added++
				if bar != nil {
					bar.Add(1)
				}
			}
			if bar != nil {
				bar.Finish()
			}

			if err := saveSchedule(s, path); err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintln(os.Stderr, ui.Green(fmt.Sprintf("Imported %d event(s), skipped %d conflict(s)", added, skipped)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipConflicts, "skip-conflicts", false, "Skip events that conflict instead of failing")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress non-error output")

	return cmd
}
