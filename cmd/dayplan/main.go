package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tanvik/dayplan/cmd/dayplan/commands"
	"github.com/tanvik/dayplan/internal/config"
	derr "github.com/tanvik/dayplan/internal/errors"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "dayplan",
		Short:   "Personal schedule planner",
		Long:    "Plan days, weeks and months of appointments, chores, meetings, gym sessions and personal events",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	rootCmd.PersistentFlags().String("file", "", "Schedule file path (default: schedule.ics in the data directory)")
	rootCmd.PersistentFlags().String("config", "", "Config file path")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
			config.SetOverridePath(cfgPath)
		}
		return nil
	}

	rootCmd.AddCommand(commands.NewAddCmd())
	rootCmd.AddCommand(commands.NewAgendaCmd())
	rootCmd.AddCommand(commands.NewFreeCmd())
	rootCmd.AddCommand(commands.NewConflictsCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())
	rootCmd.AddCommand(commands.NewExportCmd())
	rootCmd.AddCommand(commands.NewImportCmd())
	rootCmd.AddCommand(commands.NewConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var parseErr *derr.ParseError
		var validErr *derr.ValidationError
		var conflictErr *derr.ConflictError
		switch {
		case errors.As(err, &parseErr):
			os.Exit(1)
		case errors.As(err, &validErr):
			os.Exit(2)
		case errors.As(err, &conflictErr):
			os.Exit(3)
		default:
			os.Exit(1)
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, build info, and platform details",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dayplan %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", buildDate)
			fmt.Printf("  go:        %s\n", runtime.Version())
			fmt.Printf("  os/arch:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
