package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanvik/dayplan/internal/config"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dayplan configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print config file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.ConfigPath())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(config.ConfigDir(), 0755); err != nil {
				return err
			}
			configPath := config.ConfigPath()
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("config already exists at %s", configPath)
			}
			defaultConfig := `# dayplan configuration
schedule_name = "Default Schedule"
workday_start = "09:00"
workday_end = "21:00"
min_slot_minutes = 60
upcoming_limit = 10
busiest_day_limit = 5
`
			if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
				return err
			}
			fmt.Printf("Created config at %s\n", configPath)
			return nil
		},
	})

	return cmd
}
