package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tanvik/dayplan/internal/clock"
)

type Config struct {
	ScheduleName    string `toml:"schedule_name"`
	WorkdayStart    string `toml:"workday_start"`
	WorkdayEnd      string `toml:"workday_end"`
	MinSlotMinutes  int    `toml:"min_slot_minutes"`
	UpcomingLimit   int    `toml:"upcoming_limit"`
	BusiestDayLimit int    `toml:"busiest_day_limit"`
}

var overridePath string

// SetOverridePath forces Load to read from path instead of the XDG
// location.
func SetOverridePath(path string) { overridePath = path }

func DefaultConfig() *Config {
	return &Config{
		ScheduleName:    "My Schedule",
		WorkdayStart:    "09:00",
		WorkdayEnd:      "21:00",
		MinSlotMinutes:  60,
		UpcomingLimit:   10,
		BusiestDayLimit: 5,
	}
}

func Load() (*Config, error) {
	if overridePath != "" {
		return LoadFrom(overridePath)
	}
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a TOML config, falling back to defaults when the file
// does not exist. Unknown keys warn on stderr instead of failing.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config at %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		fmt.Fprintf(os.Stderr, "Warning: unknown config key '%s'\n", key)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	start, err := clock.Parse(cfg.WorkdayStart)
	if err != nil {
		return fmt.Errorf("invalid workday_start '%s': %w", cfg.WorkdayStart, err)
	}
	end, err := clock.Parse(cfg.WorkdayEnd)
	if err != nil {
		return fmt.Errorf("invalid workday_end '%s': %w", cfg.WorkdayEnd, err)
	}
	if _, err := clock.NewRange(start, end); err != nil {
		return fmt.Errorf("workday_end must not precede workday_start: %w", err)
	}
	if cfg.MinSlotMinutes < 0 {
		return fmt.Errorf("min_slot_minutes must not be negative, got %d", cfg.MinSlotMinutes)
	}
	if cfg.UpcomingLimit < 0 {
		return fmt.Errorf("upcoming_limit must not be negative, got %d", cfg.UpcomingLimit)
	}
	return nil
}

// Window is the configured working window as a clock range.
func (c *Config) Window() (clock.Range, error) {
	start, err := clock.Parse(c.WorkdayStart)
	if err != nil {
		return clock.Range{}, err
	}
	end, err := clock.Parse(c.WorkdayEnd)
	if err != nil {
		return clock.Range{}, err
	}
	return clock.NewRange(start, end)
}

func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dayplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dayplan")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "dayplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "dayplan")
}
