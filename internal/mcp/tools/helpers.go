package tools

import (
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tanvik/dayplan/internal/clock"
	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/period"
)

func argString(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return fallback
}

// argInt tolerates the float64 the JSON decoder hands us.
func argInt(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}

func argBool(args map[string]any, key string, fallback bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return fallback
}

// argList splits a comma-separated string argument, dropping blanks.
func argList(args map[string]any, key string) []string {
	raw, _ := args[key].(string)
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

func periodDay(args map[string]any) (period.Day, error) {
	return period.NewDay(argInt(args, "year", 0), argInt(args, "month", 0), argInt(args, "day", 0))
}

// parseWhen reads the year/month/day and hour/minute arguments shared
// by every event-creating tool.
func parseWhen(args map[string]any) (period.Day, clock.Range, error) {
	day, err := period.NewDay(argInt(args, "year", 0), argInt(args, "month", 0), argInt(args, "day", 0))
	if err != nil {
		return period.Day{}, clock.Range{}, err
	}
	start, err := clock.NewTime(argInt(args, "start_hour", 0), argInt(args, "start_minute", 0), 0)
	if err != nil {
		return period.Day{}, clock.Range{}, err
	}
	end, err := clock.NewTime(argInt(args, "end_hour", 0), argInt(args, "end_minute", 0), 0)
	if err != nil {
		return period.Day{}, clock.Range{}, err
	}
	rng, err := clock.NewRange(start, end)
	if err != nil {
		return period.Day{}, clock.Range{}, err
	}
	return day, rng, nil
}

// parseOptions reads the optional common event fields. An absent
// priority stays zero so the variant default applies.
func parseOptions(args map[string]any) (event.Options, error) {
	opts := event.Options{
		Description: argString(args, "description", ""),
		Tags:        argList(args, "tags"),
	}
	if raw := argString(args, "priority", ""); raw != "" {
		p, err := event.ParsePriority(raw)
		if err != nil {
			return event.Options{}, err
		}
		opts.Priority = p
	}
	return opts, nil
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(data))
}

func snapshots(events []*event.Event) []map[string]any {
	out := make([]map[string]any, 0, len(events))
	for _, e := range events {
		out = append(out, e.Snapshot())
	}
	return out
}

// Shared schema fragments for the date/time arguments.
func whenOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("year", mcp.Required(), mcp.Description("Year (e.g. 2025)")),
		mcp.WithNumber("month", mcp.Required(), mcp.Description("Month (1-12)")),
		mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of the month (1-31)")),
		mcp.WithNumber("start_hour", mcp.Required(), mcp.Description("Starting hour (0-23)")),
		mcp.WithNumber("start_minute", mcp.Required(), mcp.Description("Starting minute (0-59)")),
		mcp.WithNumber("end_hour", mcp.Required(), mcp.Description("Ending hour (0-23)")),
		mcp.WithNumber("end_minute", mcp.Required(), mcp.Description("Ending minute (0-59)")),
	}
}

func commonOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("description", mcp.Description("Detailed description")),
		mcp.WithString("priority", mcp.Description("Priority: LOW, MEDIUM, HIGH or URGENT")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags")),
	}
}
