package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/schedule"
)

// CheckConflictsTool returns the MCP tool definition for check_conflicts.
func CheckConflictsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Check whether an event at the given day and time range would conflict with existing events"),
	}
	opts = append(opts, whenOptions()...)
	return mcp.NewTool("check_conflicts", opts...)
}

func HandleCheckConflicts(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, rng, err := parseWhen(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		// A probe event carries the hypothetical slot; it is never added.
		d := event.DefaultAppointmentDetails()
		probe, err := event.New("probe", day, rng, &d, event.Options{})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		conflicts := pool.Active().ConflictingEvents(probe)
		return jsonResult(map[string]any{
			"has_conflicts":  len(conflicts) > 0,
			"conflict_count": len(conflicts),
			"conflicts":      snapshots(conflicts),
		}), nil
	}
}

// GetFreeTimeSlotsTool returns the MCP tool definition for get_free_time_slots.
func GetFreeTimeSlotsTool() mcp.Tool {
	return mcp.NewTool("get_free_time_slots",
		mcp.WithDescription("Find free time slots on a day within the 9 AM - 9 PM working window"),
		mcp.WithNumber("year", mcp.Required(), mcp.Description("Year")),
		mcp.WithNumber("month", mcp.Required(), mcp.Description("Month (1-12)")),
		mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of the month (1-31)")),
		mcp.WithNumber("min_duration_minutes", mcp.Description("Minimum slot length in minutes (default 60)")),
	)
}

func HandleGetFreeTimeSlots(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		day, err := periodDay(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		minDuration := argInt(args, "min_duration_minutes", 60)
		slots := pool.Active().FreeSlots(day, minDuration)

		type slotInfo struct {
			StartTime       string `json:"start_time"`
			EndTime         string `json:"end_time"`
			DurationMinutes int    `json:"duration_minutes"`
		}
		out := make([]slotInfo, 0, len(slots))
		for _, s := range slots {
			out = append(out, slotInfo{
				StartTime:       s.Start().Format12(),
				EndTime:         s.End().Format12(),
				DurationMinutes: s.Duration(),
			})
		}
		return jsonResult(out), nil
	}
}

// GetScheduleStatisticsTool returns the MCP tool definition for
// get_schedule_statistics.
func GetScheduleStatisticsTool() mcp.Tool {
	return mcp.NewTool("get_schedule_statistics",
		mcp.WithDescription("Aggregate statistics for the active schedule"),
	)
}

func HandleGetScheduleStatistics(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(pool.Active().Stats(today())), nil
	}
}

// GetBusiestDaysTool returns the MCP tool definition for get_busiest_days.
func GetBusiestDaysTool() mcp.Tool {
	return mcp.NewTool("get_busiest_days",
		mcp.WithDescription("Days with the most events, busiest first"),
		mcp.WithNumber("limit", mcp.Description("Number of days to return (default 5)")),
	)
}

func HandleGetBusiestDays(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := argInt(request.GetArguments(), "limit", 5)
		type dayInfo struct {
			Day        string `json:"day"`
			EventCount int    `json:"event_count"`
			Date       string `json:"date"`
		}
		busiest := pool.Active().BusiestDays(limit)
		out := make([]dayInfo, 0, len(busiest))
		for _, dc := range busiest {
			out = append(out, dayInfo{Day: dc.Day.String(), EventCount: dc.Count, Date: dc.Day.ISO()})
		}
		return jsonResult(out), nil
	}
}
