package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/period"
	"github.com/tanvik/dayplan/internal/schedule"
)

// GetEventsOnDayTool returns the MCP tool definition for get_events_on_day.
func GetEventsOnDayTool() mcp.Tool {
	return mcp.NewTool("get_events_on_day",
		mcp.WithDescription("Get all events on a specific day, sorted by start time"),
		mcp.WithNumber("year", mcp.Required(), mcp.Description("Year")),
		mcp.WithNumber("month", mcp.Required(), mcp.Description("Month (1-12)")),
		mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of the month (1-31)")),
	)
}

func HandleGetEventsOnDay(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := periodDay(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(snapshots(pool.Active().EventsOnDay(day))), nil
	}
}

// GetEventsInDateRangeTool returns the MCP tool definition for
// get_events_in_date_range.
func GetEventsInDateRangeTool() mcp.Tool {
	return mcp.NewTool("get_events_in_date_range",
		mcp.WithDescription("Get all events between two days, inclusive"),
		mcp.WithNumber("start_year", mcp.Required(), mcp.Description("Start year")),
		mcp.WithNumber("start_month", mcp.Required(), mcp.Description("Start month (1-12)")),
		mcp.WithNumber("start_day", mcp.Required(), mcp.Description("Start day (1-31)")),
		mcp.WithNumber("end_year", mcp.Required(), mcp.Description("End year")),
		mcp.WithNumber("end_month", mcp.Required(), mcp.Description("End month (1-12)")),
		mcp.WithNumber("end_day", mcp.Required(), mcp.Description("End day (1-31)")),
	)
}

func HandleGetEventsInDateRange(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		start, err := period.NewDay(argInt(args, "start_year", 0), argInt(args, "start_month", 0), argInt(args, "start_day", 0))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		end, err := period.NewDay(argInt(args, "end_year", 0), argInt(args, "end_month", 0), argInt(args, "end_day", 0))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(snapshots(pool.Active().EventsInRange(start, end))), nil
	}
}

// GetUpcomingEventsTool returns the MCP tool definition for get_upcoming_events.
func GetUpcomingEventsTool() mcp.Tool {
	return mcp.NewTool("get_upcoming_events",
		mcp.WithDescription("Get upcoming events from today onward, sorted by day and start time"),
		mcp.WithNumber("limit", mcp.Description("Maximum number of events to return (default 10)")),
	)
}

func HandleGetUpcomingEvents(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := argInt(request.GetArguments(), "limit", 10)
		return jsonResult(snapshots(pool.Active().Upcoming(today(), limit))), nil
	}
}

// GetEventsByTypeTool returns the MCP tool definition for get_events_by_type.
func GetEventsByTypeTool() mcp.Tool {
	return mcp.NewTool("get_events_by_type",
		mcp.WithDescription("Get all events of one type: Appointment, Doctor Appointment, Chore, Work Meeting, Gym Time or Personal Event"),
		mcp.WithString("event_type", mcp.Required(), mcp.Description("The event type tag")),
	)
}

func HandleGetEventsByType(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := event.ParseKind(argString(request.GetArguments(), "event_type", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(snapshots(pool.Active().EventsByKind(kind))), nil
	}
}

// GetEventsByPriorityTool returns the MCP tool definition for get_events_by_priority.
func GetEventsByPriorityTool() mcp.Tool {
	return mcp.NewTool("get_events_by_priority",
		mcp.WithDescription("Get all events with a specific priority"),
		mcp.WithString("priority", mcp.Required(), mcp.Description("Priority: LOW, MEDIUM, HIGH or URGENT")),
	)
}

func HandleGetEventsByPriority(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, err := event.ParsePriority(argString(request.GetArguments(), "priority", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(snapshots(pool.Active().EventsByPriority(p))), nil
	}
}

// GetEventsByStatusTool returns the MCP tool definition for get_events_by_status.
func GetEventsByStatusTool() mcp.Tool {
	return mcp.NewTool("get_events_by_status",
		mcp.WithDescription("Get all events with a specific status"),
		mcp.WithString("status", mcp.Required(), mcp.Description("Status: scheduled, in_progress, completed, cancelled or rescheduled")),
	)
}

func HandleGetEventsByStatus(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		st, err := event.ParseStatus(argString(request.GetArguments(), "status", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(snapshots(pool.Active().EventsByStatus(st))), nil
	}
}

// GetEventsByTagTool returns the MCP tool definition for get_events_by_tag.
func GetEventsByTagTool() mcp.Tool {
	return mcp.NewTool("get_events_by_tag",
		mcp.WithDescription("Get all events carrying a tag (case-sensitive)"),
		mcp.WithString("tag", mcp.Required(), mcp.Description("The tag to search for")),
	)
}

func HandleGetEventsByTag(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tag := argString(request.GetArguments(), "tag", "")
		if tag == "" {
			return mcp.NewToolResultError("tag is required"), nil
		}
		return jsonResult(snapshots(pool.Active().EventsByTag(tag))), nil
	}
}
