package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tanvik/dayplan/internal/period"
	"github.com/tanvik/dayplan/internal/schedule"
)

// CreateScheduleTool returns the MCP tool definition for create_schedule.
func CreateScheduleTool() mcp.Tool {
	return mcp.NewTool("create_schedule",
		mcp.WithDescription("Create a new named schedule"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Unique name for the new schedule")),
	)
}

func HandleCreateSchedule(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := argString(request.GetArguments(), "name", "")
		if name == "" {
			return mcp.NewToolResultError("name is required"), nil
		}
		if _, err := pool.Create(name); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Created schedule: %s", name)), nil
	}
}

// ListSchedulesTool returns the MCP tool definition for list_schedules.
func ListSchedulesTool() mcp.Tool {
	return mcp.NewTool("list_schedules",
		mcp.WithDescription("List all schedules with event counts and the active marker"),
	)
}

func HandleListSchedules(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		type entry struct {
			Name       string `json:"name"`
			EventCount int    `json:"event_count"`
			IsActive   bool   `json:"is_active"`
		}
		var out []entry
		for _, name := range pool.Names() {
			s, err := pool.Get(name)
			if err != nil {
				continue
			}
			out = append(out, entry{Name: name, EventCount: s.Len(), IsActive: name == pool.ActiveName()})
		}
		return jsonResult(out), nil
	}
}

// SetActiveScheduleTool returns the MCP tool definition for set_active_schedule.
func SetActiveScheduleTool() mcp.Tool {
	return mcp.NewTool("set_active_schedule",
		mcp.WithDescription("Switch the active schedule"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the schedule to activate")),
	)
}

func HandleSetActiveSchedule(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := argString(request.GetArguments(), "name", "")
		if err := pool.SetActive(name); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Active schedule: %s", name)), nil
	}
}

// DeleteScheduleTool returns the MCP tool definition for delete_schedule.
func DeleteScheduleTool() mcp.Tool {
	return mcp.NewTool("delete_schedule",
		mcp.WithDescription("Delete a named schedule (the default schedule cannot be deleted)"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the schedule to delete")),
	)
}

func HandleDeleteSchedule(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := argString(request.GetArguments(), "name", "")
		if err := pool.Delete(name); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Deleted schedule: %s", name)), nil
	}
}

// ClearScheduleTool returns the MCP tool definition for clear_schedule.
func ClearScheduleTool() mcp.Tool {
	return mcp.NewTool("clear_schedule",
		mcp.WithDescription("Remove all events from the active schedule"),
	)
}

func HandleClearSchedule(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s := pool.Active()
		n := s.Len()
		s.Clear()
		return mcp.NewToolResultText(fmt.Sprintf("Cleared %d event(s) from schedule: %s", n, s.Name())), nil
	}
}

// today is split out so tests can pin the clock.
var today = period.Today
