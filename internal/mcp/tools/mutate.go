package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/schedule"
)

// UpdateEventStatusTool returns the MCP tool definition for update_event_status.
func UpdateEventStatusTool() mcp.Tool {
	return mcp.NewTool("update_event_status",
		mcp.WithDescription("Change the status of the first event matching a title"),
		mcp.WithString("event_title", mcp.Required(), mcp.Description("Title of the event to update")),
		mcp.WithString("new_status", mcp.Required(), mcp.Description("Status: scheduled, in_progress, completed, cancelled or rescheduled")),
	)
}

func HandleUpdateEventStatus(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		st, err := event.ParseStatus(argString(args, "new_status", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		ev, err := pool.Active().FindByTitle(argString(args, "event_title", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		ev.Status = st
		return jsonResult(ev.Snapshot()), nil
	}
}

// UpdateEventPriorityTool returns the MCP tool definition for update_event_priority.
func UpdateEventPriorityTool() mcp.Tool {
	return mcp.NewTool("update_event_priority",
		mcp.WithDescription("Change the priority of the first event matching a title"),
		mcp.WithString("event_title", mcp.Required(), mcp.Description("Title of the event to update")),
		mcp.WithString("new_priority", mcp.Required(), mcp.Description("Priority: LOW, MEDIUM, HIGH or URGENT")),
	)
}

func HandleUpdateEventPriority(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		p, err := event.ParsePriority(argString(args, "new_priority", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		ev, err := pool.Active().FindByTitle(argString(args, "event_title", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		ev.Priority = p
		return jsonResult(ev.Snapshot()), nil
	}
}

// AddTagsToEventTool returns the MCP tool definition for add_tags_to_event.
func AddTagsToEventTool() mcp.Tool {
	return mcp.NewTool("add_tags_to_event",
		mcp.WithDescription("Add tags to the first event matching a title; duplicates are dropped"),
		mcp.WithString("event_title", mcp.Required(), mcp.Description("Title of the event")),
		mcp.WithString("tags", mcp.Required(), mcp.Description("Comma-separated tags to add")),
	)
}

func HandleAddTagsToEvent(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		ev, err := pool.Active().FindByTitle(argString(args, "event_title", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		for _, tag := range argList(args, "tags") {
			ev.AddTag(tag)
		}
		return jsonResult(ev.Snapshot()), nil
	}
}

// RemoveTagsFromEventTool returns the MCP tool definition for remove_tags_from_event.
func RemoveTagsFromEventTool() mcp.Tool {
	return mcp.NewTool("remove_tags_from_event",
		mcp.WithDescription("Remove tags from the first event matching a title"),
		mcp.WithString("event_title", mcp.Required(), mcp.Description("Title of the event")),
		mcp.WithString("tags", mcp.Required(), mcp.Description("Comma-separated tags to remove")),
	)
}

func HandleRemoveTagsFromEvent(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		ev, err := pool.Active().FindByTitle(argString(args, "event_title", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		for _, tag := range argList(args, "tags") {
			ev.RemoveTag(tag)
		}
		return jsonResult(ev.Snapshot()), nil
	}
}

// RescheduleEventTool returns the MCP tool definition for reschedule_event.
func RescheduleEventTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Move the first event matching a title to a new day and time range"),
		mcp.WithString("event_title", mcp.Required(), mcp.Description("Title of the event to move")),
	}
	opts = append(opts, whenOptions()...)
	return mcp.NewTool("reschedule_event", opts...)
}

func HandleRescheduleEvent(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		day, rng, err := parseWhen(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		s := pool.Active()
		ev, err := s.FindByTitle(argString(args, "event_title", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := s.Reschedule(ev, day, rng); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(ev.Snapshot()), nil
	}
}

// DeleteEventTool returns the MCP tool definition for delete_event.
func DeleteEventTool() mcp.Tool {
	return mcp.NewTool("delete_event",
		mcp.WithDescription("Permanently remove the first event matching a title from the active schedule"),
		mcp.WithString("event_title", mcp.Required(), mcp.Description("Title of the event to delete")),
	)
}

func HandleDeleteEvent(pool *schedule.Pool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := argString(request.GetArguments(), "event_title", "")
		s := pool.Active()
		ev, err := s.FindByTitle(title)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.RemoveEvent(ev)
		return mcp.NewToolResultText(fmt.Sprintf("Deleted event: %s", title)), nil
	}
}
