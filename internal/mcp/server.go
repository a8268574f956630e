package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tanvik/dayplan/internal/mcp/resources"
	"github.com/tanvik/dayplan/internal/mcp/tools"
	"github.com/tanvik/dayplan/internal/schedule"
)

// NewServer creates and configures the MCP server with all tools and resources.
// Every handler closes over the pool so no global state is involved.
func NewServer(version string, pool *schedule.Pool) *server.MCPServer {
	srv := server.NewMCPServer(
		"dayplan",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	// Schedule management
	srv.AddTool(tools.CreateScheduleTool(), tools.HandleCreateSchedule(pool))
	srv.AddTool(tools.ListSchedulesTool(), tools.HandleListSchedules(pool))
	srv.AddTool(tools.SetActiveScheduleTool(), tools.HandleSetActiveSchedule(pool))
	srv.AddTool(tools.DeleteScheduleTool(), tools.HandleDeleteSchedule(pool))
	srv.AddTool(tools.ClearScheduleTool(), tools.HandleClearSchedule(pool))

	// Event creation
	srv.AddTool(tools.CreateAppointmentTool(), tools.HandleCreateAppointment(pool))
	srv.AddTool(tools.CreateDoctorAppointmentTool(), tools.HandleCreateDoctorAppointment(pool))
	srv.AddTool(tools.CreateWorkMeetingTool(), tools.HandleCreateWorkMeeting(pool))
	srv.AddTool(tools.CreateChoreTool(), tools.HandleCreateChore(pool))
	srv.AddTool(tools.CreateGymSessionTool(), tools.HandleCreateGymSession(pool))
	srv.AddTool(tools.CreatePersonalEventTool(), tools.HandleCreatePersonalEvent(pool))

	// Queries
	srv.AddTool(tools.GetEventsOnDayTool(), tools.HandleGetEventsOnDay(pool))
	srv.AddTool(tools.GetEventsInDateRangeTool(), tools.HandleGetEventsInDateRange(pool))
	srv.AddTool(tools.GetUpcomingEventsTool(), tools.HandleGetUpcomingEvents(pool))
	srv.AddTool(tools.GetEventsByTypeTool(), tools.HandleGetEventsByType(pool))
	srv.AddTool(tools.GetEventsByPriorityTool(), tools.HandleGetEventsByPriority(pool))
	srv.AddTool(tools.GetEventsByStatusTool(), tools.HandleGetEventsByStatus(pool))
	srv.AddTool(tools.GetEventsByTagTool(), tools.HandleGetEventsByTag(pool))

	// Analysis
	srv.AddTool(tools.CheckConflictsTool(), tools.HandleCheckConflicts(pool))
	srv.AddTool(tools.GetFreeTimeSlotsTool(), tools.HandleGetFreeTimeSlots(pool))
	srv.AddTool(tools.GetScheduleStatisticsTool(), tools.HandleGetScheduleStatistics(pool))
	srv.AddTool(tools.GetBusiestDaysTool(), tools.HandleGetBusiestDays(pool))

	// Mutation
	srv.AddTool(tools.UpdateEventStatusTool(), tools.HandleUpdateEventStatus(pool))
	srv.AddTool(tools.UpdateEventPriorityTool(), tools.HandleUpdateEventPriority(pool))
	srv.AddTool(tools.AddTagsToEventTool(), tools.HandleAddTagsToEvent(pool))
	srv.AddTool(tools.RemoveTagsFromEventTool(), tools.HandleRemoveTagsFromEvent(pool))
	srv.AddTool(tools.RescheduleEventTool(), tools.HandleRescheduleEvent(pool))
	srv.AddTool(tools.DeleteEventTool(), tools.HandleDeleteEvent(pool))

	// Resources
	srv.AddResource(
		mcp.NewResource("dayplan://active/summary", "Schedule Summary",
			mcp.WithResourceDescription("Statistics for the active schedule"),
			mcp.WithMIMEType("application/json"),
		),
		resources.HandleSummary(pool),
	)
	srv.AddResource(
		mcp.NewResource("dayplan://active/upcoming", "Upcoming Events",
			mcp.WithResourceDescription("The next events in the active schedule"),
			mcp.WithMIMEType("application/json"),
		),
		resources.HandleUpcoming(pool),
	)

	return srv
}
