package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tanvik/dayplan/internal/event"
	"github.com/tanvik/dayplan/internal/schedule"
)

func createTool(name, desc string, extra ...mcp.ToolOption) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(desc),
		mcp.WithString("title", mcp.Required(), mcp.Description("The title of the event")),
	}
	opts = append(opts, whenOptions()...)
	opts = append(opts, extra...)
	opts = append(opts, commonOptions()...)
	return mcp.NewTool(name, opts...)
}

// handleCreate wraps the shared create flow: parse the when/options
// arguments, build the variant payload, add to the active schedule and
// return the snapshot.
func handleCreate(pool *schedule.Pool, details func(args map[string]any) event.Details) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		title := argString(args, "title", "")
		if title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}
		day, rng, err := parseWhen(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts, err := parseOptions(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		ev, err := event.New(title, day, rng, details(args), opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := pool.Active().AddEvent(ev, false); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(ev.Snapshot()), nil
	}
}

// CreateAppointmentTool returns the MCP tool definition for create_appointment.
func CreateAppointmentTool() mcp.Tool {
	return createTool("create_appointment", "Create a general appointment in the active schedule",
		mcp.WithString("location", mcp.Description("Where the appointment takes place")),
		mcp.WithString("attendees", mcp.Description("Comma-separated attendees")),
		mcp.WithNumber("reminder_minutes", mcp.Description("Minutes before the event to send a reminder (default 15)")),
	)
}

func HandleCreateAppointment(pool *schedule.Pool) server.ToolHandlerFunc {
	return handleCreate(pool, func(args map[string]any) event.Details {
		d := event.DefaultAppointmentDetails()
		d.Location = argString(args, "location", "")
		d.Attendees = argList(args, "attendees")
		d.ReminderMinutes = argInt(args, "reminder_minutes", d.ReminderMinutes)
		return &d
	})
}

// CreateDoctorAppointmentTool returns the MCP tool definition for
// create_doctor_appointment. Doctor appointments default to HIGH
// priority unless one is supplied.
func CreateDoctorAppointmentTool() mcp.Tool {
	return createTool("create_doctor_appointment", "Create a medical appointment (defaults to HIGH priority)",
		mcp.WithString("doctor_name", mcp.Description("Name of the doctor")),
		mcp.WithString("specialty", mcp.Description("Medical specialty")),
		mcp.WithString("location", mcp.Description("Medical facility location")),
		mcp.WithBoolean("insurance_required", mcp.Description("Whether insurance information is needed (default true)")),
		mcp.WithString("medical_notes", mcp.Description("Medical-specific notes")),
	)
}

func HandleCreateDoctorAppointment(pool *schedule.Pool) server.ToolHandlerFunc {
	return handleCreate(pool, func(args map[string]any) event.Details {
		d := event.DefaultDoctorDetails()
		d.Location = argString(args, "location", "")
		d.DoctorName = argString(args, "doctor_name", "")
		d.Specialty = argString(args, "specialty", "")
		d.InsuranceRequired = argBool(args, "insurance_required", d.InsuranceRequired)
		d.MedicalNotes = argString(args, "medical_notes", "")
		return &d
	})
}

// CreateWorkMeetingTool returns the MCP tool definition for create_work_meeting.
func CreateWorkMeetingTool() mcp.Tool {
	return createTool("create_work_meeting", "Create a work meeting in the active schedule",
		mcp.WithString("organizer", mcp.Description("Person organizing the meeting")),
		mcp.WithString("attendees", mcp.Description("Comma-separated attendees")),
		mcp.WithString("agenda", mcp.Description("Comma-separated agenda items")),
		mcp.WithString("meeting_link", mcp.Description("URL for a virtual meeting")),
		mcp.WithBoolean("is_virtual", mcp.Description("Whether the meeting is virtual (default true)")),
		mcp.WithString("room", mcp.Description("Physical meeting room")),
	)
}

func HandleCreateWorkMeeting(pool *schedule.Pool) server.ToolHandlerFunc {
	return handleCreate(pool, func(args map[string]any) event.Details {
		d := event.DefaultMeetingDetails()
		d.Organizer = argString(args, "organizer", "")
		d.Attendees = argList(args, "attendees")
		d.Agenda = argList(args, "agenda")
		d.MeetingLink = argString(args, "meeting_link", "")
		d.IsVirtual = argBool(args, "is_virtual", d.IsVirtual)
		d.Room = argString(args, "room", "")
		return &d
	})
}

// CreateChoreTool returns the MCP tool definition for create_chore.
func CreateChoreTool() mcp.Tool {
	return createTool("create_chore", "Create a household chore in the active schedule",
		mcp.WithString("category", mcp.Description("Chore category (default General)")),
		mcp.WithBoolean("is_recurring", mcp.Description("Whether the chore repeats")),
		mcp.WithNumber("recurrence_days", mcp.Description("Days between recurrences (default 7)")),
		mcp.WithString("estimated_effort", mcp.Description("Effort level (default Medium)")),
	)
}

func HandleCreateChore(pool *schedule.Pool) server.ToolHandlerFunc {
	return handleCreate(pool, func(args map[string]any) event.Details {
		d := event.DefaultChoreDetails()
		if c := argString(args, "category", ""); c != "" {
			d.Category = c
		}
		d.IsRecurring = argBool(args, "is_recurring", false)
		d.RecurrenceDays = argInt(args, "recurrence_days", d.RecurrenceDays)
		if e := argString(args, "estimated_effort", ""); e != "" {
			d.EstimatedEffort = e
		}
		return &d
	})
}

// CreateGymSessionTool returns the MCP tool definition for create_gym_session.
func CreateGymSessionTool() mcp.Tool {
	return createTool("create_gym_session", "Create a gym or exercise session in the active schedule",
		mcp.WithString("workout_type", mcp.Description("Type of workout (default General)")),
		mcp.WithString("gym_location", mcp.Description("Name or location of the gym")),
		mcp.WithString("trainer", mcp.Description("Personal trainer name")),
		mcp.WithString("exercises", mcp.Description("Comma-separated exercises")),
		mcp.WithNumber("target_calories", mcp.Description("Target calories to burn")),
	)
}

func HandleCreateGymSession(pool *schedule.Pool) server.ToolHandlerFunc {
	return handleCreate(pool, func(args map[string]any) event.Details {
		d := event.DefaultGymDetails()
		if w := argString(args, "workout_type", ""); w != "" {
			d.WorkoutType = w
		}
		d.GymLocation = argString(args, "gym_location", "")
		d.Trainer = argString(args, "trainer", "")
		d.Exercises = argList(args, "exercises")
		d.TargetCalories = argInt(args, "target_calories", 0)
		return &d
	})
}

// CreatePersonalEventTool returns the MCP tool definition for create_personal_event.
func CreatePersonalEventTool() mcp.Tool {
	return createTool("create_personal_event", "Create a personal event in the active schedule",
		mcp.WithString("category", mcp.Description("Event category (default General)")),
		mcp.WithString("participants", mcp.Description("Comma-separated participants")),
		mcp.WithNumber("cost", mcp.Description("Estimated or actual cost")),
		mcp.WithString("location", mcp.Description("Where the event takes place")),
	)
}

func HandleCreatePersonalEvent(pool *schedule.Pool) server.ToolHandlerFunc {
	return handleCreate(pool, func(args map[string]any) event.Details {
		d := event.DefaultPersonalDetails()
		if c := argString(args, "category", ""); c != "" {
			d.Category = c
		}
		d.Participants = argList(args, "participants")
		if cost, ok := args["cost"].(float64); ok {
			d.Cost = cost
		}
		d.Location = argString(args, "location", "")
		return &d
	})
}
