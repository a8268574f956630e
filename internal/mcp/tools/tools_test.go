package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tanvik/dayplan/internal/period"
	"github.com/tanvik/dayplan/internal/schedule"
)

func makeRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(result *mcp.CallToolResult) string {
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// pinToday fixes the clock the query handlers use, so upcoming/statistics
// assertions do not depend on the wall calendar.
func pinToday(t *testing.T, day period.Day) {
	t.Helper()
	old := today
	today = func() period.Day { return day }
	t.Cleanup(func() { today = old })
}

func whenArgs(y, m, d, sh, sm, eh, em int) map[string]any {
	return map[string]any{
		"year":         float64(y),
		"month":        float64(m),
		"day":          float64(d),
		"start_hour":   float64(sh),
		"start_minute": float64(sm),
		"end_hour":     float64(eh),
		"end_minute":   float64(em),
	}
}

func TestCreateAppointment(t *testing.T) {
	pool := schedule.NewPool()
	args := whenArgs(2025, 6, 16, 10, 0, 11, 0)
	args["title"] = "Dentist"
	args["tags"] = "health, teeth"

	result, err := HandleCreateAppointment(pool)(context.Background(), makeRequest("create_appointment", args))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got %s", resultText(result))
	}
	if pool.Active().Len() != 1 {
		t.Error("event should land in the active schedule")
	}
	text := resultText(result)
	if !strings.Contains(text, "Dentist") || !strings.Contains(text, "MEDIUM") {
		t.Errorf("snapshot = %s", text)
	}
}

func TestCreateMissingTitle(t *testing.T) {
	pool := schedule.NewPool()
	result, err := HandleCreateAppointment(pool)(context.Background(),
		makeRequest("create_appointment", whenArgs(2025, 6, 16, 10, 0, 11, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing title")
	}
}

func TestCreateInvalidDate(t *testing.T) {
	pool := schedule.NewPool()
	args := whenArgs(2025, 2, 30, 10, 0, 11, 0)
	args["title"] = "Impossible"
	result, err := HandleCreateAppointment(pool)(context.Background(), makeRequest("create_appointment", args))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for Feb 30")
	}
	if pool.Active().Len() != 0 {
		t.Error("failed create should add nothing")
	}
}

func TestCreateDoctorDefaultsHigh(t *testing.T) {
	pool := schedule.NewPool()
	args := whenArgs(2025, 6, 16, 10, 0, 11, 0)
	args["title"] = "Checkup"
	args["doctor_name"] = "Dr. Lee"

	result, err := HandleCreateDoctorAppointment(pool)(context.Background(), makeRequest("create_doctor_appointment", args))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(result)
	if !strings.Contains(text, "HIGH") || !strings.Contains(text, "Dr. Lee") {
		t.Errorf("snapshot = %s", text)
	}
}

func TestScheduleLifecycle(t *testing.T) {
	pool := schedule.NewPool()
	ctx := context.Background()

	if result, _ := HandleCreateSchedule(pool)(ctx, makeRequest("create_schedule", map[string]any{"name": "work"})); result.IsError {
		t.Fatalf("create failed: %s", resultText(result))
	}
	if result, _ := HandleSetActiveSchedule(pool)(ctx, makeRequest("set_active_schedule", map[string]any{"name": "work"})); result.IsError {
		t.Fatalf("set active failed: %s", resultText(result))
	}
	if pool.ActiveName() != "work" {
		t.Errorf("ActiveName = %q", pool.ActiveName())
	}

	listResult, _ := HandleListSchedules(pool)(ctx, makeRequest("list_schedules", map[string]any{}))
	text := resultText(listResult)
	if !strings.Contains(text, "work") || !strings.Contains(text, "default") {
		t.Errorf("list = %s", text)
	}

	if result, _ := HandleDeleteSchedule(pool)(ctx, makeRequest("delete_schedule", map[string]any{"name": "work"})); result.IsError {
		t.Fatalf("delete failed: %s", resultText(result))
	}
	if pool.ActiveName() != schedule.DefaultName {
		t.Error("deleting the active schedule should fall back to default")
	}
	if result, _ := HandleDeleteSchedule(pool)(ctx, makeRequest("delete_schedule", map[string]any{"name": "default"})); !result.IsError {
		t.Error("default schedule must not be deletable")
	}
}

func TestQueryAndMutateFlow(t *testing.T) {
	pool := schedule.NewPool()
	ctx := context.Background()
	pinToday(t, mustDay(t, 2025, 6, 16))

	create := whenArgs(2025, 6, 16, 9, 0, 10, 0)
	create["title"] = "Standup"
	if result, _ := HandleCreateWorkMeeting(pool)(ctx, makeRequest("create_work_meeting", create)); result.IsError {
		t.Fatalf("create failed: %s", resultText(result))
	}

	onDay, _ := HandleGetEventsOnDay(pool)(ctx, makeRequest("get_events_on_day",
		map[string]any{"year": float64(2025), "month": float64(6), "day": float64(16)}))
	if !strings.Contains(resultText(onDay), "Standup") {
		t.Errorf("get_events_on_day = %s", resultText(onDay))
	}

	upcoming, _ := HandleGetUpcomingEvents(pool)(ctx, makeRequest("get_upcoming_events", map[string]any{}))
	if !strings.Contains(resultText(upcoming), "Standup") {
		t.Errorf("get_upcoming_events = %s", resultText(upcoming))
	}

	status, _ := HandleUpdateEventStatus(pool)(ctx, makeRequest("update_event_status",
		map[string]any{"event_title": "Standup", "new_status": "completed"}))
	if status.IsError {
		t.Fatalf("update status failed: %s", resultText(status))
	}
	byStatus, _ := HandleGetEventsByStatus(pool)(ctx, makeRequest("get_events_by_status",
		map[string]any{"status": "completed"}))
	if !strings.Contains(resultText(byStatus), "Standup") {
		t.Errorf("get_events_by_status = %s", resultText(byStatus))
	}

	tag, _ := HandleAddTagsToEvent(pool)(ctx, makeRequest("add_tags_to_event",
		map[string]any{"event_title": "Standup", "tags": "team,daily"}))
	if tag.IsError {
		t.Fatalf("add tags failed: %s", resultText(tag))
	}
	byTag, _ := HandleGetEventsByTag(pool)(ctx, makeRequest("get_events_by_tag", map[string]any{"tag": "daily"}))
	if !strings.Contains(resultText(byTag), "Standup") {
		t.Errorf("get_events_by_tag = %s", resultText(byTag))
	}

	missing, _ := HandleUpdateEventStatus(pool)(ctx, makeRequest("update_event_status",
		map[string]any{"event_title": "Nothing", "new_status": "completed"}))
	if !missing.IsError {
		t.Error("updating a missing event should fail")
	}
}

func TestRescheduleMovesEvent(t *testing.T) {
	pool := schedule.NewPool()
	ctx := context.Background()

	create := whenArgs(2025, 6, 16, 9, 0, 10, 0)
	create["title"] = "Movable"
	HandleCreateAppointment(pool)(ctx, makeRequest("create_appointment", create))

	move := whenArgs(2025, 6, 20, 14, 0, 15, 0)
	move["event_title"] = "Movable"
	result, _ := HandleRescheduleEvent(pool)(ctx, makeRequest("reschedule_event", move))
	if result.IsError {
		t.Fatalf("reschedule failed: %s", resultText(result))
	}
	if !strings.Contains(resultText(result), "rescheduled") {
		t.Errorf("snapshot = %s", resultText(result))
	}

	old := pool.Active().EventsOnDay(mustDay(t, 2025, 6, 16))
	if len(old) != 0 {
		t.Error("old day should be empty after reschedule")
	}
}

func TestCheckConflicts(t *testing.T) {
	pool := schedule.NewPool()
	ctx := context.Background()

	create := whenArgs(2025, 6, 16, 9, 0, 11, 0)
	create["title"] = "Busy"
	HandleCreateAppointment(pool)(ctx, makeRequest("create_appointment", create))

	probe, _ := HandleCheckConflicts(pool)(ctx, makeRequest("check_conflicts", whenArgs(2025, 6, 16, 10, 0, 12, 0)))
	text := resultText(probe)
	if !strings.Contains(text, `"has_conflicts": true`) || !strings.Contains(text, "Busy") {
		t.Errorf("check_conflicts = %s", text)
	}
	// The probe never lands in the schedule.
	if pool.Active().Len() != 1 {
		t.Error("check_conflicts must not add events")
	}

	clear, _ := HandleCheckConflicts(pool)(ctx, makeRequest("check_conflicts", whenArgs(2025, 6, 16, 11, 0, 12, 0)))
	if !strings.Contains(resultText(clear), `"has_conflicts": false`) {
		t.Errorf("touching slot should be conflict-free: %s", resultText(clear))
	}
}

func TestFreeTimeSlots(t *testing.T) {
	pool := schedule.NewPool()
	ctx := context.Background()

	result, _ := HandleGetFreeTimeSlots(pool)(ctx, makeRequest("get_free_time_slots",
		map[string]any{"year": float64(2025), "month": float64(6), "day": float64(16)}))
	text := resultText(result)
	if !strings.Contains(text, "9:00 AM") || !strings.Contains(text, "9:00 PM") {
		t.Errorf("empty day should yield the whole window: %s", text)
	}
}

func TestDeleteEvent(t *testing.T) {
	pool := schedule.NewPool()
	ctx := context.Background()

	create := whenArgs(2025, 6, 16, 9, 0, 10, 0)
	create["title"] = "Doomed"
	HandleCreateAppointment(pool)(ctx, makeRequest("create_appointment", create))

	result, _ := HandleDeleteEvent(pool)(ctx, makeRequest("delete_event", map[string]any{"event_title": "Doomed"}))
	if result.IsError {
		t.Fatalf("delete failed: %s", resultText(result))
	}
	if pool.Active().Len() != 0 {
		t.Error("event should be gone")
	}
	again, _ := HandleDeleteEvent(pool)(ctx, makeRequest("delete_event", map[string]any{"event_title": "Doomed"}))
	if !again.IsError {
		t.Error("deleting a missing event should fail")
	}
}

func mustDay(t *testing.T, y, m, d int) period.Day {
	t.Helper()
	day, err := period.NewDay(y, m, d)
	if err != nil {
		t.Fatalf("NewDay failed: %v", err)
	}
	return day
}
