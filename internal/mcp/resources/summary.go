package resources

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tanvik/dayplan/internal/period"
	"github.com/tanvik/dayplan/internal/schedule"
)

// HandleSummary serves the active schedule's statistics as JSON.
func HandleSummary(pool *schedule.Pool) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		s := pool.Active()
		payload := map[string]any{
			"schedule":   s.Name(),
			"statistics": s.Stats(period.Today()),
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "dayplan://active/summary",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

// HandleUpcoming serves the active schedule's next events as JSON.
func HandleUpcoming(pool *schedule.Pool) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		events := pool.Active().Upcoming(period.Today(), 10)
		out := make([]map[string]any, 0, len(events))
		for _, e := range events {
			out = append(out, e.Snapshot())
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "dayplan://active/upcoming",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
