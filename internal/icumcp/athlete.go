package icumcp

import (
	"context"

	"github.com/johnkeller101/intervals-icu-mcp/internal/format"
	"github.com/johnkeller101/intervals-icu-mcp/internal/respond"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetAthleteProfileTool returns the MCP tool handler for get_athlete_profile.
func (h *Handler) GetAthleteProfileTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return runTool(h, "get_athlete_profile", "athlete_profile",
		func(ctx context.Context, c Client, _ any) (toolOutcome, error) {
			athlete, err := c.GetAthlete(ctx)
			if err != nil {
				return toolOutcome{}, err
			}
			return toolOutcome{
				Data:     athlete,
				Metadata: respond.Meta{"athlete_id": c.AthleteID()},
			}, nil
		})
}

// GetGearTool returns the MCP tool handler for get_gear.
func (h *Handler) GetGearTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return runTool(h, "get_gear", "gear",
		func(ctx context.Context, c Client, _ any) (toolOutcome, error) {
			gear, err := c.ListGear(ctx)
			if err != nil {
				return toolOutcome{}, err
			}

			active := 0
			summaries := make([]map[string]any, 0, len(gear))
			for _, g := range gear {
				if !g.Retired {
					active++
				}
				summaries = append(summaries, map[string]any{
					"id":       g.ID,
					"name":     g.Name,
					"distance": format.Distance(g.Distance, format.UnitMetric),
					"retired":  g.Retired,
				})
			}

			return toolOutcome{
				Data:     gear,
				Analysis: map[string]any{"summary": summaries},
				Metadata: respond.Meta{"count": len(gear), "active_count": active},
			}, nil
		})
}
