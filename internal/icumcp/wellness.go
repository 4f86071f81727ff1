package icumcp

import (
	"context"

	"github.com/johnkeller101/intervals-icu-mcp/internal/format"
	"github.com/johnkeller101/intervals-icu-mcp/internal/intervals"
	"github.com/johnkeller101/intervals-icu-mcp/internal/respond"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WellnessInput is the input for get_wellness.
type WellnessInput struct {
	Oldest string `json:"oldest,omitempty" jsonschema:"Start date (YYYY-MM-DD), defaults to 7 days before newest"`
	Newest string `json:"newest,omitempty" jsonschema:"End date (YYYY-MM-DD), defaults to today"`
	Date   string `json:"date,omitempty" jsonschema:"Single date (YYYY-MM-DD), overrides the range"`
}

// GetWellnessTool returns the MCP tool handler for get_wellness.
func (h *Handler) GetWellnessTool() func(context.Context, *mcp.CallToolRequest, WellnessInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "get_wellness", "wellness",
		func(ctx context.Context, c Client, in WellnessInput) (toolOutcome, error) {
			if in.Date != "" {
				dateInfo, err := respond.FormatDateWithDay(in.Date)
				if err != nil {
					return toolOutcome{}, respond.Validationf("invalid date: %s (use YYYY-MM-DD)", in.Date)
				}
				entry, err := c.GetWellness(ctx, dateInfo.Date)
				if err != nil {
					return toolOutcome{}, err
				}
				return toolOutcome{
					Data:     entry,
					Analysis: wellnessAnalysis(entry),
					Metadata: respond.Meta{
						"date":        dateInfo.Date,
						"day_of_week": dateInfo.DayOfWeek,
					},
				}, nil
			}

			oldest, newest, err := dateRangeOrDefault(in.Oldest, in.Newest, 7)
			if err != nil {
				return toolOutcome{}, err
			}

			entries, err := c.ListWellness(ctx, oldest, newest)
			if err != nil {
				return toolOutcome{}, err
			}

			var analysis map[string]any
			if len(entries) > 0 {
				analysis = wellnessAnalysis(&entries[len(entries)-1])
			}

			return toolOutcome{
				Data:     entries,
				Analysis: analysis,
				Metadata: respond.Meta{
					"count":  len(entries),
					"oldest": oldest,
					"newest": newest,
				},
			}, nil
		})
}

// wellnessAnalysis formats the fitness markers of a single wellness entry.
func wellnessAnalysis(w *intervals.Wellness) map[string]any {
	analysis := map[string]any{
		"fitness_summary": format.InterpretFitnessTrends(w.CTL, w.ATL, w.RampRate),
	}
	if w.Form != nil {
		analysis["form"] = format.TSB(*w.Form)
	}
	if w.Weight != nil {
		analysis["weight"] = format.Weight(*w.Weight, format.UnitMetric)
	}
	if w.SleepSecs != nil {
		analysis["sleep"] = format.Duration(*w.SleepSecs)
	}
	if w.RestingHR != nil {
		analysis["resting_hr"] = format.HeartRate(*w.RestingHR)
	}
	if w.Fatigue != nil {
		analysis["fatigue"] = format.WellnessValue(*w.Fatigue, 10)
	}
	if w.Soreness != nil {
		analysis["soreness"] = format.WellnessValue(*w.Soreness, 10)
	}
	return analysis
}

// UpdateWellnessInput is the input for update_wellness.
type UpdateWellnessInput struct {
	Date    string         `json:"date" jsonschema:"Date to update (YYYY-MM-DD)"`
	Updates map[string]any `json:"updates" jsonschema:"Fields to change, e.g. {\"weight\": 71.5, \"restingHR\": 47, \"sleepSecs\": 27000}"`
}

// UpdateWellnessTool returns the MCP tool handler for update_wellness.
func (h *Handler) UpdateWellnessTool() func(context.Context, *mcp.CallToolRequest, UpdateWellnessInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "update_wellness", "update_wellness",
		func(ctx context.Context, c Client, in UpdateWellnessInput) (toolOutcome, error) {
			if in.Date == "" {
				return toolOutcome{}, respond.Validationf("date is required (YYYY-MM-DD)")
			}
			if len(in.Updates) == 0 {
				return toolOutcome{}, respond.Validationf("updates is required and must not be empty")
			}

			entry, err := c.UpdateWellness(ctx, in.Date, in.Updates)
			if err != nil {
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data: entry,
				Metadata: respond.Meta{
					"date":           in.Date,
					"updated_fields": updatedFieldNames(in.Updates),
				},
			}, nil
		})
}
