package icumcp

import (
	"context"
	"fmt"

	"github.com/johnkeller101/intervals-icu-mcp/internal/format"
	"github.com/johnkeller101/intervals-icu-mcp/internal/respond"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PowerCurvesInput is the input for get_power_curves.
type PowerCurvesInput struct {
	CurveType string `json:"curve_type,omitempty" jsonschema:"Curve type: power (default), hr or pace"`
	Oldest    string `json:"oldest,omitempty" jsonschema:"Start date (YYYY-MM-DD), defaults to 90 days before newest"`
	Newest    string `json:"newest,omitempty" jsonschema:"End date (YYYY-MM-DD), defaults to today"`
}

var validCurveTypes = map[string]bool{"power": true, "hr": true, "pace": true}

// GetPowerCurvesTool returns the MCP tool handler for get_power_curves.
func (h *Handler) GetPowerCurvesTool() func(context.Context, *mcp.CallToolRequest, PowerCurvesInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "get_power_curves", "power_curves",
		func(ctx context.Context, c Client, in PowerCurvesInput) (toolOutcome, error) {
			curveType := in.CurveType
			if curveType == "" {
				curveType = "power"
			}
			if !validCurveTypes[curveType] {
				return toolOutcome{}, respond.Validationf(
					"invalid curve_type %q, must be power, hr or pace", in.CurveType)
			}

			oldest, newest, err := dateRangeOrDefault(in.Oldest, in.Newest, 90)
			if err != nil {
				return toolOutcome{}, err
			}

			curve, err := c.GetPowerCurves(ctx, curveType, oldest, newest)
			if err != nil {
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data:     curve,
				Analysis: bestEfforts(curve.Secs, curve.Values),
				Metadata: respond.Meta{
					"curve_type": curveType,
					"oldest":     oldest,
					"newest":     newest,
				},
			}, nil
		})
}

// bestEfforts picks the standard benchmark durations out of a mean-max curve.
func bestEfforts(secs []int, values []float64) map[string]any {
	if len(secs) == 0 || len(secs) != len(values) {
		return nil
	}
	byDuration := make(map[int]float64, len(secs))
	for i, s := range secs {
		byDuration[s] = values[i]
	}

	efforts := map[string]any{}
	for _, bench := range []struct {
		secs  int
		label string
	}{
		{5, "best_5s"},
		{60, "best_1m"},
		{300, "best_5m"},
		{1200, "best_20m"},
		{3600, "best_1h"},
	} {
		if v, ok := byDuration[bench.secs]; ok {
			efforts[bench.label] = v
		}
	}
	if len(efforts) == 0 {
		return nil
	}
	return map[string]any{"best_efforts": efforts}
}

// TrainingLoadInput is the input for get_training_load.
type TrainingLoadInput struct {
	Oldest string `json:"oldest,omitempty" jsonschema:"Start date (YYYY-MM-DD), defaults to 42 days before newest"`
	Newest string `json:"newest,omitempty" jsonschema:"End date (YYYY-MM-DD), defaults to today"`
}

// GetTrainingLoadTool returns the MCP tool handler for get_training_load. It
// reads the wellness series (CTL, ATL, form) over the range and summarizes
// the trend of the most recent entry.
func (h *Handler) GetTrainingLoadTool() func(context.Context, *mcp.CallToolRequest, TrainingLoadInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "get_training_load", "training_load",
		func(ctx context.Context, c Client, in TrainingLoadInput) (toolOutcome, error) {
			oldest, newest, err := dateRangeOrDefault(in.Oldest, in.Newest, 42)
			if err != nil {
				return toolOutcome{}, err
			}

			entries, err := c.ListWellness(ctx, oldest, newest)
			if err != nil {
				return toolOutcome{}, err
			}

			series := make([]map[string]any, 0, len(entries))
			var ctlValues []float64
			for _, w := range entries {
				point := map[string]any{"date": w.ID}
				if w.CTL != nil {
					point["ctl"] = *w.CTL
					ctlValues = append(ctlValues, *w.CTL)
				}
				if w.ATL != nil {
					point["atl"] = *w.ATL
				}
				if w.Form != nil {
					point["form"] = *w.Form
				}
				series = append(series, point)
			}

			var analysis map[string]any
			if len(entries) > 0 {
				latest := entries[len(entries)-1]
				analysis = map[string]any{
					"fitness_summary": format.InterpretFitnessTrends(latest.CTL, latest.ATL, latest.RampRate),
					"avg_ctl":         fmt.Sprintf("%.1f", format.Avg(ctlValues)),
				}
				if latest.Form != nil {
					analysis["current_form"] = format.TSB(*latest.Form)
				}
			}

			return toolOutcome{
				Data:     map[string]any{"series": series},
				Analysis: analysis,
				Metadata: respond.Meta{
					"count":  len(entries),
					"oldest": oldest,
					"newest": newest,
				},
			}, nil
		})
}
