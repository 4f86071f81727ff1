package icumcp

import (
	"context"

	"github.com/johnkeller101/intervals-icu-mcp/internal/format"
	"github.com/johnkeller101/intervals-icu-mcp/internal/intervals"
	"github.com/johnkeller101/intervals-icu-mcp/internal/respond"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetSportSettingsTool returns the MCP tool handler for get_sport_settings.
func (h *Handler) GetSportSettingsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return runTool(h, "get_sport_settings", "sport_settings",
		func(ctx context.Context, c Client, _ any) (toolOutcome, error) {
			settingsList, err := c.ListSportSettings(ctx)
			if err != nil {
				return toolOutcome{}, err
			}

			summaries := make([]map[string]any, 0, len(settingsList))
			for _, s := range settingsList {
				summaries = append(summaries, sportSettingsSummary(s))
			}

			return toolOutcome{
				Data:     settingsList,
				Analysis: map[string]any{"thresholds": summaries},
				Metadata: respond.Meta{"count": len(settingsList)},
			}, nil
		})
}

// sportSettingsSummary renders the thresholds of one sport in human units.
func sportSettingsSummary(s intervals.SportSettings) map[string]any {
	summary := map[string]any{
		"id":    s.ID,
		"types": s.Types,
	}
	if s.FTP != nil {
		summary["ftp"] = format.Power(*s.FTP)
	}
	if s.FTHR != nil {
		summary["fthr"] = format.HeartRate(*s.FTHR)
	}
	if s.MaxHR != nil {
		summary["max_hr"] = format.HeartRate(*s.MaxHR)
	}
	if s.PaceThreshold != nil {
		summary["threshold_pace"] = format.RunPace(*s.PaceThreshold)
	}
	if s.SwimThreshold != nil {
		summary["swim_threshold"] = format.SwimPace(*s.SwimThreshold)
	}
	return summary
}

// SportSettingsDataInput is the input for create_sport_settings.
type SportSettingsDataInput struct {
	Settings map[string]any `json:"settings" jsonschema:"Settings payload, e.g. {\"types\": [\"Run\"], \"fthr\": 172, \"threshold_pace\": 4.5}"`
}

// CreateSportSettingsTool returns the MCP tool handler for create_sport_settings.
func (h *Handler) CreateSportSettingsTool() func(context.Context, *mcp.CallToolRequest, SportSettingsDataInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "create_sport_settings", "create_sport_settings",
		func(ctx context.Context, c Client, in SportSettingsDataInput) (toolOutcome, error) {
			if len(in.Settings) == 0 {
				return toolOutcome{}, respond.Validationf("settings is required and must not be empty")
			}

			created, err := c.CreateSportSettings(ctx, in.Settings)
			if err != nil {
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data:     created,
				Metadata: respond.Meta{"sport_settings_id": created.ID},
			}, nil
		})
}

// UpdateSportSettingsInput is the input for update_sport_settings.
type UpdateSportSettingsInput struct {
	SportID int            `json:"sport_id" jsonschema:"Sport settings id (from get_sport_settings)"`
	Updates map[string]any `json:"updates" jsonschema:"Fields to change, e.g. {\"ftp\": 285}"`
}

// UpdateSportSettingsTool returns the MCP tool handler for update_sport_settings.
func (h *Handler) UpdateSportSettingsTool() func(context.Context, *mcp.CallToolRequest, UpdateSportSettingsInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "update_sport_settings", "update_sport_settings",
		func(ctx context.Context, c Client, in UpdateSportSettingsInput) (toolOutcome, error) {
			if in.SportID <= 0 {
				return toolOutcome{}, respond.Validationf("sport_id is required")
			}
			if len(in.Updates) == 0 {
				return toolOutcome{}, respond.Validationf("updates is required and must not be empty")
			}

			updated, err := c.UpdateSportSettings(ctx, in.SportID, in.Updates)
			if err != nil {
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data: updated,
				Metadata: respond.Meta{
					"sport_settings_id": in.SportID,
					"updated_fields":    updatedFieldNames(in.Updates),
				},
			}, nil
		})
}

// ApplySportSettingsInput is the input for apply_sport_settings.
type ApplySportSettingsInput struct {
	SportID int    `json:"sport_id" jsonschema:"Sport settings id (from get_sport_settings)"`
	Oldest  string `json:"oldest,omitempty" jsonschema:"Recalculate activities from this date (YYYY-MM-DD)"`
}

// ApplySportSettingsTool returns the MCP tool handler for apply_sport_settings,
// which recalculates past activities with the current thresholds.
func (h *Handler) ApplySportSettingsTool() func(context.Context, *mcp.CallToolRequest, ApplySportSettingsInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "apply_sport_settings", "apply_sport_settings",
		func(ctx context.Context, c Client, in ApplySportSettingsInput) (toolOutcome, error) {
			if in.SportID <= 0 {
				return toolOutcome{}, respond.Validationf("sport_id is required")
			}
			if in.Oldest != "" {
				if _, err := parseDateOnly(in.Oldest, "oldest"); err != nil {
					return toolOutcome{}, err
				}
			}

			result, err := c.ApplySportSettings(ctx, in.SportID, in.Oldest)
			if err != nil {
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data: result,
				Metadata: respond.Meta{
					"sport_settings_id": in.SportID,
					"oldest":            in.Oldest,
				},
			}, nil
		})
}

// SportIDInput is the input for delete_sport_settings.
type SportIDInput struct {
	SportID int `json:"sport_id" jsonschema:"Sport settings id (from get_sport_settings)"`
}

// DeleteSportSettingsTool returns the MCP tool handler for delete_sport_settings.
func (h *Handler) DeleteSportSettingsTool() func(context.Context, *mcp.CallToolRequest, SportIDInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "delete_sport_settings", "delete_sport_settings",
		func(ctx context.Context, c Client, in SportIDInput) (toolOutcome, error) {
			if in.SportID <= 0 {
				return toolOutcome{}, respond.Validationf("sport_id is required")
			}
			if err := c.DeleteSportSettings(ctx, in.SportID); err != nil {
				return toolOutcome{}, err
			}
			return toolOutcome{
				Data:     map[string]any{"deleted": true},
				Metadata: respond.Meta{"sport_settings_id": in.SportID},
			}, nil
		})
}
