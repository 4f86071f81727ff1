package icumcp

import (
	"context"
	"sort"
	"time"

	"github.com/johnkeller101/intervals-icu-mcp/internal/format"
	"github.com/johnkeller101/intervals-icu-mcp/internal/respond"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// timeNow is swapped in tests that depend on date-range defaulting.
var timeNow = time.Now

const dateOnly = "2006-01-02"

func parseDateOnly(value, field string) (time.Time, error) {
	day, err := time.Parse(dateOnly, value)
	if err != nil {
		return time.Time{}, respond.Validationf("invalid %s date %q, use YYYY-MM-DD", field, value)
	}
	return day, nil
}

// dateRangeOrDefault fills in a missing range: newest defaults to today,
// oldest to daysBack before newest.
func dateRangeOrDefault(oldest, newest string, daysBack int) (string, string, error) {
	if newest == "" {
		newest = timeNow().Format(dateOnly)
	} else if _, err := parseDateOnly(newest, "newest"); err != nil {
		return "", "", err
	}
	if oldest == "" {
		newestDay, _ := time.Parse(dateOnly, newest)
		oldest = newestDay.AddDate(0, 0, -daysBack).Format(dateOnly)
	} else if _, err := parseDateOnly(oldest, "oldest"); err != nil {
		return "", "", err
	}
	if oldest > newest {
		return "", "", respond.Validationf("oldest %q is after newest %q", oldest, newest)
	}
	return oldest, newest, nil
}

// ActivitiesInput is the input for get_activities.
type ActivitiesInput struct {
	Oldest string `json:"oldest,omitempty" jsonschema:"Start date (YYYY-MM-DD), defaults to 30 days before newest"`
	Newest string `json:"newest,omitempty" jsonschema:"End date (YYYY-MM-DD), defaults to today"`
}

// GetActivitiesTool returns the MCP tool handler for get_activities.
func (h *Handler) GetActivitiesTool() func(context.Context, *mcp.CallToolRequest, ActivitiesInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "get_activities", "activities",
		func(ctx context.Context, c Client, in ActivitiesInput) (toolOutcome, error) {
			oldest, newest, err := dateRangeOrDefault(in.Oldest, in.Newest, 30)
			if err != nil {
				return toolOutcome{}, err
			}

			activities, err := c.ListActivities(ctx, oldest, newest)
			if err != nil {
				return toolOutcome{}, err
			}

			var totalSecs int
			var totalMeters, totalLoad float64
			for _, a := range activities {
				totalSecs += a.MovingTime
				totalMeters += a.Distance
				if a.TrainingLoad != nil {
					totalLoad += float64(*a.TrainingLoad)
				}
			}

			return toolOutcome{
				Data: activities,
				Analysis: map[string]any{
					"total_moving_time":   format.Duration(totalSecs),
					"total_distance":      format.Distance(totalMeters, format.UnitMetric),
					"total_training_load": totalLoad,
				},
				Metadata: respond.Meta{
					"count":  len(activities),
					"oldest": oldest,
					"newest": newest,
				},
			}, nil
		})
}

// ActivityInput is the input for get_activity and get_activity_intervals.
type ActivityInput struct {
	ActivityID string `json:"activity_id" jsonschema:"Activity id, e.g. i12345678"`
}

// GetActivityTool returns the MCP tool handler for get_activity.
func (h *Handler) GetActivityTool() func(context.Context, *mcp.CallToolRequest, ActivityInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "get_activity", "activity_details",
		func(ctx context.Context, c Client, in ActivityInput) (toolOutcome, error) {
			if in.ActivityID == "" {
				return toolOutcome{}, respond.Validationf("activity_id is required")
			}

			activity, err := c.GetActivity(ctx, in.ActivityID)
			if err != nil {
				return toolOutcome{}, err
			}

			analysis := map[string]any{
				"moving_time": format.Duration(activity.MovingTime),
				"distance":    format.Distance(activity.Distance, format.UnitMetric),
			}
			if activity.AverageSpeed > 0 {
				analysis["average_speed"] = format.Speed(activity.AverageSpeed, format.UnitMetric)
				analysis["average_pace"] = format.Pace(activity.AverageSpeed, format.UnitMetric)
			}
			if activity.AverageWatts != nil {
				analysis["average_power"] = format.Power(*activity.AverageWatts)
			}
			if activity.AverageHeartRate != nil {
				analysis["average_heartrate"] = format.HeartRate(*activity.AverageHeartRate)
			}
			if activity.AverageCadence != nil {
				analysis["average_cadence"] = format.Cadence(*activity.AverageCadence, activity.Type)
			}

			return toolOutcome{
				Data:     activity,
				Analysis: analysis,
				Metadata: respond.Meta{"activity_id": in.ActivityID},
			}, nil
		})
}

// GetActivityIntervalsTool returns the MCP tool handler for get_activity_intervals.
func (h *Handler) GetActivityIntervalsTool() func(context.Context, *mcp.CallToolRequest, ActivityInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "get_activity_intervals", "activity_intervals",
		func(ctx context.Context, c Client, in ActivityInput) (toolOutcome, error) {
			if in.ActivityID == "" {
				return toolOutcome{}, respond.Validationf("activity_id is required")
			}

			intervalsData, err := c.GetActivityIntervals(ctx, in.ActivityID)
			if err != nil {
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data: intervalsData,
				Metadata: respond.Meta{
					"activity_id":    in.ActivityID,
					"interval_count": len(intervalsData.ICUIntervals),
					"analyzed":       intervalsData.Analyzed,
				},
			}, nil
		})
}

// UpdateActivityInput is the input for update_activity.
type UpdateActivityInput struct {
	ActivityID string         `json:"activity_id" jsonschema:"Activity id, e.g. i12345678"`
	Updates    map[string]any `json:"updates" jsonschema:"Fields to change, e.g. {\"name\": \"Morning Ride\", \"description\": \"...\"}"`
}

// UpdateActivityTool returns the MCP tool handler for update_activity.
func (h *Handler) UpdateActivityTool() func(context.Context, *mcp.CallToolRequest, UpdateActivityInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "update_activity", "update_activity",
		func(ctx context.Context, c Client, in UpdateActivityInput) (toolOutcome, error) {
			if in.ActivityID == "" {
				return toolOutcome{}, respond.Validationf("activity_id is required")
			}
			if len(in.Updates) == 0 {
				return toolOutcome{}, respond.Validationf("updates is required and must not be empty")
			}

			activity, err := c.UpdateActivity(ctx, in.ActivityID, in.Updates)
			if err != nil {
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data: activity,
				Metadata: respond.Meta{
					"activity_id":    in.ActivityID,
					"updated_fields": updatedFieldNames(in.Updates),
				},
			}, nil
		})
}

func updatedFieldNames(updates map[string]any) []string {
	names := make([]string, 0, len(updates))
	for name := range updates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
