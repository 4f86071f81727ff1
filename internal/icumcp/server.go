package icumcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "1.0.0"

// NewServer builds the MCP server: Intervals.icu tools (activities, wellness,
// events, sport settings, performance, gear, athlete), the athlete profile
// resource and analysis prompts.
func NewServer(h *Handler) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "intervals-icu",
		Version: serverVersion,
	}, &mcp.ServerOptions{
		HasTools:     true,
		HasResources: true,
		HasPrompts:   true,
	})

	s.AddReceivingMiddleware(h.observe())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_athlete_profile",
		Description: "Returns the athlete profile (name, location, timezone, weight, resting HR). Use when you need who the data belongs to or base physiology.",
	}, h.GetAthleteProfileTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_activities",
		Description: "Returns activities in a date range (default last 30 days) with totals for moving time, distance and training load. Use when reviewing recent training.",
	}, h.GetActivitiesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_activity",
		Description: "Returns one activity with formatted duration, distance, pace, power, heart rate and cadence. Arg: activity_id (e.g. i12345678).",
	}, h.GetActivityTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_activity_intervals",
		Description: "Returns the interval breakdown (laps/efforts) of one activity. Arg: activity_id. Use when analyzing workout structure or execution.",
	}, h.GetActivityIntervalsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_activity",
		Description: "Updates fields of an activity (e.g. name, description, type). Args: activity_id, updates (object).",
	}, h.UpdateActivityTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_wellness",
		Description: "Returns wellness data (CTL/ATL/form, weight, resting HR, HRV, sleep, fatigue, soreness) for a date range (default last 7 days) or a single date.",
	}, h.GetWellnessTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_wellness",
		Description: "Updates wellness fields for a date. Args: date (YYYY-MM-DD), updates (object, e.g. weight, restingHR, sleepSecs, fatigue).",
	}, h.UpdateWellnessTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_events",
		Description: "Returns calendar events (planned workouts, races, notes) in a date range (default today through next week) grouped by category.",
	}, h.GetEventsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_event",
		Description: "Creates a calendar event. Args: start_date, name, category (WORKOUT, RACE_A, NOTE, ...); optional: description, event_type (Ride/Run/Swim), duration_seconds, distance_meters, training_load. Common category aliases are auto-corrected.",
	}, h.CreateEventTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_event",
		Description: "Updates a calendar event. Args: event_id, updates (object). Field name aliases (e.g. duration, training_load) are auto-corrected to API names.",
	}, h.UpdateEventTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_event",
		Description: "Deletes one calendar event. Arg: event_id.",
	}, h.DeleteEventTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "bulk_create_events",
		Description: "Creates multiple calendar events in one call. Arg: events (array of objects, each with start_date_local, name, category). Use when planning a training block.",
	}, h.BulkCreateEventsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "bulk_delete_events",
		Description: "Deletes all events in a date range, optionally only one category. Args: oldest, newest (both required), category (optional).",
	}, h.BulkDeleteEventsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "mark_event_done",
		Description: "Marks a planned event as completed by creating an activity from it. Arg: event_id.",
	}, h.MarkEventDoneTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "duplicate_event",
		Description: "Copies an event to another date. Args: event_id, new_date.",
	}, h.DuplicateEventTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_sport_settings",
		Description: "Returns per-sport settings (FTP, FTHR, max HR, pace and swim thresholds) with human-readable threshold formatting.",
	}, h.GetSportSettingsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_sport_settings",
		Description: "Creates a sport settings profile. Arg: settings (object, e.g. types, ftp, fthr, threshold_pace).",
	}, h.CreateSportSettingsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_sport_settings",
		Description: "Updates a sport settings profile (e.g. new FTP after a test). Args: sport_id, updates (object).",
	}, h.UpdateSportSettingsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "apply_sport_settings",
		Description: "Recalculates past activities with the current sport settings. Args: sport_id; optional oldest (YYYY-MM-DD) to bound the recalculation.",
	}, h.ApplySportSettingsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_sport_settings",
		Description: "Deletes a sport settings profile. Arg: sport_id.",
	}, h.DeleteSportSettingsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_power_curves",
		Description: "Returns the mean-max curve (power, hr or pace) for a date range (default last 90 days) with best efforts at standard durations.",
	}, h.GetPowerCurvesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_load",
		Description: "Returns the CTL/ATL/form series for a date range (default last 42 days) with a fitness trend summary. Use when assessing fatigue or readiness.",
	}, h.GetTrainingLoadTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gear",
		Description: "Returns the athlete's gear (bikes, shoes) with usage distance and retired flag.",
	}, h.GetGearTool())

	registerAthleteResource(s, h)
	registerPrompts(s)

	return s
}
