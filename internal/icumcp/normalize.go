package icumcp

import (
	"sort"
	"strings"

	"github.com/johnkeller101/intervals-icu-mcp/internal/respond"
)

// ValidCategories are the event categories Intervals.icu accepts.
var ValidCategories = []string{
	"WORKOUT", "RACE_A", "RACE_B", "RACE_C", "NOTE", "PLAN",
	"HOLIDAY", "SICK", "INJURED", "SET_EFTP", "FITNESS_DAYS",
	"SEASON_START", "TARGET", "SET_FITNESS",
}

// categoryAliases auto-corrects common category mistakes to valid API values.
var categoryAliases = map[string]string{
	"RACE":   "RACE_A",
	"GOAL":   "TARGET",
	"REST":   "HOLIDAY",
	"INJURY": "INJURED",
	"FTP":    "SET_EFTP",
}

// validTypes are the sport/activity types accepted by the API, exact casing.
var validTypes = []string{
	"Ride", "Run", "Swim", "WeightTraining", "Hike", "Walk",
	"AlpineSki", "BackcountrySki", "Canoeing", "Crossfit",
	"EBikeRide", "Elliptical", "Golf", "GravelRide",
	"Handcycle", "IceSkate", "InlineSkate", "Kayaking",
	"Kitesurf", "MountainBikeRide", "NordicSki", "RockClimbing",
	"RollerSki", "Rowing", "Snowboard", "Snowshoe",
	"StairStepper", "StandUpPaddling", "Surfing",
	"TrailRun", "VirtualRide", "VirtualRun", "Wheelchair",
	"Windsurf", "Workout", "Yoga", "Other",
}

// validEventFields are the known event field names, used to catch typos.
var validEventFields = map[string]bool{
	"start_date_local": true, "end_date_local": true, "name": true,
	"category": true, "type": true, "description": true,
	"moving_time": true, "distance": true, "icu_training_load": true,
	"indoor": true, "color": true, "external_id": true, "tags": true,
	"workout_doc": true, "athlete_cannot_edit": true,
	"hide_from_athlete": true, "target": true, "carbs_per_hour": true,
	"sub_type": true, "not_on_fitness_chart": true,
}

// fieldAliases maps field names agents commonly guess to the real API names.
var fieldAliases = map[string]string{
	"start_date":       "start_date_local",
	"date":             "start_date_local",
	"duration":         "moving_time",
	"duration_seconds": "moving_time",
	"time":             "moving_time",
	"load":             "icu_training_load",
	"training_load":    "icu_training_load",
	"tss":              "icu_training_load",
	"sport_type":       "type",
	"activity_type":    "type",
	"event_type":       "type",
	"workout_type":     "type",
	"distance_meters":  "distance",
	"title":            "name",
}

// NormalizeCategory uppercases and auto-corrects an event category.
func NormalizeCategory(category string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(category))
	if corrected, ok := categoryAliases[upper]; ok {
		return corrected, nil
	}
	for _, valid := range ValidCategories {
		if upper == valid {
			return upper, nil
		}
	}
	return "", respond.Validationf(
		"invalid category %q, must be one of: %s (common aliases: RACE->RACE_A, GOAL->TARGET, REST->HOLIDAY, INJURY->INJURED, FTP->SET_EFTP)",
		category, strings.Join(ValidCategories, ", "),
	)
}

// NormalizeEventType fixes casing of an activity type and resolves unambiguous
// partial matches ("mountain" -> MountainBikeRide).
func NormalizeEventType(eventType string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(eventType))
	for _, t := range validTypes {
		if lower == strings.ToLower(t) {
			return t, nil
		}
	}

	var matches []string
	for _, t := range validTypes {
		tl := strings.ToLower(t)
		if strings.Contains(tl, lower) || strings.Contains(lower, tl) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", respond.Validationf(
			"ambiguous activity type %q, did you mean one of: %s",
			eventType, strings.Join(matches, ", "),
		)
	}
	return "", respond.Validationf(
		"unknown activity type %q, valid types include: Ride, Run, Swim, VirtualRide, GravelRide, TrailRun, WeightTraining, Hike, Walk, Yoga, Other",
		eventType,
	)
}

// NormalizeEventFields renames aliased field names in an event payload to the
// API names. The input map is not modified.
func NormalizeEventFields(event map[string]any) map[string]any {
	out := make(map[string]any, len(event))
	for key, value := range event {
		if correct, ok := fieldAliases[key]; ok {
			key = correct
		}
		out[key] = value
	}
	return out
}

func sortedEventFields() string {
	fields := make([]string, 0, len(validEventFields))
	for f := range validEventFields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return strings.Join(fields, ", ")
}

func closeTypeMatches(value string) []string {
	lower := strings.ToLower(value)
	var matches []string
	for _, t := range validTypes {
		tl := strings.ToLower(t)
		if strings.Contains(tl, lower) || strings.Contains(lower, tl) {
			matches = append(matches, t)
		}
	}
	return matches
}
