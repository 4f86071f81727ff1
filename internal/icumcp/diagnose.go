package icumcp

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnkeller101/intervals-icu-mcp/internal/intervals"
	"github.com/johnkeller101/intervals-icu-mcp/internal/respond"
)

var payloadDateLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// diagnoseEventError inspects an event payload the upstream rejected with 400
// and returns a validation-error envelope with concrete fix suggestions. For
// anything other than a 400 it returns ok=false and the caller falls back to
// the generic error mapping.
func diagnoseEventError(err error, payload map[string]any) (string, bool) {
	apiErr, ok := intervals.AsAPIError(err)
	if !ok || apiErr.StatusCode != 400 {
		return "", false
	}

	var suggestions []string

	for key := range payload {
		if correct, aliased := fieldAliases[key]; aliased {
			suggestions = append(suggestions, fmt.Sprintf(
				"Field '%s' is not a valid API field. Use '%s' instead.", key, correct))
		} else if !validEventFields[key] {
			suggestions = append(suggestions, fmt.Sprintf(
				"Unknown field '%s'. Valid fields: %s.", key, sortedEventFields()))
		}
	}

	if cat, _ := payload["category"].(string); cat != "" {
		upper := strings.ToUpper(cat)
		if !isValidCategory(upper) {
			if corrected, aliased := categoryAliases[upper]; aliased {
				suggestions = append(suggestions, fmt.Sprintf(
					"Category '%s' is invalid. Use '%s' instead.", cat, corrected))
			} else {
				suggestions = append(suggestions, fmt.Sprintf(
					"Category '%s' is not valid. Must be one of: %s. Common mappings: RACE->RACE_A, GOAL->TARGET, REST->HOLIDAY, INJURY->INJURED, FTP->SET_EFTP.",
					cat, strings.Join(ValidCategories, ", ")))
			}
		}
	}

	if dateVal, _ := payload["start_date_local"].(string); dateVal != "" {
		if !parsesAsPayloadDate(dateVal) {
			suggestions = append(suggestions, fmt.Sprintf(
				"Date '%s' has invalid format. Use YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS. Example: '2026-03-01' or '2026-03-01T14:00:00'.",
				dateVal))
		}
	} else if _, hasAlias := payload["start_date"]; hasAlias {
		suggestions = append(suggestions,
			"Missing 'start_date_local'. The API requires 'start_date_local', not 'start_date'. Rename the field.")
	} else if _, present := payload["start_date_local"]; !present {
		suggestions = append(suggestions,
			"Missing required field 'start_date_local'. Every event needs a date in YYYY-MM-DD format.")
	}

	if typeVal, _ := payload["type"].(string); typeVal != "" && !isValidType(typeVal) {
		if close := closeTypeMatches(typeVal); len(close) > 0 {
			suggestions = append(suggestions, fmt.Sprintf(
				"Activity type '%s' may not be valid. Did you mean: %s?",
				typeVal, strings.Join(close, ", ")))
		} else {
			suggestions = append(suggestions, fmt.Sprintf(
				"Activity type '%s' is not recognized. Common types: Ride, Run, Swim, VirtualRide, GravelRide, TrailRun, WeightTraining, Hike.",
				typeVal))
		}
	}

	if mt, present := payload["moving_time"]; present && !isNumber(mt) {
		suggestions = append(suggestions, fmt.Sprintf(
			"'moving_time' must be an integer (seconds), got %T. Examples: 3600=1h, 5400=1.5h, 7200=2h.", mt))
	}
	if dist, present := payload["distance"]; present && !isNumber(dist) {
		suggestions = append(suggestions, fmt.Sprintf(
			"'distance' must be a number (meters), got %T. Examples: 40000=40km, 100000=100km.", dist))
	}

	if wd, present := payload["workout_doc"]; present {
		doc, isMap := wd.(map[string]any)
		switch {
		case !isMap:
			suggestions = append(suggestions,
				`'workout_doc' must be a JSON object. Example: {"description": "Warmup\n- 10m ramp 45-55%", "steps": []}`)
		default:
			_, hasDesc := doc["description"]
			_, hasSteps := doc["steps"]
			if !hasDesc && !hasSteps {
				suggestions = append(suggestions,
					`'workout_doc' should contain 'description' (text format) and/or 'steps' (array).`)
			}
		}
	}

	if _, present := payload["name"]; !present {
		suggestions = append(suggestions, "Missing required field 'name'. Every event needs a name.")
	}
	if _, present := payload["category"]; !present {
		suggestions = append(suggestions,
			"Missing required field 'category'. Use WORKOUT for training, NOTE for notes, RACE_A for races, etc.")
	}

	if len(suggestions) == 0 {
		suggestions = []string{
			"The Intervals.icu API rejected this request. Check that all field names and values match the expected format.",
			"Required fields: start_date_local (YYYY-MM-DD), name (string), category (WORKOUT, RACE_A, NOTE, ...).",
			"Optional fields: type (Ride/Run/Swim), moving_time (seconds), distance (meters), description, workout_doc.",
			"API response: " + apiErr.Message,
		}
	}

	msg := fmt.Sprintf(
		"Intervals.icu API rejected the event request. Found %d issue(s) to fix.", len(suggestions))
	return respond.Error(msg, respond.ErrTypeValidation, suggestions...), true
}

func isValidCategory(upper string) bool {
	for _, valid := range ValidCategories {
		if upper == valid {
			return true
		}
	}
	return false
}

func isValidType(value string) bool {
	for _, t := range validTypes {
		if value == t {
			return true
		}
	}
	return false
}

func parsesAsPayloadDate(value string) bool {
	for _, layout := range payloadDateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}
