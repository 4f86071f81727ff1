package respond

import (
	"fmt"
	"strings"
	"time"
)

// layouts accepted for raw date/datetime input, in parse order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizeDates returns a copy of v with every date/time value rendered as
// an ISO-8601 string. Maps and slices are rebuilt, never mutated in place.
func normalizeDates(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return nil
		}
		return val.Format(time.RFC3339)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeDates(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeDates(item)
		}
		return out
	case string:
		// upstream sometimes emits "YYYY-MM-DD HH:MM:SS" without the T
		if t, err := time.Parse("2006-01-02 15:04:05", val); err == nil {
			return t.Format("2006-01-02T15:04:05")
		}
		return val
	default:
		return v
	}
}

// DateInfo decorates a date with explicit day-of-week information, so the
// invoking model does not have to derive weekdays itself.
type DateInfo struct {
	Datetime  string `json:"datetime"`
	Date      string `json:"date"`
	DayOfWeek string `json:"day_of_week"`
	Formatted string `json:"formatted"`
}

// FormatDateWithDay parses a raw date or datetime string (YYYY-MM-DD,
// YYYY-MM-DDTHH:MM[:SS], RFC 3339) and returns it with day-of-week info.
// Already-formatted output ("Monday, October 15, ...") and other non-date
// strings are rejected: a date is accepted exactly once, as a raw date.
func FormatDateWithDay(raw string) (*DateInfo, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("empty date")
	}

	var parsed time.Time
	var err error
	for _, layout := range dateLayouts {
		parsed, err = time.Parse(layout, trimmed)
		if err == nil {
			return &DateInfo{
				Datetime:  parsed.Format("2006-01-02T15:04:05"),
				Date:      parsed.Format("2006-01-02"),
				DayOfWeek: parsed.Weekday().String(),
				Formatted: parsed.Format("Monday, January 2, 2006 at 3:04 PM"),
			}, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS", raw)
}

// ParseStartDateLocal validates a date or datetime string and returns the
// ISO form the events API expects ("2026-03-01T15:00:00"). Date-only input
// defaults to midnight.
func ParseStartDateLocal(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.Contains(trimmed, "T") {
		for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t.Format("2006-01-02T15:04:05"), nil
			}
		}
	} else if t, err := time.Parse("2006-01-02", trimmed); err == nil {
		return t.Format("2006-01-02T15:04:05"), nil
	}
	return "", Validationf("invalid date format: %s (use YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)", raw)
}
