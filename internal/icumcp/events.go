package icumcp

import (
	"context"

	"github.com/johnkeller101/intervals-icu-mcp/internal/respond"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EventsInput is the input for get_events.
type EventsInput struct {
	Oldest string `json:"oldest,omitempty" jsonschema:"Start date (YYYY-MM-DD), defaults to today"`
	Newest string `json:"newest,omitempty" jsonschema:"End date (YYYY-MM-DD), defaults to 7 days after oldest"`
}

// GetEventsTool returns the MCP tool handler for get_events.
func (h *Handler) GetEventsTool() func(context.Context, *mcp.CallToolRequest, EventsInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "get_events", "events",
		func(ctx context.Context, c Client, in EventsInput) (toolOutcome, error) {
			oldest, newest, err := eventRangeOrDefault(in.Oldest, in.Newest)
			if err != nil {
				return toolOutcome{}, err
			}

			events, err := c.ListEvents(ctx, oldest, newest)
			if err != nil {
				return toolOutcome{}, err
			}

			byCategory := map[string]int{}
			for _, e := range events {
				byCategory[e.Category]++
			}

			return toolOutcome{
				Data:     events,
				Analysis: map[string]any{"by_category": byCategory},
				Metadata: respond.Meta{
					"count":  len(events),
					"oldest": oldest,
					"newest": newest,
				},
			}, nil
		})
}

// eventRangeOrDefault differs from the activity default: the calendar is
// forward-looking, so the default window is today through next week.
func eventRangeOrDefault(oldest, newest string) (string, string, error) {
	if oldest == "" {
		oldest = timeNow().Format(dateOnly)
	}
	if newest == "" {
		oldestDay, err := parseDateOnly(oldest, "oldest")
		if err != nil {
			return "", "", err
		}
		newest = oldestDay.AddDate(0, 0, 7).Format(dateOnly)
	}
	if _, err := parseDateOnly(newest, "newest"); err != nil {
		return "", "", err
	}
	if _, err := parseDateOnly(oldest, "oldest"); err != nil {
		return "", "", err
	}
	if oldest > newest {
		return "", "", respond.Validationf("oldest %q is after newest %q", oldest, newest)
	}
	return oldest, newest, nil
}

// CreateEventInput is the input for create_event.
type CreateEventInput struct {
	StartDate       string  `json:"start_date" jsonschema:"Start date/time: YYYY-MM-DD (defaults to midnight), YYYY-MM-DDTHH:MM:SS or YYYY-MM-DDTHH:MM"`
	Name            string  `json:"name" jsonschema:"Event name"`
	Category        string  `json:"category" jsonschema:"Event category: WORKOUT, NOTE, RACE_A, RACE_B, RACE_C, TARGET, PLAN, HOLIDAY, SICK, INJURED, SET_EFTP, FITNESS_DAYS, SEASON_START, SET_FITNESS"`
	Description     string  `json:"description,omitempty" jsonschema:"Event description"`
	EventType       string  `json:"event_type,omitempty" jsonschema:"Activity type, e.g. Ride, Run, Swim"`
	DurationSeconds int     `json:"duration_seconds,omitempty" jsonschema:"Planned duration in seconds"`
	DistanceMeters  float64 `json:"distance_meters,omitempty" jsonschema:"Planned distance in meters"`
	TrainingLoad    int     `json:"training_load,omitempty" jsonschema:"Planned training load"`
}

func (in CreateEventInput) payload() (map[string]any, error) {
	if in.StartDate == "" {
		return nil, respond.Validationf("start_date is required")
	}
	if in.Name == "" {
		return nil, respond.Validationf("name is required")
	}

	startDate, err := respond.ParseStartDateLocal(in.StartDate)
	if err != nil {
		return nil, err
	}
	category, err := NormalizeCategory(in.Category)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"start_date_local": startDate,
		"name":             in.Name,
		"category":         category,
	}
	if in.Description != "" {
		payload["description"] = in.Description
	}
	if in.EventType != "" {
		eventType, err := NormalizeEventType(in.EventType)
		if err != nil {
			return nil, err
		}
		payload["type"] = eventType
	}
	if in.DurationSeconds > 0 {
		payload["moving_time"] = in.DurationSeconds
	}
	if in.DistanceMeters > 0 {
		payload["distance"] = in.DistanceMeters
	}
	if in.TrainingLoad > 0 {
		payload["icu_training_load"] = in.TrainingLoad
	}
	return payload, nil
}

// CreateEventTool returns the MCP tool handler for create_event.
func (h *Handler) CreateEventTool() func(context.Context, *mcp.CallToolRequest, CreateEventInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "create_event", "create_event",
		func(ctx context.Context, c Client, in CreateEventInput) (toolOutcome, error) {
			payload, err := in.payload()
			if err != nil {
				return toolOutcome{}, err
			}

			event, err := c.CreateEvent(ctx, payload)
			if err != nil {
				if envelope, ok := diagnoseEventError(err, payload); ok {
					return toolOutcome{}, &envelopeError{envelope: envelope}
				}
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data:     event,
				Metadata: respond.Meta{"event_id": event.ID},
			}, nil
		})
}

// UpdateEventInput is the input for update_event.
type UpdateEventInput struct {
	EventID int            `json:"event_id" jsonschema:"Event id to update"`
	Updates map[string]any `json:"updates" jsonschema:"Fields to change, e.g. {\"name\": \"Race day\", \"category\": \"RACE_A\"}"`
}

// UpdateEventTool returns the MCP tool handler for update_event.
func (h *Handler) UpdateEventTool() func(context.Context, *mcp.CallToolRequest, UpdateEventInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "update_event", "update_event",
		func(ctx context.Context, c Client, in UpdateEventInput) (toolOutcome, error) {
			if in.EventID <= 0 {
				return toolOutcome{}, respond.Validationf("event_id is required")
			}
			if len(in.Updates) == 0 {
				return toolOutcome{}, respond.Validationf("updates is required and must not be empty")
			}

			payload, err := normalizeEventPayload(in.Updates)
			if err != nil {
				return toolOutcome{}, err
			}

			event, err := c.UpdateEvent(ctx, in.EventID, payload)
			if err != nil {
				if envelope, ok := diagnoseEventError(err, payload); ok {
					return toolOutcome{}, &envelopeError{envelope: envelope}
				}
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data: event,
				Metadata: respond.Meta{
					"event_id":       in.EventID,
					"updated_fields": updatedFieldNames(payload),
				},
			}, nil
		})
}

// normalizeEventPayload applies field renames plus category and type
// auto-correction to a free-form event payload.
func normalizeEventPayload(raw map[string]any) (map[string]any, error) {
	payload := NormalizeEventFields(raw)
	if cat, ok := payload["category"].(string); ok && cat != "" {
		normalized, err := NormalizeCategory(cat)
		if err != nil {
			return nil, err
		}
		payload["category"] = normalized
	}
	if typ, ok := payload["type"].(string); ok && typ != "" {
		normalized, err := NormalizeEventType(typ)
		if err != nil {
			return nil, err
		}
		payload["type"] = normalized
	}
	if startDate, ok := payload["start_date_local"].(string); ok && startDate != "" {
		parsed, err := respond.ParseStartDateLocal(startDate)
		if err != nil {
			return nil, err
		}
		payload["start_date_local"] = parsed
	}
	return payload, nil
}

// EventIDInput is the input for delete_event and mark_event_done.
type EventIDInput struct {
	EventID int `json:"event_id" jsonschema:"Event id"`
}

// DeleteEventTool returns the MCP tool handler for delete_event.
func (h *Handler) DeleteEventTool() func(context.Context, *mcp.CallToolRequest, EventIDInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "delete_event", "delete_event",
		func(ctx context.Context, c Client, in EventIDInput) (toolOutcome, error) {
			if in.EventID <= 0 {
				return toolOutcome{}, respond.Validationf("event_id is required")
			}
			if err := c.DeleteEvent(ctx, in.EventID); err != nil {
				return toolOutcome{}, err
			}
			return toolOutcome{
				Data:     map[string]any{"deleted": true},
				Metadata: respond.Meta{"event_id": in.EventID},
			}, nil
		})
}

// BulkCreateEventsInput is the input for bulk_create_events.
type BulkCreateEventsInput struct {
	Events []map[string]any `json:"events" jsonschema:"Event payloads; each needs start_date_local (YYYY-MM-DD), name and category"`
}

// BulkCreateEventsTool returns the MCP tool handler for bulk_create_events.
func (h *Handler) BulkCreateEventsTool() func(context.Context, *mcp.CallToolRequest, BulkCreateEventsInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "bulk_create_events", "bulk_create_events",
		func(ctx context.Context, c Client, in BulkCreateEventsInput) (toolOutcome, error) {
			if len(in.Events) == 0 {
				return toolOutcome{}, respond.Validationf("events is required and must not be empty")
			}

			payloads := make([]map[string]any, 0, len(in.Events))
			for i, raw := range in.Events {
				payload, err := normalizeEventPayload(raw)
				if err != nil {
					return toolOutcome{}, respond.Validationf("event %d: %v", i, err)
				}
				payloads = append(payloads, payload)
			}

			created, err := c.BulkCreateEvents(ctx, payloads)
			if err != nil {
				if len(payloads) > 0 {
					if envelope, ok := diagnoseEventError(err, payloads[0]); ok {
						return toolOutcome{}, &envelopeError{envelope: envelope}
					}
				}
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data:     created,
				Metadata: respond.Meta{"created_count": len(created)},
			}, nil
		})
}

// BulkDeleteEventsInput is the input for bulk_delete_events. Both dates are
// required so a sloppy call cannot wipe the whole calendar.
type BulkDeleteEventsInput struct {
	Oldest   string `json:"oldest" jsonschema:"Start date (YYYY-MM-DD), required"`
	Newest   string `json:"newest" jsonschema:"End date (YYYY-MM-DD), required"`
	Category string `json:"category,omitempty" jsonschema:"Only delete events of this category, e.g. WORKOUT"`
}

// BulkDeleteEventsTool returns the MCP tool handler for bulk_delete_events.
func (h *Handler) BulkDeleteEventsTool() func(context.Context, *mcp.CallToolRequest, BulkDeleteEventsInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "bulk_delete_events", "bulk_delete_events",
		func(ctx context.Context, c Client, in BulkDeleteEventsInput) (toolOutcome, error) {
			if in.Oldest == "" || in.Newest == "" {
				return toolOutcome{}, respond.Validationf("oldest and newest are both required for bulk delete")
			}
			if _, err := parseDateOnly(in.Oldest, "oldest"); err != nil {
				return toolOutcome{}, err
			}
			if _, err := parseDateOnly(in.Newest, "newest"); err != nil {
				return toolOutcome{}, err
			}

			category := in.Category
			if category != "" {
				normalized, err := NormalizeCategory(category)
				if err != nil {
					return toolOutcome{}, err
				}
				category = normalized
			}

			if err := c.BulkDeleteEvents(ctx, in.Oldest, in.Newest, category); err != nil {
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data: map[string]any{"deleted": true},
				Metadata: respond.Meta{
					"oldest":   in.Oldest,
					"newest":   in.Newest,
					"category": category,
				},
			}, nil
		})
}

// MarkEventDoneTool returns the MCP tool handler for mark_event_done, which
// creates a completed activity from a planned event.
func (h *Handler) MarkEventDoneTool() func(context.Context, *mcp.CallToolRequest, EventIDInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "mark_event_done", "mark_event_done",
		func(ctx context.Context, c Client, in EventIDInput) (toolOutcome, error) {
			if in.EventID <= 0 {
				return toolOutcome{}, respond.Validationf("event_id is required")
			}
			result, err := c.MarkEventDone(ctx, in.EventID)
			if err != nil {
				return toolOutcome{}, err
			}
			return toolOutcome{
				Data:     result,
				Metadata: respond.Meta{"event_id": in.EventID},
			}, nil
		})
}

// DuplicateEventInput is the input for duplicate_event.
type DuplicateEventInput struct {
	EventID int    `json:"event_id" jsonschema:"Event id to duplicate"`
	NewDate string `json:"new_date" jsonschema:"Date for the copy (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)"`
}

// DuplicateEventTool returns the MCP tool handler for duplicate_event.
func (h *Handler) DuplicateEventTool() func(context.Context, *mcp.CallToolRequest, DuplicateEventInput) (*mcp.CallToolResult, any, error) {
	return runTool(h, "duplicate_event", "duplicate_event",
		func(ctx context.Context, c Client, in DuplicateEventInput) (toolOutcome, error) {
			if in.EventID <= 0 {
				return toolOutcome{}, respond.Validationf("event_id is required")
			}
			newDate, err := respond.ParseStartDateLocal(in.NewDate)
			if err != nil {
				return toolOutcome{}, err
			}

			event, err := c.DuplicateEvent(ctx, in.EventID, newDate)
			if err != nil {
				return toolOutcome{}, err
			}

			return toolOutcome{
				Data: event,
				Metadata: respond.Meta{
					"source_event_id": in.EventID,
					"new_event_id":    event.ID,
				},
			}, nil
		})
}
