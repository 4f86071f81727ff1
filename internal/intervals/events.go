package intervals

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListEvents returns calendar events between oldest and newest (YYYY-MM-DD).
func (c *Client) ListEvents(ctx context.Context, oldest, newest string) ([]Event, error) {
	var events []Event
	query := dateRangeQuery(oldest, newest)
	if err := c.do(ctx, "listEvents", http.MethodGet, c.athletePath("/events"), query, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent creates one calendar event (planned workout, note, race, ...).
func (c *Client) CreateEvent(ctx context.Context, eventData map[string]any) (*Event, error) {
	event := &Event{}
	if err := c.do(ctx, "createEvent", http.MethodPost, c.athletePath("/events"), nil, eventData, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent patches the given fields of an event.
func (c *Client) UpdateEvent(ctx context.Context, eventID int, eventData map[string]any) (*Event, error) {
	event := &Event{}
	path := c.athletePath(fmt.Sprintf("/events/%d", eventID))
	if err := c.do(ctx, "updateEvent", http.MethodPut, path, nil, eventData, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes one event from the calendar.
func (c *Client) DeleteEvent(ctx context.Context, eventID int) error {
	path := c.athletePath(fmt.Sprintf("/events/%d", eventID))
	return c.do(ctx, "deleteEvent", http.MethodDelete, path, nil, nil, nil)
}

// BulkCreateEvents creates multiple events in one upstream call.
func (c *Client) BulkCreateEvents(ctx context.Context, events []map[string]any) ([]Event, error) {
	var created []Event
	if err := c.do(ctx, "bulkCreateEvents", http.MethodPost, c.athletePath("/events/bulk"), nil, events, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// BulkDeleteEvents deletes all events in the given date range, optionally
// restricted to one category.
func (c *Client) BulkDeleteEvents(ctx context.Context, oldest, newest, category string) error {
	query := dateRangeQuery(oldest, newest)
	if category != "" {
		query.Set("category", category)
	}
	return c.do(ctx, "bulkDeleteEvents", http.MethodDelete, c.athletePath("/events"), query, nil, nil)
}

// MarkEventDone marks a planned event as completed by creating the matching
// manual activity upstream.
func (c *Client) MarkEventDone(ctx context.Context, eventID int) (map[string]any, error) {
	result := map[string]any{}
	path := c.athletePath(fmt.Sprintf("/events/%d/create-activity", eventID))
	if err := c.do(ctx, "markEventDone", http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DuplicateEvent copies an event to a new date (YYYY-MM-DD).
func (c *Client) DuplicateEvent(ctx context.Context, eventID int, newDate string) (*Event, error) {
	event := &Event{}
	path := c.athletePath(fmt.Sprintf("/events/%d/duplicate", eventID))
	query := url.Values{}
	query.Set("start_date_local", newDate)
	if err := c.do(ctx, "duplicateEvent", http.MethodPost, path, query, nil, event); err != nil {
		return nil, err
	}
	return event, nil
}
