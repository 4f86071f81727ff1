package intervals

import (
	"context"
	"net/http"
)

// ListWellness returns wellness records between oldest and newest
// (YYYY-MM-DD, either may be empty).
func (c *Client) ListWellness(ctx context.Context, oldest, newest string) ([]Wellness, error) {
	var records []Wellness
	query := dateRangeQuery(oldest, newest)
	if err := c.do(ctx, "listWellness", http.MethodGet, c.athletePath("/wellness"), query, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetWellness returns the wellness record for one date (YYYY-MM-DD).
func (c *Client) GetWellness(ctx context.Context, date string) (*Wellness, error) {
	record := &Wellness{}
	if err := c.do(ctx, "getWellness", http.MethodGet, c.athletePath("/wellness/"+date), nil, nil, record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateWellness patches the wellness record for one date and returns the
// updated record.
func (c *Client) UpdateWellness(ctx context.Context, date string, patch map[string]any) (*Wellness, error) {
	record := &Wellness{}
	if err := c.do(ctx, "updateWellness", http.MethodPut, c.athletePath("/wellness/"+date), nil, patch, record); err != nil {
		return nil, err
	}
	return record, nil
}
