package intervals

import (
	"context"
	"net/http"
)

// ListActivities returns activities between oldest and newest (YYYY-MM-DD,
// either may be empty).
func (c *Client) ListActivities(ctx context.Context, oldest, newest string) ([]Activity, error) {
	var activities []Activity
	query := dateRangeQuery(oldest, newest)
	if err := c.do(ctx, "listActivities", http.MethodGet, c.athletePath("/activities"), query, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivity returns one activity by id.
func (c *Client) GetActivity(ctx context.Context, activityID string) (*Activity, error) {
	activity := &Activity{}
	if err := c.do(ctx, "getActivity", http.MethodGet, "/activity/"+activityID, nil, nil, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// GetActivityIntervals returns the analyzed intervals of an activity.
func (c *Client) GetActivityIntervals(ctx context.Context, activityID string) (*ActivityIntervals, error) {
	intervals := &ActivityIntervals{}
	if err := c.do(ctx, "getActivityIntervals", http.MethodGet, "/activity/"+activityID+"/intervals", nil, nil, intervals); err != nil {
		return nil, err
	}
	return intervals, nil
}

// UpdateActivity patches the given fields of an activity and returns the
// updated activity.
func (c *Client) UpdateActivity(ctx context.Context, activityID string, patch map[string]any) (*Activity, error) {
	activity := &Activity{}
	if err := c.do(ctx, "updateActivity", http.MethodPut, "/activity/"+activityID, nil, patch, activity); err != nil {
		return nil, err
	}
	return activity, nil
}
