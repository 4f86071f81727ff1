package intervals

import (
	"context"
	"net/http"
)

// GetAthlete returns the athlete profile.
func (c *Client) GetAthlete(ctx context.Context) (*Athlete, error) {
	athlete := &Athlete{}
	if err := c.do(ctx, "getAthlete", http.MethodGet, c.athletePath(""), nil, nil, athlete); err != nil {
		return nil, err
	}
	return athlete, nil
}

// ListGear returns the athlete's gear (bikes, shoes, ...).
func (c *Client) ListGear(ctx context.Context) ([]Gear, error) {
	var gear []Gear
	if err := c.do(ctx, "listGear", http.MethodGet, c.athletePath("/gear"), nil, nil, &gear); err != nil {
		return nil, err
	}
	return gear, nil
}
