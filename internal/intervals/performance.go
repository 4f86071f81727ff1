package intervals

import (
	"context"
	"net/http"
	"net/url"
)

// GetPowerCurves returns the mean-max power curve for the given activity type
// over the date range (YYYY-MM-DD, either may be empty).
func (c *Client) GetPowerCurves(ctx context.Context, curveType, oldest, newest string) (*PowerCurve, error) {
	curve := &PowerCurve{}
	query := url.Values{}
	if curveType != "" {
		query.Set("type", curveType)
	}
	for k, vs := range dateRangeQuery(oldest, newest) {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	if err := c.do(ctx, "getPowerCurves", http.MethodGet, c.athletePath("/power-curves"), query, nil, curve); err != nil {
		return nil, err
	}
	return curve, nil
}
