package intervals

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListSportSettings returns all sport settings (FTP, FTHR, thresholds, zones).
func (c *Client) ListSportSettings(ctx context.Context) ([]SportSettings, error) {
	var settings []SportSettings
	if err := c.do(ctx, "listSportSettings", http.MethodGet, c.athletePath("/sport-settings"), nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// CreateSportSettings creates settings for a new sport type.
func (c *Client) CreateSportSettings(ctx context.Context, settingsData map[string]any) (*SportSettings, error) {
	settings := &SportSettings{}
	if err := c.do(ctx, "createSportSettings", http.MethodPost, c.athletePath("/sport-settings"), nil, settingsData, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSportSettings patches the given fields of one sport settings entry.
func (c *Client) UpdateSportSettings(ctx context.Context, sportID int, settingsData map[string]any) (*SportSettings, error) {
	settings := &SportSettings{}
	path := c.athletePath(fmt.Sprintf("/sport-settings/%d", sportID))
	if err := c.do(ctx, "updateSportSettings", http.MethodPut, path, nil, settingsData, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ApplySportSettings recalculates derived metrics of historical activities
// from the current settings, back to oldest when given.
func (c *Client) ApplySportSettings(ctx context.Context, sportID int, oldest string) (map[string]any, error) {
	result := map[string]any{}
	path := c.athletePath(fmt.Sprintf("/sport-settings/%d/apply", sportID))
	query := url.Values{}
	if oldest != "" {
		query.Set("oldest", oldest)
	}
	if err := c.do(ctx, "applySportSettings", http.MethodPost, path, query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteSportSettings removes one sport settings entry.
func (c *Client) DeleteSportSettings(ctx context.Context, sportID int) error {
	path := c.athletePath(fmt.Sprintf("/sport-settings/%d", sportID))
	return c.do(ctx, "deleteSportSettings", http.MethodDelete, path, nil, nil, nil)
}
