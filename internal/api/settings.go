package api

import (
	"context"
	"net/http"
	"net/url"

	"trackctl/internal/models"
)

// Settings fetches the single settings record.
func (c *Client) Settings(ctx context.Context) (*models.Settings, error) {
	var out models.Settings
	if err := c.getJSON(ctx, "/api/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings replaces the settings record wholesale.
func (c *Client) UpdateSettings(ctx context.Context, payload models.SettingsUpdate) (*models.Settings, error) {
	var out models.Settings
	if err := c.sendJSON(ctx, http.MethodPut, "/api/settings", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health probes the backend.
func (c *Client) Health(ctx context.Context) (*models.Health, error) {
	var out models.Health
	if err := c.getJSON(ctx, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminReset wipes all user-entered data. The confirm token is passed
// through verbatim; the backend rejects anything but the exact phrase.
func (c *Client) AdminReset(ctx context.Context, confirm string) (*models.ResetResult, error) {
	q := url.Values{"confirm": {confirm}}
	var out models.ResetResult
	if err := c.sendJSON(ctx, http.MethodPost, "/api/admin/reset", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
