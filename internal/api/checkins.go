package api

import (
	"context"
	"net/http"
	"net/url"

	"trackctl/internal/models"
)

// Summary fetches the server-computed dashboard summary.
func (c *Client) Summary(ctx context.Context) (*models.Summary, error) {
	var out models.Summary
	if err := c.getJSON(ctx, "/api/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WeeklyReview fetches the scorecard for the week containing anchorDay.
// An empty anchorDay lets the server default to today.
func (c *Client) WeeklyReview(ctx context.Context, anchorDay string) (*models.WeeklyReview, error) {
	q := url.Values{}
	if anchorDay != "" {
		q.Set("anchor_day", anchorDay)
	}
	var out models.WeeklyReview
	if err := c.getJSON(ctx, "/api/review/weekly", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckIns lists check-ins in the inclusive [start, end] day range.
func (c *Client) CheckIns(ctx context.Context, start, end string) ([]models.CheckIn, error) {
	q := url.Values{"start": {start}, "end": {end}}
	var out []models.CheckIn
	if err := c.getJSON(ctx, "/api/checkins", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertCheckIn creates or replaces the check-in for the payload's day.
func (c *Client) UpsertCheckIn(ctx context.Context, payload models.CheckInUpsert) (*models.CheckIn, error) {
	var out models.CheckIn
	if err := c.sendJSON(ctx, http.MethodPost, "/api/checkins/upsert", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
