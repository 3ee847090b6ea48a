package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"trackctl/internal/models"
)

// Trip fetches the single current trip-planning record.
func (c *Client) Trip(ctx context.Context) (*models.Trip, error) {
	var out models.Trip
	if err := c.getJSON(ctx, "/api/relationship/trip", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTrip replaces the trip record. The backend appends the previous
// state to the trip history on every save.
func (c *Client) UpdateTrip(ctx context.Context, payload models.TripUpdate) (*models.Trip, error) {
	var out models.Trip
	if err := c.sendJSON(ctx, http.MethodPut, "/api/relationship/trip", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TripHistory lists snapshots newest first, capped at limit.
func (c *Client) TripHistory(ctx context.Context, limit int) ([]models.TripHistoryEntry, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var out []models.TripHistoryEntry
	if err := c.getJSON(ctx, "/api/relationship/trip/history", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Gifts lists gifts for one calendar month, newest first.
func (c *Client) Gifts(ctx context.Context, year, month int) ([]models.Gift, error) {
	q := url.Values{
		"year":  {strconv.Itoa(year)},
		"month": {strconv.Itoa(month)},
	}
	var out []models.Gift
	if err := c.getJSON(ctx, "/api/relationship/gifts", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddGift records a gift or gesture.
func (c *Client) AddGift(ctx context.Context, payload models.GiftCreate) (*models.Gift, error) {
	var out models.Gift
	if err := c.sendJSON(ctx, http.MethodPost, "/api/relationship/gifts", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
