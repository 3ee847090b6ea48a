package api

import (
	"context"
	"net/http"
	"net/url"

	"trackctl/internal/models"
)

// MortgageSummary fetches principal constants, latest balance, and the
// year-to-date and month-to-date extra principal sums.
func (c *Client) MortgageSummary(ctx context.Context) (*models.MortgageSummary, error) {
	var out models.MortgageSummary
	if err := c.getJSON(ctx, "/api/mortgage/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MortgageEvents lists paydown events in the inclusive [start, end] day range.
func (c *Client) MortgageEvents(ctx context.Context, start, end string) ([]models.MortgageEvent, error) {
	q := url.Values{"start": {start}, "end": {end}}
	var out []models.MortgageEvent
	if err := c.getJSON(ctx, "/api/mortgage/events", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddPrincipalPayment records an extra principal payment.
func (c *Client) AddPrincipalPayment(ctx context.Context, payload models.PrincipalPaymentCreate) (*models.MortgageEvent, error) {
	var out models.MortgageEvent
	if err := c.sendJSON(ctx, http.MethodPost, "/api/mortgage/principal-payment", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddBalanceCheck records an observed principal balance.
func (c *Client) AddBalanceCheck(ctx context.Context, payload models.BalanceCheckCreate) (*models.MortgageEvent, error) {
	var out models.MortgageEvent
	if err := c.sendJSON(ctx, http.MethodPost, "/api/mortgage/balance-check", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
