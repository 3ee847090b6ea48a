package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"trackctl/internal/models"
)

// FitnessMetrics lists metrics and photos in the inclusive [start, end] day
// range, plus the latest value of each metric kind.
func (c *Client) FitnessMetrics(ctx context.Context, start, end string) (*models.FitnessData, error) {
	q := url.Values{"start": {start}, "end": {end}}
	var out models.FitnessData
	if err := c.getJSON(ctx, "/api/fitness/metrics", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddWeight records a weight measurement for a day.
func (c *Client) AddWeight(ctx context.Context, payload models.WeightCreate) (*models.Metric, error) {
	var out models.Metric
	if err := c.sendJSON(ctx, http.MethodPost, "/api/fitness/weight", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddWaist records a waist measurement for a day. It writes through the
// body-fat endpoint, which is where the backend kept waist values when the
// two metric kinds were merged.
func (c *Client) AddWaist(ctx context.Context, payload models.WaistCreate) (*models.Metric, error) {
	var out models.Metric
	if err := c.sendJSON(ctx, http.MethodPost, "/api/fitness/body-fat", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadPhoto uploads a progress photo for a day as a multipart form with
// field "file". The caller validates the path before this is reached.
func (c *Client) UploadPhoto(ctx context.Context, day, filename string, r io.Reader) (*models.Photo, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("building photo upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("reading photo file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("building photo upload: %w", err)
	}

	q := url.Values{"day": {day}}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/fitness/photo", q, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out models.Photo
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
