package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trackctl/internal/models"
)

func TestAddWaistPostsToBodyFatEndpoint(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		fmt.Fprint(w, `{"id":"m1","day":"2026-03-15","kind":"body_fat","value":34.5}`)
	}))
	defer srv.Close()

	c := NewWithSecret(srv.URL, nil)
	saved, err := c.AddWaist(context.Background(), models.WaistCreate{Day: "2026-03-15", BodyFatPct: 34.5})
	if err != nil {
		t.Fatalf("add waist failed: %v", err)
	}

	if gotPath != "/api/fitness/body-fat" {
		t.Errorf("waist writes go through the body-fat endpoint, got %s", gotPath)
	}
	if gotBody["body_fat_pct"] != 34.5 {
		t.Errorf("expected body_fat_pct field, got %v", gotBody)
	}
	if saved.Kind != "body_fat" {
		t.Errorf("unexpected kind %q", saved.Kind)
	}
}

func TestUploadPhotoMultipart(t *testing.T) {
	var gotDay, gotFilename, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDay = r.URL.Query().Get("day")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file field: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		gotFilename = header.Filename
		data, _ := io.ReadAll(f)
		gotContent = string(data)
		fmt.Fprint(w, `{"id":"p1","day":"2026-03-15","filename":"front.jpg","url":"/uploads/front.jpg"}`)
	}))
	defer srv.Close()

	c := NewWithSecret(srv.URL, nil)
	saved, err := c.UploadPhoto(context.Background(), "2026-03-15", "front.jpg", strings.NewReader("jpegbytes"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if gotDay != "2026-03-15" {
		t.Errorf("day query param: got %q", gotDay)
	}
	if gotFilename != "front.jpg" {
		t.Errorf("filename: got %q", gotFilename)
	}
	if gotContent != "jpegbytes" {
		t.Errorf("file content not forwarded: got %q", gotContent)
	}
	if saved.URL != "/uploads/front.jpg" {
		t.Errorf("unexpected url %q", saved.URL)
	}
}

func TestFitnessMetricsRangeParams(t *testing.T) {
	var gotStart, gotEnd string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStart = r.URL.Query().Get("start")
		gotEnd = r.URL.Query().Get("end")
		fmt.Fprint(w, `{"metrics":[],"photos":[],"latest":{"weight_lbs":185.5}}`)
	}))
	defer srv.Close()

	c := NewWithSecret(srv.URL, nil)
	data, err := c.FitnessMetrics(context.Background(), "2025-12-16", "2026-03-15")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if gotStart != "2025-12-16" || gotEnd != "2026-03-15" {
		t.Errorf("range params: got %s to %s", gotStart, gotEnd)
	}
	if data.Latest.WeightLbs == nil || *data.Latest.WeightLbs != 185.5 {
		t.Errorf("latest block not decoded")
	}
	if data.Latest.BodyFatPct != nil {
		t.Errorf("absent latest value must stay nil")
	}
}
