package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"trackctl/internal/models"
)

// tripBackend mimics the server's snapshot-on-save behavior: every PUT
// appends the pre-save state to the history, newest first.
type tripBackend struct {
	trip    models.Trip
	history []models.TripHistoryEntry
}

func (b *tripBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/relationship/trip", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			var update models.TripUpdate
			if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
				t.Errorf("decoding trip update: %v", err)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			b.history = append([]models.TripHistoryEntry{{
				ID:       fmt.Sprintf("h%d", len(b.history)+1),
				TripID:   b.trip.ID,
				Snapshot: b.trip,
			}}, b.history...)
			b.trip = models.Trip{
				ID:                 b.trip.ID,
				StartDate:          update.StartDate,
				EndDate:            update.EndDate,
				Dates:              update.Dates,
				AdultsOnly:         update.AdultsOnly,
				LodgingBooked:      update.LodgingBooked,
				ChildcareConfirmed: update.ChildcareConfirmed,
				Notes:              update.Notes,
			}
		}
		if err := json.NewEncoder(w).Encode(b.trip); err != nil {
			t.Errorf("encoding trip: %v", err)
		}
	})
	mux.HandleFunc("/api/relationship/trip/history", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		entries := b.history
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			t.Errorf("encoding history: %v", err)
		}
	})
	return mux
}

func TestTripSaveAppendsHistorySnapshot(t *testing.T) {
	backend := &tripBackend{trip: models.Trip{ID: "t1", Dates: "sometime in June"}}
	srv := httptest.NewServer(backend.handler(t))
	defer srv.Close()

	c := NewWithSecret(srv.URL, nil)

	saved, err := c.UpdateTrip(context.Background(), models.TripUpdate{
		StartDate:     "2026-06-10",
		EndDate:       "2026-06-14",
		LodgingBooked: true,
	})
	if err != nil {
		t.Fatalf("trip save failed: %v", err)
	}
	if !saved.LodgingBooked || saved.StartDate != "2026-06-10" {
		t.Errorf("saved trip not echoed: %+v", saved)
	}

	history, err := c.TripHistory(context.Background(), 25)
	if err != nil {
		t.Fatalf("history fetch failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 snapshot after one save, got %d", len(history))
	}
	if history[0].Snapshot.Dates != "sometime in June" {
		t.Errorf("snapshot should hold the pre-save state, got %+v", history[0].Snapshot)
	}
	if history[0].Snapshot.LodgingBooked {
		t.Errorf("snapshot must not reflect the new state")
	}
}

func TestTripHistoryLimitParam(t *testing.T) {
	backend := &tripBackend{trip: models.Trip{ID: "t1"}}
	srv := httptest.NewServer(backend.handler(t))
	defer srv.Close()

	c := NewWithSecret(srv.URL, nil)
	for i := 0; i < 5; i++ {
		if _, err := c.UpdateTrip(context.Background(), models.TripUpdate{Notes: fmt.Sprintf("rev %d", i)}); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	history, err := c.TripHistory(context.Background(), 3)
	if err != nil {
		t.Fatalf("history fetch failed: %v", err)
	}
	if len(history) != 3 {
		t.Errorf("expected the limit to cap results, got %d", len(history))
	}
	// Newest first: the latest snapshot holds the state before the last save.
	if history[0].Snapshot.Notes != "rev 3" {
		t.Errorf("expected newest snapshot first, got %q", history[0].Snapshot.Notes)
	}
}

func TestGiftsMonthParams(t *testing.T) {
	var gotYear, gotMonth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotYear = r.URL.Query().Get("year")
		gotMonth = r.URL.Query().Get("month")
		fmt.Fprint(w, `[{"id":"g1","day":"2026-03-10","description":"flowers","amount":40}]`)
	}))
	defer srv.Close()

	c := NewWithSecret(srv.URL, nil)
	gifts, err := c.Gifts(context.Background(), 2026, 3)
	if err != nil {
		t.Fatalf("gifts fetch failed: %v", err)
	}

	if gotYear != "2026" || gotMonth != "3" {
		t.Errorf("month params: got year=%s month=%s", gotYear, gotMonth)
	}
	if len(gifts) != 1 || gifts[0].Description != "flowers" {
		t.Errorf("gifts not decoded: %+v", gifts)
	}
}
