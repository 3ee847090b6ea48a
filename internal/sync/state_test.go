package sync

import (
	"testing"

	"trackctl/internal/models"
)

func testSummary(today string) *models.Summary {
	return &models.Summary{Today: today, CurrentWakeupStreak: 2}
}

func TestNewStateRanges(t *testing.T) {
	s := NewState("2026-03-15")

	if s.FitnessStart != "2025-12-16" || s.FitnessEnd != "2026-03-15" {
		t.Errorf("fitness range: got %s to %s", s.FitnessStart, s.FitnessEnd)
	}
	if s.CheckInStart != "2026-03-02" || s.CheckInEnd != "2026-03-15" {
		t.Errorf("check-in range: got %s to %s", s.CheckInStart, s.CheckInEnd)
	}
	if s.MortgageStart != "2026-01-01" || s.MortgageEnd != "2026-03-15" {
		t.Errorf("mortgage range: got %s to %s", s.MortgageStart, s.MortgageEnd)
	}
	if s.GiftYear != 2026 || s.GiftMonth != 3 {
		t.Errorf("gift month: got %d-%d", s.GiftYear, s.GiftMonth)
	}
}

func TestRefreshLifecycle(t *testing.T) {
	s := NewState("2026-03-15")
	resources := []Resource{ResourceSummary}

	if s.Status(ResourceSummary) != StatusUnloaded {
		t.Fatalf("fresh state should be unloaded")
	}

	token := s.BeginRefresh(resources)
	if s.Status(ResourceSummary) != StatusLoading {
		t.Errorf("expected loading after begin")
	}
	if !s.Loading(ResourceSummary) {
		t.Errorf("Loading should report the in-flight resource")
	}

	applied := s.ApplySnapshot(token, &Snapshot{
		Resources: resources,
		Summary:   testSummary("2026-03-15"),
	})
	if !applied {
		t.Fatalf("matching token must apply")
	}
	if s.Status(ResourceSummary) != StatusLoaded {
		t.Errorf("expected loaded after apply")
	}
	if s.Summary == nil || s.Summary.CurrentWakeupStreak != 2 {
		t.Errorf("summary data not applied")
	}
	if s.Loading() {
		t.Errorf("nothing should be in flight after apply")
	}
}

func TestStaleTokenDiscarded(t *testing.T) {
	s := NewState("2026-03-15")
	resources := []Resource{ResourceSummary}

	stale := s.BeginRefresh(resources)
	fresh := s.BeginRefresh(resources)

	if applied := s.ApplySnapshot(fresh, &Snapshot{
		Resources: resources,
		Summary:   &models.Summary{CurrentWakeupStreak: 9},
	}); !applied {
		t.Fatalf("fresh token must apply")
	}

	// The superseded fetch lands afterwards; its data must not overwrite.
	if applied := s.ApplySnapshot(stale, &Snapshot{
		Resources: resources,
		Summary:   &models.Summary{CurrentWakeupStreak: 1},
	}); applied {
		t.Fatalf("stale token must be discarded")
	}
	if s.Summary.CurrentWakeupStreak != 9 {
		t.Errorf("stale snapshot overwrote newer data")
	}
}

func TestFailRefreshKeepsLastGoodData(t *testing.T) {
	s := NewState("2026-03-15")
	resources := []Resource{ResourceSummary}

	token := s.BeginRefresh(resources)
	s.ApplySnapshot(token, &Snapshot{Resources: resources, Summary: testSummary("2026-03-15")})

	token = s.BeginRefresh(resources)
	if !s.FailRefresh(token, resources, "Failed to refresh data") {
		t.Fatalf("matching token must record the failure")
	}

	if s.Status(ResourceSummary) != StatusError {
		t.Errorf("expected error status")
	}
	if s.Summary == nil {
		t.Errorf("failure must not wipe previously loaded data")
	}
	if s.ErrMsg != "Failed to refresh data" {
		t.Errorf("expected error message, got %q", s.ErrMsg)
	}
}

func TestSuccessfulApplyClearsError(t *testing.T) {
	s := NewState("2026-03-15")
	resources := []Resource{ResourceSummary}

	token := s.BeginRefresh(resources)
	s.FailRefresh(token, resources, "boom")

	token = s.BeginRefresh(resources)
	s.ApplySnapshot(token, &Snapshot{Resources: resources, Summary: testSummary("2026-03-15")})

	if s.ErrMsg != "" {
		t.Errorf("successful apply must clear the error, got %q", s.ErrMsg)
	}
}

func TestStaleFailureIgnored(t *testing.T) {
	s := NewState("2026-03-15")
	resources := []Resource{ResourceSummary}

	stale := s.BeginRefresh(resources)
	fresh := s.BeginRefresh(resources)
	s.ApplySnapshot(fresh, &Snapshot{Resources: resources, Summary: testSummary("2026-03-15")})

	if s.FailRefresh(stale, resources, "late failure") {
		t.Fatalf("stale failure must be ignored")
	}
	if s.ErrMsg != "" {
		t.Errorf("stale failure must not set the error, got %q", s.ErrMsg)
	}
	if s.Status(ResourceSummary) != StatusLoaded {
		t.Errorf("stale failure must not change status")
	}
}

func TestApplyRecomputesSeries(t *testing.T) {
	s := NewState("2026-03-15")
	resources := []Resource{ResourceFitness}

	token := s.BeginRefresh(resources)
	s.ApplySnapshot(token, &Snapshot{
		Resources: resources,
		Fitness: &models.FitnessData{
			Metrics: []models.Metric{
				{Day: "2026-03-01", Kind: "weight", Value: 185},
				{Day: "2026-03-02", Kind: "body_fat", Value: 34},
			},
		},
	})

	if len(s.Series) != 2 {
		t.Fatalf("expected series recomputed on apply, got %d rows", len(s.Series))
	}
	if s.Series[0].Day != "2026-03-01" {
		t.Errorf("series not sorted: %s first", s.Series[0].Day)
	}
}

func TestDoubleRefreshIsIdempotent(t *testing.T) {
	s := NewState("2026-03-15")
	resources := []Resource{ResourceSummary}

	t1 := s.BeginRefresh(resources)
	s.ApplySnapshot(t1, &Snapshot{Resources: resources, Summary: testSummary("2026-03-15")})
	t2 := s.BeginRefresh(resources)
	s.ApplySnapshot(t2, &Snapshot{Resources: resources, Summary: testSummary("2026-03-15")})

	if s.Status(ResourceSummary) != StatusLoaded || s.Loading() {
		t.Errorf("repeated refresh must settle back to loaded")
	}
	if s.Summary.CurrentWakeupStreak != 2 {
		t.Errorf("repeated refresh changed data")
	}
}

func TestRangeSettersDoNotFetchOrClear(t *testing.T) {
	s := NewState("2026-03-15")
	resources := []Resource{ResourceFitness}
	token := s.BeginRefresh(resources)
	s.ApplySnapshot(token, &Snapshot{Resources: resources, Fitness: &models.FitnessData{}})

	s.SetFitnessRange("2026-01-01", "2026-03-15")

	if s.Loading() {
		t.Errorf("changing a range must not start a fetch")
	}
	if s.Fitness == nil {
		t.Errorf("changing a range must not drop loaded data")
	}
	if view := s.View(); view.FitnessStart != "2026-01-01" {
		t.Errorf("new range not visible to the next fetch: %s", view.FitnessStart)
	}
}
