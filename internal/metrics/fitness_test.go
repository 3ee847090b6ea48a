package metrics

import (
	"testing"

	"trackctl/internal/models"
)

func TestMergeFitnessSeriesOneRowPerDay(t *testing.T) {
	rows := MergeFitnessSeries([]models.Metric{
		{Day: "2026-01-02", Kind: "weight", Value: 185.2},
		{Day: "2026-01-02", Kind: "body_fat", Value: 34.0},
		{Day: "2026-01-01", Kind: "weight", Value: 186.0},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Day != "2026-01-01" || rows[1].Day != "2026-01-02" {
		t.Errorf("rows not sorted ascending: %v, %v", rows[0].Day, rows[1].Day)
	}
	if rows[1].Weight == nil || *rows[1].Weight != 185.2 {
		t.Errorf("expected weight 185.2 on merged row, got %v", rows[1].Weight)
	}
	if rows[1].Waist == nil || *rows[1].Waist != 34.0 {
		t.Errorf("expected waist 34.0 on merged row, got %v", rows[1].Waist)
	}
}

func TestMergeFitnessSeriesGapsStayNil(t *testing.T) {
	rows := MergeFitnessSeries([]models.Metric{
		{Day: "2026-01-01", Kind: "weight", Value: 186.0},
		{Day: "2026-01-03", Kind: "body_fat", Value: 33.5},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Waist != nil {
		t.Errorf("weight-only day should have nil waist, got %v", *rows[0].Waist)
	}
	if rows[1].Weight != nil {
		t.Errorf("waist-only day should have nil weight, got %v", *rows[1].Weight)
	}
}

func TestMergeFitnessSeriesWaistKindAlias(t *testing.T) {
	// Old records carry kind "waist"; new ones carry "body_fat". Both land
	// in the waist column.
	rows := MergeFitnessSeries([]models.Metric{
		{Day: "2026-01-01", Kind: "waist", Value: 36.0},
		{Day: "2026-01-02", Kind: "body_fat", Value: 35.5},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for i, want := range []float64{36.0, 35.5} {
		if rows[i].Waist == nil || *rows[i].Waist != want {
			t.Errorf("row %d: expected waist %v, got %v", i, want, rows[i].Waist)
		}
	}
}

func TestMergeFitnessSeriesLastValueWins(t *testing.T) {
	rows := MergeFitnessSeries([]models.Metric{
		{Day: "2026-01-01", Kind: "weight", Value: 186.0},
		{Day: "2026-01-01", Kind: "weight", Value: 185.0},
	})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Weight == nil || *rows[0].Weight != 185.0 {
		t.Errorf("expected later value 185.0 to win, got %v", rows[0].Weight)
	}
}

func TestMergeFitnessSeriesEmpty(t *testing.T) {
	if rows := MergeFitnessSeries(nil); len(rows) != 0 {
		t.Errorf("expected empty series, got %d rows", len(rows))
	}
}
