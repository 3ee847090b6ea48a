package fitness

import (
	"strings"
	"testing"

	"trackctl/internal/metrics"
	"trackctl/internal/models"
)

func TestViewRendersMeasurementValues(t *testing.T) {
	weight := 169.0
	waist := 33.5

	m := New(80, 24)
	m.SetData(
		[]metrics.SeriesRow{
			{Day: "2026-03-01", Weight: &weight},
			{Day: "2026-03-02", Waist: &waist},
		},
		models.FitnessLatest{WeightLbs: &weight, BodyFatPct: &waist},
		nil,
	)

	view := m.View()
	for _, want := range []string{"169.0", "33.5", "—"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "float64") {
		t.Errorf("view renders pointers instead of values:\n%s", view)
	}
}

func TestViewPlaceholdersWhenEmpty(t *testing.T) {
	m := New(80, 24)
	view := m.View()
	if !strings.Contains(view, "No measurements in range") {
		t.Errorf("empty view missing placeholder:\n%s", view)
	}
	if !strings.Contains(view, "weight —") {
		t.Errorf("latest line should show — for missing values:\n%s", view)
	}
}
