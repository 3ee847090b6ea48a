package metrics

import (
	"fmt"
	"testing"

	"trackctl/internal/models"
)

func TestReminderBadgesCapped(t *testing.T) {
	in := make([]models.Reminder, 9)
	for i := range in {
		in[i] = models.Reminder{Area: "habits", Message: fmt.Sprintf("reminder %d", i), Severity: "info"}
	}

	out := ReminderBadges(in)
	if len(out) != 6 {
		t.Fatalf("expected cap of 6, got %d", len(out))
	}
	// Truncation keeps server order: the first six, not an arbitrary subset.
	for i, b := range out {
		if want := fmt.Sprintf("reminder %d", i); b.Message != want {
			t.Errorf("badge %d: expected %q, got %q", i, want, b.Message)
		}
	}
}

func TestReminderBadgesSeverity(t *testing.T) {
	out := ReminderBadges([]models.Reminder{
		{Area: "mortgage", Message: "no balance check this month", Severity: "warning"},
		{Area: "habits", Message: "keep it up", Severity: "info"},
		{Area: "fitness", Message: "odd severity", Severity: "critical"},
	})

	if len(out) != 3 {
		t.Fatalf("expected 3 badges, got %d", len(out))
	}
	if !out[0].Warning {
		t.Errorf("warning severity should set Warning")
	}
	if out[1].Warning || out[2].Warning {
		t.Errorf("non-warning severities must render as informational")
	}
}

func TestReminderBadgesEmpty(t *testing.T) {
	if out := ReminderBadges(nil); len(out) != 0 {
		t.Errorf("expected no badges, got %d", len(out))
	}
}
