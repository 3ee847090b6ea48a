package tui

import (
	"testing"

	"trackctl/internal/api"
	"trackctl/internal/constants"
	"trackctl/internal/sync"
	"trackctl/internal/tui/components/fitness"
	"trackctl/internal/tui/components/mortgage"
)

func testModel() Model {
	client := api.NewWithSecret("http://127.0.0.1:0", func() (string, error) { return "", nil })
	return NewModel(client)
}

func TestMainTabStatesIndexTabNames(t *testing.T) {
	states := []constants.SessionState{
		constants.StateDashboard,
		constants.StateCheckIn,
		constants.StateFitness,
		constants.StateMortgage,
		constants.StateRelationship,
		constants.StateSettings,
	}
	if len(states) != constants.NumMainTabs {
		t.Fatalf("got %d main tab states, want %d", len(states), constants.NumMainTabs)
	}
	if len(tabNames) != constants.NumMainTabs {
		t.Fatalf("got %d tab names, want %d", len(tabNames), constants.NumMainTabs)
	}
	for i, s := range states {
		if int(s) != i {
			t.Errorf("state for %q = %d, want %d", tabNames[i], int(s), i)
		}
	}
}

func TestSwitchTabCyclesThroughEveryTab(t *testing.T) {
	m := testModel()
	want := []constants.SessionState{
		constants.StateCheckIn,
		constants.StateFitness,
		constants.StateMortgage,
		constants.StateRelationship,
		constants.StateSettings,
		constants.StateDashboard,
	}
	for _, tab := range want {
		next, _ := m.switchTab(1)
		m = next.(Model)
		if m.tab != tab {
			t.Fatalf("switchTab landed on %d, want %d", m.tab, tab)
		}
		if m.contentView() == "" {
			t.Errorf("tab %d renders no content", m.tab)
		}
	}
}

func TestSwitchTabBackwardWrapsToSettings(t *testing.T) {
	m := testModel()
	next, _ := m.switchTab(-1)
	m = next.(Model)
	if m.tab != constants.StateSettings {
		t.Fatalf("got tab %d, want %d", m.tab, constants.StateSettings)
	}
}

func TestCheckInTabLazyLoadsOnFirstEntryOnly(t *testing.T) {
	m := testModel()

	next, cmd := m.switchTab(1)
	m = next.(Model)
	if m.tab != constants.StateCheckIn {
		t.Fatalf("got tab %d, want %d", m.tab, constants.StateCheckIn)
	}
	if cmd == nil {
		t.Fatal("first entry to the check-in tab should start a fetch")
	}
	if m.state.Status(sync.ResourceCheckIns) != sync.StatusLoading {
		t.Fatalf("check-ins status = %d, want loading", m.state.Status(sync.ResourceCheckIns))
	}

	// A full cycle back onto the tab must not start another fetch.
	for i := 0; i < constants.NumMainTabs; i++ {
		next, cmd = m.switchTab(1)
		m = next.(Model)
	}
	if m.tab != constants.StateCheckIn {
		t.Fatalf("got tab %d after full cycle, want %d", m.tab, constants.StateCheckIn)
	}
	if cmd != nil {
		t.Fatal("re-entering the check-in tab started a second fetch")
	}
}

func TestFitnessRangeFormUpdatesFilterWithoutFetching(t *testing.T) {
	m := testModel()

	next, _ := m.Update(fitness.SetRangeMsg{})
	m = next.(Model)
	if m.form == nil || m.formState != constants.StateFitnessRangeForm {
		t.Fatal("range message did not open the range form")
	}

	m.rangeForm.Start = "2026-01-01"
	m.rangeForm.End = "2026-01-31"
	if cmd := m.submitForm(); cmd != nil {
		t.Fatal("changing the range must not fetch")
	}

	view := m.state.View()
	if view.FitnessStart != "2026-01-01" || view.FitnessEnd != "2026-01-31" {
		t.Fatalf("range = %s..%s, want 2026-01-01..2026-01-31", view.FitnessStart, view.FitnessEnd)
	}
}

func TestMortgageRangeFormUpdatesFilterWithoutFetching(t *testing.T) {
	m := testModel()

	next, _ := m.Update(mortgage.SetRangeMsg{})
	m = next.(Model)
	if m.form == nil || m.formState != constants.StateMortgageRangeForm {
		t.Fatal("range message did not open the range form")
	}

	m.rangeForm.Start = "2025-06-01"
	m.rangeForm.End = "2025-12-31"
	if cmd := m.submitForm(); cmd != nil {
		t.Fatal("changing the range must not fetch")
	}

	view := m.state.View()
	if view.MortgageStart != "2025-06-01" || view.MortgageEnd != "2025-12-31" {
		t.Fatalf("range = %s..%s, want 2025-06-01..2025-12-31", view.MortgageStart, view.MortgageEnd)
	}
}
