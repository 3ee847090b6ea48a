package sync

import (
	"slices"
	"testing"
)

func TestPlanTripNeverTouchesMortgage(t *testing.T) {
	resources := Plan(MutationTrip)

	for _, r := range []Resource{ResourceMortgageSummary, ResourceMortgageEvents} {
		if slices.Contains(resources, r) {
			t.Errorf("trip save must not refetch %s", r)
		}
	}
	for _, r := range []Resource{ResourceTrip, ResourceTripHistory, ResourceSummary} {
		if !slices.Contains(resources, r) {
			t.Errorf("trip save must refetch %s", r)
		}
	}
}

func TestPlanMortgageNeverTouchesTrip(t *testing.T) {
	for _, m := range []Mutation{MutationPrincipalPayment, MutationBalanceCheck} {
		resources := Plan(m)
		for _, r := range []Resource{ResourceTrip, ResourceTripHistory, ResourceGifts} {
			if slices.Contains(resources, r) {
				t.Errorf("%s must not refetch %s", m, r)
			}
		}
		if !slices.Contains(resources, ResourceMortgageSummary) {
			t.Errorf("%s must refetch the mortgage summary", m)
		}
	}
}

func TestPlanCheckInIncludesDerivedReads(t *testing.T) {
	resources := Plan(MutationCheckIn)
	for _, r := range []Resource{ResourceCheckIns, ResourceSummary, ResourceReview} {
		if !slices.Contains(resources, r) {
			t.Errorf("check-in must refetch %s", r)
		}
	}
}

func TestPlanSettingsOnlySettings(t *testing.T) {
	resources := Plan(MutationSettings)
	if len(resources) != 1 || resources[0] != ResourceSettings {
		t.Errorf("settings save refetches exactly settings, got %v", resources)
	}
}

func TestPlanResetRefetchesEverything(t *testing.T) {
	resources := Plan(MutationReset)

	want := append(AllResources(), ResourceCheckIns)
	if len(resources) != len(want) {
		t.Fatalf("expected %d resources, got %d", len(want), len(resources))
	}
	for _, r := range want {
		if !slices.Contains(resources, r) {
			t.Errorf("reset must refetch %s", r)
		}
	}
}

func TestPlanUnknownMutationRefetchesEverything(t *testing.T) {
	resources := Plan(Mutation("launch"))
	if len(resources) != len(AllResources())+1 {
		t.Errorf("unknown mutation should refetch everything, got %v", resources)
	}
}

func TestPlanReturnsCopies(t *testing.T) {
	a := Plan(MutationWeight)
	a[0] = Resource("mutated")
	b := Plan(MutationWeight)
	if b[0] == Resource("mutated") {
		t.Errorf("Plan must not expose its internal table")
	}
}

func TestFallbackPhrases(t *testing.T) {
	cases := map[Mutation]string{
		MutationCheckIn:          "Failed to save check-in",
		MutationWeight:           "Failed to add weight",
		MutationPrincipalPayment: "Failed to add payment",
		MutationTrip:             "Failed to save trip plan",
		Mutation("launch"):       "Request failed",
	}
	for m, want := range cases {
		if got := Fallback(m); got != want {
			t.Errorf("%s: expected %q, got %q", m, want, got)
		}
	}
}
