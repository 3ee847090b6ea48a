package metrics

import (
	"testing"

	"trackctl/internal/models"
)

func TestMortgageProgressRatio(t *testing.T) {
	ms := &models.MortgageSummary{
		StartPrincipal:  330000,
		TargetPrincipal: 300000,
		PaidExtraYTD:    15000,
	}
	if got := MortgageProgress(ms); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
	if got := FormatPercent(MortgageProgress(ms)); got != "50%" {
		t.Errorf("expected 50%%, got %q", got)
	}
}

func TestMortgageProgressClamped(t *testing.T) {
	ms := &models.MortgageSummary{
		StartPrincipal:  330000,
		TargetPrincipal: 300000,
		PaidExtraYTD:    90000,
	}
	if got := MortgageProgress(ms); got != 1 {
		t.Errorf("overpayment should clamp to 1, got %v", got)
	}

	ms.PaidExtraYTD = -500
	if got := MortgageProgress(ms); got != 0 {
		t.Errorf("negative paid should clamp to 0, got %v", got)
	}
}

func TestMortgageProgressZeroDelta(t *testing.T) {
	ms := &models.MortgageSummary{
		StartPrincipal:  300000,
		TargetPrincipal: 300000,
		PaidExtraYTD:    10000,
	}
	if got := MortgageProgress(ms); got != 0 {
		t.Errorf("zero delta must yield 0, got %v", got)
	}

	ms.TargetPrincipal = 330000
	if got := MortgageProgress(ms); got != 0 {
		t.Errorf("inverted principals must yield 0, got %v", got)
	}
}

func TestMortgageProgressServerDeltaFallback(t *testing.T) {
	ms := &models.MortgageSummary{
		PaidExtraYTD: 6000,
		Progress:     models.MortgageProgress{TargetDelta: 30000},
	}
	if got := MortgageProgress(ms); got != 0.2 {
		t.Errorf("expected fallback delta to apply, got %v", got)
	}
}

func TestMortgageProgressNil(t *testing.T) {
	if got := MortgageProgress(nil); got != 0 {
		t.Errorf("nil summary must yield 0, got %v", got)
	}
}
