package metrics

import (
	"fmt"

	"trackctl/internal/models"
)

// MortgageProgress computes the paydown progress ratio, clamped to [0, 1].
// The target delta is start minus target principal, falling back to the
// server-precomputed delta when the principals are absent. A zero or
// negative delta yields 0 regardless of the paid amount, so division by
// zero and negative ratios never reach the UI.
func MortgageProgress(ms *models.MortgageSummary) float64 {
	if ms == nil {
		return 0
	}
	delta := ms.StartPrincipal - ms.TargetPrincipal
	if delta <= 0 {
		delta = ms.Progress.TargetDelta
	}
	if delta <= 0 {
		return 0
	}
	ratio := ms.PaidExtraYTD / delta
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// FormatPercent renders a ratio as a whole-number percentage string.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}
