package metrics

import (
	"fmt"

	"trackctl/internal/models"
)

// KPI is one top-line dashboard figure.
type KPI struct {
	Label string
	Value string
}

// TopKPIs maps summary counters into the four fixed dashboard slots. The
// order and count never vary with the data.
func TopKPIs(s *models.Summary, ms *models.MortgageSummary) [4]KPI {
	var kpis [4]KPI
	kpis[0] = KPI{Label: "Wake streak", Value: "—"}
	kpis[1] = KPI{Label: "Workout streak", Value: "—"}
	kpis[2] = KPI{Label: "Videos this week", Value: "—"}
	kpis[3] = KPI{Label: "Mortgage progress", Value: "—"}

	if s != nil {
		kpis[0].Value = fmt.Sprintf("%d days", s.CurrentWakeupStreak)
		kpis[1].Value = fmt.Sprintf("%d days", s.CurrentWorkoutStreak)
		kpis[2].Value = fmt.Sprintf("%d", s.WeekVideoCount)
	}
	if ms != nil {
		kpis[3].Value = FormatPercent(MortgageProgress(ms))
	}
	return kpis
}

// WeeklyScore counts satisfied weekly-review rules out of the total.
func WeeklyScore(r *models.WeeklyReview) (int, int) {
	if r == nil {
		return 0, 5
	}
	score := 0
	for _, ok := range []bool{
		r.WakeupsGE4,
		r.WorkoutsCompleted5,
		r.CapturedAtLeast1Video,
		r.MortgageActionTaken,
		r.RelationshipActionTaken,
	} {
		if ok {
			score++
		}
	}
	return score, 5
}
