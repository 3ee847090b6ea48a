// Package metrics turns raw fetched records into display-ready series and
// ratios. Everything here is pure and deterministic; no I/O, no state.
package metrics

import (
	"sort"

	"trackctl/internal/constants"
	"trackctl/internal/models"
)

// SeriesRow is one charting row. A nil field means no measurement of that
// kind exists for the day; renderers must treat nil as a gap, never as zero.
type SeriesRow struct {
	Day    string
	Weight *float64
	Waist  *float64
}

// MergeFitnessSeries collapses raw metrics into one row per distinct day,
// ascending by day. Lexicographic ordering is sufficient for ISO dates.
// When a day has several records of the same kind the last one in input
// order wins.
func MergeFitnessSeries(in []models.Metric) []SeriesRow {
	byDay := make(map[string]*SeriesRow)
	for i := range in {
		m := &in[i]
		row, ok := byDay[m.Day]
		if !ok {
			row = &SeriesRow{Day: m.Day}
			byDay[m.Day] = row
		}
		v := m.Value
		switch m.Kind {
		case constants.MetricKindWeight:
			row.Weight = &v
		case constants.MetricKindBodyFat, constants.MetricKindWaist:
			// The backend reports waist measurements under the body_fat kind;
			// older records may still carry the waist kind.
			row.Waist = &v
		}
	}

	out := make([]SeriesRow, 0, len(byDay))
	for _, row := range byDay {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
