package models

// Metric is a single fitness measurement. Kind is "weight" or "body_fat";
// the backend reports waist measurements under the body_fat kind.
type Metric struct {
	ID        string  `json:"id"`
	Day       string  `json:"day"`
	Kind      string  `json:"kind"`
	Value     float64 `json:"value"`
	CreatedAt string  `json:"created_at"`
}

// Photo is one progress photo reference. URL is relative to the backend
// origin and must be joined with it for display.
type Photo struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
}

// FitnessLatest carries the most recent value of each metric kind,
// independent of the queried range.
type FitnessLatest struct {
	WeightLbs  *float64 `json:"weight_lbs"`
	BodyFatPct *float64 `json:"body_fat_pct"`
}

// FitnessData is the response of GET /api/fitness/metrics.
type FitnessData struct {
	Metrics []Metric      `json:"metrics"`
	Photos  []Photo       `json:"photos"`
	Latest  FitnessLatest `json:"latest"`
}

// WeightCreate is the payload for POST /api/fitness/weight.
type WeightCreate struct {
	Day       string  `json:"day"`
	WeightLbs float64 `json:"weight_lbs"`
}

// WaistCreate is the payload the client sends for a waist measurement. It
// goes to POST /api/fitness/body-fat with the value in body_fat_pct; the
// backend kept that endpoint name when the waist metric was folded into it.
type WaistCreate struct {
	Day        string  `json:"day"`
	BodyFatPct float64 `json:"body_fat_pct"`
}
