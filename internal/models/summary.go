package models

// Reminder is one server-generated nudge shown on the dashboard.
type Reminder struct {
	ID       string `json:"id"`
	Area     string `json:"area"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Summary is the response of GET /api/summary. All counters are computed
// server-side; the client treats this as an opaque snapshot and never
// derives its own streaks.
type Summary struct {
	Today string `json:"today"`

	CurrentWakeupStreak  int `json:"current_wakeup_streak"`
	CurrentWorkoutStreak int `json:"current_workout_streak"`
	WeekWakeupCount      int `json:"week_wakeup_count"`
	WeekWorkoutCount     int `json:"week_workout_count"`
	WeekVideoCount       int `json:"week_video_count"`

	LatestWeightLbs  *float64 `json:"latest_weight_lbs"`
	LatestBodyFatPct *float64 `json:"latest_body_fat_pct"`

	MortgageTargetPrincipal float64  `json:"mortgage_target_principal"`
	MortgageStartPrincipal  float64  `json:"mortgage_start_principal"`
	LatestPrincipalBalance  *float64 `json:"latest_principal_balance"`
	PrincipalPaidExtraYTD   float64  `json:"principal_paid_extra_ytd"`
	PrincipalPaidExtraMonth float64  `json:"principal_paid_extra_month"`

	TripLodgingBooked      bool `json:"trip_lodging_booked"`
	TripChildcareConfirmed bool `json:"trip_childcare_confirmed"`
	GiftsThisMonth         int  `json:"gifts_this_month"`

	Reminders []Reminder `json:"reminders"`
}

// WeeklyReview is the server-computed scorecard over a Sunday-Saturday
// window anchored on a given day.
type WeeklyReview struct {
	WeekStart              string `json:"week_start"`
	WeekEnd                string `json:"week_end"`
	WakeupsGE4             bool   `json:"wakeups_ge_4"`
	WorkoutsCompleted5     bool   `json:"workouts_completed_5"`
	CapturedAtLeast1Video  bool   `json:"captured_at_least_1_video"`
	MortgageActionTaken    bool   `json:"mortgage_action_taken"`
	RelationshipActionTaken bool  `json:"relationship_action_taken"`
}

// Health is the response of GET /api/health.
type Health struct {
	Status string `json:"status"`
	App    string `json:"app"`
}

// ResetResult is the response of POST /api/admin/reset.
type ResetResult struct {
	OK      bool           `json:"ok"`
	Deleted map[string]int `json:"deleted"`
	Note    string         `json:"note"`
}
