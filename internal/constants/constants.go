package constants

import "time"

// SessionState represents the active tab or mode of the TUI.
type SessionState int

// Severity classifies a reminder badge.
type Severity string

const (
	AppName            = "trackctl"
	Version            = "v0.3.1"
	DefaultKeyringUser = "app-password"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultServerURL is used when no backend address is configured. It matches
	// the same-origin deployment where a reverse proxy maps /api to the backend.
	DefaultServerURL = "http://localhost:8000"

	// RequestTimeout is the fixed upper bound on every backend call.
	RequestTimeout = 15 * time.Second

	// PasswordHeader carries the shared secret on every request when one is set.
	PasswordHeader = "x-app-password"

	// RequestIDHeader correlates client log lines with backend access logs.
	RequestIDHeader = "X-Request-ID"

	// MaxReminderBadges caps the reminder list shown on the dashboard.
	MaxReminderBadges = 6

	// DefaultTripHistoryLimit is the capped fetch size for trip snapshots.
	DefaultTripHistoryLimit = 25

	// FitnessRangeDays is the default lookback window for the fitness view.
	FitnessRangeDays = 90

	// ResetConfirmToken must be passed verbatim for a destructive reset.
	ResetConfirmToken = "RESET"

	// Severity values reported by the backend. Anything else renders as info.
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"

	// Metric kinds
	MetricKindWeight = "weight"
	// MetricKindBodyFat is how the backend reports waist measurements; the old
	// waist kind was folded into it server-side.
	MetricKindBodyFat = "body_fat"
	MetricKindWaist   = "waist"

	// Mortgage event kinds
	MortgageKindPayment = "principal_payment"
	MortgageKindBalance = "balance_check"
)

// Session states. The six main tabs must stay first and 0-based: tab cycling
// and highlighting index into them directly.
const (
	StateDashboard SessionState = iota
	StateCheckIn
	StateFitness
	StateMortgage
	StateRelationship
	StateSettings
	StateCheckInForm
	StateWeightForm
	StateWaistForm
	StatePhotoForm
	StatePaymentForm
	StateBalanceForm
	StateTripForm
	StateGiftForm
	StateSettingsForm
	StateFitnessRangeForm
	StateMortgageRangeForm
	StateConfirmReset
)

// NumMainTabs is the count of cycleable main views.
const NumMainTabs = 6

// WeekdayNames are the values the backend accepts for weekly_review_day.
var WeekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
