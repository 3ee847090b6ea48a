// Package sync owns all mutable client-side view state and the refetch
// choreography around it. State transitions are plain methods on State so
// every transition is testable without rendering; fetching is a separate
// concern (Fetcher) that fans out concurrent reads and joins on all of them
// before anything is applied.
package sync

// Resource identifies one read endpoint's slice of view state.
type Resource string

const (
	ResourceSummary         Resource = "summary"
	ResourceReview          Resource = "review"
	ResourceCheckIns        Resource = "checkins"
	ResourceFitness         Resource = "fitness"
	ResourceMortgageSummary Resource = "mortgage_summary"
	ResourceMortgageEvents  Resource = "mortgage_events"
	ResourceTrip            Resource = "trip"
	ResourceTripHistory     Resource = "trip_history"
	ResourceGifts           Resource = "gifts"
	ResourceSettings        Resource = "settings"
)

// AllResources is the bulk-refresh set fetched at load and on manual
// refresh. Check-ins are not part of it; they load lazily with the check-in
// view and after check-in mutations.
func AllResources() []Resource {
	return []Resource{
		ResourceSummary,
		ResourceReview,
		ResourceFitness,
		ResourceMortgageSummary,
		ResourceMortgageEvents,
		ResourceTrip,
		ResourceTripHistory,
		ResourceGifts,
		ResourceSettings,
	}
}
