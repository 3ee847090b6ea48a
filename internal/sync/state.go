package sync

import (
	"trackctl/internal/constants"
	"trackctl/internal/metrics"
	"trackctl/internal/models"
	"trackctl/internal/utils"
)

// Status is the lifecycle of one data group: Unloaded, Loading, Loaded, or
// Error. Error retains the last good data; a failed refresh never wipes what
// was previously loaded.
type Status int

const (
	StatusUnloaded Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

// View carries the scoping parameters a fetch needs: the current date
// ranges, the gift month, and the history cap. It is copied out of State at
// fetch time so a refresh always uses the range values current at the
// moment of the action.
type View struct {
	Today         string
	CheckInStart  string
	CheckInEnd    string
	FitnessStart  string
	FitnessEnd    string
	MortgageStart string
	MortgageEnd   string
	GiftYear      int
	GiftMonth     int
	HistoryLimit  int
}

// Snapshot is the result of one coordinated fetch. Only the fields for the
// listed resources are populated; everything else stays nil.
type Snapshot struct {
	Resources []Resource

	Summary         *models.Summary
	Review          *models.WeeklyReview
	CheckIns        []models.CheckIn
	Fitness         *models.FitnessData
	MortgageSummary *models.MortgageSummary
	MortgageEvents  []models.MortgageEvent
	Trip            *models.Trip
	TripHistory     []models.TripHistoryEntry
	Gifts           []models.Gift
	Settings        *models.Settings
}

// State is the single application-state structure. All mutation happens
// through its methods; components and commands only read from it.
type State struct {
	Today string

	// Range filters. Changing one never auto-fetches; an explicit refresh
	// picks up the current values.
	CheckInStart  string
	CheckInEnd    string
	FitnessStart  string
	FitnessEnd    string
	MortgageStart string
	MortgageEnd   string

	// Gift listing is fixed to the calendar month of Today at initial load.
	GiftYear  int
	GiftMonth int

	Summary         *models.Summary
	Review          *models.WeeklyReview
	CheckIns        []models.CheckIn
	Fitness         *models.FitnessData
	Series          []metrics.SeriesRow
	MortgageSummary *models.MortgageSummary
	MortgageEvents  []models.MortgageEvent
	Trip            *models.Trip
	TripHistory     []models.TripHistoryEntry
	Gifts           []models.Gift
	Settings        *models.Settings

	// ErrMsg is the single current error. A later successful apply clears it.
	ErrMsg string

	status  map[Resource]Status
	pending map[Resource]uint64
	token   uint64
}

// NewState builds the initial state for the given day: fitness looks back
// FitnessRangeDays, mortgage events cover year-to-date, check-ins cover the
// last two weeks, gifts the current calendar month.
func NewState(today string) *State {
	s := &State{
		Today:   today,
		status:  make(map[Resource]Status),
		pending: make(map[Resource]uint64),
	}
	if start, end, err := utils.RangeEndingAt(today, constants.FitnessRangeDays); err == nil {
		s.FitnessStart, s.FitnessEnd = start, end
	}
	if start, end, err := utils.RangeEndingAt(today, 14); err == nil {
		s.CheckInStart, s.CheckInEnd = start, end
	}
	if start, end, err := utils.YearStartTo(today); err == nil {
		s.MortgageStart, s.MortgageEnd = start, end
	}
	if year, month, err := utils.MonthOf(today); err == nil {
		s.GiftYear, s.GiftMonth = year, month
	}
	return s
}

// View snapshots the current scoping parameters for a fetch.
func (s *State) View() View {
	return View{
		Today:         s.Today,
		CheckInStart:  s.CheckInStart,
		CheckInEnd:    s.CheckInEnd,
		FitnessStart:  s.FitnessStart,
		FitnessEnd:    s.FitnessEnd,
		MortgageStart: s.MortgageStart,
		MortgageEnd:   s.MortgageEnd,
		GiftYear:      s.GiftYear,
		GiftMonth:     s.GiftMonth,
		HistoryLimit:  constants.DefaultTripHistoryLimit,
	}
}

// Status reports the lifecycle state of one resource.
func (s *State) Status(r Resource) Status {
	return s.status[r]
}

// Loading reports whether any of the given resources has a fetch in flight.
// With no arguments it reports whether anything at all is in flight.
func (s *State) Loading(resources ...Resource) bool {
	if len(resources) == 0 {
		return len(s.pending) > 0
	}
	for _, r := range resources {
		if _, ok := s.pending[r]; ok {
			return true
		}
	}
	return false
}

// BeginRefresh marks the resources Loading and returns a token identifying
// this refresh. A later refresh of the same resource supersedes the earlier
// one: the stale token's results are discarded on arrival instead of
// overwriting newer state.
func (s *State) BeginRefresh(resources []Resource) uint64 {
	s.token++
	for _, r := range resources {
		s.status[r] = StatusLoading
		s.pending[r] = s.token
	}
	return s.token
}

// ApplySnapshot merges a completed fetch into state. Resources whose pending
// token no longer matches are skipped. Returns true if anything applied; a
// successful apply clears the current error.
func (s *State) ApplySnapshot(token uint64, snap *Snapshot) bool {
	if snap == nil {
		return false
	}
	applied := false
	for _, r := range snap.Resources {
		if s.pending[r] != token {
			continue
		}
		delete(s.pending, r)
		s.status[r] = StatusLoaded
		applied = true

		switch r {
		case ResourceSummary:
			s.Summary = snap.Summary
		case ResourceReview:
			s.Review = snap.Review
		case ResourceCheckIns:
			s.CheckIns = snap.CheckIns
		case ResourceFitness:
			s.Fitness = snap.Fitness
			if snap.Fitness != nil {
				s.Series = metrics.MergeFitnessSeries(snap.Fitness.Metrics)
			} else {
				s.Series = nil
			}
		case ResourceMortgageSummary:
			s.MortgageSummary = snap.MortgageSummary
		case ResourceMortgageEvents:
			s.MortgageEvents = snap.MortgageEvents
		case ResourceTrip:
			s.Trip = snap.Trip
		case ResourceTripHistory:
			s.TripHistory = snap.TripHistory
		case ResourceGifts:
			s.Gifts = snap.Gifts
		case ResourceSettings:
			s.Settings = snap.Settings
		}
	}
	if applied {
		s.ErrMsg = ""
	}
	return applied
}

// FailRefresh records a failed fetch group. Resources keep their last good
// data; only the status and the single error message change. Stale tokens
// are ignored entirely.
func (s *State) FailRefresh(token uint64, resources []Resource, msg string) bool {
	applied := false
	for _, r := range resources {
		if s.pending[r] != token {
			continue
		}
		delete(s.pending, r)
		s.status[r] = StatusError
		applied = true
	}
	if applied {
		s.ErrMsg = msg
	}
	return applied
}

// SetError records a client-side error (for example a photo form submitted
// with no file) without touching any data group.
func (s *State) SetError(msg string) {
	s.ErrMsg = msg
}

// ClearError drops the current error message.
func (s *State) ClearError() {
	s.ErrMsg = ""
}

// SetFitnessRange updates the fitness date filter. No fetch is issued; the
// next explicit refresh uses these values.
func (s *State) SetFitnessRange(start, end string) {
	s.FitnessStart, s.FitnessEnd = start, end
}

// SetMortgageRange updates the mortgage events date filter. No fetch is
// issued; the next explicit refresh uses these values.
func (s *State) SetMortgageRange(start, end string) {
	s.MortgageStart, s.MortgageEnd = start, end
}
