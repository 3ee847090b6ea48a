// Package tui implements the tabbed terminal dashboard. The single Model
// owns the view state reducer; components under components/ only render
// what they are handed and emit intent messages back up.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"trackctl/internal/api"
	"trackctl/internal/constants"
	"trackctl/internal/sync"
	"trackctl/internal/tui/components/checkins"
	"trackctl/internal/tui/components/dashboard"
	"trackctl/internal/tui/components/fitness"
	"trackctl/internal/tui/components/mortgage"
	"trackctl/internal/tui/components/relationship"
	"trackctl/internal/tui/components/settings"
	"trackctl/internal/utils"
)

// refreshDoneMsg carries the outcome of one coordinated fetch. The token
// lets the reducer discard results that a newer refresh has superseded.
type refreshDoneMsg struct {
	token     uint64
	resources []sync.Resource
	snap      *sync.Snapshot
	err       error
	fallback  string
}

// mutationDoneMsg carries the outcome of one write. Success triggers the
// mutation's planned refetch set; failure surfaces the normalized message.
type mutationDoneMsg struct {
	mutation sync.Mutation
	err      error
}

var tabNames = []string{"Dashboard", "Check-in", "Fitness", "Mortgage", "Relationship", "Settings"}

type Model struct {
	client  *api.Client
	fetcher *sync.Fetcher
	state   *sync.State

	keys KeyMap
	help help.Model

	tab     constants.SessionState
	prevTab constants.SessionState

	form      *huh.Form
	formState constants.SessionState

	checkInForm  *CheckInFormModel
	valueForm    *ValueFormModel
	photoForm    *PhotoFormModel
	eventForm    *EventFormModel
	tripForm     *TripFormModel
	giftForm     *GiftFormModel
	settingsForm *SettingsFormModel
	rangeForm    *RangeFormModel
	resetForm    *ResetFormModel

	dashboard    dashboard.Model
	checkins     checkins.Model
	fitness      fitness.Model
	mortgage     mortgage.Model
	relationship relationship.Model
	settings     settings.Model

	width  int
	height int
}

func NewModel(client *api.Client) Model {
	const w, h = 80, 24
	return Model{
		client:       client,
		fetcher:      sync.NewFetcher(client),
		state:        sync.NewState(utils.Today()),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		tab:          constants.StateDashboard,
		dashboard:    dashboard.New(w, h),
		checkins:     checkins.New(w, h),
		fitness:      fitness.New(w, h),
		mortgage:     mortgage.New(w, h),
		relationship: relationship.New(w, h),
		settings:     settings.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.startRefresh(sync.AllResources(), "Failed to load data")
}

// startRefresh marks the resources loading and returns the command that
// fetches them. The view parameters are captured now, so a range changed
// after the keypress does not leak into an in-flight fetch.
func (m *Model) startRefresh(resources []sync.Resource, fallback string) tea.Cmd {
	token := m.state.BeginRefresh(resources)
	view := m.state.View()
	fetcher := m.fetcher
	return func() tea.Msg {
		snap, err := fetcher.Fetch(context.Background(), resources, view)
		return refreshDoneMsg{token: token, resources: resources, snap: snap, err: err, fallback: fallback}
	}
}

func (m *Model) runMutation(mut sync.Mutation, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{mutation: mut, err: fn(context.Background())}
	}
}

// syncComponents pushes the current reducer state into every component.
func (m *Model) syncComponents() {
	m.dashboard.SetData(m.state.Summary, m.state.Review, m.state.MortgageSummary)
	m.checkins.SetCheckIns(m.state.CheckIns)
	if m.state.Fitness != nil {
		m.fitness.SetData(m.state.Series, m.state.Fitness.Latest, m.state.Fitness.Photos)
	}
	m.mortgage.SetData(m.state.MortgageSummary, m.state.MortgageEvents)
	m.relationship.SetData(m.state.Trip, m.state.TripHistory, m.state.Gifts)
	m.settings.SetSettings(m.state.Settings)
}

func (m *Model) setSizes() {
	w := m.width - docStyle.GetHorizontalFrameSize()
	h := m.height - docStyle.GetVerticalFrameSize() - chromeLines
	if h < 5 {
		h = 5
	}
	m.dashboard.SetSize(w, h)
	m.checkins.SetSize(w, h)
	m.fitness.SetSize(w, h)
	m.mortgage.SetSize(w, h)
	m.relationship.SetSize(w, h)
	m.help.Width = w
}

// chromeLines is the vertical space taken by the tab row, banner, and help.
const chromeLines = 4
