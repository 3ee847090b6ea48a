package tui

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"trackctl/internal/constants"
	"trackctl/internal/models"
	"trackctl/internal/sync"
	"trackctl/internal/tui/components/checkins"
	"trackctl/internal/tui/components/fitness"
	"trackctl/internal/tui/components/mortgage"
	"trackctl/internal/tui/components/relationship"
	"trackctl/internal/tui/components/settings"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.setSizes()
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m, nil

	case refreshDoneMsg:
		if msg.err != nil {
			m.state.FailRefresh(msg.token, msg.resources, sync.Normalize(msg.err, msg.fallback))
		} else {
			m.state.ApplySnapshot(msg.token, msg.snap)
		}
		m.syncComponents()
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.state.SetError(sync.Normalize(msg.err, sync.Fallback(msg.mutation)))
			return m, nil
		}
		return m, m.startRefresh(sync.Plan(msg.mutation), "Failed to refresh data")

	case checkins.EditCheckInMsg:
		return m.openCheckInForm(msg.Existing)
	case fitness.AddWeightMsg:
		return m.openValueForm(constants.StateWeightForm, "Weight (lbs)")
	case fitness.AddWaistMsg:
		return m.openValueForm(constants.StateWaistForm, "Waist (in)")
	case fitness.AddPhotoMsg:
		return m.openPhotoForm()
	case fitness.SetRangeMsg:
		return m.openRangeForm(constants.StateFitnessRangeForm, "Fitness date range",
			m.state.FitnessStart, m.state.FitnessEnd)
	case mortgage.AddPaymentMsg:
		return m.openEventForm(constants.StatePaymentForm, "Amount ($)")
	case mortgage.AddBalanceMsg:
		return m.openEventForm(constants.StateBalanceForm, "Principal balance ($)")
	case mortgage.SetRangeMsg:
		return m.openRangeForm(constants.StateMortgageRangeForm, "Mortgage events date range",
			m.state.MortgageStart, m.state.MortgageEnd)
	case relationship.EditTripMsg:
		return m.openTripForm(msg.Existing)
	case relationship.AddGiftMsg:
		return m.openGiftForm()
	case settings.EditMsg:
		return m.openSettingsForm(msg.Existing)
	case settings.ResetMsg:
		return m.openResetForm()
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.filtering() {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Tab):
			return m.switchTab(1)
		case key.Matches(keyMsg, m.keys.ShiftTab):
			return m.switchTab(-1)
		case key.Matches(keyMsg, m.keys.Refresh):
			resources := sync.AllResources()
			if m.state.Status(sync.ResourceCheckIns) != sync.StatusUnloaded {
				resources = append(resources, sync.ResourceCheckIns)
			}
			return m, m.startRefresh(resources, "Failed to refresh data")
		}
	}

	return m.updateActiveTab(msg)
}

func (m Model) filtering() bool {
	switch m.tab {
	case constants.StateCheckIn:
		return m.checkins.Filtering()
	case constants.StateMortgage:
		return m.mortgage.Filtering()
	}
	return false
}

// switchTab cycles the main views. Entering the check-in tab for the first
// time lazy-loads the range; nothing else fetches on navigation.
func (m Model) switchTab(delta int) (tea.Model, tea.Cmd) {
	n := constants.SessionState(constants.NumMainTabs)
	m.tab = (m.tab + constants.SessionState(delta) + n) % n
	if m.tab == constants.StateCheckIn && m.state.Status(sync.ResourceCheckIns) == sync.StatusUnloaded {
		return m, m.startRefresh([]sync.Resource{sync.ResourceCheckIns}, "Failed to load check-ins")
	}
	return m, nil
}

func (m Model) updateActiveTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case constants.StateDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case constants.StateCheckIn:
		m.checkins, cmd = m.checkins.Update(msg)
	case constants.StateFitness:
		m.fitness, cmd = m.fitness.Update(msg)
	case constants.StateMortgage:
		m.mortgage, cmd = m.mortgage.Update(msg)
	case constants.StateRelationship:
		m.relationship, cmd = m.relationship.Update(msg)
	case constants.StateSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		submit := m.submitForm()
		m.closeForm()
		return m, submit
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.formState = 0
	m.tab = m.prevTab
	m.checkInForm = nil
	m.valueForm = nil
	m.photoForm = nil
	m.eventForm = nil
	m.tripForm = nil
	m.giftForm = nil
	m.settingsForm = nil
	m.rangeForm = nil
	m.resetForm = nil
}

func (m *Model) openForm(state constants.SessionState, form *huh.Form) (tea.Model, tea.Cmd) {
	m.prevTab = m.tab
	m.tab = state
	m.formState = state
	m.form = form
	m.state.ClearError()
	return *m, m.form.Init()
}

func (m Model) openCheckInForm(existing *models.CheckIn) (tea.Model, tea.Cmd) {
	fm := &CheckInFormModel{Day: m.state.Today}
	if existing != nil {
		fm.Day = existing.Day
		fm.Wakeup5AM = existing.Wakeup5AM
		fm.Workout = existing.Workout
		fm.VideoCaptured = existing.VideoCaptured
		fm.Notes = existing.Notes
	}
	m.checkInForm = fm
	return m.openForm(constants.StateCheckInForm, NewCheckInForm(fm))
}

func (m Model) openValueForm(state constants.SessionState, label string) (tea.Model, tea.Cmd) {
	fm := &ValueFormModel{Day: m.state.Today}
	m.valueForm = fm
	return m.openForm(state, NewValueForm(fm, label))
}

func (m Model) openPhotoForm() (tea.Model, tea.Cmd) {
	fm := &PhotoFormModel{Day: m.state.Today}
	m.photoForm = fm
	return m.openForm(constants.StatePhotoForm, NewPhotoForm(fm))
}

func (m Model) openEventForm(state constants.SessionState, amountLabel string) (tea.Model, tea.Cmd) {
	fm := &EventFormModel{Day: m.state.Today}
	m.eventForm = fm
	return m.openForm(state, NewEventForm(fm, amountLabel))
}

func (m Model) openTripForm(existing *models.Trip) (tea.Model, tea.Cmd) {
	fm := &TripFormModel{}
	if existing != nil {
		fm.StartDate = existing.StartDate
		fm.EndDate = existing.EndDate
		fm.Dates = existing.Dates
		fm.AdultsOnly = existing.AdultsOnly
		fm.LodgingBooked = existing.LodgingBooked
		fm.ChildcareConfirmed = existing.ChildcareConfirmed
		fm.Notes = existing.Notes
	}
	m.tripForm = fm
	return m.openForm(constants.StateTripForm, NewTripForm(fm))
}

func (m Model) openGiftForm() (tea.Model, tea.Cmd) {
	fm := &GiftFormModel{Day: m.state.Today}
	m.giftForm = fm
	return m.openForm(constants.StateGiftForm, NewGiftForm(fm))
}

func (m Model) openSettingsForm(existing *models.Settings) (tea.Model, tea.Cmd) {
	fm := &SettingsFormModel{
		WeeklyReviewDay:  "Sun",
		WeeklyReviewHour: "17",
		MonthlyGiftDay:   "1",
	}
	if existing != nil {
		fm.EmailEnabled = existing.EmailEnabled
		fm.SendgridSenderEmail = existing.SendgridSenderEmail
		fm.ReminderRecipientEmail = existing.ReminderRecipientEmail
		fm.WeeklyReviewDay = existing.WeeklyReviewDay
		fm.WeeklyReviewHour = strconv.Itoa(existing.WeeklyReviewHourLocal)
		fm.MonthlyGiftDay = strconv.Itoa(existing.MonthlyGiftDay)
	}
	m.settingsForm = fm
	return m.openForm(constants.StateSettingsForm, NewSettingsForm(fm))
}

func (m Model) openRangeForm(state constants.SessionState, title, start, end string) (tea.Model, tea.Cmd) {
	fm := &RangeFormModel{Start: start, End: end}
	m.rangeForm = fm
	return m.openForm(state, NewRangeForm(fm, title))
}

func (m Model) openResetForm() (tea.Model, tea.Cmd) {
	fm := &ResetFormModel{}
	m.resetForm = fm
	return m.openForm(constants.StateConfirmReset, NewResetForm(fm))
}

// submitForm turns the completed form into the matching write command. Form
// validation has already run, so parse failures here are impossible for
// validated fields.
func (m *Model) submitForm() tea.Cmd {
	client := m.client

	switch m.formState {
	case constants.StateCheckInForm:
		fm := m.checkInForm
		payload := models.CheckInUpsert{
			Day:           strings.TrimSpace(fm.Day),
			Wakeup5AM:     fm.Wakeup5AM,
			Workout:       fm.Workout,
			VideoCaptured: fm.VideoCaptured,
			Notes:         strings.TrimSpace(fm.Notes),
		}
		return m.runMutation(sync.MutationCheckIn, func(ctx context.Context) error {
			_, err := client.UpsertCheckIn(ctx, payload)
			return err
		})

	case constants.StateWeightForm:
		fm := m.valueForm
		value, _ := strconv.ParseFloat(strings.TrimSpace(fm.Value), 64)
		payload := models.WeightCreate{Day: strings.TrimSpace(fm.Day), WeightLbs: value}
		return m.runMutation(sync.MutationWeight, func(ctx context.Context) error {
			_, err := client.AddWeight(ctx, payload)
			return err
		})

	case constants.StateWaistForm:
		fm := m.valueForm
		value, _ := strconv.ParseFloat(strings.TrimSpace(fm.Value), 64)
		payload := models.WaistCreate{Day: strings.TrimSpace(fm.Day), BodyFatPct: value}
		return m.runMutation(sync.MutationWaist, func(ctx context.Context) error {
			_, err := client.AddWaist(ctx, payload)
			return err
		})

	case constants.StatePhotoForm:
		fm := m.photoForm
		day := strings.TrimSpace(fm.Day)
		path := strings.TrimSpace(fm.Path)
		return m.runMutation(sync.MutationPhoto, func(ctx context.Context) error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = client.UploadPhoto(ctx, day, filepath.Base(path), f)
			return err
		})

	case constants.StatePaymentForm:
		fm := m.eventForm
		amount, _ := strconv.ParseFloat(strings.TrimSpace(fm.Amount), 64)
		payload := models.PrincipalPaymentCreate{
			Day:    strings.TrimSpace(fm.Day),
			Amount: amount,
			Note:   strings.TrimSpace(fm.Note),
		}
		return m.runMutation(sync.MutationPrincipalPayment, func(ctx context.Context) error {
			_, err := client.AddPrincipalPayment(ctx, payload)
			return err
		})

	case constants.StateBalanceForm:
		fm := m.eventForm
		amount, _ := strconv.ParseFloat(strings.TrimSpace(fm.Amount), 64)
		payload := models.BalanceCheckCreate{
			Day:              strings.TrimSpace(fm.Day),
			PrincipalBalance: amount,
			Note:             strings.TrimSpace(fm.Note),
		}
		return m.runMutation(sync.MutationBalanceCheck, func(ctx context.Context) error {
			_, err := client.AddBalanceCheck(ctx, payload)
			return err
		})

	case constants.StateTripForm:
		fm := m.tripForm
		payload := models.TripUpdate{
			StartDate:          strings.TrimSpace(fm.StartDate),
			EndDate:            strings.TrimSpace(fm.EndDate),
			Dates:              strings.TrimSpace(fm.Dates),
			AdultsOnly:         fm.AdultsOnly,
			LodgingBooked:      fm.LodgingBooked,
			ChildcareConfirmed: fm.ChildcareConfirmed,
			Notes:              strings.TrimSpace(fm.Notes),
		}
		return m.runMutation(sync.MutationTrip, func(ctx context.Context) error {
			_, err := client.UpdateTrip(ctx, payload)
			return err
		})

	case constants.StateGiftForm:
		fm := m.giftForm
		amount := 0.0
		if s := strings.TrimSpace(fm.Amount); s != "" {
			amount, _ = strconv.ParseFloat(s, 64)
		}
		payload := models.GiftCreate{
			Day:         strings.TrimSpace(fm.Day),
			Description: strings.TrimSpace(fm.Description),
			Amount:      amount,
		}
		return m.runMutation(sync.MutationGift, func(ctx context.Context) error {
			_, err := client.AddGift(ctx, payload)
			return err
		})

	case constants.StateSettingsForm:
		fm := m.settingsForm
		hour, _ := strconv.Atoi(strings.TrimSpace(fm.WeeklyReviewHour))
		giftDay, _ := strconv.Atoi(strings.TrimSpace(fm.MonthlyGiftDay))
		payload := models.SettingsUpdate{
			SendgridAPIKey:         strings.TrimSpace(fm.SendgridAPIKey),
			SendgridSenderEmail:    strings.TrimSpace(fm.SendgridSenderEmail),
			ReminderRecipientEmail: strings.TrimSpace(fm.ReminderRecipientEmail),
			WeeklyReviewDay:        fm.WeeklyReviewDay,
			WeeklyReviewHourLocal:  hour,
			MonthlyGiftDay:         giftDay,
			EmailEnabled:           fm.EmailEnabled,
		}
		return m.runMutation(sync.MutationSettings, func(ctx context.Context) error {
			_, err := client.UpdateSettings(ctx, payload)
			return err
		})

	case constants.StateFitnessRangeForm:
		fm := m.rangeForm
		m.state.SetFitnessRange(strings.TrimSpace(fm.Start), strings.TrimSpace(fm.End))
		return nil

	case constants.StateMortgageRangeForm:
		fm := m.rangeForm
		m.state.SetMortgageRange(strings.TrimSpace(fm.Start), strings.TrimSpace(fm.End))
		return nil

	case constants.StateConfirmReset:
		return m.runMutation(sync.MutationReset, func(ctx context.Context) error {
			_, err := client.AdminReset(ctx, constants.ResetConfirmToken)
			return err
		})
	}

	return nil
}
