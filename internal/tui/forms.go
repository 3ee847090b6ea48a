package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"trackctl/internal/constants"
	"trackctl/internal/utils"
)

// CheckInFormModel backs the daily check-in form.
type CheckInFormModel struct {
	Day           string
	Wakeup5AM     bool
	Workout       bool
	VideoCaptured bool
	Notes         string
}

// ValueFormModel backs the weight and waist forms.
type ValueFormModel struct {
	Day   string
	Value string
}

// PhotoFormModel backs the progress photo form.
type PhotoFormModel struct {
	Day  string
	Path string
}

// EventFormModel backs the principal payment and balance check forms.
type EventFormModel struct {
	Day    string
	Amount string
	Note   string
}

// TripFormModel backs the trip-planning form.
type TripFormModel struct {
	StartDate          string
	EndDate            string
	Dates              string
	AdultsOnly         bool
	LodgingBooked      bool
	ChildcareConfirmed bool
	Notes              string
}

// GiftFormModel backs the gift form.
type GiftFormModel struct {
	Day         string
	Description string
	Amount      string
}

// SettingsFormModel backs the settings form.
type SettingsFormModel struct {
	EmailEnabled           bool
	SendgridAPIKey         string
	SendgridSenderEmail    string
	ReminderRecipientEmail string
	WeeklyReviewDay        string
	WeeklyReviewHour       string
	MonthlyGiftDay         string
}

func validateDay(s string) error {
	return utils.ValidateDate(strings.TrimSpace(s))
}

func validatePositiveFloat(label string) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", label)
		}
		if v <= 0 {
			return fmt.Errorf("%s must be positive", label)
		}
		return nil
	}
}

func validateOptionalDay(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return utils.ValidateDate(strings.TrimSpace(s))
}

// NewCheckInForm creates the daily check-in form.
func NewCheckInForm(fm *CheckInFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Day (YYYY-MM-DD)").
				Value(&fm.Day).
				Validate(validateDay),
			huh.NewConfirm().
				Title("Woke up at 5am").
				Value(&fm.Wakeup5AM),
			huh.NewConfirm().
				Title("Worked out").
				Value(&fm.Workout),
			huh.NewConfirm().
				Title("Captured a video").
				Value(&fm.VideoCaptured),
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewValueForm creates a single-measurement form for weight or waist.
func NewValueForm(fm *ValueFormModel, label string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Day (YYYY-MM-DD)").
				Value(&fm.Day).
				Validate(validateDay),
			huh.NewInput().
				Title(label).
				Value(&fm.Value).
				Validate(validatePositiveFloat(label)),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewPhotoForm creates the progress photo form. Path validation runs before
// any request is built, so a missing file never reaches the network.
func NewPhotoForm(fm *PhotoFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Day (YYYY-MM-DD)").
				Value(&fm.Day).
				Validate(validateDay),
			huh.NewInput().
				Title("Photo file path").
				Value(&fm.Path).
				Validate(utils.ValidatePhotoPath),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewEventForm creates a mortgage event form; amountLabel distinguishes the
// payment and balance variants.
func NewEventForm(fm *EventFormModel, amountLabel string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Day (YYYY-MM-DD)").
				Value(&fm.Day).
				Validate(validateDay),
			huh.NewInput().
				Title(amountLabel).
				Value(&fm.Amount).
				Validate(validatePositiveFloat(amountLabel)),
			huh.NewInput().
				Title("Note").
				Value(&fm.Note),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewTripForm creates the trip-planning form.
func NewTripForm(fm *TripFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Description("Leave empty if undecided").
				Value(&fm.StartDate).
				Validate(validateOptionalDay),
			huh.NewInput().
				Title("End date (YYYY-MM-DD)").
				Description("Leave empty if undecided").
				Value(&fm.EndDate).
				Validate(validateOptionalDay),
			huh.NewInput().
				Title("Dates (freeform)").
				Description("Legacy field, e.g. \"sometime in June\"").
				Value(&fm.Dates),
			huh.NewConfirm().
				Title("Adults only").
				Value(&fm.AdultsOnly),
			huh.NewConfirm().
				Title("Lodging booked").
				Value(&fm.LodgingBooked),
			huh.NewConfirm().
				Title("Childcare confirmed").
				Value(&fm.ChildcareConfirmed),
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewGiftForm creates the gift form.
func NewGiftForm(fm *GiftFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Day (YYYY-MM-DD)").
				Value(&fm.Day).
				Validate(validateDay),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount ($)").
				Description("Optional").
				Value(&fm.Amount).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("amount must be a number")
					}
					if v < 0 {
						return fmt.Errorf("amount must be >= 0")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// RangeFormModel backs the fitness and mortgage date range filters.
type RangeFormModel struct {
	Start string
	End   string
}

// NewRangeForm creates a date range filter form. Submitting only updates the
// filter; the next explicit refresh fetches with it.
func NewRangeForm(fm *RangeFormModel, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start (YYYY-MM-DD)").
				Value(&fm.Start).
				Validate(validateDay),
			huh.NewInput().
				Title("End (YYYY-MM-DD)").
				Value(&fm.End).
				Validate(func(s string) error {
					if err := validateDay(s); err != nil {
						return err
					}
					if strings.TrimSpace(s) < strings.TrimSpace(fm.Start) {
						return fmt.Errorf("end cannot be before start")
					}
					return nil
				}),
		).Title(title),
	).WithTheme(huh.ThemeDracula())
}

// ResetFormModel backs the destructive reset confirmation.
type ResetFormModel struct {
	Confirm string
}

// NewResetForm creates the destructive reset confirmation. The token must
// be typed exactly; escape aborts.
func NewResetForm(fm *ResetFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Type %s to wipe all data", constants.ResetConfirmToken)).
				Description("This deletes every record on the server").
				Value(&fm.Confirm).
				Validate(func(s string) error {
					if strings.TrimSpace(s) != constants.ResetConfirmToken {
						return fmt.Errorf("type %s exactly to confirm", constants.ResetConfirmToken)
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewSettingsForm creates the settings form.
func NewSettingsForm(fm *SettingsFormModel) *huh.Form {
	dayOptions := make([]huh.Option[string], len(constants.WeekdayNames))
	for i, name := range constants.WeekdayNames {
		dayOptions[i] = huh.NewOption(name, name)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Email reminders enabled").
				Value(&fm.EmailEnabled),
			huh.NewInput().
				Title("SendGrid API key").
				Description("Leave empty to keep the stored key").
				EchoMode(huh.EchoModePassword).
				Value(&fm.SendgridAPIKey),
			huh.NewInput().
				Title("Sender email").
				Value(&fm.SendgridSenderEmail),
			huh.NewInput().
				Title("Reminder recipient email").
				Value(&fm.ReminderRecipientEmail),
			huh.NewSelect[string]().
				Title("Weekly review day").
				Options(dayOptions...).
				Value(&fm.WeeklyReviewDay),
			huh.NewInput().
				Title("Weekly review hour (0-23)").
				Value(&fm.WeeklyReviewHour).
				Validate(func(s string) error {
					h, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || h < 0 || h > 23 {
						return fmt.Errorf("hour must be 0-23")
					}
					return nil
				}),
			huh.NewInput().
				Title("Monthly gift day (1-28)").
				Value(&fm.MonthlyGiftDay).
				Validate(func(s string) error {
					d, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || d < 1 || d > 28 {
						return fmt.Errorf("day must be 1-28")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
