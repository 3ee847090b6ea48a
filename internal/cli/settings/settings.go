package settings

import (
	"context"
	"fmt"
	"slices"

	"trackctl/internal/cli"
	"trackctl/internal/constants"
	"trackctl/internal/models"
)

// ShowCmd prints the current settings. The SendGrid API key is write-only
// and never appears in output.
type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Client.Settings(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Email enabled:     %s\n", cli.YesNo(s.EmailEnabled))
	fmt.Printf("Sender email:      %s\n", s.SendgridSenderEmail)
	fmt.Printf("Recipient email:   %s\n", s.ReminderRecipientEmail)
	fmt.Printf("Weekly review:     %s at %02d:00\n", s.WeeklyReviewDay, s.WeeklyReviewHourLocal)
	fmt.Printf("Monthly gift day:  %d\n", s.MonthlyGiftDay)
	return nil
}

// SetCmd replaces the settings record. Unset flags keep their current
// value except the API key, which is only written when provided.
type SetCmd struct {
	Email      *bool  `help:"Enable or disable email reminders." negatable:""`
	APIKey     string `help:"SendGrid API key (write-only)." name:"api-key"`
	Sender     string `help:"Sender email address."`
	Recipient  string `help:"Reminder recipient email address."`
	ReviewDay  string `help:"Weekly review day (Sun..Sat)." name:"review-day"`
	ReviewHour *int   `help:"Weekly review hour 0-23." name:"review-hour"`
	GiftDay    *int   `help:"Monthly gift reminder day 1-28." name:"gift-day"`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	if c.ReviewDay != "" && !slices.Contains(constants.WeekdayNames, c.ReviewDay) {
		return fmt.Errorf("review day must be one of %v", constants.WeekdayNames)
	}
	if c.ReviewHour != nil && (*c.ReviewHour < 0 || *c.ReviewHour > 23) {
		return fmt.Errorf("review hour must be 0-23")
	}
	if c.GiftDay != nil && (*c.GiftDay < 1 || *c.GiftDay > 28) {
		return fmt.Errorf("gift day must be 1-28")
	}

	current, err := ctx.Client.Settings(context.Background())
	if err != nil {
		return err
	}
	payload := models.SettingsUpdate{
		SendgridSenderEmail:    current.SendgridSenderEmail,
		ReminderRecipientEmail: current.ReminderRecipientEmail,
		WeeklyReviewDay:        current.WeeklyReviewDay,
		WeeklyReviewHourLocal:  current.WeeklyReviewHourLocal,
		MonthlyGiftDay:         current.MonthlyGiftDay,
		EmailEnabled:           current.EmailEnabled,
	}
	if c.Email != nil {
		payload.EmailEnabled = *c.Email
	}
	if c.APIKey != "" {
		payload.SendgridAPIKey = c.APIKey
	}
	if c.Sender != "" {
		payload.SendgridSenderEmail = c.Sender
	}
	if c.Recipient != "" {
		payload.ReminderRecipientEmail = c.Recipient
	}
	if c.ReviewDay != "" {
		payload.WeeklyReviewDay = c.ReviewDay
	}
	if c.ReviewHour != nil {
		payload.WeeklyReviewHourLocal = *c.ReviewHour
	}
	if c.GiftDay != nil {
		payload.MonthlyGiftDay = *c.GiftDay
	}

	if _, err := ctx.Client.UpdateSettings(context.Background(), payload); err != nil {
		return err
	}
	fmt.Println("Settings saved.")
	return nil
}
