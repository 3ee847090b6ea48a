package models

// Settings is the response of GET /api/settings. The SendGrid API key is
// write-only; the backend never returns it.
type Settings struct {
	ID                     string `json:"id"`
	SendgridSenderEmail    string `json:"sendgrid_sender_email"`
	ReminderRecipientEmail string `json:"reminder_recipient_email"`
	WeeklyReviewDay        string `json:"weekly_review_day"`
	WeeklyReviewHourLocal  int    `json:"weekly_review_hour_local"`
	MonthlyGiftDay         int    `json:"monthly_gift_day"`
	EmailEnabled           bool   `json:"email_enabled"`
	UpdatedAt              string `json:"updated_at"`
}

// SettingsUpdate is the payload for PUT /api/settings. The record is
// replaced wholesale on every save.
type SettingsUpdate struct {
	SendgridAPIKey         string `json:"sendgrid_api_key"`
	SendgridSenderEmail    string `json:"sendgrid_sender_email"`
	ReminderRecipientEmail string `json:"reminder_recipient_email"`
	WeeklyReviewDay        string `json:"weekly_review_day"`
	WeeklyReviewHourLocal  int    `json:"weekly_review_hour_local"`
	MonthlyGiftDay         int    `json:"monthly_gift_day"`
	EmailEnabled           bool   `json:"email_enabled"`
}
