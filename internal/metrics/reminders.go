package metrics

import (
	"trackctl/internal/constants"
	"trackctl/internal/models"
)

// Badge is one reminder rendered on the dashboard.
type Badge struct {
	Area    string
	Message string
	Warning bool
}

// ReminderBadges takes at most the first MaxReminderBadges reminders in
// server order. Severity collapses to two visual classes: warning and
// informational. Unrecognized severities render as informational.
func ReminderBadges(in []models.Reminder) []Badge {
	n := len(in)
	if n > constants.MaxReminderBadges {
		n = constants.MaxReminderBadges
	}
	out := make([]Badge, 0, n)
	for _, r := range in[:n] {
		out = append(out, Badge{
			Area:    r.Area,
			Message: r.Message,
			Warning: constants.Severity(r.Severity) == constants.SeverityWarning,
		})
	}
	return out
}
