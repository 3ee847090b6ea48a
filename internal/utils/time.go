package utils

import (
	"fmt"
	"time"

	"trackctl/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

// ValidateDate checks that a string is a well-formed YYYY-MM-DD date.
func ValidateDate(s string) error {
	_, err := ParseDate(s)
	return err
}

// MonthOf returns the calendar year and month that contain the given day.
func MonthOf(day string) (int, int, error) {
	t, err := ParseDate(day)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), int(t.Month()), nil
}

// RangeEndingAt returns the (start, end) pair for a window of the given
// number of days ending at the given day, inclusive.
func RangeEndingAt(day string, days int) (string, string, error) {
	end, err := ParseDate(day)
	if err != nil {
		return "", "", err
	}
	start := end.AddDate(0, 0, -(days - 1))
	return start.Format(constants.DateFormat), end.Format(constants.DateFormat), nil
}

// YearStartTo returns the range from January 1 of the given day's year
// through the day itself.
func YearStartTo(day string) (string, string, error) {
	end, err := ParseDate(day)
	if err != nil {
		return "", "", err
	}
	start := time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, end.Location())
	return start.Format(constants.DateFormat), end.Format(constants.DateFormat), nil
}
