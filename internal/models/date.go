package models

import (
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// DateOf normalizes t to midnight UTC so two values for the same calendar day
// always compare equal, regardless of the wall clock they were built from.
func DateOf(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a "YYYY-MM-DD" string into a normalized date column value.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders a date column value back to "YYYY-MM-DD".
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
