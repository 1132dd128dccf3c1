package models

import (
	"errors"
	"time"
)

const (
	// MonthLayout is the YYYY-MM key used for ledger months and salary records
	MonthLayout = "2006-01"
	// DateLayout is the YYYY-MM-DD format of ledger entry dates
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidMonth = errors.New("month must be formatted as YYYY-MM")
	ErrInvalidDate  = errors.New("date must be formatted as YYYY-MM-DD")
)

// ParseMonth parses a YYYY-MM key
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return t, nil
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// MonthOf returns the YYYY-MM key of t
func MonthOf(t time.Time) string {
	return t.Format(MonthLayout)
}

// CurrentMonth returns the YYYY-MM key of the current UTC month
func CurrentMonth() string {
	return MonthOf(time.Now().UTC())
}

// ResolveMonth returns month unchanged when it is a valid key, the current
// month when it is empty, and ErrInvalidMonth otherwise.
func ResolveMonth(month string) (string, error) {
	if month == "" {
		return CurrentMonth(), nil
	}
	if _, err := ParseMonth(month); err != nil {
		return "", err
	}
	return month, nil
}
