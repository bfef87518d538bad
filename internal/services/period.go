package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// ISODateFormat is the calendar-date layout used on all report boundaries
const ISODateFormat = "2006-01-02"

// YearMonth identifies one calendar month
type YearMonth struct {
	Year  int
	Month time.Month
}

// Label returns the YYYY-MM chart label for the month
func (ym YearMonth) Label() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// MonthBounds returns the inclusive first and last calendar day of a month,
// at midnight UTC. Month length and leap years come from the stdlib date
// normalization.
func MonthBounds(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return start, end, nil
}

// YearBounds returns January 1st and December 31st of a year, inclusive
func YearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// MonthsBack returns n consecutive months ending at the anchor date's month,
// oldest first
func MonthsBack(anchor time.Time, n int) []YearMonth {
	months := make([]YearMonth, 0, n)

	// Normalize to the first of the month so AddDate cannot skip short months
	cursor := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	cursor = cursor.AddDate(0, -(n - 1), 0)

	for i := 0; i < n; i++ {
		months = append(months, YearMonth{Year: cursor.Year(), Month: cursor.Month()})
		cursor = cursor.AddDate(0, 1, 0)
	}

	return months
}

// YearMonths returns the 12 months of a calendar year, January first
func YearMonths(year int) []YearMonth {
	months := make([]YearMonth, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, YearMonth{Year: year, Month: m})
	}
	return months
}

// withinRange reports whether a calendar date falls inside the inclusive
// [start, end] bounds
func withinRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}
