package dateutil

import (
	"fmt"
	"time"
)

// MonthsPerYear is the number of simulation steps in one year.
const MonthsPerYear = 12

// MonthLayout is the calendar month format used in configuration and reports.
const MonthLayout = "2006-01"

// YearAndMonth converts a 1-based simulation month index into a 1-based year
// and a 1-based month within that year. Month 12 is month 12 of year 1,
// month 13 is month 1 of year 2.
func YearAndMonth(monthIndex int) (year, month int) {
	if monthIndex < 1 {
		return 0, 0
	}
	return (monthIndex-1)/MonthsPerYear + 1, (monthIndex-1)%MonthsPerYear + 1
}

// IsYearEnd reports whether the month index closes a simulation year
func IsYearEnd(monthIndex int) bool {
	return monthIndex > 0 && monthIndex%MonthsPerYear == 0
}

// TotalMonths returns the number of simulated months in the given number of years
func TotalMonths(years int) int {
	return years * MonthsPerYear
}

// ParseMonth parses a "YYYY-MM" string into the first day of that month (UTC).
func ParseMonth(value string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", value, err)
	}
	return t, nil
}

// BeginningOfMonth returns the first instant of the month for a given date
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// MonthDate returns the calendar month in which simulation month monthIndex
// falls, when month 1 is the start month.
func MonthDate(start time.Time, monthIndex int) time.Time {
	return AddMonths(BeginningOfMonth(start), monthIndex-1)
}

// FormatMonth formats a date as "YYYY-MM"
func FormatMonth(date time.Time) string {
	return date.Format(MonthLayout)
}
