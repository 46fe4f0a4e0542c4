package service

import "time"

// MonthWindow returns the closed [start, end] interval covering one
// calendar month. month is zero-based (January = 0), matching the
// dashboard month picker. end is the last instant of the last day, so
// BETWEEN-style range queries include the whole final day.
func MonthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// PreviousMonthWindow returns the closed interval of the month before
// the given one.
func PreviousMonthWindow(year, month int) (time.Time, time.Time) {
	start, _ := MonthWindow(year, month)
	return start.AddDate(0, -1, 0), start.Add(-time.Nanosecond)
}

// CurrentMonth converts a wall-clock time to the (year, zero-based
// month) pair used throughout the insight and dashboard paths.
func CurrentMonth(now time.Time) (int, int) {
	return now.Year(), int(now.Month()) - 1
}
