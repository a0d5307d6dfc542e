package utils

import "time"

// DateOnly strips the time component, keeping a calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddCalendarMonths advances a date by whole calendar months. Go's AddDate
// normalization applies (Jan 31 + 1 month lands in early March).
func AddCalendarMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}
