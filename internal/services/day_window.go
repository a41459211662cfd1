package services

import "time"

// DateAtLocation truncates a moment to midnight of its calendar day in
// the given location. Date columns always store this midnight value, so
// equality and the per-day unique indexes stay consistent.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, end) window covering the
// calendar day of the given moment.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}
