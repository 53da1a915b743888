package domain

import "time"

// StatsDateLayout is the calendar-date key format for daily stat buckets.
const StatsDateLayout = "2006-01-02"

// DateKey returns the daily stats bucket key for the given instant.
// Bucketing always happens in UTC so the day boundary does not depend on
// the machine's local clock.
func DateKey(t time.Time) string {
	return t.UTC().Format(StatsDateLayout)
}

// DailyStats holds the per-day response counters. Counters only ever grow
// within a day; a new day simply starts a new bucket.
type DailyStats struct {
	Date     string `json:"date"` // UTC calendar date, StatsDateLayout
	Reviewed int    `json:"reviewed"`
	Correct  int    `json:"correct"`
	Wrong    int    `json:"wrong"`
}
