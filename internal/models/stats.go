// Package models defines the domain types shared between services and the UI.
package models

// StatPoint is a single raw coding-time measurement reported by a source.
// Names may repeat across points; merging is the aggregator's job.
type StatPoint struct {
	Name    string
	Seconds float64
}

// Bucket is a named aggregate of seconds after merging duplicate names.
type Bucket struct {
	Name    string
	Seconds float64
}

// Slice is a display-ready chart segment. Hours is rounded to one decimal
// for rendering; Seconds keeps the exact aggregated value.
type Slice struct {
	Name    string
	Hours   float64
	Seconds float64
}

// AllTimeStats holds the normalized all-time statistics from the
// time-tracking provider. The human-readable fields are optional and take
// precedence over locally computed values when present.
type AllTimeStats struct {
	Languages  []StatPoint
	Categories []StatPoint

	TotalIncludingOtherText        string
	DailyAverageIncludingOtherText string
	DailyAverageText               string
	RangeText                      string

	DaysIncludingHolidays int
}

// WakaUser holds the profile fields consumed from the time-tracking
// provider's current-user endpoint.
type WakaUser struct {
	URL        string
	ProfileURL string
	Username   string
}
