package models

// ActivityViewModel is the aggregator's sole output. It is constructed once
// per aggregation run and never mutated afterwards; empty string fields mean
// "absent" and render as placeholders.
type ActivityViewModel struct {
	TotalTimeText    string
	DailyAverageText string
	RangeText        string
	TotalLinesText   string
	ProfileURL       string

	Languages  []Slice
	Categories []Slice

	LatestCommit *CommitSummary
}
