// api/models/summary.go
package models

// AnalyticsSummary is the derived rollup served to the admin dashboard.
// It is computed on demand from the full event history and never persisted.
type AnalyticsSummary struct {
	TotalPageViews int            `json:"totalPageViews"`
	UniqueSessions int            `json:"uniqueSessions"`
	AvgTimeSpent   int            `json:"avgTimeSpent"`
	DailyTraffic   []DailyCount   `json:"dailyTraffic"`
	ScrollBuckets  []ScrollBucket `json:"scrollDistribution"`
	TopClicks      []ClickCount   `json:"topClicks"`
}

// DailyCount is one day's worth of page views. Buckets appear in the order
// their date was first seen in the event log, not sorted.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ScrollBucket is one of the four fixed scroll depth buckets ("25%".."100%").
type ScrollBucket struct {
	Depth string `json:"depth"`
	Count int    `json:"count"`
}

// ClickCount is a clicked-element label with its total click count.
type ClickCount struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}
