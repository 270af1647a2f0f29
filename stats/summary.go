// api/stats/summary.go

// Package stats computes the dashboard rollup from the raw event log. The
// whole history is aggregated in memory on every call; nothing here is
// incremental or cached.
package stats

import (
	"math"
	"sort"
	"strconv"

	"flygoldfinch/api/models"
)

// scrollDepths are the only recognized scroll buckets. Events with any other
// depth value are dropped from the distribution.
var scrollDepths = [4]int{25, 50, 75, 100}

const topClickLimit = 10

// Summarize computes the full analytics rollup from the given events. It is
// pure: calling it twice on the same slice yields identical summaries.
//
// Events are expected in created-at order; daily traffic buckets and top-click
// ties both follow first-seen order in the input.
func Summarize(events []models.AnalyticsEvent) models.AnalyticsSummary {
	return models.AnalyticsSummary{
		TotalPageViews: countPageViews(events),
		UniqueSessions: countUniqueSessions(events),
		AvgTimeSpent:   averageTimeSpent(events),
		DailyTraffic:   dailyTraffic(events),
		ScrollBuckets:  scrollDistribution(events),
		TopClicks:      topClicks(events),
	}
}

func countPageViews(events []models.AnalyticsEvent) int {
	count := 0
	for _, e := range events {
		if e.EventType == models.EventPageView {
			count++
		}
	}
	return count
}

// countUniqueSessions counts distinct session IDs across every event type,
// not just page views.
func countUniqueSessions(events []models.AnalyticsEvent) int {
	seen := make(map[string]struct{})
	for _, e := range events {
		seen[e.SessionID] = struct{}{}
	}
	return len(seen)
}

func averageTimeSpent(events []models.AnalyticsEvent) int {
	total, count := 0, 0
	for _, e := range events {
		if e.EventType != models.EventTimeSpent {
			continue
		}
		// Missing seconds decodes to 0 and still counts one event.
		total += e.TimeSpent().Seconds
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

// dailyTraffic buckets page views by calendar date. Bucket order is the order
// each date was first seen, which the dashboard renders as-is.
func dailyTraffic(events []models.AnalyticsEvent) []models.DailyCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range events {
		if e.EventType != models.EventPageView {
			continue
		}
		date := e.CreatedAt.Local().Format("1/2/2006")
		if _, ok := counts[date]; !ok {
			order = append(order, date)
		}
		counts[date]++
	}

	traffic := make([]models.DailyCount, 0, len(order))
	for _, date := range order {
		traffic = append(traffic, models.DailyCount{Date: date, Count: counts[date]})
	}
	return traffic
}

func scrollDistribution(events []models.AnalyticsEvent) []models.ScrollBucket {
	counts := make(map[int]int, len(scrollDepths))
	for _, e := range events {
		if e.EventType != models.EventScrollDepth {
			continue
		}
		depth := e.ScrollDepth().Depth
		for _, d := range scrollDepths {
			if depth == d {
				counts[d]++
				break
			}
		}
	}

	buckets := make([]models.ScrollBucket, 0, len(scrollDepths))
	for _, d := range scrollDepths {
		buckets = append(buckets, models.ScrollBucket{
			Depth: strconv.Itoa(d) + "%",
			Count: counts[d],
		})
	}
	return buckets
}

// topClicks ranks clicked-element labels by count, descending, capped at ten.
// The sort is stable so labels with equal counts keep first-seen order.
func topClicks(events []models.AnalyticsEvent) []models.ClickCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range events {
		if e.EventType != models.EventClick {
			continue
		}
		label := e.ClickLabel()
		if _, ok := counts[label]; !ok {
			order = append(order, label)
		}
		counts[label]++
	}

	ranked := make([]models.ClickCount, 0, len(order))
	for _, label := range order {
		ranked = append(ranked, models.ClickCount{Text: label, Count: counts[label]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topClickLimit {
		ranked = ranked[:topClickLimit]
	}
	return ranked
}
