// api/models/event.go
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Recognized event types. The set is open ended: the aggregation layer must
// tolerate types it has never seen, so these are plain strings, not an enum.
const (
	EventPageView       = "page_view"
	EventScrollDepth    = "scroll_depth"
	EventClick          = "click"
	EventTimeSpent      = "time_spent"
	EventItineraryClick = "itinerary_click"
)

// AnalyticsEvent is one immutable row of the analytics_events log.
// EventData is kept as raw JSON because the producer (the browser tracker) and
// this service are not compiled against a shared contract and may drift; each
// consumer decodes the payload shape it expects via the typed accessors below.
type AnalyticsEvent struct {
	ID        string          `json:"id"`
	SessionID string          `json:"sessionId"`
	EventType string          `json:"eventType"`
	EventData json.RawMessage `json:"eventData"`
	URL       string          `json:"url"`
	CreatedAt time.Time       `json:"createdAt"`
}

// PageViewData is the payload of a page_view event.
type PageViewData struct {
	Path string `json:"path"`
}

// ScrollDepthData is the payload of a scroll_depth event. Depth is a
// percentage and is expected to be one of 25/50/75/100, but nothing enforces
// that at ingestion time.
type ScrollDepthData struct {
	Depth int `json:"depth"`
}

// ClickData is the payload of a click event.
type ClickData struct {
	Text      string `json:"text"`
	ID        string `json:"id"`
	ClassName string `json:"className"`
	Tag       string `json:"tag"`
}

// TimeSpentData is the payload of a time_spent event.
type TimeSpentData struct {
	Seconds int    `json:"seconds"`
	Path    string `json:"path"`
}

// ItineraryClickData is the payload of an itinerary_click event.
type ItineraryClickData struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// PageView decodes the payload as page_view data. Missing or malformed fields
// come back zero valued; a payload is never rejected after it has been stored.
func (e *AnalyticsEvent) PageView() PageViewData {
	var d PageViewData
	_ = json.Unmarshal(e.EventData, &d)
	return d
}

// ScrollDepth decodes the payload as scroll_depth data.
func (e *AnalyticsEvent) ScrollDepth() ScrollDepthData {
	var d ScrollDepthData
	_ = json.Unmarshal(e.EventData, &d)
	return d
}

// Click decodes the payload as click data.
func (e *AnalyticsEvent) Click() ClickData {
	var d ClickData
	_ = json.Unmarshal(e.EventData, &d)
	return d
}

// TimeSpent decodes the payload as time_spent data. An absent seconds field
// contributes 0 to any average computed over it.
func (e *AnalyticsEvent) TimeSpent() TimeSpentData {
	var d TimeSpentData
	_ = json.Unmarshal(e.EventData, &d)
	return d
}

// ItineraryClick decodes the payload as itinerary_click data.
func (e *AnalyticsEvent) ItineraryClick() ItineraryClickData {
	var d ItineraryClickData
	_ = json.Unmarshal(e.EventData, &d)
	return d
}

// ClickLabel resolves the label click events are grouped under: the trimmed
// element text, or "Unknown" when the payload carries none.
func (e *AnalyticsEvent) ClickLabel() string {
	text := strings.TrimSpace(e.Click().Text)
	if text == "" {
		return "Unknown"
	}
	return text
}
