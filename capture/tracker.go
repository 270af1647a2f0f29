// api/capture/tracker.go

// Package capture emits best-effort analytics events from page signals. Every
// emission is fire-and-forget: the caller never blocks on delivery, failures
// are never retried and never surface to the user.
package capture

import (
	"math"
	"strings"
	"sync"
	"time"

	"flygoldfinch/api/models"
)

// TrackRequest is the submission body accepted by the ingestion endpoint.
type TrackRequest struct {
	SessionID string `json:"sessionId"`
	EventType string `json:"eventType"`
	EventData any    `json:"eventData"`
	URL       string `json:"url"`
}

// Sink delivers one tracked event. Delivery errors are discarded by the
// tracker; a sink should not retry.
type Sink interface {
	Submit(req TrackRequest) error
}

// Scroll depth thresholds, in percent. Each is emitted at most once per page
// visit, when the running maximum scroll first crosses it.
var scrollThresholds = [4]int{25, 50, 75, 100}

// Tracker turns page lifecycle, scroll and click signals into analytics
// events for a single session. Safe for concurrent use.
type Tracker struct {
	sessionID string
	sink      Sink
	now       func() time.Time

	mu        sync.Mutex
	path      string
	onPage    bool
	enteredAt time.Time
	crossed   map[int]bool

	inflight sync.WaitGroup
}

// NewTracker creates a tracker for the given session.
func NewTracker(sessionID string, sink Sink) *Tracker {
	return &Tracker{
		sessionID: sessionID,
		sink:      sink,
		now:       time.Now,
		crossed:   make(map[int]bool),
	}
}

// Visit records a navigation to path. It emits exactly one page_view; if a
// page was already active it first emits that page's time_spent, then resets
// the per-visit scroll state.
func (t *Tracker) Visit(path, url string) {
	t.mu.Lock()
	if t.onPage {
		t.emitTimeSpentLocked(url)
	}
	t.path = path
	t.onPage = true
	t.enteredAt = t.now()
	t.crossed = make(map[int]bool)
	t.mu.Unlock()

	t.emit(models.EventPageView, models.PageViewData{Path: path}, url)
}

// Scroll records the current scroll position. A scroll_depth event fires for
// each 25% threshold the running maximum crosses for the first time on this
// visit; thresholds already crossed never re-fire.
func (t *Tracker) Scroll(scrollY, scrollHeight, viewportHeight float64, url string) {
	scrollable := scrollHeight - viewportHeight
	if scrollable <= 0 {
		return
	}
	percent := int(math.Round(scrollY / scrollable * 100))

	t.mu.Lock()
	var newlyCrossed []int
	for _, threshold := range scrollThresholds {
		if percent >= threshold && !t.crossed[threshold] {
			t.crossed[threshold] = true
			newlyCrossed = append(newlyCrossed, threshold)
		}
	}
	t.mu.Unlock()

	for _, threshold := range newlyCrossed {
		t.emit(models.EventScrollDepth, models.ScrollDepthData{Depth: threshold}, url)
	}
}

// Click records a click on a button or anchor element. Elements with no text
// content are reported as "icon".
func (t *Tracker) Click(text, id, className, tag, url string) {
	text = strings.TrimSpace(text)
	if text == "" {
		text = "icon"
	}
	t.emit(models.EventClick, models.ClickData{
		Text:      text,
		ID:        id,
		ClassName: className,
		Tag:       tag,
	}, url)
}

// ItineraryClick records a click-through on an itinerary card.
func (t *Tracker) ItineraryClick(title, slug, url string) {
	t.emit(models.EventItineraryClick, models.ItineraryClickData{Title: title, Slug: slug}, url)
}

// Leave records the user leaving the active page, emitting its time_spent.
// Safe to call when no page is active.
func (t *Tracker) Leave(url string) {
	t.mu.Lock()
	if t.onPage {
		t.emitTimeSpentLocked(url)
		t.onPage = false
	}
	t.mu.Unlock()
}

// Flush blocks until all in-flight emissions have been handed to the sink.
// Intended for process shutdown and tests, never the hot path.
func (t *Tracker) Flush() {
	t.inflight.Wait()
}

// emitTimeSpentLocked emits the time_spent event for the active page.
// Caller holds t.mu.
func (t *Tracker) emitTimeSpentLocked(url string) {
	seconds := int(math.Round(t.now().Sub(t.enteredAt).Seconds()))
	if seconds < 0 {
		seconds = 0
	}
	t.emit(models.EventTimeSpent, models.TimeSpentData{Seconds: seconds, Path: t.path}, url)
}

// emit dispatches one submission in the background and discards the outcome.
func (t *Tracker) emit(eventType string, data any, url string) {
	req := TrackRequest{
		SessionID: t.sessionID,
		EventType: eventType,
		EventData: data,
		URL:       url,
	}
	t.inflight.Add(1)
	go func() {
		defer t.inflight.Done()
		_ = t.sink.Submit(req)
	}()
}
