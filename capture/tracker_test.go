// api/capture/tracker_test.go
package capture

import (
	"sync"
	"testing"
	"time"

	"flygoldfinch/api/models"
)

// recordingSink collects submissions for inspection.
type recordingSink struct {
	mu   sync.Mutex
	reqs []TrackRequest
}

func (s *recordingSink) Submit(req TrackRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reqs = append(s.reqs, req)
	return nil
}

func (s *recordingSink) byType(eventType string) []TrackRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []TrackRequest
	for _, r := range s.reqs {
		if r.EventType == eventType {
			out = append(out, r)
		}
	}
	return out
}

func newTestTracker() (*Tracker, *recordingSink) {
	sink := &recordingSink{}
	return NewTracker("session-1", sink), sink
}

func TestTracker_VisitEmitsOnePageView(t *testing.T) {
	tracker, sink := newTestTracker()

	tracker.Visit("/", "https://flygoldfinch.com/")
	tracker.Flush()

	views := sink.byType(models.EventPageView)
	if len(views) != 1 {
		t.Fatalf("page_view count = %d, want 1", len(views))
	}
	if views[0].SessionID != "session-1" {
		t.Errorf("SessionID = %q, want session-1", views[0].SessionID)
	}
	data, ok := views[0].EventData.(models.PageViewData)
	if !ok || data.Path != "/" {
		t.Errorf("EventData = %#v, want PageViewData{Path: \"/\"}", views[0].EventData)
	}
}

func TestTracker_ScrollThresholdsFireOnce(t *testing.T) {
	tracker, sink := newTestTracker()
	tracker.Visit("/", "https://flygoldfinch.com/")

	// Page is 2000px tall with a 1000px viewport: 1000px scrollable.
	scroll := func(y float64) { tracker.Scroll(y, 2000, 1000, "https://flygoldfinch.com/") }

	scroll(100) // 10%, below every threshold
	scroll(600) // 60%, crosses 25 and 50
	scroll(600) // already crossed, nothing new
	scroll(300) // scrolling back up never re-fires
	scroll(1000)
	tracker.Flush()

	depths := sink.byType(models.EventScrollDepth)
	var got []int
	for _, r := range depths {
		got = append(got, r.EventData.(models.ScrollDepthData).Depth)
	}

	want := map[int]int{25: 1, 50: 1, 75: 1, 100: 1}
	counts := make(map[int]int)
	for _, d := range got {
		counts[d]++
	}
	for depth, n := range want {
		if counts[depth] != n {
			t.Errorf("depth %d emitted %d times, want %d (all: %v)", depth, counts[depth], n, got)
		}
	}
	if len(got) != 4 {
		t.Errorf("scroll_depth count = %d, want 4 (%v)", len(got), got)
	}
}

func TestTracker_ScrollResetsPerVisit(t *testing.T) {
	tracker, sink := newTestTracker()
	tracker.Visit("/", "https://flygoldfinch.com/")
	tracker.Scroll(500, 2000, 1000, "https://flygoldfinch.com/")

	tracker.Visit("/destinations", "https://flygoldfinch.com/destinations")
	tracker.Scroll(500, 2000, 1000, "https://flygoldfinch.com/destinations")
	tracker.Flush()

	// 50% on each page: 25 and 50 fire again after the navigation.
	if got := len(sink.byType(models.EventScrollDepth)); got != 4 {
		t.Errorf("scroll_depth count = %d, want 4", got)
	}
}

func TestTracker_ScrollUnscrollablePage(t *testing.T) {
	tracker, sink := newTestTracker()
	tracker.Visit("/", "https://flygoldfinch.com/")

	// Content shorter than the viewport: nothing to measure.
	tracker.Scroll(0, 800, 1000, "https://flygoldfinch.com/")
	tracker.Flush()

	if got := len(sink.byType(models.EventScrollDepth)); got != 0 {
		t.Errorf("scroll_depth count = %d, want 0", got)
	}
}

func TestTracker_ClickTextDefaultsToIcon(t *testing.T) {
	tracker, sink := newTestTracker()

	tracker.Click("  Book Now  ", "cta", "btn", "BUTTON", "https://flygoldfinch.com/")
	tracker.Click("", "menu", "nav-toggle", "BUTTON", "https://flygoldfinch.com/")
	tracker.Flush()

	clicks := sink.byType(models.EventClick)
	if len(clicks) != 2 {
		t.Fatalf("click count = %d, want 2", len(clicks))
	}
	// Emissions are asynchronous, so match clicks by element ID.
	byID := make(map[string]string)
	for _, r := range clicks {
		data := r.EventData.(models.ClickData)
		byID[data.ID] = data.Text
	}
	if byID["cta"] != "Book Now" {
		t.Errorf("cta click text = %q, want trimmed \"Book Now\"", byID["cta"])
	}
	if byID["menu"] != "icon" {
		t.Errorf("empty click text = %q, want \"icon\"", byID["menu"])
	}
}

func TestTracker_TimeSpentOnNavigationAndLeave(t *testing.T) {
	tracker, sink := newTestTracker()

	current := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return current }

	tracker.Visit("/", "https://flygoldfinch.com/")
	current = current.Add(30 * time.Second)
	tracker.Visit("/contact", "https://flygoldfinch.com/contact")
	current = current.Add(12 * time.Second)
	tracker.Leave("https://flygoldfinch.com/contact")
	tracker.Flush()

	spent := sink.byType(models.EventTimeSpent)
	if len(spent) != 2 {
		t.Fatalf("time_spent count = %d, want 2", len(spent))
	}

	byPath := make(map[string]int)
	for _, r := range spent {
		data := r.EventData.(models.TimeSpentData)
		byPath[data.Path] = data.Seconds
	}
	if byPath["/"] != 30 {
		t.Errorf("time on / = %d, want 30", byPath["/"])
	}
	if byPath["/contact"] != 12 {
		t.Errorf("time on /contact = %d, want 12", byPath["/contact"])
	}
}

func TestTracker_LeaveWithoutVisitIsNoop(t *testing.T) {
	tracker, sink := newTestTracker()

	tracker.Leave("https://flygoldfinch.com/")
	tracker.Flush()

	if len(sink.byType(models.EventTimeSpent)) != 0 {
		t.Error("Leave before any Visit should emit nothing")
	}
}

func TestTracker_LeaveTwiceEmitsOnce(t *testing.T) {
	tracker, sink := newTestTracker()

	tracker.Visit("/", "https://flygoldfinch.com/")
	tracker.Leave("https://flygoldfinch.com/")
	tracker.Leave("https://flygoldfinch.com/")
	tracker.Flush()

	if got := len(sink.byType(models.EventTimeSpent)); got != 1 {
		t.Errorf("time_spent count = %d, want 1", got)
	}
}

func TestTracker_ItineraryClick(t *testing.T) {
	tracker, sink := newTestTracker()

	tracker.ItineraryClick("Winter Wonderland Aurora", "finland-winter-aurora", "https://flygoldfinch.com/destinations")
	tracker.Flush()

	clicks := sink.byType(models.EventItineraryClick)
	if len(clicks) != 1 {
		t.Fatalf("itinerary_click count = %d, want 1", len(clicks))
	}
	data := clicks[0].EventData.(models.ItineraryClickData)
	if data.Slug != "finland-winter-aurora" {
		t.Errorf("Slug = %q", data.Slug)
	}
}
