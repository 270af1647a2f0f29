// api/handlers/track_handlers.go
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flygoldfinch/api/models"
	"flygoldfinch/api/stats"
)

// EventStore is the slice of the analytics store the handlers need.
type EventStore interface {
	InsertEvent(ctx context.Context, event *models.AnalyticsEvent) error
	ListEvents(ctx context.Context) ([]models.AnalyticsEvent, error)
}

// PartialFormStore upserts in-progress form snapshots.
type PartialFormStore interface {
	UpsertPartialForm(ctx context.Context, sessionID, formID string, formData json.RawMessage) error
}

type AnalyticsHandlers struct {
	Events EventStore
	Forms  PartialFormStore
}

func NewAnalyticsHandlers(events EventStore, forms PartialFormStore) *AnalyticsHandlers {
	return &AnalyticsHandlers{
		Events: events,
		Forms:  forms,
	}
}

type trackEventRequest struct {
	SessionID string          `json:"sessionId" binding:"required"`
	EventType string          `json:"eventType" binding:"required"`
	EventData json.RawMessage `json:"eventData"`
	URL       string          `json:"url"`
}

// TrackEvent appends one analytics event. Write failures are reported in-band
// as {"success": false} — the browser tracker fires and forgets, so there is
// no caller to surface an error to and nothing retries.
func (h *AnalyticsHandlers) TrackEvent(c *gin.Context) {
	var req trackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error binding incoming analytics JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	event := models.AnalyticsEvent{
		SessionID: req.SessionID,
		EventType: req.EventType,
		EventData: req.EventData,
		URL:       req.URL,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	if err := h.Events.InsertEvent(ctx, &event); err != nil {
		log.Printf("Error tracking event: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type partialFormRequest struct {
	SessionID string          `json:"sessionId" binding:"required"`
	FormID    string          `json:"formId" binding:"required"`
	FormData  json.RawMessage `json:"formData"`
}

// SavePartialForm upserts the in-progress state of a form for a session.
// Same in-band failure policy as TrackEvent.
func (h *AnalyticsHandlers) SavePartialForm(c *gin.Context) {
	var req partialFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error binding incoming partial form JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	if err := h.Forms.UpsertPartialForm(ctx, req.SessionID, req.FormID, req.FormData); err != nil {
		log.Printf("Error saving partial form data: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSummary scans the full event history and returns the dashboard rollup.
// Unlike the write paths, a read failure here must be loud: a dashboard
// showing a zeroed summary is worse than one showing an error.
func (h *AnalyticsHandlers) GetSummary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	events, err := h.Events.ListEvents(ctx)
	if err != nil {
		log.Printf("Error fetching analytics summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics summary"})
		return
	}

	c.JSON(http.StatusOK, stats.Summarize(events))
}
