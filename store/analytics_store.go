// api/store/analytics_store.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flygoldfinch/api/database"
	"flygoldfinch/api/models"
)

// AnalyticsStore appends to and scans the analytics_events log in ClickHouse.
// Rows are immutable once written; there is no update or delete path.
type AnalyticsStore struct {
	DB *database.ClickHouseClient
}

func NewAnalyticsStore(chClient *database.ClickHouseClient) *AnalyticsStore {
	return &AnalyticsStore{
		DB: chClient,
	}
}

// InsertEvent appends one event row. The store assigns the surrogate ID and
// the created_at timestamp, so created_at reflects arrival order here, not
// emission order in the browser. Duplicate submissions create duplicate rows.
func (s *AnalyticsStore) InsertEvent(ctx context.Context, event *models.AnalyticsEvent) error {
	event.ID = uuid.New().String()
	event.CreatedAt = time.Now().UTC()

	if len(event.EventData) == 0 {
		event.EventData = json.RawMessage(`{}`)
	}

	err := s.DB.Conn.Exec(ctx, `
		INSERT INTO analytics_events (id, session_id, event_type, event_data, url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		event.ID,
		event.SessionID,
		event.EventType,
		string(event.EventData),
		event.URL,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert analytics event: %w", err)
	}

	return nil
}

// ListEvents returns the entire event history ordered by created_at. The
// summary endpoint scans the full log on every call; there is no pagination
// or time-range filtering.
func (s *AnalyticsStore) ListEvents(ctx context.Context) ([]models.AnalyticsEvent, error) {
	rows, err := s.DB.Conn.Query(ctx, `
		SELECT id, session_id, event_type, event_data, url, created_at
		FROM analytics_events
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query analytics events: %w", err)
	}
	defer rows.Close()

	var events []models.AnalyticsEvent
	for rows.Next() {
		var (
			event     models.AnalyticsEvent
			eventData string
		)
		if err := rows.Scan(
			&event.ID,
			&event.SessionID,
			&event.EventType,
			&eventData,
			&event.URL,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analytics event row: %w", err)
		}
		event.EventData = json.RawMessage(eventData)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error while listing analytics events: %w", err)
	}

	return events, nil
}
