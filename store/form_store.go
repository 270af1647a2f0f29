// api/store/form_store.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// FormStore persists in-progress form snapshots keyed by (session_id, form_id).
// It is write-only from the service's point of view: snapshots exist for
// manual recovery of abandoned forms and nothing here reads them back.
type FormStore struct {
	db *sql.DB
}

// NewFormStore creates a new FormStore instance.
func NewFormStore(db *sql.DB) *FormStore {
	return &FormStore{db: db}
}

// UpsertPartialForm saves a form snapshot, overwriting any previous snapshot
// for the same (sessionID, formID) pair and refreshing updated_at.
//
// The lookup and write are deliberately separate statements with no
// transaction: concurrent saves for the same key race, and whichever write
// lands last wins. Last-writer-wins is the intended policy for partial form
// data, so the window is documented here rather than closed with locking.
func (s *FormStore) UpsertPartialForm(ctx context.Context, sessionID, formID string, formData json.RawMessage) error {
	if len(formData) == 0 {
		formData = json.RawMessage(`{}`)
	}

	var existingID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id
		FROM partial_form_data
		WHERE session_id = $1 AND form_id = $2;
	`, sessionID, formID).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO partial_form_data (session_id, form_id, data, updated_at)
			VALUES ($1, $2, $3, NOW());
		`, sessionID, formID, string(formData))
		if err != nil {
			return fmt.Errorf("failed to insert partial form data: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to look up partial form data: %w", err)
	default:
		_, err = s.db.ExecContext(ctx, `
			UPDATE partial_form_data
			SET data = $1, updated_at = NOW()
			WHERE id = $2;
		`, string(formData), existingID)
		if err != nil {
			return fmt.Errorf("failed to update partial form data: %w", err)
		}
	}

	return nil
}
