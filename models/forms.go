// api/models/forms.go
package models

import (
	"encoding/json"
	"time"
)

// PartialFormRecord is a snapshot of an in-progress form, keyed by
// (SessionID, FormID). Saves for the same key overwrite Data and UpdatedAt;
// last writer wins. Nothing in the service reads these back — the table is an
// overwrite-only trail kept for manual recovery of abandoned forms.
type PartialFormRecord struct {
	ID        int64           `json:"id"`
	SessionID string          `json:"sessionId"`
	FormID    string          `json:"formId"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
