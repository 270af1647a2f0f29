// api/capture/sink.go
package capture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPSink submits events to the ingestion endpoint (POST /api/track).
// One attempt per event; a non-2xx response is an error the tracker discards.
type HTTPSink struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPSink creates a sink for the given track endpoint URL.
func NewHTTPSink(endpoint string) *HTTPSink {
	return &HTTPSink{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPSink) Submit(req TrackRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode track request: %w", err)
	}

	resp, err := s.Client.Post(s.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to submit track request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("track endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
