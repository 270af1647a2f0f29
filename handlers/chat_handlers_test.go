// api/handlers/chat_handlers_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"flygoldfinch/api/chat"
)

type fakeModel struct {
	reply   string
	err     error
	lastMsg string
	history []chat.Message
}

func (m *fakeModel) Reply(ctx context.Context, history []chat.Message, message string) (string, error) {
	m.history = history
	m.lastMsg = message
	return m.reply, m.err
}

func newChatRouter(model ChatModel) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChatHandlers(model)
	r := gin.New()
	r.POST("/api/chat", h.Chat)
	return r
}

func TestChat_ForwardsMessageAndHistory(t *testing.T) {
	model := &fakeModel{reply: "Try the **Winter Wonderland Aurora** itinerary."}
	r := newChatRouter(model)

	w := postJSON(t, r, "/api/chat", `{
		"message": "Somewhere cold?",
		"history": [
			{"role": "user", "text": "Hi"},
			{"role": "model", "text": "Hello! How can I help?"}
		]
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp["text"] != model.reply {
		t.Errorf("text = %q", resp["text"])
	}
	if model.lastMsg != "Somewhere cold?" {
		t.Errorf("forwarded message = %q", model.lastMsg)
	}
	if len(model.history) != 2 || model.history[1].Role != "model" {
		t.Errorf("forwarded history = %+v", model.history)
	}
}

func TestChat_UpstreamFailure(t *testing.T) {
	r := newChatRouter(&fakeModel{err: errors.New("gemini timeout")})

	w := postJSON(t, r, "/api/chat", `{"message":"hi"}`)

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp["error"] != "Failed to get response from AI" {
		t.Errorf("error = %q", resp["error"])
	}
}

func TestChat_NotConfigured(t *testing.T) {
	r := newChatRouter(nil)

	w := postJSON(t, r, "/api/chat", `{"message":"hi"}`)

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp["error"] != "Gemini API key is not configured" {
		t.Errorf("error = %q", resp["error"])
	}
}

func TestChat_MessageRequired(t *testing.T) {
	r := newChatRouter(&fakeModel{})

	w := postJSON(t, r, "/api/chat", `{"history":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
