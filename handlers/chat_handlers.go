// api/handlers/chat_handlers.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flygoldfinch/api/chat"
)

// ChatModel produces one assistant reply for a message and its conversation
// history.
type ChatModel interface {
	Reply(ctx context.Context, history []chat.Message, message string) (string, error)
}

type ChatHandlers struct {
	Model ChatModel
}

// NewChatHandlers wires the chat endpoint. A nil model means the assistant is
// not configured; requests still get a clean error payload.
func NewChatHandlers(model ChatModel) *ChatHandlers {
	return &ChatHandlers{Model: model}
}

type chatRequest struct {
	Message string         `json:"message" binding:"required"`
	History []chat.Message `json:"history"`
}

// Chat forwards a visitor message to the travel assistant model. Upstream
// failures come back as {"error": ...}, never as a broken response the chat
// widget cannot render.
func (h *ChatHandlers) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error binding chat JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if h.Model == nil {
		c.JSON(http.StatusOK, gin.H{"error": "Gemini API key is not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	text, err := h.Model.Reply(ctx, req.History, req.Message)
	if err != nil {
		log.Printf("Error in assistant chat: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": "Failed to get response from AI"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
