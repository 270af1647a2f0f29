// api/chat/assistant.go

// Package chat talks to the Gemini API on behalf of the site's travel
// assistant widget.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"flygoldfinch/api/data"
)

const model = "gemini-2.5-flash"

// Message is one prior turn of the conversation. Role is "user" or "model";
// the widget sends the full history with every request, the server keeps no
// conversation state.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Assistant answers travel questions with the itinerary catalog as grounding
// context.
type Assistant struct {
	client *genai.Client
}

// NewAssistantFromEnv builds an Assistant from GEMINI_API_KEY. Returns nil
// when no key is configured, which disables the chat endpoint gracefully.
func NewAssistantFromEnv(ctx context.Context) (*Assistant, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Assistant{client: client}, nil
}

// Reply sends the visitor's message, with history, to the model. The catalog
// context rides as the opening user turn followed by a canned model
// acknowledgement, so the model treats it as settled conversation.
func (a *Assistant) Reply(ctx context.Context, history []Message, message string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(catalogContext(), genai.RoleUser),
		genai.NewContentFromText("Understood. I am ready to assist as the Fly Goldfinch travel assistant.", genai.RoleModel),
	}
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := a.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate assistant reply: %w", err)
	}
	return resp.Text(), nil
}

// catalogContext renders the fixed system prompt: assistant persona plus the
// itinerary catalog as JSON.
func catalogContext() string {
	type entry struct {
		Title       string `json:"title"`
		Destination string `json:"destination"`
		Duration    string `json:"duration"`
		Price       string `json:"price"`
		Highlights  string `json:"highlights"`
		Description string `json:"description"`
	}

	itineraries := data.Itineraries()
	entries := make([]entry, 0, len(itineraries))
	for _, i := range itineraries {
		entries = append(entries, entry{
			Title:       i.Title,
			Destination: i.Destination,
			Duration:    fmt.Sprintf("%d days, %d nights", i.Duration.Days, i.Duration.Nights),
			Price:       fmt.Sprintf("₹%d", i.Price),
			Highlights:  strings.Join(i.Highlights, ", "),
			Description: i.Description,
		})
	}
	catalog, _ := json.MarshalIndent(entries, "", "  ")

	return fmt.Sprintf(`You are a helpful travel assistant for Fly Goldfinch, a premium travel agency.
Your goal is to recommend itineraries based on user preferences.
Here are the available itineraries:
%s

Instructions:
1. Be polite and professional.
2. Recommend specific itineraries from the list above.
3. If no itinerary matches perfectly, suggest the closest one.
4. Keep responses concise but informative.
5. Use markdown for better formatting.`, catalog)
}
