package services

import "groq-relay/internal/models"

// GroqMessage is a message in the shape Groq's chat completion API expects.
type GroqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GroqChatRequest is the outbound chat completion payload.
type GroqChatRequest struct {
	Model       string        `json:"model"`
	Messages    []GroqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

// ValidateRequest checks req against the catalog and builds the Groq payload.
// Temperature and max tokens are passed through as given.
func ValidateRequest(catalog *ModelCatalog, req models.ChatRequest) (*GroqChatRequest, error) {
	modelID, ok := catalog.Resolve(req.Model)
	if !ok {
		return nil, &InvalidModelError{Model: req.Model, Allowed: catalog.Names()}
	}

	if req.Stream {
		return nil, &MalformedRequestError{Message: "Streaming responses are not supported"}
	}

	messages := make([]GroqMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, GroqMessage{Role: m.Role, Content: m.Content})
	}

	return &GroqChatRequest{
		Model:       modelID,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}, nil
}
