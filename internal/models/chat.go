package models

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant" or "system"
	Content string `json:"content"`
}

// ChatRequest is the payload accepted by POST /chat.
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

// ChatResponse is the cleaned assistant reply.
type ChatResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
