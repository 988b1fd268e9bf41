package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultGroqAPIURL is the OpenAI-compatible base URL of the Groq API.
const DefaultGroqAPIURL = "https://api.groq.com/openai/v1"

// maxErrorBody caps how much of a failed response body is kept.
const maxErrorBody = 64 << 10

type groqChatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// GroqClient relays chat completion requests to Groq. It makes exactly one
// attempt per call and is safe for concurrent use.
type GroqClient struct {
	baseURL      string
	apiKey       string
	organization string
	httpClient   *http.Client
}

func NewGroqClient(baseURL, apiKey, organization string, timeout time.Duration) *GroqClient {
	if baseURL == "" {
		baseURL = DefaultGroqAPIURL
	}
	return &GroqClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		organization: organization,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// Complete posts payload to /chat/completions and returns the content of the
// first choice.
func (c *GroqClient) Complete(ctx context.Context, payload *GroqChatRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	// The client timeout also covers reading the body.
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Message: err.Error()}
	}

	var result groqChatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: decode body: %v", ErrEmptyUpstreamResponse, err)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", ErrEmptyUpstreamResponse
	}

	return result.Choices[0].Message.Content, nil
}

func (c *GroqClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.organization != "" {
		req.Header.Set("Groq-Organization", c.organization)
	}
}
