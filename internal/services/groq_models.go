package services

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GroqModelLister asks Groq which models the configured key can use, through
// its OpenAI-compatible /models endpoint.
type GroqModelLister struct {
	client openai.Client
}

func NewGroqModelLister(baseURL, apiKey, organization string, timeout time.Duration) *GroqModelLister {
	if baseURL == "" {
		baseURL = DefaultGroqAPIURL
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(strings.TrimRight(baseURL, "/") + "/"),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
	}
	if organization != "" {
		opts = append(opts, option.WithHeader("Groq-Organization", organization))
	}

	return &GroqModelLister{client: openai.NewClient(opts...)}
}

// ListModels returns the sorted ids of the models visible to the API key.
func (l *GroqModelLister) ListModels(ctx context.Context) ([]string, error) {
	page, err := l.client.Models.List(ctx)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, &UpstreamError{Status: apiErr.StatusCode, Body: apiErr.Error()}
		}
		return nil, &TransportError{Message: err.Error()}
	}

	ids := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)
	return ids, nil
}
