package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"groq-relay/internal/middleware"
	"groq-relay/internal/models"
	"groq-relay/internal/services"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 800

	maxRequestBody = 1 << 20
)

type chatService interface {
	Complete(ctx context.Context, requestID string, req models.ChatRequest) (*models.ChatResponse, error)
	TestModel(ctx context.Context, requestID, modelID string) (*models.ChatResponse, error)
	Models() []string
}

type modelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

type ChatHandler struct {
	chatService chatService
	modelLister modelLister
}

func NewChatHandler(chatService chatService, modelLister modelLister) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		modelLister: modelLister,
	}
}

// chatRequestBody mirrors models.ChatRequest with pointers so that absent
// fields can be told apart from zero values.
type chatRequestBody struct {
	Messages *[]struct {
		Role    *string `json:"role"`
		Content *string `json:"content"`
	} `json:"messages"`
	Model       *string  `json:"model"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
	Stream      *bool    `json:"stream"`
}

func decodeChatRequest(body io.Reader) (models.ChatRequest, error) {
	var raw chatRequestBody
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return models.ChatRequest{}, &services.MalformedRequestError{Message: "Invalid request body"}
	}

	if raw.Messages == nil {
		return models.ChatRequest{}, &services.MalformedRequestError{Message: "Field 'messages' is required"}
	}

	req := models.ChatRequest{
		Messages:    make([]models.ChatMessage, 0, len(*raw.Messages)),
		Model:       services.DefaultModel,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	}
	for i, m := range *raw.Messages {
		if m.Role == nil || m.Content == nil {
			return models.ChatRequest{}, &services.MalformedRequestError{
				Message: fmt.Sprintf("messages[%d] must have 'role' and 'content'", i),
			}
		}
		req.Messages = append(req.Messages, models.ChatMessage{Role: *m.Role, Content: *m.Content})
	}

	if raw.Model != nil {
		req.Model = *raw.Model
	}
	if raw.Temperature != nil {
		req.Temperature = *raw.Temperature
	}
	if raw.MaxTokens != nil {
		req.MaxTokens = *raw.MaxTokens
	}
	if raw.Stream != nil {
		req.Stream = *raw.Stream
	}

	return req, nil
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	req, err := decodeChatRequest(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp, err := h.chatService.Complete(r.Context(), middleware.GetRequestID(r.Context()), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChatHandler) Models(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ModelsResponse{Models: h.chatService.Models()})
}

func (h *ChatHandler) UpstreamModels(w http.ResponseWriter, r *http.Request) {
	ids, err := h.modelLister.ListModels(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ModelsResponse{Models: ids})
}

// TestModel checks that a Groq model answers a fixed test prompt.
// GET /test_model?model_name=llama-3.3-70b-versatile
func (h *ChatHandler) TestModel(w http.ResponseWriter, r *http.Request) {
	resp, err := h.chatService.TestModel(r.Context(), middleware.GetRequestID(r.Context()), r.URL.Query().Get("model_name"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}
