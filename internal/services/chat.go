package services

import (
	"context"
	"errors"
	"log"
	"time"

	"groq-relay/internal/models"
)

// DefaultTestModel is the Groq model checked by TestModel when none is given.
const DefaultTestModel = "llama-3.3-70b-versatile"

// ChatCompleter is the outbound relay used by ChatService.
type ChatCompleter interface {
	Complete(ctx context.Context, payload *GroqChatRequest) (string, error)
}

// ChatService runs the validate → relay → clean pipeline. It holds no
// per-request state.
type ChatService struct {
	catalog *ModelCatalog
	relay   ChatCompleter
	events  EventPublisher
}

func NewChatService(catalog *ModelCatalog, relay ChatCompleter, events EventPublisher) *ChatService {
	if events == nil {
		events = NopPublisher{}
	}
	return &ChatService{catalog: catalog, relay: relay, events: events}
}

// Models returns the caller-facing model names.
func (s *ChatService) Models() []string {
	return s.catalog.Names()
}

// TestModel sends a fixed one-line prompt straight to a Groq model id,
// bypassing the catalog, to check that the model answers. The reply is
// returned as-is.
func (s *ChatService) TestModel(ctx context.Context, requestID, modelID string) (*models.ChatResponse, error) {
	if modelID == "" {
		modelID = DefaultTestModel
	}

	start := time.Now()
	reply, err := s.relay.Complete(ctx, &GroqChatRequest{
		Model:       modelID,
		Messages:    []GroqMessage{{Role: "user", Content: "Test message."}},
		Temperature: 0.7,
		MaxTokens:   50,
	})
	if err != nil {
		log.Printf("[%s] model test failed model=%s status=%d after %s: %v",
			requestID, modelID, upstreamStatus(err), time.Since(start), err)
		return nil, err
	}

	log.Printf("[%s] model test ok model=%s in %s", requestID, modelID, time.Since(start))
	return &models.ChatResponse{Response: reply, Model: modelID}, nil
}

// Complete validates req, relays it to Groq once and returns the cleaned
// reply. requestID is only used for logs and events. Events are published
// synchronously, so a slow Redis delays the reply by at most the publish
// timeout.
func (s *ChatService) Complete(ctx context.Context, requestID string, req models.ChatRequest) (*models.ChatResponse, error) {
	log.Printf("[%s] chat request model=%s messages=%d", requestID, req.Model, len(req.Messages))

	payload, err := ValidateRequest(s.catalog, req)
	if err != nil {
		log.Printf("[%s] rejected model=%s: %v", requestID, req.Model, err)
		return nil, err
	}

	start := time.Now()
	reply, err := s.relay.Complete(ctx, payload)
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("[%s] Groq call failed model=%s status=%d after %s: %v",
			requestID, req.Model, upstreamStatus(err), elapsed, err)
		s.events.Publish(ctx, ChatEvent{
			RequestID: requestID,
			Model:     req.Model,
			Status:    "error",
			Error:     err.Error(),
			LatencyMS: elapsed.Milliseconds(),
			Timestamp: start,
		})
		return nil, err
	}

	log.Printf("[%s] Groq response time: %.2fms model=%s", requestID, float64(elapsed.Microseconds())/1000, req.Model)
	s.events.Publish(ctx, ChatEvent{
		RequestID: requestID,
		Model:     req.Model,
		Status:    "ok",
		LatencyMS: elapsed.Milliseconds(),
		Timestamp: start,
	})

	return &models.ChatResponse{
		Response: CleanResponse(reply),
		Model:    req.Model,
	}, nil
}

func upstreamStatus(err error) int {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Status
	}
	return 0
}
