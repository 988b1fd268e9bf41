package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChatEvent describes the outcome of one relayed chat request.
type ChatEvent struct {
	RequestID string    `json:"request_id,omitempty"`
	Model     string    `json:"model"`
	Status    string    `json:"status"` // "ok" or "error"
	Error     string    `json:"error,omitempty"`
	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher fans chat outcomes out to observers. Publishing is best
// effort and never fails a request.
type EventPublisher interface {
	Publish(ctx context.Context, event ChatEvent)
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ChatEvent) {}

// RedisEventPublisher publishes events as JSON on a Redis pub/sub channel.
type RedisEventPublisher struct {
	redis   *redis.Client
	channel string
	timeout time.Duration
}

// publishTimeout caps how long a reply can wait on Redis.
const publishTimeout = 2 * time.Second

func NewRedisEventPublisher(client *redis.Client, channel string) *RedisEventPublisher {
	return &RedisEventPublisher{redis: client, channel: channel, timeout: publishTimeout}
}

func (p *RedisEventPublisher) Publish(ctx context.Context, event ChatEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("WARNING: could not encode chat event: %v", err)
		return
	}
	// The request context may already be done once the reply is written.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.redis.Publish(ctx, p.channel, string(data)).Err(); err != nil {
		log.Printf("WARNING: could not publish chat event to %s: %v", p.channel, err)
	}
}
