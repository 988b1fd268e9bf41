package broker

import (
	"strings"
	"testing"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient("not-a-redis-url")
	if err == nil {
		t.Fatal("Expected error for invalid Redis URL")
	}
	if !strings.Contains(err.Error(), "parse Redis URL") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	// Port 1 on loopback is never a Redis server.
	_, err := NewRedisClient("redis://127.0.0.1:1/0")
	if err == nil {
		t.Fatal("Expected ping error for unreachable Redis")
	}
	if !strings.Contains(err.Error(), "ping Redis") {
		t.Errorf("Unexpected error: %v", err)
	}
}
