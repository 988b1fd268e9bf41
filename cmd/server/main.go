package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"groq-relay/internal/broker"
	"groq-relay/internal/config"
	"groq-relay/internal/handlers"
	"groq-relay/internal/router"
	"groq-relay/internal/services"
)

func main() {
	log.Println("🚀 Starting Groq relay...")

	// ──── Step 1: Load Configuration ────
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("✗ Configuration error: %v", err)
	}
	log.Println("✓ Configuration loaded")

	// ──── Step 2: Load Model Catalog ────
	catalog, err := services.LoadModelCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("✗ Model catalog failed to load: %v", err)
	}
	log.Printf("✓ Model catalog ready (%d models)", len(catalog.Names()))

	// ──── Step 3: Optional Redis Event Fan-out ────
	var events services.EventPublisher = services.NopPublisher{}
	if cfg.RedisURL != "" {
		redisClient, err := broker.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		events = services.NewRedisEventPublisher(redisClient, cfg.EventsChannel)
		log.Printf("✓ Redis connected, publishing chat events on %q", cfg.EventsChannel)
	}

	// ──── Step 4: Initialize Groq Clients ────
	groqClient := services.NewGroqClient(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqOrganization, cfg.GroqTimeout)
	modelLister := services.NewGroqModelLister(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqOrganization, cfg.GroqTimeout)
	log.Printf("✓ Groq client initialized (%s, timeout %s)", cfg.GroqAPIURL, cfg.GroqTimeout)

	// ──── Initialize Services & Handlers ────
	chatService := services.NewChatService(catalog, groqClient, events)
	chatHandler := handlers.NewChatHandler(chatService, modelLister)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Must outlive the Groq timeout so upstream failures still reach the caller.
		WriteTimeout: cfg.GroqTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Groq relay ready on http://localhost:%s (env=%s)", cfg.Port, cfg.Env)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
