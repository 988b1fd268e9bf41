package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"groq-relay/internal/handlers"
	"groq-relay/internal/middleware"
)

func New(chatHandler *handlers.ChatHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigins))

	// Health check
	r.Get("/", handlers.Health)
	r.Get("/health", handlers.Health)

	r.Post("/chat", chatHandler.Chat)
	r.Get("/test_model", chatHandler.TestModel)

	r.Route("/models", func(r chi.Router) {
		r.Get("/", chatHandler.Models)
		r.Get("/upstream", chatHandler.UpstreamModels)
	})

	return r
}
