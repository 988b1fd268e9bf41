package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Groq
	GroqAPIKey       string
	GroqOrganization string
	GroqAPIURL       string
	GroqTimeout      time.Duration

	// Model catalog override (YAML)
	CatalogFile string

	// CORS
	AllowedOrigins []string

	// Redis (optional event fan-out)
	RedisURL      string
	EventsChannel string
}

// Load reads .env, the environment and then the command-line flags, in
// increasing order of precedence. It panics when GROQ_API_KEY is missing.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("groq-relay", flag.ContinueOnError)
	envFile := fs.String("env-file", ".env", "dotenv file to load before reading the environment")
	port := fs.String("port", "", "HTTP listen port (overrides PORT)")
	catalog := fs.String("catalog", "", "YAML model catalog (overrides MODEL_CATALOG_FILE)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// Load .env file if it exists
	godotenv.Load(*envFile)

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8000"),
		Env:              getEnvOrDefault("ENV", "development"),
		GroqAPIKey:       mustGetEnv("GROQ_API_KEY"),
		GroqOrganization: getEnvOrDefault("GROQ_ORGANIZATION", ""),
		GroqAPIURL:       strings.TrimRight(getEnvOrDefault("GROQ_API_URL", "https://api.groq.com/openai/v1"), "/"),
		GroqTimeout:      time.Duration(getEnvAsIntOrDefault("GROQ_TIMEOUT_SECONDS", 30)) * time.Second,
		CatalogFile:      getEnvOrDefault("MODEL_CATALOG_FILE", ""),
		AllowedOrigins:   splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		RedisURL:         getEnvOrDefault("REDIS_URL", ""),
		EventsChannel:    getEnvOrDefault("EVENTS_CHANNEL", "chat_events"),
	}

	if *port != "" {
		cfg.Port = *port
	}
	if *catalog != "" {
		cfg.CatalogFile = *catalog
	}

	return cfg, nil
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
