// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/chat.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Dataset locations, tried in order; the first that parses wins
// --------------------------------------------------------------------------

// DefaultDatasetPaths mirrors where the results document usually sits
// relative to the process working directory.
var DefaultDatasetPaths = []string{
	"../data/sports_results.json",
	"data/sports_results.json",
	"sports_results.json",
}

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Dataset
	DatasetPaths []string

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool
	LogFormat   string // text, json

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Conversational engine (relay target)
	EngineURL               string
	EngineSender            string
	EngineTimeout           time.Duration
	EngineRequestsPerMinute int
}

// Load reads configuration from environment variables with sensible defaults.
// Every setting has a default, so Load never fails.
func Load() *Config {
	return &Config{
		DatasetPaths: envList("DATASET_PATHS", DefaultDatasetPaths),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 5055)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),
		LogFormat:   strings.ToLower(envOr("LOG_FORMAT", "text")),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		EngineURL:               envOr("ENGINE_URL", "http://localhost:5005/webhooks/rest/webhook"),
		EngineSender:            envOr("ENGINE_SENDER", "user"),
		EngineTimeout:           time.Duration(envInt("ENGINE_TIMEOUT_SECONDS", 15)) * time.Second,
		EngineRequestsPerMinute: envInt("ENGINE_REQUESTS_PER_MINUTE", 600),
	}
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewLogger builds the process logger. DEBUG=true lowers the level to debug;
// LOG_FORMAT=json switches to the JSON handler.
func (c *Config) NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
