// Package config holds the process configuration for the travel planning
// API. Everything is read from the environment once at startup; missing
// credentials are logged but do not prevent the server from starting,
// requests that need them fail with a configuration error instead.
package config

import (
	"log/slog"
	"os"
	"strings"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.1-8b-instant"
)

type Config struct {
	GroqAPIKey        string
	GroqBaseURL       string
	GroqModel         string
	UnsplashAccessKey string
	UnsplashBaseURL   string
}

// HasAPIKeys reports whether both upstream credentials are present.
func (c Config) HasAPIKeys() bool {
	return c.GroqAPIKey != "" && c.UnsplashAccessKey != ""
}

// Load reads the configuration from the environment.
func Load() Config {
	cfg := Config{
		GroqAPIKey:        strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GroqBaseURL:       strings.TrimSpace(os.Getenv("GROQ_BASE_URL")),
		GroqModel:         strings.TrimSpace(os.Getenv("GROQ_MODEL")),
		UnsplashAccessKey: strings.TrimSpace(os.Getenv("UNSPLASH_ACCESS_KEY")),
		UnsplashBaseURL:   strings.TrimSpace(os.Getenv("UNSPLASH_BASE_URL")),
	}

	if cfg.GroqBaseURL == "" {
		cfg.GroqBaseURL = defaultGroqBaseURL
	}
	if cfg.GroqModel == "" {
		cfg.GroqModel = defaultGroqModel
	}

	if cfg.GroqAPIKey == "" {
		slog.Warn("GROQ_API_KEY is not set, trip generation requests will fail")
	}
	if cfg.UnsplashAccessKey == "" {
		slog.Warn("UNSPLASH_ACCESS_KEY is not set, trip generation requests will fail")
	}

	return cfg
}
