package api

import (
	"os"
	"time"
)

// Config holds gateway client configuration.
type Config struct {
	// BaseURL is the LearnPal service root. Every endpoint, including
	// text-to-speech, is served from this one host.
	BaseURL string

	// Timeout is the transport default for a single request.
	// No per-operation timeouts or retries are layered on top.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://127.0.0.1:8000",
		Timeout: 30 * time.Second,
	}
}

// FromEnv builds a Config from the environment, falling back to defaults.
// LEARNPAL_API overrides the base URL.
func FromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("LEARNPAL_API"); v != "" {
		cfg.BaseURL = v
	}
	return cfg
}
