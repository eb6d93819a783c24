// Package config centralises all environment / flag configuration for the
// relay. It should be imported only by `cmd/server` (and test code).
// Request-handling layers receive an already-built Config instance via
// dependency-injection and never read the environment themselves.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultUpstreamURL is the Hugging Face feature-extraction pipeline base.
// The model identifier is appended as a path segment (slashes preserved).
const DefaultUpstreamURL = "https://api-inference.huggingface.co/pipeline/feature-extraction"

// Config holds every runtime option the relay needs.
// Keep it flat and simple—prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port string

	// Upstream inference service
	APIKey          string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	// Batch fan-out cap (max in-flight upstream calls per batch request)
	BatchConcurrency int

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load parses the environment (and an optional .env file) into Config.
// A missing HF_API_KEY is deliberately not fatal: the relay starts anyway
// and reports the gap via /health, so an operator can diagnose it over HTTP
// instead of staring at a crash loop.
func Load() Config {
	// godotenv.Load() is a no-op if .env doesn't exist—safe in production.
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		APIKey:           os.Getenv("HF_API_KEY"),
		UpstreamBaseURL:  getEnv("HF_UPSTREAM_URL", DefaultUpstreamURL),
		UpstreamTimeout:  getDuration("HF_TIMEOUT_SEC", 60),
		BatchConcurrency: getInt("BATCH_CONCURRENCY", 8),
		ReadTimeout:      getDuration("READ_TIMEOUT_SEC", 15),
		WriteTimeout:     getDuration("WRITE_TIMEOUT_SEC", 75),
	}

	if cfg.APIKey == "" {
		log.Printf("WARNING: HF_API_KEY is not set; upstream calls will be rejected until it is configured")
	}

	return cfg
}

// APIKeyLoaded reports whether a bearer token was configured at startup.
func (c Config) APIKeyLoaded() bool {
	return c.APIKey != ""
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getInt reads a positive integer from env, falling back to defaultVal.
func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("invalid %s=%q; using default %d", key, v, defaultVal)
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			return time.Duration(sec) * time.Second
		}
		log.Printf("invalid %s=%q; using default %ds", key, v, defaultSec)
	}
	return time.Duration(defaultSec) * time.Second
}
