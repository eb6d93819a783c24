package main

import (
	"log"

	"github.com/wholok/hf-embedding-proxy/internal/config"
	"github.com/wholok/hf-embedding-proxy/internal/handler"
	"github.com/wholok/hf-embedding-proxy/internal/service"
)

// main is the single entry-point for the relay.
func main() {
	cfg := config.Load()
	log.Printf("Configuration loaded:")
	log.Printf("  - Upstream: %s", cfg.UpstreamBaseURL)
	log.Printf("  - API key loaded: %v", cfg.APIKeyLoaded())
	log.Printf("  - Upstream timeout: %s", cfg.UpstreamTimeout)
	log.Printf("  - Batch concurrency: %d", cfg.BatchConcurrency)

	client := service.NewHFClient(cfg)
	app := handler.NewApp(cfg, client)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
