package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wholok/hf-embedding-proxy/internal/config"
	"github.com/wholok/hf-embedding-proxy/internal/models"
	"github.com/wholok/hf-embedding-proxy/internal/service"
)

// selfTestProbes are the hardcoded (model, text) pairs POST /api/test runs.
var selfTestProbes = []struct {
	model string
	input string
}{
	{"sentence-transformers/all-MiniLM-L6-v2", "The quick brown fox jumps over the lazy dog"},
	{"BAAI/bge-small-en-v1.5", "Hello from the embedding relay"},
}

// SelfTestHandler lets an operator verify the credential and upstream
// reachability without crafting a request by hand.
type SelfTestHandler struct {
	client service.EmbeddingClient
	cfg    config.Config
}

func NewSelfTestHandler(client service.EmbeddingClient, cfg config.Config) *SelfTestHandler {
	return &SelfTestHandler{client: client, cfg: cfg}
}

func (h *SelfTestHandler) Register(r fiber.Router) {
	r.Post("/api/test", h.selfTest)
}

func (h *SelfTestHandler) selfTest(c *fiber.Ctx) error {
	tests := make([]models.ProbeResult, 0, len(selfTestProbes))
	allPassed := true

	for _, probe := range selfTestProbes {
		result := models.ProbeResult{Model: probe.model, Input: probe.input, Passed: true}
		if _, err := h.client.ExtractEmbedding(c.UserContext(), probe.model, probe.input); err != nil {
			result.Passed = false
			result.Error = err.Error()
			allPassed = false
		}
		tests = append(tests, result)
	}

	return c.JSON(fiber.Map{
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"apiKeyLoaded": h.cfg.APIKeyLoaded(),
		"allPassed":    allPassed,
		"tests":        tests,
	})
}
