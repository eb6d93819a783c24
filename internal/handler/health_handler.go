package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wholok/hf-embedding-proxy/internal/config"
)

// HealthHandler answers liveness probes. It never touches the upstream.
type HealthHandler struct {
	cfg     config.Config
	started time.Time
}

func NewHealthHandler(cfg config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg, started: time.Now()}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":       "ok",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"apiKeyLoaded": h.cfg.APIKeyLoaded(),
		"uptime":       time.Since(h.started).Round(time.Second).String(),
	})
}
