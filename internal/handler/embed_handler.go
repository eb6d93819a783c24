package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wholok/hf-embedding-proxy/internal/models"
	"github.com/wholok/hf-embedding-proxy/internal/service"
)

// EmbedHandler wires HTTP → EmbeddingClient for single-text requests.
type EmbedHandler struct {
	client service.EmbeddingClient
}

// NewEmbedHandler returns a handler instance.
func NewEmbedHandler(client service.EmbeddingClient) *EmbedHandler {
	return &EmbedHandler{client: client}
}

// Register mounts POST /api/hf-embed on the given router.
func (h *EmbedHandler) Register(r fiber.Router) {
	r.Post("/api/hf-embed", h.embed)
}

var embedExample = fiber.Map{
	"model":  "sentence-transformers/all-MiniLM-L6-v2",
	"inputs": "The text to embed",
}

// embed handles POST /api/hf-embed  { "model": "...", "inputs": "..." }.
// On success the upstream body is relayed verbatim — no envelope — so
// callers expecting a bare vector keep working.
func (h *EmbedHandler) embed(c *fiber.Ctx) error {
	var req models.EmbedRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "", "invalid JSON body", embedExample)
	}
	if req.Model == "" {
		return badRequest(c, "model", "model is required and must be a non-empty string", embedExample)
	}
	inputs, ok := stringField(req.Inputs)
	if !ok {
		return badRequest(c, "inputs", "inputs is required and must be a string", embedExample)
	}
	if inputs == "" {
		return badRequest(c, "inputs", "inputs must not be empty", embedExample)
	}

	raw, err := h.client.ExtractEmbedding(c.UserContext(), req.Model, inputs)
	if err != nil {
		return upstreamError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
