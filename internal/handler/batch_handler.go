package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wholok/hf-embedding-proxy/internal/models"
	"github.com/wholok/hf-embedding-proxy/internal/service"
)

// BatchHandler fans one request out into N independent upstream calls.
type BatchHandler struct {
	client      service.EmbeddingClient
	concurrency int
}

// NewBatchHandler returns a handler instance. concurrency caps how many
// upstream calls may be in flight at once for a single batch request.
func NewBatchHandler(client service.EmbeddingClient, concurrency int) *BatchHandler {
	if concurrency < 1 {
		concurrency = 1
	}
	return &BatchHandler{client: client, concurrency: concurrency}
}

// Register mounts POST /api/hf-embed-batch on the given router.
func (h *BatchHandler) Register(r fiber.Router) {
	r.Post("/api/hf-embed-batch", h.batch)
}

var batchExample = fiber.Map{
	"model": "sentence-transformers/all-MiniLM-L6-v2",
	"texts": []string{"first text", "second text"},
}

// batch handles POST /api/hf-embed-batch { "model": "...", "texts": [...] }.
// Items are embedded concurrently; one item's failure is recorded in its
// result entry and never aborts the siblings, so the outer status is 200
// whenever the request itself was well-formed.
func (h *BatchHandler) batch(c *fiber.Ctx) error {
	var req models.BatchEmbedRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "", "invalid JSON body", batchExample)
	}
	if req.Model == "" {
		return badRequest(c, "model", "model is required and must be a non-empty string", batchExample)
	}

	var texts []string
	if len(req.Texts) == 0 || json.Unmarshal(req.Texts, &texts) != nil {
		return badRequest(c, "texts", "texts is required and must be an array of strings", batchExample)
	}
	if len(texts) == 0 {
		return badRequest(c, "texts", "texts must not be empty", batchExample)
	}
	for _, t := range texts {
		if t == "" {
			return badRequest(c, "texts", "texts must not contain empty strings", batchExample)
		}
	}

	results := make([]models.BatchItemResult, len(texts))

	// Worker closures always return nil: an item failure is data, not an
	// error, so the group context is never cancelled for the siblings.
	g, ctx := errgroup.WithContext(c.UserContext())
	g.SetLimit(h.concurrency)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			raw, err := h.client.ExtractEmbedding(ctx, req.Model, text)
			if err != nil {
				results[i] = models.BatchItemResult{Text: text, Error: err.Error()}
				return nil
			}
			results[i] = models.BatchItemResult{Text: text, Embedding: raw, Success: true}
			return nil
		})
	}
	_ = g.Wait()

	return c.JSON(models.BatchEmbedResponse{
		Model:   req.Model,
		Count:   len(results),
		Results: results,
	})
}
