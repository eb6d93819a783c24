package handler

import "github.com/gofiber/fiber/v2"

// CatalogHandler serves the static endpoint catalog on GET /.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Register(r fiber.Router) {
	r.Get("/", h.catalog)
}

func (h *CatalogHandler) catalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        "hf-embedding-proxy",
		"description": "CORS-friendly relay in front of the Hugging Face feature-extraction API",
		"endpoints": []fiber.Map{
			{
				"method":      "GET",
				"path":        "/health",
				"description": "liveness, credential presence and uptime",
			},
			{
				"method":      "GET",
				"path":        "/",
				"description": "this catalog",
			},
			{
				"method":      "POST",
				"path":        "/api/hf-embed",
				"description": "embed a single text; the embedding is returned verbatim",
				"example":     embedExample,
			},
			{
				"method":      "POST",
				"path":        "/api/hf-embed-batch",
				"description": "embed several texts concurrently; per-item success flags",
				"example":     batchExample,
			},
			{
				"method":      "POST",
				"path":        "/api/test",
				"description": "run built-in probes to verify the token and upstream reachability",
			},
		},
	})
}
