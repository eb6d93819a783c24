package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wholok/hf-embedding-proxy/internal/config"
	"github.com/wholok/hf-embedding-proxy/internal/service"
)

// availableEndpoints is reported by the 404 fallback.
var availableEndpoints = []string{
	"GET /",
	"GET /health",
	"POST /api/hf-embed",
	"POST /api/hf-embed-batch",
	"POST /api/test",
}

// NewApp assembles the Fiber app: middleware, routes and the 404 fallback.
// main calls this once; tests call it with a stub client.
func NewApp(cfg config.Config, client service.EmbeddingClient) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	// The calling client runs in a browser on a different origin, so every
	// response (errors and the 404 fallback included) must carry these
	// headers. cors goes first so it wraps everything else.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))
	app.Use(recover.New())
	app.Use(logger.New())

	NewCatalogHandler().Register(app)
	NewHealthHandler(cfg).Register(app)
	NewEmbedHandler(client).Register(app)
	NewBatchHandler(client, cfg.BatchConcurrency).Register(app)
	NewSelfTestHandler(client, cfg).Register(app)

	// Anything unmatched lands here.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":              "endpoint not found",
			"availableEndpoints": availableEndpoints,
		})
	})

	return app
}

// errorHandler converts anything a handler returns (or a recovered panic
// surfaced by the recover middleware) into a JSON error response. It is the
// last line of defence: the process itself never dies on a request fault.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
