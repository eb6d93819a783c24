package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wholok/hf-embedding-proxy/internal/service"
)

// badRequest rejects a payload before any upstream call is made, naming the
// offending field and showing a valid example where one helps.
func badRequest(c *fiber.Ctx, field, msg string, example fiber.Map) error {
	body := fiber.Map{"error": msg}
	if field != "" {
		body["field"] = field
	}
	if example != nil {
		body["example"] = example
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// upstreamError maps the service error taxonomy onto HTTP statuses:
// rejected → the upstream's own status, timeout → 504, transport → 500.
func upstreamError(c *fiber.Ctx, err error) error {
	var ue *service.UpstreamError
	if !errors.As(err, &ue) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	switch ue.Kind {
	case service.KindRejected:
		return c.Status(ue.StatusCode).JSON(fiber.Map{
			"error":            "upstream service rejected the request",
			"status":           ue.StatusCode,
			"upstreamResponse": rawOrString(ue.Body),
		})
	case service.KindTimeout:
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"error": "upstream call timed out; the model may still be loading, retry shortly",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to reach upstream service",
			"detail": ue.Err.Error(),
		})
	}
}

// rawOrString embeds an upstream body into our JSON response: valid JSON is
// passed through as-is, anything else is quoted as a plain string.
func rawOrString(body []byte) any {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}

// stringField decodes a raw JSON value that must be a string. ok is false
// for arrays, numbers, objects, null, or absent values.
func stringField(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
