package service

import (
	"context"
	"encoding/json"
)

// EmbeddingClient defines the interface for upstream feature-extraction
// services. The returned body is opaque: depending on the model it may be a
// flat vector, a vector-of-vectors, or even a structured error the upstream
// sent with a 200 — the relay forwards all of them untouched.
type EmbeddingClient interface {
	ExtractEmbedding(ctx context.Context, model, text string) (json.RawMessage, error)
}
