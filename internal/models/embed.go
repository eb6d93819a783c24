package models

import "encoding/json"

// EmbedRequest is the payload for POST /api/hf-embed.
// Inputs is kept raw so the handler can reject non-string values (arrays,
// numbers, null) with an error naming the field instead of a generic JSON
// parse failure.
type EmbedRequest struct {
	Model  string          `json:"model"`
	Inputs json.RawMessage `json:"inputs"`
}

// BatchEmbedRequest is the payload for POST /api/hf-embed-batch.
type BatchEmbedRequest struct {
	Model string          `json:"model"`
	Texts json.RawMessage `json:"texts"`
}

// BatchItemResult is one entry of a batch response, in input order. Exactly
// one of Embedding / Error is populated depending on Success.
type BatchItemResult struct {
	Text      string          `json:"text"`
	Embedding json.RawMessage `json:"embedding,omitempty"`
	Error     string          `json:"error,omitempty"`
	Success   bool            `json:"success"`
}

// BatchEmbedResponse wraps the per-item results. The outer request succeeds
// (HTTP 200) even when individual items failed; failures live in the items.
type BatchEmbedResponse struct {
	Model   string            `json:"model"`
	Count   int               `json:"count"`
	Results []BatchItemResult `json:"results"`
}

// ProbeResult reports one self-test probe from POST /api/test.
type ProbeResult struct {
	Model  string `json:"model"`
	Input  string `json:"input"`
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`
}
