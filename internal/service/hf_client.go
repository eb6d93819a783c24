package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wholok/hf-embedding-proxy/internal/config"
)

// HFClient calls the Hugging Face Inference API's feature-extraction
// pipeline. One instance is shared by all handlers; it holds no per-request
// state beyond the underlying http.Client's connection pool.
type HFClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
}

// extractRequest is the wire shape of a feature-extraction call.
// wait_for_model makes the upstream block while a cold model loads instead
// of answering 503 immediately.
type extractRequest struct {
	Inputs  string         `json:"inputs"`
	Options extractOptions `json:"options"`
}

type extractOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// NewHFClient builds a client from the process configuration.
func NewHFClient(cfg config.Config) *HFClient {
	return &HFClient{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.UpstreamBaseURL, "/"),
		apiKey:     cfg.APIKey,
		timeout:    cfg.UpstreamTimeout,
	}
}

// ExtractEmbedding performs one feature-extraction call for (model, text)
// and returns the upstream 2xx body verbatim. Failures come back as
// *UpstreamError; the timeout budget covers the whole call including the
// upstream's wait-for-model stall.
func (h *HFClient) ExtractEmbedding(ctx context.Context, model, text string) (json.RawMessage, error) {
	payload, err := json.Marshal(extractRequest{
		Inputs:  text,
		Options: extractOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode upstream payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	// Model IDs look like "org/model"; the slash stays a path separator.
	url := h.baseURL + "/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &UpstreamError{Kind: KindTimeout, Err: err}
		}
		return nil, &UpstreamError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Kind: KindTransport, Err: fmt.Errorf("failed to read upstream response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Kind: KindRejected, StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
