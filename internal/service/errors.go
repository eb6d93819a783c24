package service

import (
	"encoding/json"
	"fmt"
)

// ErrorKind classifies why an upstream feature-extraction call failed.
type ErrorKind int

const (
	// KindRejected means the inference service answered with a non-2xx
	// status; StatusCode and Body carry what it said.
	KindRejected ErrorKind = iota
	// KindTimeout means the call exceeded its deadline, usually because
	// the model is still cold-loading upstream.
	KindTimeout
	// KindTransport means the request never produced a response at all
	// (DNS, connection refused, broken pipe).
	KindTransport
)

// UpstreamError is the single error type crossing the service/handler
// boundary. Handlers switch on Kind to pick a response status.
type UpstreamError struct {
	Kind       ErrorKind
	StatusCode int             // set when Kind == KindRejected
	Body       json.RawMessage // upstream response body, when one exists
	Err        error           // underlying cause, when one exists
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case KindRejected:
		return fmt.Sprintf("upstream rejected request with status %d", e.StatusCode)
	case KindTimeout:
		return "upstream call timed out"
	default:
		if e.Err != nil {
			return fmt.Sprintf("upstream request failed: %v", e.Err)
		}
		return "upstream request failed"
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
