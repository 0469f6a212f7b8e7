package driven

import (
	"context"
	"fmt"
)

// LLMService provides chat completions against one named model.
//
// Model selection (primary versus fallback) is a core concern and
// lives in the answer generator, not here. Implementations surface
// upstream failures as *UpstreamError so the generator can decide
// whether a fallback model applies.
type LLMService interface {
	// Complete sends a system role string and a user prompt to the
	// given model and returns the completion text.
	Complete(ctx context.Context, model, system, prompt string, temperature float64) (string, error)

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// UpstreamError is a structured failure from the model API.
// The Message text distinguishes model-unavailable conditions
// (substring "model" or "decommissioned") from other failures.
type UpstreamError struct {
	// Model is the model that was requested.
	Model string

	// StatusCode is the HTTP status, 0 for transport failures.
	StatusCode int

	// Message is the upstream error text.
	Message string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("llm: %s (model %s, status %d)", e.Message, e.Model, e.StatusCode)
	}
	return fmt.Sprintf("llm: %s (model %s)", e.Message, e.Model)
}
