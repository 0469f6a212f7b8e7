package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoDocument indicates no document has been loaded in this session.
	ErrNoDocument = errors.New("no document loaded")

	// ErrDimensionMismatch indicates a vector does not match the index dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrLengthMismatch indicates vectors and metadata are not parallel sequences.
	ErrLengthMismatch = errors.New("vectors and metadata length mismatch")

	// ErrNotImplemented indicates functionality is not available in this build.
	ErrNotImplemented = errors.New("not implemented")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	// Without embeddings no document can be indexed or queried.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the language model service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrRecogniserUnavailable indicates no OCR engine could be used.
	ErrRecogniserUnavailable = errors.New("recogniser unavailable")
)
