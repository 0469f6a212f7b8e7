package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Implementations must preserve input order, return one vector of
// identical dimension per input, and treat a batch of one (query
// embedding) the same as a batch of many (document chunks). Embeddings
// are deterministic for identical input text.
type EmbeddingService interface {
	// EmbedBatch generates embeddings for the given texts, in order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g. 1536).
	// This must match the VectorIndex configuration.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
