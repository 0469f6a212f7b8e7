package driven

import (
	"context"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// ChunkStore holds the chunks of the currently loaded document so
// retrieval results can be hydrated back into full text. One store
// serves one document session; Reset discards the previous document.
type ChunkStore interface {
	// SaveChunks stores chunks, keyed by chunk ID.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// GetChunk retrieves a chunk by ID.
	// A missing chunk yields (nil, false), not an error.
	GetChunk(ctx context.Context, id string) (*domain.Chunk, bool)

	// Count returns the number of stored chunks.
	Count(ctx context.Context) int

	// Reset discards all stored chunks.
	Reset(ctx context.Context) error
}
