package driven

import (
	"github.com/docsift/docsift-cli/internal/core/domain"
)

// VectorIndex stores embedding vectors with parallel chunk metadata
// and supports nearest-neighbour search by cosine similarity.
//
// The index is append-only and owns its vector store for the lifetime
// of one processed document. Vectors are L2-normalised on insertion so
// inner product equals cosine similarity.
type VectorIndex interface {
	// Add appends vectors and their parallel metadata.
	// Returns domain.ErrDimensionMismatch when any vector does not
	// match the index dimension, domain.ErrLengthMismatch when the
	// sequences are not equal length.
	Add(vectors [][]float32, metas []domain.ChunkMeta) error

	// Search returns up to topK (metadata, score) pairs in descending
	// score order. An empty index returns an empty list, not an error.
	Search(query []float32, topK int) ([]domain.RetrievalResult, error)

	// Len returns the number of stored vectors.
	Len() int
}
