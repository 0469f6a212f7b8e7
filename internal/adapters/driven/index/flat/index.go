// Package flat provides an exact in-memory vector index.
//
// Vectors are L2-normalised on insertion and queries are normalised
// before scoring, so the inner product used for ranking equals cosine
// similarity. Every search scans the full stored set; this is exact
// (not approximate) and is the right trade-off at single-document
// scale.
package flat

import (
	"math"
	"sort"
	"sync"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index stores unit vectors with parallel chunk metadata.
// The vector at position i corresponds to metas[i]. The index is
// append-only; it lives for one document session.
type Index struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float32
	metas     []domain.ChunkMeta
}

// New creates an index for vectors of the given dimension.
func New(dimension int) *Index {
	return &Index{dimension: dimension}
}

// Dimensions returns the configured vector dimension.
func (idx *Index) Dimensions() int {
	return idx.dimension
}

// Len returns the number of stored vectors.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.vectors)
}

// Add normalises and appends vectors with their parallel metadata.
func (idx *Index) Add(vectors [][]float32, metas []domain.ChunkMeta) error {
	if len(vectors) != len(metas) {
		return domain.ErrLengthMismatch
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, v := range vectors {
		if len(v) != idx.dimension {
			return domain.ErrDimensionMismatch
		}
	}

	for i, v := range vectors {
		idx.vectors = append(idx.vectors, normalise(v))
		idx.metas = append(idx.metas, metas[i])
	}
	return nil
}

// Search scores the query against every stored vector and returns up
// to topK results in descending score order. An empty index returns
// an empty list.
func (idx *Index) Search(query []float32, topK int) ([]domain.RetrievalResult, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.vectors) == 0 {
		return []domain.RetrievalResult{}, nil
	}
	if len(query) != idx.dimension {
		return nil, domain.ErrDimensionMismatch
	}
	if topK <= 0 {
		topK = 5
	}

	q := normalise(query)

	results := make([]domain.RetrievalResult, len(idx.vectors))
	for i, v := range idx.vectors {
		results[i] = domain.RetrievalResult{
			Meta:  idx.metas[i],
			Score: dot(v, q),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}

// normalise returns a unit-length copy of v. A zero vector is
// returned as a zero copy rather than dividing by zero.
func normalise(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	out := make([]float32, len(v))
	if sum == 0 {
		return out
	}
	inv := 1 / math.Sqrt(sum)
	for i, x := range v {
		out[i] = float32(float64(x) * inv)
	}
	return out
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
