package flat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

func meta(id string, page int) domain.ChunkMeta {
	return domain.ChunkMeta{ID: id, Page: page, Type: domain.ItemText}
}

func TestIndex_AddAndSearch(t *testing.T) {
	idx := New(3)

	err := idx.Add(
		[][]float32{
			{1, 0, 0},
			{0, 1, 0},
			{0.9, 0.1, 0},
		},
		[]domain.ChunkMeta{meta("a", 1), meta("b", 2), meta("c", 3)},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	results, err := idx.Search([]float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Exact match first with near-maximal score, aligned vector second.
	assert.Equal(t, "a", results[0].Meta.ID)
	assert.InDelta(t, 1.0, results[0].Score, 1e-6)
	assert.Equal(t, "c", results[1].Meta.ID)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestIndex_SearchReturnsAtMostMinNK(t *testing.T) {
	idx := New(2)
	err := idx.Add(
		[][]float32{{1, 0}, {0, 1}},
		[]domain.ChunkMeta{meta("a", 1), meta("b", 1)},
	)
	require.NoError(t, err)

	// topK larger than the stored set returns everything.
	results, err := idx.Search([]float32{1, 1}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Descending score order.
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestIndex_DimensionMismatchRejected(t *testing.T) {
	idx := New(4)

	err := idx.Add([][]float32{{1, 2, 3}}, []domain.ChunkMeta{meta("a", 1)})
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	assert.Equal(t, 0, idx.Len())
}

func TestIndex_LengthMismatchRejected(t *testing.T) {
	idx := New(2)

	err := idx.Add([][]float32{{1, 0}, {0, 1}}, []domain.ChunkMeta{meta("a", 1)})
	assert.ErrorIs(t, err, domain.ErrLengthMismatch)
}

func TestIndex_EmptySearch(t *testing.T) {
	idx := New(8)

	results, err := idx.Search(make([]float32, 8), 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIndex_NormalisesStoredVectors(t *testing.T) {
	idx := New(2)

	// Same direction, wildly different magnitudes: scores must match.
	err := idx.Add(
		[][]float32{{100, 0}, {0.001, 0}},
		[]domain.ChunkMeta{meta("big", 1), meta("small", 2)},
	)
	require.NoError(t, err)

	results, err := idx.Search([]float32{5, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.InDelta(t, results[0].Score, results[1].Score, 1e-6)
	assert.InDelta(t, 1.0, results[0].Score, 1e-6)
}

func TestIndex_ZeroQueryVector(t *testing.T) {
	idx := New(2)
	err := idx.Add([][]float32{{1, 0}}, []domain.ChunkMeta{meta("a", 1)})
	require.NoError(t, err)

	results, err := idx.Search([]float32{0, 0}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, math.IsNaN(results[0].Score))
	assert.InDelta(t, 0.0, results[0].Score, 1e-9)
}
