package services

import (
	"sort"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// RRFSmoothingK is the reciprocal rank fusion constant. It dampens the
// weight of top ranks so a single first place cannot dominate the sum.
const RRFSmoothingK = 50

// FuseRankings merges multiple ranked result lists into one ranking
// using reciprocal rank fusion. Each item at 1-based rank r in a list
// contributes 1/(K+r) to its summed score; items appearing in several
// lists accumulate contributions. The fused list is sorted by score
// descending, with chunk ID ascending as the deterministic tie-break,
// and truncated to topK entries.
func FuseRankings(lists [][]domain.RetrievalResult, topK int) []domain.FusedResult {
	scores := make(map[string]float64)

	for _, list := range lists {
		for rank, result := range list {
			scores[result.Meta.ID] += 1.0 / float64(RRFSmoothingK+rank+1)
		}
	}

	fused := make([]domain.FusedResult, 0, len(scores))
	for id, score := range scores {
		fused = append(fused, domain.FusedResult{ChunkID: id, Score: score})
	}

	sort.Slice(fused, func(i, j int) bool {
		if fused[i].Score != fused[j].Score {
			return fused[i].Score > fused[j].Score
		}
		return fused[i].ChunkID < fused[j].ChunkID
	})

	if topK > 0 && len(fused) > topK {
		fused = fused[:topK]
	}
	return fused
}
