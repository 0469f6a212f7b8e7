package services

import (
	"testing"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

func ranked(ids ...string) []domain.RetrievalResult {
	results := make([]domain.RetrievalResult, len(ids))
	for i, id := range ids {
		results[i] = domain.RetrievalResult{
			Meta:  domain.ChunkMeta{ID: id},
			Score: 1.0 - float64(i)*0.1,
		}
	}
	return results
}

func TestFuseRankings_ConsensusWins(t *testing.T) {
	lists := [][]domain.RetrievalResult{
		ranked("a", "b", "c"),
		ranked("a", "c", "d"),
	}

	fused := FuseRankings(lists, 10)
	if len(fused) != 4 {
		t.Fatalf("expected 4 fused entries, got %d", len(fused))
	}

	// "a" is rank 1 in both lists and must beat every single-list item.
	if fused[0].ChunkID != "a" {
		t.Errorf("expected a first, got %s", fused[0].ChunkID)
	}
	want := 2.0 / float64(RRFSmoothingK+1)
	if fused[0].Score != want {
		t.Errorf("expected score %v, got %v", want, fused[0].Score)
	}
}

func TestFuseRankings_SingleListItemScored(t *testing.T) {
	lists := [][]domain.RetrievalResult{
		ranked("a"),
		ranked("b"),
	}

	fused := FuseRankings(lists, 10)
	for _, f := range fused {
		if f.Score <= 0 {
			t.Errorf("item %s has non-positive score %v", f.ChunkID, f.Score)
		}
	}
}

func TestFuseRankings_TopKBound(t *testing.T) {
	lists := [][]domain.RetrievalResult{
		ranked("a", "b", "c", "d", "e"),
	}

	fused := FuseRankings(lists, 3)
	if len(fused) != 3 {
		t.Errorf("expected 3 entries, got %d", len(fused))
	}
}

func TestFuseRankings_TieBreakByChunkID(t *testing.T) {
	// Same rank in disjoint lists produces equal scores; order must
	// fall back to chunk ID ascending.
	lists := [][]domain.RetrievalResult{
		ranked("zeta"),
		ranked("alpha"),
	}

	fused := FuseRankings(lists, 10)
	if fused[0].ChunkID != "alpha" || fused[1].ChunkID != "zeta" {
		t.Errorf("expected alpha before zeta, got %s, %s", fused[0].ChunkID, fused[1].ChunkID)
	}
}

func TestFuseRankings_Empty(t *testing.T) {
	if got := FuseRankings(nil, 5); len(got) != 0 {
		t.Errorf("expected empty result, got %d entries", len(got))
	}
}
