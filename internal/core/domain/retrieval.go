package domain

// RetrievalResult pairs chunk metadata with a similarity score.
// Scores are inner products over unit-normalised vectors, so higher
// means more similar.
type RetrievalResult struct {
	Meta  ChunkMeta
	Score float64
}

// FusedResult is one entry of a rank-fused result list.
type FusedResult struct {
	// ChunkID identifies the item across the input lists.
	ChunkID string

	// Score is the summed reciprocal-rank contribution.
	Score float64
}

// ContextItem is one retrieved passage handed to the answer generator.
type ContextItem struct {
	Page int
	Text string
}

// Snippet is a display-ready retrieved passage.
type Snippet struct {
	Page  int
	Text  string
	Score float64
}

// Answer is the result of one question against a loaded document.
type Answer struct {
	// Text is the definitive, displayable answer. Generation failures
	// are embedded here as marked error strings, never raised.
	Text string

	// Snippets are the retrieved passages backing the answer.
	Snippets []Snippet
}

// LoadStatus summarises one processed document session.
type LoadStatus struct {
	// SessionID identifies the in-memory session.
	SessionID string

	// Path is the source PDF path.
	Path string

	// TextItems, ImageItems, and TableItems count extracted items.
	TextItems  int
	ImageItems int
	TableItems int

	// Chunks is the number of indexed chunks.
	Chunks int
}
