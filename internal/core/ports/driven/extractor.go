package driven

import (
	"context"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// Extractor decomposes a PDF file into an ordered list of content items.
//
// Extraction is best-effort by contract: a file that cannot be opened
// yields an empty list, and per-page, per-image, or per-table failures
// are recovered locally rather than surfaced to the caller. The
// returned order is all text items, then all image items, then all
// table items, each group ordered by page then sequence.
type Extractor interface {
	Extract(ctx context.Context, path string) []domain.ContentItem
}

// Chunker splits one content item into zero or more chunks.
//
// Text items produce fixed-word-count chunks, table and image items
// produce exactly one chunk each. An empty text item produces none.
type Chunker interface {
	Chunk(item domain.ContentItem) []domain.Chunk
}
