// Package pdf decomposes PDF files into typed content items.
//
// Two engines are used deliberately: text blocks and table layout come
// from positioned glyph runs (ledongthuc/pdf), embedded raster images
// come from pdfcpu. Table detection needs different heuristics from
// plain text extraction, so the passes are independent and their
// failures are isolated from each other.
package pdf

import (
	"context"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor produces content items from a PDF file path.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract decomposes the PDF at path into an ordered item list.
//
// The contract is best-effort: an unopenable file yields an empty
// list, and page, image, or table failures degrade to fewer items,
// never to an error. The output order is fixed as all text items,
// then all image items, then all table items; items are not
// interleaved by page. This matches the downstream assumption that
// prose, figures, and tables are retrieved as separate modalities.
func (e *Extractor) Extract(ctx context.Context, path string) []domain.ContentItem {
	logger.Section("PDF Extraction")
	logger.Debug("Path: %s", path)

	items := []domain.ContentItem{}

	textItems := extractTextBlocks(path)
	logger.Info("Text blocks: %d", len(textItems))
	items = append(items, textItems...)

	imageItems := extractImages(ctx, path)
	logger.Info("Images: %d", len(imageItems))
	items = append(items, imageItems...)

	tableItems := extractTables(path)
	logger.Info("Tables: %d", len(tableItems))
	items = append(items, tableItems...)

	return items
}
