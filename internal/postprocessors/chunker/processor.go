// Package chunker splits content items into embeddable text chunks.
package chunker

import (
	"fmt"
	"strings"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.Chunker = (*Processor)(nil)

// DefaultTargetWords is the default number of words per text chunk.
const DefaultTargetWords = 240

// TablePrefix marks table chunks so the embedder sees tabular content
// distinctly from prose.
const TablePrefix = "TABLE:\n"

// Processor splits content items into chunks according to item type:
// text items into fixed-word-count chunks, table and image items into
// exactly one chunk each.
type Processor struct {
	targetWords int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithTargetWords sets the number of words per text chunk.
func WithTargetWords(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.targetWords = n
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{targetWords: DefaultTargetWords}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Chunk splits one content item into zero or more chunks.
//
// Chunk IDs derive deterministically from the parent item ID plus a
// type-specific suffix, so IDs never collide within one document.
func (p *Processor) Chunk(item domain.ContentItem) []domain.Chunk {
	switch item.Type {
	case domain.ItemText:
		return p.chunkText(item)

	case domain.ItemTable:
		return []domain.Chunk{{
			ID:   item.ID + "_table",
			Text: TablePrefix + item.Text,
			Page: item.Page,
			Type: domain.ItemTable,
		}}

	case domain.ItemImage:
		text := item.OCRText()
		if text == "" {
			// Placeholder keeps the invariant that chunk text is
			// never empty.
			text = fmt.Sprintf("Image on page %d", item.Page)
		}
		return []domain.Chunk{{
			ID:   item.ID + "_img",
			Text: text,
			Page: item.Page,
			Type: domain.ItemImage,
		}}
	}

	return nil
}

// chunkText splits item text into chunks of targetWords words.
// Boundaries fall on whitespace-delimited words, never mid-word; the
// final partial chunk is kept when non-empty.
func (p *Processor) chunkText(item domain.ContentItem) []domain.Chunk {
	words := strings.Fields(item.Text)
	if len(words) == 0 {
		return nil
	}

	var chunks []domain.Chunk
	for start := 0; start < len(words); start += p.targetWords {
		end := start + p.targetWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, domain.Chunk{
			ID:   fmt.Sprintf("%s_chunk%d", item.ID, len(chunks)),
			Text: strings.Join(words[start:end], " "),
			Page: item.Page,
			Type: domain.ItemText,
		})
	}

	return chunks
}
