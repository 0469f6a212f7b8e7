package domain

// Chunk is one unit of text derived from a ContentItem, sized for
// embedding. Chunk text is never empty: image chunks fall back to a
// placeholder when OCR yields nothing.
type Chunk struct {
	// ID is derived from the parent item ID plus a suffix
	// disambiguating sub-chunks, e.g. "text_1_0_chunk2".
	ID string

	// Text is the literal content fed to the embedder.
	Text string

	// Page is inherited from the parent item.
	Page int

	// Type is inherited from the parent item.
	Type ItemType
}

// ChunkMeta is the slice of chunk state stored alongside each vector
// in the index. The vector at position i corresponds to the metadata
// at position i.
type ChunkMeta struct {
	ID   string
	Page int
	Type ItemType
}

// Meta returns the index metadata for a chunk.
func (c Chunk) Meta() ChunkMeta {
	return ChunkMeta{ID: c.ID, Page: c.Page, Type: c.Type}
}
