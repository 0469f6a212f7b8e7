// Package domain defines the core business entities for docsift.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ContentItem: One unit extracted from a PDF (text block, image, table)
//   - Chunk: An embeddable unit of text derived from a ContentItem
//   - RetrievalResult: Chunk metadata paired with a similarity score
//   - Answer: The displayable outcome of one question
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
