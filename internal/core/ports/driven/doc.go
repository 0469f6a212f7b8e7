// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Extractor: Decomposes a PDF into typed content items
//   - Chunker: Splits content items into embeddable chunks
//   - EmbeddingService: Maps chunk text to fixed-dimension vectors
//   - VectorIndex: Stores vectors and runs similarity search
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Recogniser: OCR for image items. Without it, image chunks carry
//     a page placeholder instead of recognised text.
//   - LLMService: Chat completions. Without it, questions cannot be
//     answered (retrieval still works).
package driven
