// Package memory provides in-memory storage adapters.
// All state lives for one document session and is never persisted.
package memory

import (
	"context"
	"sync"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
)

// Ensure ChunkStore implements the interface.
var _ driven.ChunkStore = (*ChunkStore)(nil)

// ChunkStore is an in-memory implementation of driven.ChunkStore.
type ChunkStore struct {
	mu     sync.RWMutex
	chunks map[string]domain.Chunk
}

// NewChunkStore creates a new in-memory chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{chunks: make(map[string]domain.Chunk)}
}

// SaveChunks stores chunks keyed by chunk ID.
func (s *ChunkStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range chunks {
		s.chunks[c.ID] = c
	}
	return nil
}

// GetChunk retrieves a chunk by ID.
func (s *ChunkStore) GetChunk(_ context.Context, id string) (*domain.Chunk, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chunks[id]
	if !ok {
		return nil, false
	}
	return &c, true
}

// Count returns the number of stored chunks.
func (s *ChunkStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Reset discards all stored chunks.
func (s *ChunkStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = make(map[string]domain.Chunk)
	return nil
}
