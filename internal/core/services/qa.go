package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
	"github.com/docsift/docsift-cli/internal/logger"
)

// Ensure QAService implements the interface.
var _ driving.QAService = (*QAService)(nil)

// DefaultTopK is the number of chunks retrieved per question.
const DefaultTopK = 5

// IndexFactory builds a fresh vector index for a given dimension.
// A new index is created per loaded document.
type IndexFactory func(dimension int) driven.VectorIndex

// QAService runs the document pipeline: ingest a PDF into an in-memory
// vector index, then answer questions against it. One document is
// loaded at a time; loading replaces the previous session.
type QAService struct {
	extractor  driven.Extractor
	recogniser driven.Recogniser // optional
	chunker    driven.Chunker
	embedder   driven.EmbeddingService
	chunkStore driven.ChunkStore
	newIndex   IndexFactory
	answerer   *Answerer
	topK       int

	mu        sync.RWMutex
	index     driven.VectorIndex
	sessionID string
}

// Option configures the QA service.
type Option func(*QAService)

// WithRecogniser enables OCR for image items.
func WithRecogniser(r driven.Recogniser) Option {
	return func(s *QAService) { s.recogniser = r }
}

// WithTopK overrides the number of chunks retrieved per question.
func WithTopK(k int) Option {
	return func(s *QAService) {
		if k > 0 {
			s.topK = k
		}
	}
}

// NewQAService creates a QA service. The answerer may be nil, in which
// case Ask returns domain.ErrLLMUnavailable.
func NewQAService(
	extractor driven.Extractor,
	chunker driven.Chunker,
	embedder driven.EmbeddingService,
	chunkStore driven.ChunkStore,
	newIndex IndexFactory,
	answerer *Answerer,
	opts ...Option,
) *QAService {
	s := &QAService{
		extractor:  extractor,
		chunker:    chunker,
		embedder:   embedder,
		chunkStore: chunkStore,
		newIndex:   newIndex,
		answerer:   answerer,
		topK:       DefaultTopK,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadDocument ingests a PDF end to end and replaces any previously
// loaded session. A document yielding no chunks is a valid empty
// session, not an error.
func (s *QAService) LoadDocument(ctx context.Context, path string) (domain.LoadStatus, error) {
	logger.Section("Document Ingestion")
	logger.Info("Loading %s", path)

	items := s.extractor.Extract(ctx, path)

	status := domain.LoadStatus{
		SessionID: uuid.NewString(),
		Path:      path,
	}

	for i := range items {
		switch items[i].Type {
		case domain.ItemText:
			status.TextItems++
		case domain.ItemImage:
			status.ImageItems++
			if s.recogniser != nil {
				if text := s.recogniser.Recognise(ctx, items[i].Data); text != "" {
					items[i].SetOCRText(text)
				}
			}
		case domain.ItemTable:
			status.TableItems++
		}
	}
	logger.Debug("Extracted %d text, %d image, %d table items",
		status.TextItems, status.ImageItems, status.TableItems)

	var chunks []domain.Chunk
	for i := range items {
		chunks = append(chunks, s.chunker.Chunk(items[i])...)
	}
	status.Chunks = len(chunks)
	logger.Debug("Chunked into %d chunks", len(chunks))

	if err := s.chunkStore.Reset(ctx); err != nil {
		return domain.LoadStatus{}, fmt.Errorf("reset chunk store: %w", err)
	}

	if len(chunks) == 0 {
		logger.Warn("Document produced no chunks")
		s.replaceSession(nil, status.SessionID)
		return status, nil
	}

	if err := s.chunkStore.SaveChunks(ctx, chunks); err != nil {
		return domain.LoadStatus{}, fmt.Errorf("save chunks: %w", err)
	}

	texts := make([]string, len(chunks))
	metas := make([]domain.ChunkMeta, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
		metas[i] = chunk.Meta()
	}

	logger.Debug("Embedding %d chunks with %s", len(texts), s.embedder.ModelName())
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return domain.LoadStatus{}, fmt.Errorf("embed chunks: %w", err)
	}

	index := s.newIndex(s.embedder.Dimensions())
	if err := index.Add(vectors, metas); err != nil {
		return domain.LoadStatus{}, fmt.Errorf("build index: %w", err)
	}

	s.replaceSession(index, status.SessionID)
	logger.Info("Indexed %d chunks", index.Len())
	return status, nil
}

// Ask answers a question against the loaded document. Generation
// failures are embedded in the answer text; only pipeline failures
// ahead of generation return errors.
func (s *QAService) Ask(ctx context.Context, question string) (domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Answer{}, fmt.Errorf("ask: %w", domain.ErrInvalidInput)
	}
	if s.answerer == nil {
		return domain.Answer{}, domain.ErrLLMUnavailable
	}

	s.mu.RLock()
	index := s.index
	s.mu.RUnlock()
	if index == nil {
		return domain.Answer{}, domain.ErrNoDocument
	}

	logger.Section("Question Answering")
	logger.Debug("Question: %q", question)

	vectors, err := s.embedder.EmbedBatch(ctx, []string{question})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("embed question: %w", err)
	}
	if len(vectors) == 0 {
		return domain.Answer{}, fmt.Errorf("embed question: %w", domain.ErrEmbeddingUnavailable)
	}

	results, err := index.Search(vectors[0], s.topK)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("search index: %w", err)
	}
	logger.Debug("Retrieved %d chunks", len(results))

	contexts := make([]domain.ContextItem, 0, len(results))
	snippets := make([]domain.Snippet, 0, len(results))
	for _, result := range results {
		chunk, ok := s.chunkStore.GetChunk(ctx, result.Meta.ID)
		if !ok {
			logger.Warn("Chunk %s missing from store", result.Meta.ID)
			continue
		}
		contexts = append(contexts, domain.ContextItem{Page: chunk.Page, Text: chunk.Text})
		snippets = append(snippets, domain.Snippet{Page: chunk.Page, Text: chunk.Text, Score: result.Score})
	}

	text := s.answerer.Answer(ctx, question, contexts)
	return domain.Answer{Text: text, Snippets: snippets}, nil
}

// replaceSession swaps in a new index under the write lock.
func (s *QAService) replaceSession(index driven.VectorIndex, sessionID string) {
	s.mu.Lock()
	s.index = index
	s.sessionID = sessionID
	s.mu.Unlock()
}
