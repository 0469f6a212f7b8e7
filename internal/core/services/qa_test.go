package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift-cli/internal/adapters/driven/index/flat"
	"github.com/docsift/docsift-cli/internal/adapters/driven/storage/memory"
	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/postprocessors/chunker"
)

// fakeExtractor returns preset items for any path.
type fakeExtractor struct {
	items []domain.ContentItem
}

func (f *fakeExtractor) Extract(context.Context, string) []domain.ContentItem {
	return f.items
}

// fakeEmbedder maps known texts to fixed unit vectors; unknown texts
// get an orthogonal default so they never win a similarity search.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if vec, ok := f.vectors[text]; ok {
			out[i] = vec
		} else {
			out[i] = []float32{0, 0, 1}
		}
	}
	return out, nil
}

func (f *fakeEmbedder) Dimensions() int { return 3 }

func (f *fakeEmbedder) ModelName() string { return "fake-embedder" }

func (f *fakeEmbedder) Ping(context.Context) error { return nil }

func (f *fakeEmbedder) Close() error { return nil }

// fakeRecogniser returns fixed text for any image.
type fakeRecogniser struct {
	text string
}

func (f *fakeRecogniser) Recognise(context.Context, []byte) string { return f.text }

func newTestService(t *testing.T, ext *fakeExtractor, emb *fakeEmbedder, llm *fakeLLM, opts ...Option) *QAService {
	t.Helper()
	var answerer *Answerer
	if llm != nil {
		answerer = NewAnswerer(llm, "primary-model", "fallback-model", 0.2)
	}
	return NewQAService(
		ext,
		chunker.New(),
		emb,
		memory.NewChunkStore(),
		func(dim int) driven.VectorIndex { return flat.New(dim) },
		answerer,
		opts...,
	)
}

func threePageItems() []domain.ContentItem {
	return []domain.ContentItem{
		{Type: domain.ItemText, Text: "The warranty period is five years.", Page: 1, ID: "text_1_0"},
		{Type: domain.ItemText, Text: "Shipping takes two weeks.", Page: 2, ID: "text_2_0"},
		{Type: domain.ItemText, Text: "Returns are accepted within thirty days.", Page: 3, ID: "text_3_0"},
		{Type: domain.ItemImage, Data: []byte{0x89, 0x50}, Page: 3, ID: "img_3_0"},
		{Type: domain.ItemTable, Text: "item\tprice\nwidget\t10\n", Page: 2, ID: "table_2_0"},
	}
}

func TestLoadDocument_CountsAndChunks(t *testing.T) {
	ext := &fakeExtractor{items: threePageItems()}
	emb := &fakeEmbedder{vectors: map[string][]float32{}}
	svc := newTestService(t, ext, emb, &fakeLLM{}, WithRecogniser(&fakeRecogniser{text: "TOTAL 42"}))

	status, err := svc.LoadDocument(context.Background(), "doc.pdf")
	require.NoError(t, err)

	assert.Equal(t, 3, status.TextItems)
	assert.Equal(t, 1, status.ImageItems)
	assert.Equal(t, 1, status.TableItems)
	assert.Equal(t, 5, status.Chunks)
	assert.NotEmpty(t, status.SessionID)
	assert.Equal(t, "doc.pdf", status.Path)
}

func TestLoadDocument_EmptyDocumentIsValid(t *testing.T) {
	ext := &fakeExtractor{}
	emb := &fakeEmbedder{}
	svc := newTestService(t, ext, emb, &fakeLLM{})

	status, err := svc.LoadDocument(context.Background(), "empty.pdf")
	require.NoError(t, err)
	assert.Zero(t, status.Chunks)

	// An empty session still rejects questions.
	_, err = svc.Ask(context.Background(), "anything?")
	assert.ErrorIs(t, err, domain.ErrNoDocument)
}

func TestLoadDocument_EmbedFailure(t *testing.T) {
	ext := &fakeExtractor{items: threePageItems()}
	emb := &fakeEmbedder{err: errors.New("upstream down")}
	svc := newTestService(t, ext, emb, &fakeLLM{})

	_, err := svc.LoadDocument(context.Background(), "doc.pdf")
	assert.Error(t, err)
}

func TestAsk_RetrievesMatchingPage(t *testing.T) {
	items := threePageItems()

	// The question vector aligns exactly with the page-1 chunk.
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"The warranty period is five years.": {1, 0, 0},
		"How long is the warranty?":          {1, 0, 0},
		"Shipping takes two weeks.":          {0, 1, 0},
	}}
	llm := &fakeLLM{responses: map[string]string{
		"primary-model": "Five years (Page 1).",
	}}
	svc := newTestService(t, &fakeExtractor{items: items}, emb, llm,
		WithRecogniser(&fakeRecogniser{text: "TOTAL 42"}))

	_, err := svc.LoadDocument(context.Background(), "doc.pdf")
	require.NoError(t, err)

	answer, err := svc.Ask(context.Background(), "How long is the warranty?")
	require.NoError(t, err)

	assert.Contains(t, answer.Text, "Page 1")
	require.NotEmpty(t, answer.Snippets)
	assert.Equal(t, 1, answer.Snippets[0].Page)
	assert.LessOrEqual(t, len(answer.Snippets), DefaultTopK)

	// The top retrieved chunk must have reached the prompt.
	require.NotEmpty(t, llm.prompts)
	assert.Contains(t, llm.prompts[0], "[Page 1] The warranty period is five years.")
}

func TestAsk_NoDocumentLoaded(t *testing.T) {
	svc := newTestService(t, &fakeExtractor{}, &fakeEmbedder{}, &fakeLLM{})

	_, err := svc.Ask(context.Background(), "anything?")
	assert.ErrorIs(t, err, domain.ErrNoDocument)
}

func TestAsk_EmptyQuestion(t *testing.T) {
	svc := newTestService(t, &fakeExtractor{}, &fakeEmbedder{}, &fakeLLM{})

	_, err := svc.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAsk_NoAnswerer(t *testing.T) {
	svc := newTestService(t, &fakeExtractor{}, &fakeEmbedder{}, nil)

	_, err := svc.Ask(context.Background(), "anything?")
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestLoadDocument_ReplacesPreviousSession(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{}}
	svc := newTestService(t, &fakeExtractor{items: threePageItems()}, emb, &fakeLLM{})

	first, err := svc.LoadDocument(context.Background(), "a.pdf")
	require.NoError(t, err)

	second, err := svc.LoadDocument(context.Background(), "b.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Equal(t, first.Chunks, second.Chunks)
}
