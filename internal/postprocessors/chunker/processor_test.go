package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		p := New()
		if p.targetWords != DefaultTargetWords {
			t.Errorf("expected targetWords %d, got %d", DefaultTargetWords, p.targetWords)
		}
	})

	t.Run("custom target words", func(t *testing.T) {
		p := New(WithTargetWords(10))
		if p.targetWords != 10 {
			t.Errorf("expected targetWords 10, got %d", p.targetWords)
		}
	})

	t.Run("zero value ignored", func(t *testing.T) {
		p := New(WithTargetWords(0))
		if p.targetWords != DefaultTargetWords {
			t.Errorf("expected default targetWords, got %d", p.targetWords)
		}
	})
}

func TestProcessor_Chunk_EmptyText(t *testing.T) {
	p := New()
	item := domain.ContentItem{Type: domain.ItemText, Page: 1, ID: "text_1_0", Text: "   "}

	chunks := p.Chunk(item)
	if len(chunks) != 0 {
		t.Errorf("expected 0 chunks for blank text, got %d", len(chunks))
	}
}

func TestProcessor_Chunk_ShortText(t *testing.T) {
	p := New()
	item := domain.ContentItem{
		Type: domain.ItemText,
		Page: 3,
		ID:   "text_3_1",
		Text: "a short block well under the word target",
	}

	chunks := p.Chunk(item)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != item.Text {
		t.Errorf("expected chunk text to equal original, got %q", chunks[0].Text)
	}
	if chunks[0].ID != "text_3_1_chunk0" {
		t.Errorf("unexpected chunk ID %q", chunks[0].ID)
	}
	if chunks[0].Page != 3 || chunks[0].Type != domain.ItemText {
		t.Errorf("chunk did not inherit page/type: %+v", chunks[0])
	}
}

func TestProcessor_Chunk_ExactMultiple(t *testing.T) {
	const k = 3
	p := New()

	// k * 240 words, each unique so order is verifiable.
	words := make([]string, k*DefaultTargetWords)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	item := domain.ContentItem{
		Type: domain.ItemText,
		Page: 1,
		ID:   "text_1_0",
		Text: strings.Join(words, " "),
	}

	chunks := p.Chunk(item)
	if len(chunks) != k {
		t.Fatalf("expected %d chunks, got %d", k, len(chunks))
	}

	var rejoined []string
	for i, c := range chunks {
		n := len(strings.Fields(c.Text))
		if n != DefaultTargetWords {
			t.Errorf("chunk %d: expected %d words, got %d", i, DefaultTargetWords, n)
		}
		rejoined = append(rejoined, strings.Fields(c.Text)...)
	}

	// Concatenation of all chunks' words equals the original sequence.
	if strings.Join(rejoined, " ") != item.Text {
		t.Error("chunk words do not reassemble the original word sequence")
	}
}

func TestProcessor_Chunk_PartialFinalChunk(t *testing.T) {
	p := New(WithTargetWords(4))
	item := domain.ContentItem{
		Type: domain.ItemText,
		Page: 1,
		ID:   "text_1_2",
		Text: "one two three four five six",
	}

	chunks := p.Chunk(item)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].Text != "one two three four" {
		t.Errorf("unexpected first chunk: %q", chunks[0].Text)
	}
	if chunks[1].Text != "five six" {
		t.Errorf("unexpected final partial chunk: %q", chunks[1].Text)
	}
}

func TestProcessor_Chunk_Table(t *testing.T) {
	p := New()
	item := domain.ContentItem{
		Type: domain.ItemTable,
		Page: 2,
		ID:   "table_2_0",
		Text: "Name\tQty\nBolts\t40\n",
	}

	chunks := p.Chunk(item)
	if len(chunks) != 1 {
		t.Fatalf("expected exactly 1 chunk per table, got %d", len(chunks))
	}
	if !strings.HasPrefix(chunks[0].Text, TablePrefix) {
		t.Errorf("table chunk missing %q prefix: %q", TablePrefix, chunks[0].Text)
	}
	if chunks[0].ID != "table_2_0_table" {
		t.Errorf("unexpected table chunk ID %q", chunks[0].ID)
	}
}

func TestProcessor_Chunk_ImageWithOCRText(t *testing.T) {
	p := New()
	item := domain.ContentItem{Type: domain.ItemImage, Page: 5, ID: "img_5_0"}
	item.SetOCRText("serial number 1187-C")

	chunks := p.Chunk(item)
	if len(chunks) != 1 {
		t.Fatalf("expected exactly 1 chunk per image, got %d", len(chunks))
	}
	if chunks[0].Text != "serial number 1187-C" {
		t.Errorf("expected OCR text, got %q", chunks[0].Text)
	}
	if chunks[0].ID != "img_5_0_img" {
		t.Errorf("unexpected image chunk ID %q", chunks[0].ID)
	}
}

func TestProcessor_Chunk_ImageWithoutOCRText(t *testing.T) {
	p := New()
	item := domain.ContentItem{Type: domain.ItemImage, Page: 5, ID: "img_5_1"}

	chunks := p.Chunk(item)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	// Chunk text is never empty; the placeholder names the page.
	if chunks[0].Text != "Image on page 5" {
		t.Errorf("unexpected placeholder: %q", chunks[0].Text)
	}
}
