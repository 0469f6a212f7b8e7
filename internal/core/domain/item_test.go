package domain

import "testing"

func TestItemID(t *testing.T) {
	tests := []struct {
		name string
		typ  ItemType
		page int
		seq  int
		want string
	}{
		{"text block", ItemText, 3, 2, "text_3_2"},
		{"image uses img prefix", ItemImage, 1, 0, "img_1_0"},
		{"table", ItemTable, 7, 4, "table_7_4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ItemID(tt.typ, tt.page, tt.seq); got != tt.want {
				t.Errorf("ItemID(%s, %d, %d) = %q, want %q", tt.typ, tt.page, tt.seq, got, tt.want)
			}
		})
	}
}

func TestContentItem_OCRText(t *testing.T) {
	item := ContentItem{Type: ItemImage, Page: 2, ID: "img_2_0"}

	if got := item.OCRText(); got != "" {
		t.Errorf("expected empty OCR text before attach, got %q", got)
	}

	item.SetOCRText("hello from page 2")
	if got := item.OCRText(); got != "hello from page 2" {
		t.Errorf("unexpected OCR text: %q", got)
	}

	// Overwriting replaces the previous value.
	item.SetOCRText("")
	if got := item.OCRText(); got != "" {
		t.Errorf("expected empty OCR text after overwrite, got %q", got)
	}
}

func TestChunk_Meta(t *testing.T) {
	c := Chunk{ID: "text_1_0_chunk0", Text: "body", Page: 1, Type: ItemText}
	meta := c.Meta()

	if meta.ID != c.ID || meta.Page != c.Page || meta.Type != c.Type {
		t.Errorf("meta does not mirror chunk: %+v", meta)
	}
}
