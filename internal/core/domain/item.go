package domain

import "fmt"

// ItemType classifies the payload of a ContentItem.
type ItemType string

const (
	// ItemText is a layout-detected text block.
	ItemText ItemType = "text"

	// ItemImage is an embedded raster image, stored as PNG bytes.
	ItemImage ItemType = "image"

	// ItemTable is a detected table, serialised as tab-separated text.
	ItemTable ItemType = "table"
)

// MetaOCRText is the metadata key under which recognised image text is
// attached to an image ContentItem.
const MetaOCRText = "ocr_text"

// ContentItem is one atomic unit extracted from a PDF.
// Items are created once per document scan and mutated only to attach
// derived metadata (OCR text for images).
type ContentItem struct {
	// Type is the payload kind: text, image, or table.
	Type ItemType

	// Text holds the payload for text and table items.
	Text string

	// Data holds PNG-encoded bytes for image items.
	Data []byte

	// Page is the 1-based page number of origin.
	Page int

	// ID is unique within the document and encodes type, page, and
	// sequence, e.g. "text_3_2".
	ID string

	// Metadata holds derived values attached after extraction.
	Metadata map[string]string
}

// ItemID builds the canonical identifier for an item.
func ItemID(t ItemType, page, seq int) string {
	prefix := string(t)
	if t == ItemImage {
		prefix = "img"
	}
	return fmt.Sprintf("%s_%d_%d", prefix, page, seq)
}

// OCRText returns the recognised text attached to an image item, or "".
func (it *ContentItem) OCRText() string {
	if it.Metadata == nil {
		return ""
	}
	return it.Metadata[MetaOCRText]
}

// SetOCRText attaches recognised text to an image item.
func (it *ContentItem) SetOCRText(text string) {
	if it.Metadata == nil {
		it.Metadata = make(map[string]string, 1)
	}
	it.Metadata[MetaOCRText] = text
}
