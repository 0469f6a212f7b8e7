package pdf

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/logger"
)

const (
	// blockGap is the vertical distance (in points) between rows that
	// starts a new text block.
	blockGap = 15.0

	// wordGap is the horizontal distance between glyph runs that
	// implies a missing space.
	wordGap = 2.0
)

// textRow is one horizontal line of positioned glyph runs.
type textRow struct {
	y    float64
	runs []pdf.Text
}

// extractTextBlocks reads layout rows page by page and groups them
// into paragraph-level blocks. Page failures are isolated: a page
// that cannot be parsed contributes zero items.
func extractTextBlocks(path string) []domain.ContentItem {
	f, r, err := pdf.Open(path)
	if err != nil {
		logger.Warn("Cannot open PDF: %v", err)
		return []domain.ContentItem{}
	}
	defer f.Close()

	var items []domain.ContentItem
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		rows := pageRows(r, pageNum)
		for seq, block := range groupBlocks(rows) {
			text := blockText(block)
			if strings.TrimSpace(text) == "" {
				continue
			}
			items = append(items, domain.ContentItem{
				Type: domain.ItemText,
				Text: text,
				Page: pageNum,
				ID:   domain.ItemID(domain.ItemText, pageNum, seq),
			})
		}
	}
	return items
}

// pageRows returns the positioned rows of one page, top to bottom.
// The underlying parser panics on some malformed content streams, so
// the recover here is part of the per-page isolation contract.
func pageRows(r *pdf.Reader, pageNum int) (rows []textRow) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Warn("Page %d text extraction failed: %v", pageNum, rec)
			rows = nil
		}
	}()

	p := r.Page(pageNum)
	if p.V.IsNull() {
		return nil
	}

	raw, err := p.GetTextByRow()
	if err != nil {
		logger.Warn("Page %d text rows: %v", pageNum, err)
		return nil
	}

	for _, row := range raw {
		if row == nil || len(row.Content) == 0 {
			continue
		}
		runs := make([]pdf.Text, len(row.Content))
		copy(runs, row.Content)
		sort.SliceStable(runs, func(i, j int) bool { return runs[i].X < runs[j].X })
		rows = append(rows, textRow{y: float64(row.Position), runs: runs})
	}

	// Top of page first. PDF y grows upward.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	return rows
}

// groupBlocks splits rows into blocks wherever the vertical gap
// between consecutive rows exceeds blockGap.
func groupBlocks(rows []textRow) [][]textRow {
	var blocks [][]textRow
	var current []textRow

	for i, row := range rows {
		if i > 0 && rows[i-1].y-row.y > blockGap {
			if len(current) > 0 {
				blocks = append(blocks, current)
			}
			current = nil
		}
		current = append(current, row)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// blockText joins the rows of a block into a single string, one line
// per row.
func blockText(block []textRow) string {
	lines := make([]string, 0, len(block))
	for _, row := range block {
		lines = append(lines, joinRuns(row.runs))
	}
	return strings.Join(lines, "\n")
}

// joinRuns concatenates glyph runs left to right, inserting a space
// when the horizontal gap between runs implies one.
func joinRuns(runs []pdf.Text) string {
	var b strings.Builder
	lastEnd := -1.0
	for _, run := range runs {
		if lastEnd >= 0 && run.X-lastEnd > wordGap && !strings.HasPrefix(run.S, " ") {
			b.WriteByte(' ')
		}
		b.WriteString(run.S)
		lastEnd = run.X + run.W
	}
	return strings.TrimRight(b.String(), " ")
}
