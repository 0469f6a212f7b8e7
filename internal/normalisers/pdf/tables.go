package pdf

import (
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/logger"
)

const (
	// cellGap is the horizontal distance between glyph runs that
	// separates two table cells.
	cellGap = 12.0

	// minTableRows is the minimum number of aligned rows that count
	// as a table (one header plus at least one data row).
	minTableRows = 2

	// minTableCols is the minimum number of cells per row for the row
	// to be considered tabular.
	minTableCols = 2
)

// extractTables runs a second layout pass over the document looking
// for column-aligned row groups. Failures are isolated per page: a
// page that cannot be parsed contributes zero tables, and a failure
// opening the document degrades to zero table items for the whole
// document rather than an extraction error.
func extractTables(path string) []domain.ContentItem {
	f, r, err := pdf.Open(path)
	if err != nil {
		logger.Warn("Table pass cannot open PDF: %v", err)
		return nil
	}
	defer f.Close()

	var items []domain.ContentItem
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		rows := pageRows(r, pageNum)
		for seq, grid := range detectTables(rows) {
			tsv := tableToTSV(grid)
			if tsv == "" {
				continue
			}
			items = append(items, domain.ContentItem{
				Type: domain.ItemTable,
				Text: tsv,
				Page: pageNum,
				ID:   domain.ItemID(domain.ItemTable, pageNum, seq),
			})
		}
	}
	return items
}

// rowCells splits a row's glyph runs into cells wherever the
// horizontal gap between runs exceeds cellGap.
func rowCells(runs []pdf.Text) []string {
	var cells []string
	var b strings.Builder
	lastEnd := -1.0

	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			cells = append(cells, s)
		}
		b.Reset()
	}

	for _, run := range runs {
		if lastEnd >= 0 && run.X-lastEnd > cellGap {
			flush()
		} else if lastEnd >= 0 && run.X-lastEnd > wordGap && !strings.HasPrefix(run.S, " ") {
			b.WriteByte(' ')
		}
		b.WriteString(run.S)
		lastEnd = run.X + run.W
	}
	flush()
	return cells
}

// detectTables groups consecutive multi-cell rows into table grids.
// A grid needs at least minTableRows rows of at least minTableCols
// cells each.
func detectTables(rows []textRow) [][][]string {
	var tables [][][]string
	var current [][]string

	flush := func() {
		if len(current) >= minTableRows {
			tables = append(tables, current)
		}
		current = nil
	}

	for _, row := range rows {
		cells := rowCells(row.runs)
		if len(cells) >= minTableCols {
			current = append(current, cells)
		} else {
			flush()
		}
	}
	flush()
	return tables
}

// tableToTSV serialises a grid to tab-separated text. Rows are padded
// to a uniform width, fully-empty columns are removed, and the first
// row becomes the header line (it is dropped from the data body).
func tableToTSV(grid [][]string) string {
	if len(grid) < minTableRows {
		return ""
	}

	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return ""
	}

	// Pad ragged rows so column operations are uniform.
	padded := make([][]string, len(grid))
	for i, row := range grid {
		padded[i] = make([]string, width)
		copy(padded[i], row)
	}

	padded = dropEmptyColumns(padded)
	if len(padded) == 0 || len(padded[0]) == 0 {
		return ""
	}

	var b strings.Builder
	for _, row := range padded {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// dropEmptyColumns removes columns whose cells are all empty.
func dropEmptyColumns(grid [][]string) [][]string {
	if len(grid) == 0 {
		return grid
	}

	width := len(grid[0])
	keep := make([]bool, width)
	for _, row := range grid {
		for c, cell := range row {
			if strings.TrimSpace(cell) != "" {
				keep[c] = true
			}
		}
	}

	out := make([][]string, len(grid))
	for i, row := range grid {
		for c, cell := range row {
			if keep[c] {
				out[i] = append(out[i], cell)
			}
		}
	}
	return out
}
