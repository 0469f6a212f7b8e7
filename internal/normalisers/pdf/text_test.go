package pdf

import (
	"context"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinRuns(t *testing.T) {
	t.Run("inserts spaces at gaps", func(t *testing.T) {
		got := joinRuns([]pdf.Text{
			run("Hello", 10, 25),
			run("world", 40, 25), // 5pt gap
		})
		assert.Equal(t, "Hello world", got)
	})

	t.Run("keeps contiguous runs joined", func(t *testing.T) {
		got := joinRuns([]pdf.Text{
			run("Hel", 10, 15),
			run("lo", 25, 10),
		})
		assert.Equal(t, "Hello", got)
	})

	t.Run("no double space when run already starts with one", func(t *testing.T) {
		got := joinRuns([]pdf.Text{
			run("Hello", 10, 25),
			run(" world", 40, 28),
		})
		assert.Equal(t, "Hello world", got)
	})
}

func TestGroupBlocks(t *testing.T) {
	row := func(y float64, s string) textRow {
		return textRow{y: y, runs: []pdf.Text{run(s, 10, 50)}}
	}

	t.Run("close rows share a block", func(t *testing.T) {
		blocks := groupBlocks([]textRow{row(700, "a"), row(688, "b"), row(676, "c")})
		require.Len(t, blocks, 1)
		assert.Len(t, blocks[0], 3)
	})

	t.Run("large gap starts a new block", func(t *testing.T) {
		blocks := groupBlocks([]textRow{row(700, "a"), row(688, "b"), row(600, "c")})
		require.Len(t, blocks, 2)
		assert.Len(t, blocks[0], 2)
		assert.Len(t, blocks[1], 1)
	})

	t.Run("no rows no blocks", func(t *testing.T) {
		assert.Empty(t, groupBlocks(nil))
	})
}

func TestBlockText(t *testing.T) {
	block := []textRow{
		{y: 700, runs: []pdf.Text{run("first line", 10, 60)}},
		{y: 688, runs: []pdf.Text{run("second line", 10, 65)}},
	}
	assert.Equal(t, "first line\nsecond line", blockText(block))
}

func TestExtract_MissingFile(t *testing.T) {
	e := New()

	// A file that cannot be opened yields an empty list, not an error.
	items := e.Extract(context.Background(), "/nonexistent/file.pdf")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
