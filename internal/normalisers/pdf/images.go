package pdf

import (
	"bytes"
	"context"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"sort"

	_ "image/gif"
	_ "image/jpeg"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/logger"
)

// extractImages pulls embedded raster images out of the document and
// re-encodes each as PNG. Images that cannot be decoded, or that have
// zero width or height, are skipped; a failure of the whole pass
// degrades to zero image items.
func extractImages(ctx context.Context, path string) []domain.ContentItem {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("Image pass cannot open PDF: %v", err)
		return nil
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pages, err := pdfapi.ExtractImagesRaw(f, nil, conf)
	if err != nil {
		logger.Warn("Image extraction failed: %v", err)
		return nil
	}

	var items []domain.ContentItem
	seqByPage := map[int]int{}

	for _, pageImages := range pages {
		if ctx.Err() != nil {
			return items
		}

		// Map iteration order is random; sort by object number so
		// item IDs are stable across runs.
		objNrs := make([]int, 0, len(pageImages))
		for objNr := range pageImages {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := pageImages[objNr]
			pngBytes, ok := reencodePNG(img)
			if !ok {
				continue
			}

			seq := seqByPage[img.PageNr]
			seqByPage[img.PageNr] = seq + 1

			items = append(items, domain.ContentItem{
				Type: domain.ItemImage,
				Data: pngBytes,
				Page: img.PageNr,
				ID:   domain.ItemID(domain.ItemImage, img.PageNr, seq),
			})
		}
	}

	// The page maps arrive keyed by object number, not document
	// order; keep the final list ordered by page then sequence.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Page != items[j].Page {
			return items[i].Page < items[j].Page
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// reencodePNG decodes one extracted image and re-encodes it as PNG,
// converting CMYK to RGB first. Returns ok=false for undecodable or
// degenerate (zero-sized) images.
func reencodePNG(img model.Image) ([]byte, bool) {
	raw, err := io.ReadAll(img)
	if err != nil {
		logger.Warn("Image %s on page %d: read failed: %v", img.Name, img.PageNr, err)
		return nil, false
	}

	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		logger.Warn("Image %s on page %d: undecodable, skipped", img.Name, img.PageNr)
		return nil, false
	}

	bounds := decoded.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, false
	}

	if _, isCMYK := decoded.(*image.CMYK); isCMYK {
		rgba := image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, decoded, bounds.Min, draw.Src)
		decoded = rgba
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, decoded); err != nil {
		logger.Warn("Image %s on page %d: PNG encode failed: %v", img.Name, img.PageNr, err)
		return nil, false
	}
	return buf.Bytes(), true
}
