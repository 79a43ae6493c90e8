// CLAUDE:SUMMARY Renderer text backend built on go-fitz (MuPDF); also rasterizes pages for OCR.
package pdfscan

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// renderBackend extracts text through MuPDF. It resolves encodings the
// lighter parsers miss and doubles as the rasterizer for the OCR fallback.
type renderBackend struct {
	doc *fitz.Document
}

func openRenderBackend(path string) (TextBackend, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("render backend open: %w", err)
	}
	return &renderBackend{doc: doc}, nil
}

func (b *renderBackend) Name() string { return "render" }

func (b *renderBackend) PageText(ctx context.Context, pageNr int) TextResult {
	if err := ctx.Err(); err != nil {
		return TextResult{Err: err}
	}
	// go-fitz pages are 0-indexed.
	text, err := b.doc.Text(pageNr - 1)
	if err != nil {
		return TextResult{Err: fmt.Errorf("page %d render text: %w", pageNr, err)}
	}
	return TextResult{Text: text}
}

// renderImage rasterizes a page at the given DPI for OCR. 72 DPI is the PDF
// native scale, so 144+ gives the ≥2× linear upsample recognition needs.
func (b *renderBackend) renderImage(pageNr int, dpi float64) (image.Image, error) {
	img, err := b.doc.ImageDPI(pageNr-1, dpi)
	if err != nil {
		return nil, fmt.Errorf("page %d raster: %w", pageNr, err)
	}
	return img, nil
}

func (b *renderBackend) Close() error {
	return b.doc.Close()
}
