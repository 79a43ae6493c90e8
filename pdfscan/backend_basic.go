// CLAUDE:SUMMARY Basic text-layer backend built on the ledongthuc/pdf parser.
package pdfscan

import (
	"context"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// basicBackend reads the plain text layer with the ledongthuc parser. It is
// the cheapest backend and the baseline candidate for every page.
type basicBackend struct {
	file   *os.File
	reader *pdf.Reader
}

func openBasicBackend(path string) (TextBackend, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("basic backend open: %w", err)
	}
	return &basicBackend{file: f, reader: r}, nil
}

func (b *basicBackend) Name() string { return "basic" }

func (b *basicBackend) PageText(ctx context.Context, pageNr int) TextResult {
	if err := ctx.Err(); err != nil {
		return TextResult{Err: err}
	}
	if pageNr < 1 || pageNr > b.reader.NumPage() {
		return TextResult{Err: fmt.Errorf("page %d out of range", pageNr)}
	}
	page := b.reader.Page(pageNr)
	if page.V.IsNull() {
		return TextResult{Err: fmt.Errorf("page %d has no content", pageNr)}
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return TextResult{Err: fmt.Errorf("page %d text: %w", pageNr, err)}
	}
	return TextResult{Text: text}
}

func (b *basicBackend) Close() error {
	return b.file.Close()
}
