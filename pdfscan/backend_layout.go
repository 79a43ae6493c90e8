// CLAUDE:SUMMARY Layout-aware text backend built on tsawler/tabula — the preferred backend.
package pdfscan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tsawler/tabula"
)

// layoutBackend extracts text with tabula's layout analysis. It reconstructs
// reading order and paragraph breaks from fragment geometry, which makes its
// output the preferred candidate even when shorter.
type layoutBackend struct {
	ext    *tabula.Extractor
	logger *slog.Logger
}

func openLayoutBackend(path string, logger *slog.Logger) (TextBackend, error) {
	ext := tabula.Open(path)
	// Surface open errors now rather than on the first page.
	if _, err := ext.PageCount(); err != nil {
		ext.Close()
		return nil, fmt.Errorf("layout backend open: %w", err)
	}
	return &layoutBackend{ext: ext, logger: logger}, nil
}

func (b *layoutBackend) Name() string { return "layout" }

func (b *layoutBackend) PageText(ctx context.Context, pageNr int) TextResult {
	if err := ctx.Err(); err != nil {
		return TextResult{Err: err}
	}
	text, warns, err := b.ext.Pages(pageNr).Text()
	if err != nil {
		return TextResult{Err: fmt.Errorf("page %d layout text: %w", pageNr, err)}
	}
	for _, w := range warns {
		b.logger.Debug("layout extraction warning", "page", pageNr, "warning", w)
	}
	return TextResult{Text: text}
}

func (b *layoutBackend) Close() error {
	return b.ext.Close()
}
