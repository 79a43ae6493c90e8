// CLAUDE:SUMMARY Text-backend registry and the preferred-backend selection rule.
package pdfscan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// TextResult is the tagged outcome of one backend on one page. Backends
// never panic out of PageText; failures surface here.
type TextResult struct {
	Text string
	Err  error
}

// TextBackend is one independent text-extraction method over the source
// document. Implementations hold their own reader for the file and are used
// sequentially, page by page.
type TextBackend interface {
	Name() string
	PageText(ctx context.Context, pageNr int) TextResult
	Close() error
}

// preferredBackend is the layout-aware parser: it over-segments cleanly but
// sometimes drops marginal text, so selection lets it win only when no other
// backend found meaningfully more content.
const preferredBackend = "layout"

// openBackends opens every backend the capabilities allow. A backend that
// fails to open is logged and omitted; page extraction continues with the
// rest.
func openBackends(path string, caps Capabilities, logger *slog.Logger) []TextBackend {
	var backends []TextBackend

	type opener struct {
		enabled bool
		name    string
		open    func(string) (TextBackend, error)
	}
	openers := []opener{
		{caps.Layout, "layout", func(p string) (TextBackend, error) { return openLayoutBackend(p, logger) }},
		{caps.Basic, "basic", openBasicBackend},
		{caps.Render, "render", openRenderBackend},
	}

	for _, o := range openers {
		if !o.enabled {
			continue
		}
		b, err := o.open(path)
		if err != nil {
			logger.Warn("text backend unavailable", "backend", o.name, "error", err)
			continue
		}
		backends = append(backends, b)
	}
	return backends
}

// candidate is one backend's successful output for a page.
type candidate struct {
	backend string
	text    string
	words   int
}

// collectCandidates runs every backend on the page inside an isolation
// boundary with a hard per-backend timeout. A failing or slow backend is
// skipped (logged at debug), never retried, and never fails the page.
func collectCandidates(ctx context.Context, backends []TextBackend, pageNr int, timeout time.Duration, logger *slog.Logger) []candidate {
	var cands []candidate
	for _, b := range backends {
		res := runWithTimeout(ctx, b, pageNr, timeout)
		if res.Err != nil {
			logger.Debug("backend extraction failed", "backend", b.Name(), "page", pageNr, "error", res.Err)
			continue
		}
		if strings.TrimSpace(res.Text) == "" {
			continue
		}
		cands = append(cands, candidate{
			backend: b.Name(),
			text:    res.Text,
			words:   len(strings.Fields(res.Text)),
		})
	}
	return cands
}

// runWithTimeout enforces the per-backend deadline and converts panics into
// errors. On timeout the backend goroutine is abandoned; its result, if it
// ever arrives, is dropped.
func runWithTimeout(ctx context.Context, b TextBackend, pageNr int, timeout time.Duration) TextResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan TextResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- TextResult{Err: fmt.Errorf("backend %s panicked: %v", b.Name(), r)}
			}
		}()
		done <- b.PageText(ctx, pageNr)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		return TextResult{Err: fmt.Errorf("backend %s: %w", b.Name(), ctx.Err())}
	}
}

// selectText applies the reconciliation rule:
//
//  1. no candidates → ("", "none"); the caller may still try OCR
//  2. the preferred backend wins when its word count is at least
//     ratio × the maximum word count among candidates
//  3. otherwise the strictly highest word count wins
func selectText(cands []candidate, ratio float64) (text, method string) {
	if len(cands) == 0 {
		return "", "none"
	}

	maxWords := 0
	for _, c := range cands {
		if c.words > maxWords {
			maxWords = c.words
		}
	}

	for _, c := range cands {
		if c.backend == preferredBackend && float64(c.words) >= ratio*float64(maxWords) {
			return c.text, c.backend
		}
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.words > best.words {
			best = c
		}
	}
	return best.text, best.backend
}
