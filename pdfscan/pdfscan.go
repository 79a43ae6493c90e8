// CLAUDE:SUMMARY Extraction engine — per-page backend reconciliation, OCR fallback, fact mining, aggregation.
package pdfscan

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Extractor runs the full extraction pipeline over one PDF at a time.
// It is safe to reuse across documents but not across goroutines; pages
// within a document are processed sequentially in document order.
type Extractor struct {
	cfg    Config
	caps   Capabilities
	miners *Miners
}

// New builds an Extractor. Capabilities are probed once here unless the
// config injects its own set.
func New(cfg Config) *Extractor {
	cfg.defaults()

	var caps Capabilities
	if cfg.Capabilities != nil {
		caps = *cfg.Capabilities
	} else {
		caps = DetectCapabilities(cfg.Logger)
	}

	// The year bound is fixed at construction: a run that straddles midnight
	// on new year's eve still mines identical results on every page.
	maxYear := time.Now().Year() + 10

	return &Extractor{
		cfg:    cfg,
		caps:   caps,
		miners: NewMiners(cfg.ContextChars, maxYear, cfg.Logger),
	}
}

// Capabilities returns the backend set this extractor runs with.
func (e *Extractor) Capabilities() Capabilities { return e.caps }

// ExtractAll processes every page of the PDF at path and returns the
// aggregated document. The only fatal failure is an unreadable document;
// any single-page failure downgrades that page to a placeholder record.
func (e *Extractor) ExtractAll(ctx context.Context, path string) (*Document, error) {
	started := time.Now()
	logger := e.cfg.Logger

	doc, err := openDocument(path, e.cfg.MaxFileSize)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	backends := openBackends(path, e.caps, logger)
	defer func() {
		for _, b := range backends {
			if cerr := b.Close(); cerr != nil {
				logger.Debug("backend close failed", "backend", b.Name(), "error", cerr)
			}
		}
	}()

	// The renderer doubles as the OCR rasterizer.
	var render *renderBackend
	for _, b := range backends {
		if rb, ok := b.(*renderBackend); ok {
			render = rb
		}
	}

	logger.Info("extraction started",
		"source", path,
		"pages", doc.pageCount,
		"backends", len(backends),
		"ocr", e.caps.OCR)

	pages := make([]PageRecord, 0, doc.pageCount)
	for pageNr := 1; pageNr <= doc.pageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("extraction aborted at page %d: %w", pageNr, err)
		}
		pages = append(pages, e.processPage(ctx, doc, backends, render, pageNr))
	}

	meta := Metadata{
		SourceFile:      path,
		TotalPages:      doc.pageCount,
		ExtractionDate:  started.Format(time.RFC3339),
		FileHash:        doc.fileHash,
		FileSize:        doc.fileSize,
		HasImageStreams: doc.hasImageStreams(),
		Backends:        e.caps,
	}
	result := aggregate(meta, pages, time.Now())

	logger.Info("extraction finished",
		"source", path,
		"pages", len(pages),
		"chapters", len(result.Chapters),
		"overall_score", result.QualityMetrics.OverallScore,
		"elapsed", time.Since(started))
	return result, nil
}

// needsOCR reports whether the selected text layer is weak enough to spend
// an OCR pass on: no backend produced anything, or the word count falls
// under the threshold.
func needsOCR(method, selected string, threshold int) bool {
	return method == "none" || len(strings.Fields(selected)) < threshold
}

// mergeOCR reconciles the selected text layer with an OCR result. OCR wins
// only when it is a strict improvement: any non-blank output when the layer
// was empty, strictly more words otherwise. A weaker OCR result never
// degrades the selection.
func mergeOCR(selected, method, ocrText string) (string, string) {
	if method == "none" {
		if strings.TrimSpace(ocrText) != "" {
			return ocrText, "ocr"
		}
		return selected, method
	}
	if len(strings.Fields(ocrText)) > len(strings.Fields(selected)) {
		return ocrText, "ocr"
	}
	return selected, method
}

// processPage runs the whole per-page pipeline inside an isolation boundary.
// Whatever goes wrong, the page slot is filled: a panic downgrades the page
// to a placeholder carrying whatever raw text was selected before the fault.
func (e *Extractor) processPage(ctx context.Context, doc *docHandle, backends []TextBackend, render *renderBackend, pageNr int) (rec PageRecord) {
	logger := e.cfg.Logger
	rawText := ""

	defer func() {
		if r := recover(); r != nil {
			logger.Error("page processing failed", "page", pageNr, "panic", r)
			rec = placeholderRecord(pageNr, rawText)
		}
	}()

	cands := collectCandidates(ctx, backends, pageNr, e.cfg.BackendTimeout, logger)
	rawText, method := selectText(cands, e.cfg.PreferredRatio)

	// OCR fallback. Two triggers: nothing extracted at all, or the selected
	// layer is thin enough to suggest a scanned page. OCR output only ever
	// replaces the selection when it is a strict improvement.
	if e.caps.OCR && render != nil && needsOCR(method, rawText, e.cfg.OCRWordThreshold) {
		ocrText := ocrPage(ctx, render, pageNr, logger)
		if merged, mergedMethod := mergeOCR(rawText, method, ocrText); mergedMethod != method {
			logger.Debug("ocr replaced text layer",
				"page", pageNr,
				"layer_words", len(strings.Fields(rawText)),
				"ocr_words", len(strings.Fields(merged)))
			rawText, method = merged, mergedMethod
		}
	}

	text := cleanText(rawText)
	paragraphs := splitParagraphs(text)

	// Table detection wants the raw text: cleaning collapses exactly the
	// whitespace alignment the stream detector keys on.
	tables := extractTables(rawText, pageNr, logger)

	figures := e.miners.Figures(text, pageNr)
	monetary := e.miners.Monetary(text, pageNr)
	percentages := e.miners.Percentages(text, pageNr)
	years := e.miners.Years(text, pageNr)
	articles := e.miners.Articles(text, pageNr)
	legal := e.miners.Legal(text, pageNr)
	institutions := e.miners.Institutions(text, pageNr)
	citations := e.miners.Citations(text, pageNr)
	scandals := e.miners.Scandals(text, pageNr)
	keywords := e.miners.Keywords(text, pageNr)

	wordCount := len(strings.Fields(text))
	stats := PageStats{
		WordCount:      wordCount,
		ParagraphCount: len(paragraphs),
		SentenceCount:  len(sentenceRe.FindAllString(text, -1)),
		MonetaryCount:  len(monetary),
		ArticleCount:   len(articles),
		TableCount:     len(tables),
		FigureCount:    len(figures),
	}

	quality := ExtractionQuality{
		TextLength:   len(text),
		WordCount:    wordCount,
		HasTables:    len(tables) > 0,
		HasFigures:   len(figures) > 0,
		HasImages:    doc.pageHasImages(pageNr),
		QualityScore: scorePage(wordCount, len(paragraphs), len(tables), len(figures)),
		MethodUsed:   method,
	}

	return PageRecord{
		PageNumber:    pageNr,
		Text:          text,
		Paragraphs:    paragraphs,
		Figures:       figures,
		Tables:        tables,
		Monetary:      monetary,
		Percentages:   percentages,
		Years:         years,
		Articles:      articles,
		Legal:         legal,
		Institutional: institutions,
		Citations:     citations,
		Scandals:      scandals,
		Keywords:      keywords,
		Stats:         stats,
		Quality:       quality,
	}
}
