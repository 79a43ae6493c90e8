// CLAUDE:SUMMARY Document-level aggregation — chapters, flattened facts, statistics, quality metrics.
package pdfscan

import (
	"strings"
	"time"
)

// Metadata describes one extraction run.
type Metadata struct {
	SourceFile     string       `json:"source_file"`
	TotalPages     int          `json:"total_pages"`
	ExtractionDate string       `json:"extraction_date"`
	FileHash       string       `json:"file_hash"`
	FileSize       int64        `json:"file_size"`
	// HasImageStreams flags documents carrying image objects anywhere;
	// weak text plus image streams usually means a scanned source.
	HasImageStreams bool         `json:"has_image_streams"`
	Backends        Capabilities `json:"backends"`
}

// Chapter is a detected top-level division of the report. Chapters are
// ordered and non-overlapping by construction: opening a chapter closes the
// previous one at the prior page.
type Chapter struct {
	Number    string `json:"number"`
	Title     string `json:"title"`
	StartPage int    `json:"start_page"`
	EndPage   int    `json:"end_page"`
}

// PageSummary is the per-page entry of document_structure.json.
type PageSummary struct {
	WordCount      int  `json:"word_count"`
	ParagraphCount int  `json:"paragraph_count"`
	HasFigures     bool `json:"has_figures"`
	HasTables      bool `json:"has_tables"`
	MonetaryCount  int  `json:"monetary_count"`
	ArticleCount   int  `json:"article_count"`
}

// YearRef is a document-level year entry with page provenance.
type YearRef struct {
	Year int `json:"year"`
	Page int `json:"page"`
}

// Ref is a document-level reference entry with page provenance.
type Ref struct {
	Value string `json:"value"`
	Page  int    `json:"page"`
}

// Numerics are the flattened numeric facts across all pages.
type Numerics struct {
	MonetaryValues []MonetaryValue `json:"monetary_values"`
	Percentages    []Percentage    `json:"percentages"`
	Years          []YearRef       `json:"years"`
}

// References are the flattened reference facts across all pages.
type References struct {
	Legal          []Ref            `json:"legal"`
	Institutional  []Ref            `json:"institutional"`
	Citations      []Ref            `json:"citations"`
	Constitutional []Ref            `json:"constitutional"`
	Scandals       []ScandalMention `json:"scandals"`
}

// Statistics are single-pass sums and counts over all page records.
type Statistics struct {
	TotalPages          int     `json:"total_pages"`
	TotalWords          int     `json:"total_words"`
	TotalParagraphs     int     `json:"total_paragraphs"`
	TotalMonetarySum    float64 `json:"total_monetary_values"`
	TotalScandals       int     `json:"total_scandals"`
	TotalArticles       int     `json:"total_constitutional_articles"`
	ChaptersCount       int     `json:"chapters_count"`
	FiguresCount        int     `json:"figures_count"`
	TablesCount         int     `json:"tables_count"`
	ExtractionTimestamp string  `json:"extraction_timestamp"`
}

// QualityMetrics summarize extraction quality for the whole run.
type QualityMetrics struct {
	OverallScore        float64 `json:"overall_score"` // mean of page scores
	AverageWordsPerPage float64 `json:"average_words_per_page"`
	PagesWithTables     int     `json:"pages_with_tables"`
	PagesWithFigures    int     `json:"pages_with_figures"`
	TableCoverage       float64 `json:"table_coverage"`
	FigureCoverage      float64 `json:"figure_coverage"`
}

// Document owns all PageRecords of one extraction run plus every
// document-level rollup. It is created once per run and discarded after
// serialization; nothing mutates it afterwards.
type Document struct {
	Metadata       Metadata       `json:"metadata"`
	Pages          []PageRecord   `json:"-"`
	PageSummaries  map[int]PageSummary `json:"pages"`
	Chapters       []Chapter      `json:"chapters"`
	Numerics       Numerics       `json:"numerics"`
	References     References     `json:"references"`
	Statistics     Statistics     `json:"statistics"`
	QualityMetrics QualityMetrics `json:"quality_metrics"`
}

// aggregate builds every document-level rollup from the page records in a
// single forward pass (chapters need one extra scan of page text).
func aggregate(meta Metadata, pages []PageRecord, now time.Time) *Document {
	doc := &Document{
		Metadata:      meta,
		Pages:         pages,
		PageSummaries: make(map[int]PageSummary, len(pages)),
		Numerics: Numerics{
			MonetaryValues: []MonetaryValue{},
			Percentages:    []Percentage{},
			Years:          []YearRef{},
		},
		References: References{
			Legal:          []Ref{},
			Institutional:  []Ref{},
			Citations:      []Ref{},
			Constitutional: []Ref{},
			Scandals:       []ScandalMention{},
		},
	}

	stats := Statistics{
		TotalPages:          len(pages),
		ExtractionTimestamp: now.Format(time.RFC3339),
	}
	var (
		scoreSum    float64
		withTables  int
		withFigures int
	)

	for _, p := range pages {
		doc.PageSummaries[p.PageNumber] = PageSummary{
			WordCount:      p.Stats.WordCount,
			ParagraphCount: p.Stats.ParagraphCount,
			HasFigures:     len(p.Figures) > 0,
			HasTables:      len(p.Tables) > 0,
			MonetaryCount:  len(p.Monetary),
			ArticleCount:   len(p.Articles),
		}

		doc.Numerics.MonetaryValues = append(doc.Numerics.MonetaryValues, p.Monetary...)
		doc.Numerics.Percentages = append(doc.Numerics.Percentages, p.Percentages...)
		for _, y := range p.Years {
			doc.Numerics.Years = append(doc.Numerics.Years, YearRef{Year: y, Page: p.PageNumber})
		}

		doc.References.Legal = appendRefs(doc.References.Legal, p.Legal, p.PageNumber)
		doc.References.Institutional = appendRefs(doc.References.Institutional, p.Institutional, p.PageNumber)
		doc.References.Citations = appendRefs(doc.References.Citations, p.Citations, p.PageNumber)
		doc.References.Constitutional = appendRefs(doc.References.Constitutional, p.Articles, p.PageNumber)
		doc.References.Scandals = append(doc.References.Scandals, p.Scandals...)

		stats.TotalWords += p.Stats.WordCount
		stats.TotalParagraphs += p.Stats.ParagraphCount
		for _, mv := range p.Monetary {
			stats.TotalMonetarySum += mv.Amount
		}
		stats.TotalScandals += len(p.Scandals)
		stats.TotalArticles += len(p.Articles)
		stats.FiguresCount += len(p.Figures)
		stats.TablesCount += len(p.Tables)

		scoreSum += p.Quality.QualityScore
		if len(p.Tables) > 0 {
			withTables++
		}
		if len(p.Figures) > 0 {
			withFigures++
		}
	}

	doc.Chapters = detectChapters(pages)
	stats.ChaptersCount = len(doc.Chapters)
	doc.Statistics = stats

	if n := len(pages); n > 0 {
		doc.QualityMetrics = QualityMetrics{
			OverallScore:        scoreSum / float64(n),
			AverageWordsPerPage: float64(stats.TotalWords) / float64(n),
			PagesWithTables:     withTables,
			PagesWithFigures:    withFigures,
			TableCoverage:       float64(withTables) / float64(n),
			FigureCoverage:      float64(withFigures) / float64(n),
		}
	}
	return doc
}

func appendRefs(dst []Ref, values []string, page int) []Ref {
	for _, v := range values {
		dst = append(dst, Ref{Value: v, Page: page})
	}
	return dst
}

// detectChapters scans each page against the ordered heading patterns. The
// first match on a page closes the open chapter at the previous page and
// opens a new one; the final chapter closes at the last page. Overlaps are
// impossible by construction; gaps before the first heading are allowed.
func detectChapters(pages []PageRecord) []Chapter {
	var chapters []Chapter
	var open *Chapter

	for _, p := range pages {
		for _, re := range chapterPatterns {
			m := re.FindStringSubmatch(p.Text)
			if m == nil {
				continue
			}
			if open != nil {
				open.EndPage = p.PageNumber - 1
				chapters = append(chapters, *open)
			}
			open = &Chapter{
				Number:    strings.TrimSpace(m[1]),
				Title:     strings.TrimSpace(m[2]),
				StartPage: p.PageNumber,
			}
			break
		}
	}

	if open != nil {
		last := 0
		if len(pages) > 0 {
			last = pages[len(pages)-1].PageNumber
		}
		open.EndPage = last
		chapters = append(chapters, *open)
	}
	return chapters
}
