package pdfscan

import (
	"math"
	"testing"
	"time"
)

func pageWith(nr int, text string, mutate func(*PageRecord)) PageRecord {
	p := PageRecord{PageNumber: nr, Text: text}
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func TestDetectChapters_CloseOnNextOpen(t *testing.T) {
	pages := []PageRecord{
		pageWith(1, "Table of contents, no heading here", nil),
		pageWith(2, "Chapter 1: The Debt Burden\nBody text follows.", nil),
		pageWith(3, "continuation of chapter one", nil),
		pageWith(4, "Chapter 2: Procurement Failures\nMore body.", nil),
		pageWith(5, "final page", nil),
	}

	chapters := detectChapters(pages)
	if len(chapters) != 2 {
		t.Fatalf("chapters = %d, want 2", len(chapters))
	}
	first, second := chapters[0], chapters[1]
	if first.Number != "1" || first.StartPage != 2 || first.EndPage != 3 {
		t.Errorf("first = %+v, want number 1 spanning 2-3", first)
	}
	if second.Number != "2" || second.StartPage != 4 || second.EndPage != 5 {
		t.Errorf("second = %+v, want number 2 spanning 4-5", second)
	}
	// No overlap, ordered.
	if first.EndPage >= second.StartPage {
		t.Errorf("chapters overlap: %d >= %d", first.EndPage, second.StartPage)
	}
}

func TestDetectChapters_None(t *testing.T) {
	pages := []PageRecord{pageWith(1, "no headings anywhere", nil)}
	if got := detectChapters(pages); len(got) != 0 {
		t.Errorf("chapters = %v, want none", got)
	}
}

func TestAggregate_Statistics(t *testing.T) {
	pages := []PageRecord{
		pageWith(1, "first", func(p *PageRecord) {
			p.Stats = PageStats{WordCount: 100, ParagraphCount: 4}
			p.Monetary = []MonetaryValue{{Amount: 2.4e9, Page: 1}}
			p.Articles = []string{"201"}
			p.Years = []int{2018}
			p.Quality = ExtractionQuality{QualityScore: 0.8}
			p.Tables = []Table{{Rows: 2, Columns: 2}}
		}),
		pageWith(2, "second", func(p *PageRecord) {
			p.Stats = PageStats{WordCount: 50, ParagraphCount: 2}
			p.Monetary = []MonetaryValue{{Amount: 6e8, Page: 2}}
			p.Scandals = []ScandalMention{{Name: "NYS", Page: 2}}
			p.Figures = []Figure{{Number: "1", Page: 2}}
			p.Quality = ExtractionQuality{QualityScore: 0.4}
		}),
	}

	doc := aggregate(Metadata{TotalPages: 2}, pages, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	s := doc.Statistics
	if s.TotalPages != 2 || s.TotalWords != 150 || s.TotalParagraphs != 6 {
		t.Errorf("counts = %+v", s)
	}
	if s.TotalMonetarySum != 3e9 {
		t.Errorf("monetary sum = %v, want 3e9", s.TotalMonetarySum)
	}
	if s.TotalScandals != 1 || s.TotalArticles != 1 || s.TablesCount != 1 || s.FiguresCount != 1 {
		t.Errorf("fact counts = %+v", s)
	}
	if s.ExtractionTimestamp != "2026-08-01T00:00:00Z" {
		t.Errorf("timestamp = %q", s.ExtractionTimestamp)
	}

	q := doc.QualityMetrics
	if math.Abs(q.OverallScore-0.6) > 1e-9 {
		t.Errorf("overall score = %v, want 0.6", q.OverallScore)
	}
	if q.AverageWordsPerPage != 75 {
		t.Errorf("avg words = %v, want 75", q.AverageWordsPerPage)
	}
	if q.TableCoverage != 0.5 || q.FigureCoverage != 0.5 {
		t.Errorf("coverage = %v/%v, want 0.5/0.5", q.TableCoverage, q.FigureCoverage)
	}
}

func TestAggregate_Provenance(t *testing.T) {
	pages := []PageRecord{
		pageWith(1, "", func(p *PageRecord) {
			p.Years = []int{2018, 2020}
			p.Legal = []string{"Public Finance Management Act"}
		}),
		pageWith(2, "", func(p *PageRecord) {
			p.Years = []int{2020}
			p.Articles = []string{"201"}
		}),
	}

	doc := aggregate(Metadata{}, pages, time.Now())

	if len(doc.Numerics.Years) != 3 {
		t.Fatalf("years = %d entries, want 3 (page-scoped, not globally deduped)", len(doc.Numerics.Years))
	}
	if doc.Numerics.Years[2].Page != 2 || doc.Numerics.Years[2].Year != 2020 {
		t.Errorf("year provenance = %+v", doc.Numerics.Years[2])
	}
	if len(doc.References.Legal) != 1 || doc.References.Legal[0].Page != 1 {
		t.Errorf("legal provenance = %+v", doc.References.Legal)
	}
	if len(doc.References.Constitutional) != 1 || doc.References.Constitutional[0].Page != 2 {
		t.Errorf("constitutional provenance = %+v", doc.References.Constitutional)
	}
}

func TestAggregate_EmptyDocument(t *testing.T) {
	doc := aggregate(Metadata{}, nil, time.Now())
	if doc.Statistics.TotalPages != 0 {
		t.Errorf("total pages = %d", doc.Statistics.TotalPages)
	}
	if doc.QualityMetrics.OverallScore != 0 {
		t.Errorf("overall score = %v, want 0", doc.QualityMetrics.OverallScore)
	}
	// Flattened slices serialize as [], not null.
	if doc.Numerics.MonetaryValues == nil || doc.References.Scandals == nil {
		t.Error("flattened slices must be non-nil")
	}
}
