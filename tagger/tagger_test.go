package tagger

import (
	"testing"

	"github.com/mwangaza-lab/auditpipe/pdfscan"
)

func pagesOf(paragraphs ...string) []pdfscan.PageRecord {
	return []pdfscan.PageRecord{{PageNumber: 1, Paragraphs: paragraphs}}
}

func TestProcess_AssignsSequentialIDs(t *testing.T) {
	tg := New(nil)
	res := tg.Process(pagesOf(
		"The audit found that significant funds were misappropriated in the health sector.",
		"The ministry should immediately implement stronger procurement controls.",
	))
	if len(res.Paragraphs) != 2 {
		t.Fatalf("paragraphs = %d, want 2", len(res.Paragraphs))
	}
	if res.Paragraphs[0].ID != "para_000001" || res.Paragraphs[1].ID != "para_000002" {
		t.Errorf("ids = %s, %s", res.Paragraphs[0].ID, res.Paragraphs[1].ID)
	}
}

func TestProcess_SkipsTinyParagraphs(t *testing.T) {
	tg := New(nil)
	res := tg.Process(pagesOf("tiny", "This paragraph is long enough to be tagged properly."))
	if len(res.Paragraphs) != 1 {
		t.Fatalf("paragraphs = %d, want 1", len(res.Paragraphs))
	}
}

func TestCategoryPrecedence(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"The government should act on these findings.", "recommendation"},
		{"The audit found that funds were diverted.", "finding"},
		{"Officials were accused of taking bribes.", "allegation"},
		{"Revenue grew by 12 percent last year.", "statistic"},
		{"Article 201 sets the principles in the Act.", "legal_reference"},
		{"An ordinary descriptive sentence about weather.", "narrative"},
	}
	for _, tt := range tests {
		para := New(nil).tagParagraph(tt.text, 1, 1)
		if para.Category != tt.want {
			t.Errorf("category(%q) = %q, want %q", tt.text, para.Category, tt.want)
		}
	}
}

func TestConfidence_Bounds(t *testing.T) {
	tg := New(nil)
	// Heavily tagged paragraph: confidence caps at 1.0.
	rich := "The audit found that KSh 9 billion in debt repayments was misappropriated; " +
		"we recommend that the Treasury must urgently review the fraud and corruption identified " +
		"under Article 201 of the Constitution without delay."
	para := tg.tagParagraph(rich, 1, 1)
	if para.Confidence <= 0.5 || para.Confidence > 1.0 {
		t.Errorf("confidence = %v, want (0.5, 1.0]", para.Confidence)
	}

	flat := tg.tagParagraph("Plain sentence with nothing to see.", 2, 1)
	if flat.Confidence > 0.3 {
		t.Errorf("flat confidence = %v, want low", flat.Confidence)
	}
}

func TestMetadata(t *testing.T) {
	para := New(nil).tagParagraph(
		"In 2018 the Treasury reported KSh 2.4 billion, about 12.5% of the budget, citing Article 206.",
		1, 4)
	md := para.Metadata
	if !md.HasMonetary || !md.HasPercentage || !md.HasYear || !md.HasArticle || !md.HasInstitution {
		t.Errorf("metadata = %+v, want all flags set", md)
	}
	if md.WordCount == 0 {
		t.Error("word count missing")
	}
}

func TestRecommendationPriority(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"This must be implemented immediately.", "high"},
		{"The ministry should review the contracts.", "medium"},
		{"Consider revisiting the policy.", "low"},
	}
	for _, tt := range tests {
		if got := recommendationPriority(tt.text); got != tt.want {
			t.Errorf("priority(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestFindingSeverity(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"A critical weakness in controls.", "high"},
		{"A significant gap in reporting.", "medium"},
		{"A minor delay in filings.", "low"},
	}
	for _, tt := range tests {
		if got := findingSeverity(tt.text); got != tt.want {
			t.Errorf("severity(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestViolations(t *testing.T) {
	tg := New(nil)
	res := tg.Process(pagesOf(
		"The diversion of funds violated Article 201 of the Constitution.",
		"Article 206 is described here in neutral terms and context.",
	))
	if len(res.Violations) != 1 {
		t.Fatalf("violations = %d, want 1 (negative language required)", len(res.Violations))
	}
	if res.Violations[0].Article != "201" {
		t.Errorf("article = %q, want 201", res.Violations[0].Article)
	}
}

func TestTimeline_SortedByYear(t *testing.T) {
	tg := New(nil)
	res := tg.Process(pagesOf(
		"Debt levels worsened considerably during 2020 according to the review.",
		"The first irregularities surfaced in 2015 within county programs.",
	))
	if len(res.Timeline) != 2 {
		t.Fatalf("timeline = %d, want 2", len(res.Timeline))
	}
	if res.Timeline[0].Year != "2015" || res.Timeline[1].Year != "2020" {
		t.Errorf("timeline order = %s, %s", res.Timeline[0].Year, res.Timeline[1].Year)
	}
}

func TestPostProcess_DedupsRecommendations(t *testing.T) {
	tg := New(nil)
	dup := "The ministry should adopt open contracting for all procurement."
	res := tg.Process(pagesOf(dup, dup))
	if len(res.Recommendations) != 1 {
		t.Fatalf("recommendations = %d, want 1 after dedup", len(res.Recommendations))
	}
}

func TestFindingsByTag(t *testing.T) {
	tg := New(nil)
	res := tg.Process(pagesOf(
		"The audit revealed widespread fraud in the procurement of medical supplies.",
	))
	if len(res.Findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(res.Findings))
	}
	if _, ok := res.FindingsByTag["corruption"]; !ok {
		t.Errorf("findings_by_tag keys = %v, want corruption present", keys(res.FindingsByTag))
	}
}

func keys(m map[string][]Finding) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
