package katiba

import (
	"context"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/mwangaza-lab/auditpipe/dbopen"
)

func testPages() []pageText {
	return []pageText{
		{1, cleanText("THE CONSTITUTION OF KENYA WE, THE PEOPLE OF KENYA honouring those who heroically struggled to bring freedom and justice to our land CHAPTER")},
		{2, cleanText("CHAPTER 1 SOVEREIGNTY OF THE PEOPLE " +
			"Article 1 All sovereign power belongs to the people of Kenya. The people must exercise it through their representatives; no person shall claim state authority except as authorised. " +
			"Article 2 This Constitution is the supreme law of the Republic.")},
		{3, cleanText("CHAPTER 12 PUBLIC FINANCE " +
			"Article 201 The principles of public finance. There shall be openness and accountability in financial matters; public money shall be used in a prudent way. " +
			"Everyone has the right to information on public spending.")},
	}
}

func TestExtractArticles_Segmentation(t *testing.T) {
	e := New(Config{})
	articles := e.extractArticles(testPages())
	if len(articles) != 3 {
		t.Fatalf("articles = %d, want 3", len(articles))
	}

	first := articles[0]
	if first.Number != "1" || first.Page != 2 {
		t.Errorf("first article = %s on page %d, want 1 on page 2", first.Number, first.Page)
	}
	// The body stops at the next anchor.
	if strings.Contains(first.FullText, "supreme law") {
		t.Error("article 1 body bleeds into article 2")
	}
	if !strings.Contains(articles[1].FullText, "supreme law") {
		t.Errorf("article 2 body = %q", articles[1].FullText)
	}
}

func TestMineArticle_RightsObligationsProhibitions(t *testing.T) {
	e := New(Config{})
	articles := e.extractArticles(testPages())

	a1 := articles[0]
	if len(a1.Obligations) == 0 {
		t.Error("article 1: expected an obligation from 'must exercise...'")
	}
	if len(a1.Prohibitions) == 0 {
		t.Error("article 1: expected a prohibition from 'no person shall claim...'")
	}
	a201 := articles[2]
	if len(a201.Rights) == 0 {
		t.Error("article 201: expected a right from 'right to information...'")
	}
}

func TestArticleLocation(t *testing.T) {
	tests := []struct {
		num     int
		chapter string
		part    string
	}{
		{1, "1", "I"},
		{27, "4", "II"},
		{75, "6", "IV"},
		{201, "12", "X"},
		{226, "12", "X"},
		{274, "17", "XV"},
		{275, "Unknown", "Unknown"},
		{0, "Unknown", "Unknown"},
	}
	for _, tt := range tests {
		chapter, part := articleLocation(tt.num)
		if chapter != tt.chapter || part != tt.part {
			t.Errorf("articleLocation(%d) = (%s, %s), want (%s, %s)",
				tt.num, chapter, part, tt.chapter, tt.part)
		}
	}
}

func TestSummaryFor(t *testing.T) {
	// Curated entry.
	if got := summaryFor("201", ""); !strings.Contains(got, "openness") {
		t.Errorf("summaryFor(201) = %q, want curated text", got)
	}
	// Heuristic fallbacks.
	if got := summaryFor("999", "the right to something"); !strings.Contains(got, "guarantees certain rights") {
		t.Errorf("rights fallback = %q", got)
	}
	if got := summaryFor("999", "the state shall provide"); !strings.Contains(got, "imposes obligations") {
		t.Errorf("obligation fallback = %q", got)
	}
	if got := summaryFor("999", "miscellaneous"); !strings.Contains(got, "of the Constitution of Kenya") {
		t.Errorf("generic fallback = %q", got)
	}
}

func TestSortArticles(t *testing.T) {
	articles := []Article{
		{Number: "10"},
		{Number: "2"},
		{Number: "2A"},
		{Number: "bogus"},
		{Number: "1"},
	}
	sortArticles(articles)
	got := make([]string, len(articles))
	for i, a := range articles {
		got[i] = a.Number
	}
	want := []string{"1", "2", "2A", "10", "bogus"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestExtractPreamble(t *testing.T) {
	got := extractPreamble(testPages(), 3)
	if !strings.Contains(got, "heroically struggled") {
		t.Errorf("preamble = %q", got)
	}
	if strings.Contains(got, "CHAPTER") {
		t.Error("preamble includes the closing anchor")
	}
}

func TestHeadingIndexes(t *testing.T) {
	e := New(Config{})
	pages := testPages()
	articles := e.extractArticles(pages)
	chapters, _ := headingIndexes(pages, articles)

	ch12, ok := chapters["12"]
	if !ok {
		t.Fatalf("chapter 12 missing; have %v", chapters)
	}
	if ch12.Page != 3 {
		t.Errorf("chapter 12 page = %d, want 3", ch12.Page)
	}
	if ch12.ArticleCount != 1 || ch12.Articles[0] != "201" {
		t.Errorf("chapter 12 articles = %v", ch12.Articles)
	}
}

func TestRightsIndex(t *testing.T) {
	articles := []Article{
		{Number: "43", Rights: []string{"housing and sanitation"}},
		{Number: "50", Rights: []string{"a fair trial before a court"}},
		{Number: "999", Rights: []string{"something uncategorized"}},
	}
	index := rightsIndex(articles)
	if len(index["economic_social"]) != 1 {
		t.Errorf("economic_social = %v", index["economic_social"])
	}
	if len(index["procedural"]) != 1 {
		t.Errorf("procedural = %v", index["procedural"])
	}
}

func TestExportSQLite(t *testing.T) {
	db := dbopen.OpenMemory(t, dbopen.WithSchema(sqliteSchema))

	con := &Constitution{
		Articles: []Article{
			{
				Number: "201", Title: "Principles of public finance",
				FullText: "There shall be openness", Chapter: "12", Part: "X", Page: 3,
				Summary:     summaryFor("201", ""),
				Rights:      []string{"information on public spending"},
				Obligations: []string{"be openness and accountability"},
			},
		},
	}
	if err := ExportSQLiteDB(context.Background(), con, db); err != nil {
		t.Fatalf("ExportSQLiteDB: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("articles rows = %d, want 1", count)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM rights").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("rights rows = %d, want 1", count)
	}

	// Idempotent on re-export for the same article.
	if err := ExportSQLiteDB(context.Background(), con, db); err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("articles rows after re-export = %d, want 1", count)
	}
}

func TestExportAndLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/" + ConstitutionArtifact

	con := &Constitution{
		Metadata: Metadata{SourceFile: "constitution.pdf", TotalArticles: 1},
		Articles: []Article{{Number: "1", Title: "Sovereignty"}},
	}
	if err := ExportJSON(con, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if got.Metadata.TotalArticles != 1 || got.Articles[0].Number != "1" {
		t.Errorf("round trip = %+v", got)
	}
}
