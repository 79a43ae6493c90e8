// CLAUDE:SUMMARY Constitution data model — articles, structure, indexes.

// Package katiba extracts and structures the Constitution of Kenya 2010
// from its PDF text: articles with their chapter/part location, the
// preamble, amendment references, and citizen-readable summaries.
package katiba

// Article is one constitutional article with everything mined from its text.
type Article struct {
	Number       string   `json:"article_number"`
	Title        string   `json:"title"`
	FullText     string   `json:"full_text"`
	Chapter      string   `json:"chapter"`
	Part         string   `json:"part"`
	Page         int      `json:"page_number"`
	Summary      string   `json:"simplified_summary"`
	Rights       []string `json:"rights_guaranteed"`
	Obligations  []string `json:"obligations"`
	Prohibitions []string `json:"prohibitions"`
}

// Amendment is one amendment reference found in the text.
type Amendment struct {
	Number  string `json:"amendment_number"`
	Year    string `json:"year"`
	Page    int    `json:"page"`
	Context string `json:"context"`
}

// IndexEntry is the per-article slot of the article index.
type IndexEntry struct {
	Title            string `json:"title"`
	Chapter          string `json:"chapter"`
	Page             int    `json:"page"`
	Summary          string `json:"summary"`
	RightsCount      int    `json:"rights_count"`
	ObligationsCount int    `json:"obligations_count"`
}

// ChapterEntry groups the articles found under one CHAPTER heading.
type ChapterEntry struct {
	Title        string   `json:"title"`
	Page         int      `json:"page"`
	ArticleCount int      `json:"article_count"`
	Articles     []string `json:"articles"`
}

// PartEntry records one PART heading (roman-numbered divisions).
type PartEntry struct {
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// Metadata describes one constitution extraction run.
type Metadata struct {
	SourceFile     string `json:"source_file"`
	ExtractionDate string `json:"extraction_date"`
	TotalPages     int    `json:"total_pages"`
	TotalArticles  int    `json:"total_articles"`
	Version        string `json:"constitution_version"`
}

// Constitution is the full structured output.
type Constitution struct {
	Metadata     Metadata                `json:"metadata"`
	Preamble     string                  `json:"preamble"`
	Articles     []Article               `json:"articles"`
	Amendments   []Amendment             `json:"amendments"`
	ArticleIndex map[string]IndexEntry   `json:"article_index"`
	ChapterIndex map[string]ChapterEntry `json:"chapter_index"`
	PartIndex    map[string]PartEntry    `json:"part_index"`
	RightsIndex  map[string][]string     `json:"rights_index"`
}

// Lookup returns the article with the given number, or nil.
func (c *Constitution) Lookup(number string) *Article {
	for i := range c.Articles {
		if c.Articles[i].Number == number {
			return &c.Articles[i]
		}
	}
	return nil
}
