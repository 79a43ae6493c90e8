// CLAUDE:SUMMARY PageRecord and nested fact types — the per-page schema of the extraction engine.
package pdfscan

// Figure is a numbered figure caption found in page text.
type Figure struct {
	Number  string `json:"number"`
	Caption string `json:"caption"`
	Page    int    `json:"page"`
}

// Table is a normalized rectangular table detected on a page.
// Cells always form a rows×columns matrix; missing cells are "".
type Table struct {
	Method  string     `json:"method"` // detection backend: "lattice", "stream"
	Page    int        `json:"page"`
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Cells   [][]string `json:"cells"`
	Sample  [][]string `json:"sample_data"` // first 3 rows, for previews
}

// MonetaryValue is a currency-marked amount normalized to base units.
type MonetaryValue struct {
	Amount   float64 `json:"amount"` // normalized (magnitude multiplier applied)
	Original string  `json:"original_text"`
	Currency string  `json:"currency"` // "local" or "foreign"
	Unit     string  `json:"unit"`     // "trillion", "billion", "million", "units"
	Context  string  `json:"context"`
	Page     int     `json:"page"`
	Offset   int     `json:"offset"` // match start in cleaned page text
}

// Percentage is a numeric value immediately preceding a percent marker.
type Percentage struct {
	Value   float64 `json:"value"`
	Context string  `json:"context"`
	Page    int     `json:"page"`
	Offset  int     `json:"offset"`
}

// ScandalMention records one named-scandal keyword hit on a page.
// At most one mention per scandal per page; the first matching keyword wins.
type ScandalMention struct {
	Name    string `json:"name"`
	Keyword string `json:"keyword"`
	Context string `json:"context"`
	Amount  string `json:"amount,omitempty"` // nearby monetary match, if any
	Page    int    `json:"page"`
}

// PageStats holds single-pass counts over one page's extraction.
type PageStats struct {
	WordCount      int `json:"word_count"`
	ParagraphCount int `json:"paragraph_count"`
	SentenceCount  int `json:"sentence_count"`
	MonetaryCount  int `json:"monetary_count"`
	ArticleCount   int `json:"article_count"`
	TableCount     int `json:"table_count"`
	FigureCount    int `json:"figure_count"`
}

// ExtractionQuality captures how well a single page extracted.
// QualityScore is a completeness proxy in [0,1], not a correctness measure:
// a page can score 1.0 and still contain garbled text.
type ExtractionQuality struct {
	TextLength   int     `json:"text_length"`
	WordCount    int     `json:"word_count"`
	HasTables    bool    `json:"has_tables"`
	HasFigures   bool    `json:"has_figures"`
	HasImages    bool    `json:"has_images"`
	QualityScore float64 `json:"quality_score"`
	MethodUsed   string  `json:"method_used"` // winning backend, "ocr", or "none"
}

// PageRecord is the complete set of extracted facts for one PDF page.
// PageNumber is 1-based and assigned monotonically in document order.
type PageRecord struct {
	PageNumber    int               `json:"page_number"`
	Text          string            `json:"text"`
	Paragraphs    []string          `json:"paragraphs"`
	Figures       []Figure          `json:"figures"`
	Tables        []Table           `json:"tables"`
	Monetary      []MonetaryValue   `json:"monetary_values"`
	Percentages   []Percentage      `json:"percentages"`
	Years         []int             `json:"years"`
	Articles      []string          `json:"constitutional_articles"`
	Legal         []string          `json:"legal_references"`
	Institutional []string          `json:"institutional_references"`
	Citations     []string          `json:"citations"`
	Scandals      []ScandalMention  `json:"scandals"`
	Keywords      []string          `json:"keywords"`
	Stats         PageStats         `json:"page_stats"`
	Quality       ExtractionQuality `json:"extraction_quality"`
}

// placeholderRecord returns the minimal PageRecord emitted when everything
// about a page fails. Keeping the slot filled keeps document-level indices
// positionally consistent.
func placeholderRecord(pageNr int, rawText string) PageRecord {
	if len(rawText) > 1000 {
		rawText = rawText[:runeStart(rawText, 1000)]
	}
	return PageRecord{
		PageNumber:  pageNr,
		Text:        rawText,
		Paragraphs:  []string{},
		Figures:     []Figure{},
		Tables:      []Table{},
		Monetary:    []MonetaryValue{},
		Percentages: []Percentage{},
		Years:       []int{},
		Articles:    []string{},
		Legal:       []string{},
		Institutional: []string{},
		Citations:   []string{},
		Scandals:    []ScandalMention{},
		Keywords:    []string{},
		Quality: ExtractionQuality{
			TextLength:   len(rawText),
			MethodUsed:   "none",
			QualityScore: 0.0,
		},
	}
}
