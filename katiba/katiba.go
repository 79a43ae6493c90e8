// CLAUDE:SUMMARY Constitution extractor — segments articles from PDF text and builds the structured output.
package katiba

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gen2brain/go-fitz"
)

// Config configures the constitution extractor.
type Config struct {
	// PreamblePages bounds the preamble search to the first N pages
	// (default 3).
	PreamblePages int

	// Version string recorded in the output metadata.
	Version string

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.PreamblePages <= 0 {
		c.PreamblePages = 3
	}
	if c.Version == "" {
		c.Version = "Kenya 2010 with Amendments"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Extractor turns the constitution PDF into a structured Constitution.
type Extractor struct {
	cfg Config
}

func New(cfg Config) *Extractor {
	cfg.defaults()
	return &Extractor{cfg: cfg}
}

type pageText struct {
	number int
	text   string
}

// Extract reads every page, segments articles, and assembles the full
// structured output with its indexes.
func (e *Extractor) Extract(ctx context.Context, path string) (*Constitution, error) {
	logger := e.cfg.Logger

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open constitution %s: %w", path, err)
	}
	defer doc.Close()

	var pages []pageText
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("constitution extraction aborted at page %d: %w", i+1, err)
		}
		text, err := doc.Text(i)
		if err != nil {
			logger.Error("constitution page unreadable", "page", i+1, "error", err)
			text = ""
		}
		pages = append(pages, pageText{number: i + 1, text: cleanText(text)})
	}

	articles := e.extractArticles(pages)
	sortArticles(articles)

	con := &Constitution{
		Metadata: Metadata{
			SourceFile:     path,
			ExtractionDate: time.Now().Format(time.RFC3339),
			TotalPages:     len(pages),
			TotalArticles:  len(articles),
			Version:        e.cfg.Version,
		},
		Preamble:   extractPreamble(pages, e.cfg.PreamblePages),
		Articles:   articles,
		Amendments: extractAmendments(pages),
	}
	con.ChapterIndex, con.PartIndex = headingIndexes(pages, articles)
	con.ArticleIndex = articleIndex(articles)
	con.RightsIndex = rightsIndex(articles)

	logger.Info("constitution extracted",
		"source", path,
		"pages", len(pages),
		"articles", len(articles),
		"chapters", len(con.ChapterIndex))
	return con, nil
}

var wsRe = regexp.MustCompile(`\s+`)

// Text repairs mirror the ones applied to report pages; constitution PDFs
// carry the same split-word artifacts.
var textRepairs = strings.NewReplacer(
	"�", "",
	"\x00", "",
	"A rticle", "Article",
	"C hapter", "Chapter",
	"P art", "Part",
)

func cleanText(text string) string {
	text = textRepairs.Replace(text)
	return strings.TrimSpace(wsRe.ReplaceAllString(text, " "))
}

// extractArticles segments each page's text at article anchors: the body of
// an article runs from its anchor to the next anchor on the page (or the
// page end). Articles spanning a page break lose their tail; the anchor page
// still records them.
func (e *Extractor) extractArticles(pages []pageText) []Article {
	var out []Article
	for _, p := range pages {
		locs := articleStartRe.FindAllStringSubmatchIndex(p.text, -1)
		for i, loc := range locs {
			number := p.text[loc[2]:loc[3]]
			bodyStart := loc[1]
			bodyEnd := len(p.text)
			if i+1 < len(locs) {
				bodyEnd = locs[i+1][0]
			}
			body := strings.TrimSpace(p.text[bodyStart:bodyEnd])
			if body == "" {
				continue
			}
			out = append(out, e.mineArticle(number, body, p.number))
		}
	}
	return out
}

func (e *Extractor) mineArticle(number, body string, page int) Article {
	chapter, part := "Unknown", "Unknown"
	if n, err := strconv.Atoi(strings.TrimRight(number, "abcdefghijklmnopqrstuvwxyz")); err == nil {
		chapter, part = articleLocation(n)
	}

	return Article{
		Number:       number,
		Title:        articleTitle(body),
		FullText:     body,
		Chapter:      chapter,
		Part:         part,
		Page:         page,
		Summary:      summaryFor(number, body),
		Rights:       minePhrases(rightsRe, body),
		Obligations:  minePhrases(obligationRe, body),
		Prohibitions: minePhrases(prohibitRe, body),
	}
}

// minePhrases collects first-group matches longer than three characters.
func minePhrases(re *regexp.Regexp, text string) []string {
	var out []string
	for _, sub := range re.FindAllStringSubmatch(text, -1) {
		phrase := strings.TrimSpace(sub[1])
		if len(phrase) > 3 {
			out = append(out, phrase)
		}
	}
	return out
}

// articleTitle takes the text before the first period or colon, truncated
// to 100 characters.
func articleTitle(body string) string {
	title := body
	if i := strings.IndexByte(title, '.'); i >= 0 {
		title = title[:i]
	}
	if i := strings.IndexByte(title, ':'); i >= 0 {
		title = title[:i]
	}
	title = strings.TrimSpace(title)
	if len(title) > 100 {
		title = title[:100] + "..."
	}
	return title
}

var articleNumberRe = regexp.MustCompile(`^(\d+)([A-Za-z]*)`)

// sortArticles orders by numeric value then letter suffix; unparseable
// numbers sort last.
func sortArticles(articles []Article) {
	key := func(number string) (int, string) {
		m := articleNumberRe.FindStringSubmatch(number)
		if m == nil {
			return 9999, number
		}
		n, _ := strconv.Atoi(m[1])
		return n, m[2]
	}
	sort.SliceStable(articles, func(i, j int) bool {
		ni, si := key(articles[i].Number)
		nj, sj := key(articles[j].Number)
		if ni != nj {
			return ni < nj
		}
		return si < sj
	})
}

// extractPreamble searches the first few pages for the preamble span; when
// the closing CHAPTER anchor is missing it falls back to a fixed-length
// slice from the opening words.
func extractPreamble(pages []pageText, maxPages int) string {
	if len(pages) > maxPages {
		pages = pages[:maxPages]
	}
	var sb strings.Builder
	for _, p := range pages {
		if m := preambleRe.FindStringSubmatch(p.text); m != nil {
			sb.WriteString(strings.TrimSpace(m[1]))
			sb.WriteString("\n\n")
		}
	}
	if sb.Len() > 0 {
		return strings.TrimSpace(sb.String())
	}

	const anchor = "WE, THE PEOPLE OF KENYA"
	for _, p := range pages {
		if i := strings.Index(p.text, anchor); i >= 0 {
			end := i + 2000
			if end > len(p.text) {
				end = len(p.text)
			}
			return strings.TrimSpace(p.text[i:end])
		}
	}
	return ""
}

func extractAmendments(pages []pageText) []Amendment {
	var out []Amendment
	for _, p := range pages {
		for _, loc := range amendmentRe.FindAllStringSubmatchIndex(p.text, -1) {
			end := loc[1] + 100
			if end > len(p.text) {
				end = len(p.text)
			}
			out = append(out, Amendment{
				Number:  p.text[loc[2]:loc[3]],
				Year:    p.text[loc[4]:loc[5]],
				Page:    p.number,
				Context: p.text[loc[0]:end],
			})
		}
	}
	return out
}

// headingIndexes collects CHAPTER and PART headings across pages; the first
// occurrence of a heading wins. Chapter entries are then filled with the
// articles located under them.
func headingIndexes(pages []pageText, articles []Article) (map[string]ChapterEntry, map[string]PartEntry) {
	chapters := make(map[string]ChapterEntry)
	parts := make(map[string]PartEntry)

	for _, p := range pages {
		for _, m := range chapterRe.FindAllStringSubmatch(p.text, -1) {
			num := strings.TrimSpace(m[1])
			if _, seen := chapters[num]; !seen {
				chapters[num] = ChapterEntry{Title: strings.TrimSpace(m[2]), Page: p.number}
			}
		}
		for _, m := range partRe.FindAllStringSubmatch(p.text, -1) {
			num := strings.TrimSpace(m[1])
			if _, seen := parts[num]; !seen {
				parts[num] = PartEntry{Title: strings.TrimSpace(m[2]), Page: p.number}
			}
		}
	}

	for _, a := range articles {
		entry, ok := chapters[a.Chapter]
		if !ok {
			continue
		}
		entry.Articles = append(entry.Articles, a.Number)
		entry.ArticleCount = len(entry.Articles)
		chapters[a.Chapter] = entry
	}
	return chapters, parts
}

func articleIndex(articles []Article) map[string]IndexEntry {
	index := make(map[string]IndexEntry, len(articles))
	for _, a := range articles {
		index[a.Number] = IndexEntry{
			Title:            a.Title,
			Chapter:          a.Chapter,
			Page:             a.Page,
			Summary:          a.Summary,
			RightsCount:      len(a.Rights),
			ObligationsCount: len(a.Obligations),
		}
	}
	return index
}

// rightsIndex buckets every guaranteed right into one of four categories by
// keyword; a right matching none of the lists is left out.
func rightsIndex(articles []Article) map[string][]string {
	index := map[string][]string{
		"economic_social": {},
		"civil_political": {},
		"procedural":      {},
		"group_rights":    {},
	}
	categories := []struct {
		name     string
		keywords []string
	}{
		{"economic_social", economicKeywords},
		{"civil_political", civilKeywords},
		{"procedural", proceduralKeywords},
		{"group_rights", groupKeywords},
	}

	for _, a := range articles {
		for _, right := range a.Rights {
			lower := strings.ToLower(right)
			for _, cat := range categories {
				if containsAny(lower, cat.keywords) {
					index[cat.name] = append(index[cat.name],
						fmt.Sprintf("Article %s: %s", a.Number, right))
					break
				}
			}
		}
	}
	return index
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
