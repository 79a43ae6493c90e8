// CLAUDE:SUMMARY Rule-based semantic tagging of extracted paragraphs — categories, confidence, rollups.

// Package tagger classifies extracted report paragraphs with rule-based
// semantic tags (finding, recommendation, allegation, ...) and rolls them up
// into recommendations, findings, a year timeline, statistics and suspected
// constitutional violations.
package tagger

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/mwangaza-lab/auditpipe/pdfscan"
)

// TaggedParagraph is one classified paragraph.
type TaggedParagraph struct {
	ID         string   `json:"paragraph_id"`
	Text       string   `json:"text"`
	Tags       []string `json:"tags"`
	Category   string   `json:"category"`
	Confidence float64  `json:"confidence"`
	Page       int      `json:"page_number"`
	Metadata   Metadata `json:"metadata"`
}

// Metadata flags what a paragraph contains.
type Metadata struct {
	HasMonetary    bool `json:"has_monetary_value"`
	HasPercentage  bool `json:"has_percentage"`
	HasYear        bool `json:"has_year"`
	HasArticle     bool `json:"has_article"`
	HasInstitution bool `json:"has_institution"`
	WordCount      int  `json:"word_count"`
}

// Recommendation is a paragraph classified as actionable advice.
type Recommendation struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Page     int      `json:"page"`
	Tags     []string `json:"tags"`
	Priority string   `json:"priority"` // high, medium, low
}

// Finding is a paragraph classified as an audit finding.
type Finding struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Page     int      `json:"page"`
	Tags     []string `json:"tags"`
	Severity string   `json:"severity"` // high, medium, low
}

// TimelineEvent anchors a paragraph to a year it mentions.
type TimelineEvent struct {
	ID       string `json:"id"`
	Year     string `json:"year"`
	Text     string `json:"text"` // truncated to 200 chars
	Page     int    `json:"page"`
	Category string `json:"category"`
}

// Statistic is a paragraph carrying monetary or percentage figures.
type Statistic struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Page          int    `json:"page"`
	HasMonetary   bool   `json:"has_monetary"`
	HasPercentage bool   `json:"has_percentage"`
}

// Violation is a paragraph pairing an article reference with negative
// language — a candidate constitutional violation for the validation pass.
type Violation struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Page    int    `json:"page"`
	Article string `json:"article"`
}

// Result is the full tagging output.
type Result struct {
	Paragraphs      []TaggedParagraph    `json:"paragraphs"`
	Recommendations []Recommendation     `json:"recommendations"`
	Findings        []Finding            `json:"findings"`
	Timeline        []TimelineEvent      `json:"timeline"`
	Statistics      []Statistic          `json:"statistics"`
	Violations      []Violation          `json:"violations"`
	FindingsByTag   map[string][]Finding `json:"findings_by_tag"`
}

// Tagger applies the rule tables. It is stateless and safe for reuse.
type Tagger struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Tagger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tagger{logger: logger}
}

// Process tags every paragraph of every page. Paragraph IDs are assigned
// sequentially in document order, so identical input yields identical IDs.
func (t *Tagger) Process(pages []pdfscan.PageRecord) *Result {
	res := &Result{
		Paragraphs:      []TaggedParagraph{},
		Recommendations: []Recommendation{},
		Findings:        []Finding{},
		Timeline:        []TimelineEvent{},
		Statistics:      []Statistic{},
		Violations:      []Violation{},
	}

	id := 0
	for _, page := range pages {
		for _, text := range page.Paragraphs {
			if len(strings.TrimSpace(text)) < 10 {
				continue
			}
			id++
			para := t.tagParagraph(text, id, page.PageNumber)
			res.Paragraphs = append(res.Paragraphs, para)
			t.categorize(para, res)
		}
	}

	t.postProcess(res)
	t.logger.Info("semantic tagging finished",
		"paragraphs", len(res.Paragraphs),
		"recommendations", len(res.Recommendations),
		"findings", len(res.Findings),
		"violations", len(res.Violations))
	return res
}

func (t *Tagger) tagParagraph(text string, id, page int) TaggedParagraph {
	clean := cleanParagraph(text)
	lower := strings.ToLower(clean)

	var tags []string
	for _, rule := range tagRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}

	category := categoryOf(clean, lower, tags)
	return TaggedParagraph{
		ID:         fmt.Sprintf("para_%06d", id),
		Text:       clean,
		Tags:       tags,
		Category:   category,
		Confidence: confidence(clean, lower, tags, category),
		Page:       page,
		Metadata:   metadataOf(clean, lower),
	}
}

// categoryOf picks the primary category with a fixed precedence; ties go to
// the earlier check. Untagged prose falls through to "narrative".
func categoryOf(text, lower string, tags []string) string {
	switch {
	case containsAny(lower, []string{"should", "must", "recommend", "propose", "urge"}):
		return "recommendation"
	case containsAny(lower, []string{"found", "discovered", "revealed", "identified"}):
		return "finding"
	case containsAny(lower, []string{"alleged", "accused", "scandal", "fraud"}):
		return "allegation"
	case containsAny(lower, []string{"percent", "ksh", "billion", "million", "data"}):
		return "statistic"
	case strings.Contains(text, "Article") || strings.Contains(text, "Section") || strings.Contains(text, "Act"):
		return "legal_reference"
	case len(tags) > 0:
		return tags[0]
	}
	return "narrative"
}

// confidence scores the tagging in [0,1]: tag count up to 0.6, category
// agreement 0.2, length 0.1, keyword density up to 0.2.
func confidence(text, lower string, tags []string, category string) float64 {
	score := 0.0
	if len(tags) > 0 {
		score += min(float64(len(tags))*0.2, 0.6)
	}
	for _, tag := range tags {
		if tag == category {
			score += 0.2
			break
		}
	}
	if len(text) > 100 {
		score += 0.1
	}

	hits := 0
	for _, tag := range tags {
		for _, rule := range tagRules {
			if rule.tag != tag {
				continue
			}
			for _, kw := range rule.keywords {
				if strings.Contains(lower, kw) {
					hits++
				}
			}
		}
	}
	if hits > 0 {
		score += min(float64(hits)*0.05, 0.2)
	}
	return min(score, 1.0)
}

var (
	monetaryRe = regexp.MustCompile(`(?i)KSh\s*[\d,]+(?:\.\d+)?\s*(?:billion|million|trillion)?`)
	percentRe  = regexp.MustCompile(`\d+(?:\.\d+)?\s*%`)
	yearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	articleRe  = regexp.MustCompile(`(?i)Article\s*(\d+[a-z]?)`)
)

func metadataOf(text, lower string) Metadata {
	return Metadata{
		HasMonetary:    monetaryRe.MatchString(text),
		HasPercentage:  percentRe.MatchString(text),
		HasYear:        yearRe.MatchString(text),
		HasArticle:     articleRe.MatchString(text),
		HasInstitution: containsAny(lower, institutionNames),
		WordCount:      len(strings.Fields(text)),
	}
}

func (t *Tagger) categorize(p TaggedParagraph, res *Result) {
	switch p.Category {
	case "recommendation":
		res.Recommendations = append(res.Recommendations, Recommendation{
			ID: p.ID, Text: p.Text, Page: p.Page, Tags: p.Tags,
			Priority: recommendationPriority(p.Text),
		})
	case "finding":
		res.Findings = append(res.Findings, Finding{
			ID: p.ID, Text: p.Text, Page: p.Page, Tags: p.Tags,
			Severity: findingSeverity(p.Text),
		})
	}

	if p.Metadata.HasYear {
		if year := yearRe.FindString(p.Text); year != "" {
			text := p.Text
			if len(text) > 200 {
				text = text[:200]
			}
			res.Timeline = append(res.Timeline, TimelineEvent{
				ID: p.ID, Year: year, Text: text, Page: p.Page, Category: p.Category,
			})
		}
	}

	if p.Metadata.HasMonetary || p.Metadata.HasPercentage {
		res.Statistics = append(res.Statistics, Statistic{
			ID: p.ID, Text: p.Text, Page: p.Page,
			HasMonetary: p.Metadata.HasMonetary, HasPercentage: p.Metadata.HasPercentage,
		})
	}

	if p.Metadata.HasArticle && containsAny(strings.ToLower(p.Text), negativeStems) {
		article := ""
		if m := articleRe.FindStringSubmatch(p.Text); m != nil {
			article = m[1]
		}
		res.Violations = append(res.Violations, Violation{
			ID: p.ID, Text: p.Text, Page: p.Page, Article: article,
		})
	}
}

func recommendationPriority(text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, []string{"immediately", "urgent", "without delay"}):
		return "high"
	case containsAny(lower, []string{"should", "must", "need to"}):
		return "medium"
	}
	return "low"
}

func findingSeverity(text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, []string{"critical", "severe", "serious", "grave", "alarming", "crisis"}):
		return "high"
	case containsAny(lower, []string{"significant", "considerable", "substantial", "notable"}):
		return "medium"
	}
	return "low"
}

// postProcess dedups recommendations by text prefix, orders the timeline,
// and groups findings by tag.
func (t *Tagger) postProcess(res *Result) {
	seen := make(map[string]bool)
	unique := res.Recommendations[:0]
	for _, rec := range res.Recommendations {
		key := rec.Text
		if len(key) > 100 {
			key = key[:100]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, rec)
	}
	res.Recommendations = unique

	sort.SliceStable(res.Timeline, func(i, j int) bool {
		return res.Timeline[i].Year < res.Timeline[j].Year
	})

	res.FindingsByTag = make(map[string][]Finding)
	for _, f := range res.Findings {
		for _, tag := range f.Tags {
			res.FindingsByTag[tag] = append(res.FindingsByTag[tag], f)
		}
	}
}

// The percent sign survives cleaning so the percentage flag can still fire.
var cleanRe = regexp.MustCompile(`[^\w\s.,;:!?%'"-]`)
var spaceRe = regexp.MustCompile(`\s+`)

func cleanParagraph(text string) string {
	text = cleanRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
