// CLAUDE:SUMMARY Stage-4 validation — joins mined article references against the extracted constitution.

// Package validate checks every constitutional article reference mined from
// the report against the extracted constitution text, classifies each
// mention as violation, compliance or plain reference, and produces the
// validation report plus a citizen-readable guide.
package validate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mwangaza-lab/auditpipe/katiba"
	"github.com/mwangaza-lab/auditpipe/pdfscan"
)

// Output file names.
const (
	ReportFile = "constitutional_validation.json"
	GuideFile  = "citizen_guide.txt"
)

// violationIndicators flag a reference context as describing a violation.
var violationIndicators = []string{
	"violat", "breach", "fail", "deny", "ignore",
	"disregard", "not implement", "not fulfill",
	"lack of", "absence of", "contrary to",
}

// complianceIndicators flag a context as describing compliance.
var complianceIndicators = []string{
	"comply", "implement", "fulfill", "respect",
	"uphold", "honor", "accordance with",
}

// RefInstance is one mention of an article in the report.
type RefInstance struct {
	Page    int    `json:"page"`
	Context string `json:"context"`
}

// Check is the classification of a single mention.
type Check struct {
	Page                 int      `json:"page"`
	Context              string   `json:"context"`
	IsViolation          bool     `json:"is_violation"`
	IsCompliant          bool     `json:"is_compliant"`
	Status               string   `json:"status"` // violation, compliant, reference
	ViolationIndicators  []string `json:"violation_indicators"`
	ComplianceIndicators []string `json:"compliance_indicators"`
}

// ArticleResult gathers every checked mention of one article.
type ArticleResult struct {
	ArticleNumber  string        `json:"article_number"`
	ArticleText    string        `json:"article_text"` // truncated to 500 chars
	References     []RefInstance `json:"references"`
	Validations    []Check       `json:"validations"`
	OverallStatus  string        `json:"overall_status"`
	ViolationCount int           `json:"violation_count"`
}

// ArticleCount pairs an article with its violation count for rankings.
type ArticleCount struct {
	Article string `json:"article"`
	Count   int    `json:"count"`
}

type Summary struct {
	TotalArticlesReferenced int            `json:"total_articles_referenced"`
	ArticlesWithViolations  int            `json:"articles_with_violations"`
	ArticlesWithCompliance  int            `json:"articles_with_compliance"`
	TotalViolationInstances int            `json:"total_violation_instances"`
	MostViolatedArticles    []ArticleCount `json:"most_violated_articles"`
	ViolationRate           float64        `json:"violation_rate"` // percent
}

// Report is the full validation output.
type Report struct {
	Detailed map[string]ArticleResult `json:"detailed"`
	Summary  Summary                  `json:"summary"`
	Guide    string                   `json:"guide"`
}

// Config configures a validation run.
type Config struct {
	// Stage1Dir holds the extraction artifacts (references, raw text).
	Stage1Dir string
	// ConstitutionPath points at the extracted constitution JSON.
	ConstitutionPath string
	// OutputDir receives the report and the citizen guide.
	OutputDir string

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

type Validator struct {
	cfg Config
	con *katiba.Constitution
}

// New loads the constitution eagerly; a missing constitution degrades to an
// empty report rather than an error, matching the rest of the pipeline.
func New(cfg Config) *Validator {
	cfg.defaults()
	con, err := katiba.LoadJSON(cfg.ConstitutionPath)
	if err != nil {
		cfg.Logger.Warn("constitution data unavailable", "path", cfg.ConstitutionPath, "error", err)
		con = &katiba.Constitution{}
	}
	return &Validator{cfg: cfg, con: con}
}

// Run validates every mined article reference and writes the report and the
// citizen guide to the output directory.
func (v *Validator) Run(ctx context.Context) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := v.cfg.Logger
	logger.Info("constitutional validation started", "stage1", v.cfg.Stage1Dir)

	refs := v.collectReferences()
	detailed := v.validateArticles(refs)
	summary := summarize(detailed)

	report := &Report{
		Detailed: detailed,
		Summary:  summary,
		Guide:    citizenGuide(detailed, summary),
	}

	if v.cfg.OutputDir != "" {
		if err := os.MkdirAll(v.cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
		if err := writeJSON(filepath.Join(v.cfg.OutputDir, ReportFile), report); err != nil {
			return nil, fmt.Errorf("write validation report: %w", err)
		}
		guidePath := filepath.Join(v.cfg.OutputDir, GuideFile)
		if err := os.WriteFile(guidePath, []byte(report.Guide), 0o644); err != nil {
			return nil, fmt.Errorf("write citizen guide: %w", err)
		}
	}

	logger.Info("constitutional validation finished",
		"articles", summary.TotalArticlesReferenced,
		"violations", summary.TotalViolationInstances)
	return report, nil
}

// rawPage mirrors one page slot of the raw text artifact.
type rawPage struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// collectReferences joins the constitutional reference list with page text
// context. The context is the 200 characters around the first "Article N"
// occurrence on the referenced page; a page without raw text yields an empty
// context.
func (v *Validator) collectReferences() map[string][]RefInstance {
	var refs pdfscan.References
	v.loadSafe(pdfscan.ArtifactReferences, &refs)
	rawText := map[string]rawPage{}
	v.loadSafe(pdfscan.ArtifactRawText, &rawText)

	pageText := make(map[int]string, len(rawText))
	for _, p := range rawText {
		pageText[p.PageNumber] = p.Text
	}

	out := make(map[string][]RefInstance)
	for _, ref := range refs.Constitutional {
		num := articleBase(ref.Value)
		if num == "" {
			continue
		}
		out[num] = append(out[num], RefInstance{
			Page:    ref.Page,
			Context: contextFor(pageText[ref.Page], num),
		})
	}
	return out
}

var articleBaseRe = regexp.MustCompile(`^\d+[a-z]?`)

func articleBase(value string) string {
	return articleBaseRe.FindString(value)
}

func contextFor(text, article string) string {
	i := strings.Index(text, "Article "+article)
	if i < 0 {
		return ""
	}
	start := i - 100
	if start < 0 {
		start = 0
	}
	end := i + 100
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

func (v *Validator) validateArticles(refs map[string][]RefInstance) map[string]ArticleResult {
	out := make(map[string]ArticleResult, len(refs))
	for num, instances := range refs {
		article := v.con.Lookup(num)
		if article == nil {
			v.cfg.Logger.Warn("referenced article not in constitution data", "article", num)
			continue
		}

		checks := make([]Check, 0, len(instances))
		violations := 0
		for _, inst := range instances {
			check := checkReference(inst)
			if check.IsViolation {
				violations++
			}
			checks = append(checks, check)
		}

		text := article.FullText
		if len(text) > 500 {
			text = text[:500] + "..."
		}
		out[num] = ArticleResult{
			ArticleNumber:  num,
			ArticleText:    text,
			References:     instances,
			Validations:    checks,
			OverallStatus:  overallStatus(checks),
			ViolationCount: violations,
		}
	}
	return out
}

// checkReference classifies one mention by indicator keywords in its
// context. Violation wins over compliance when both appear.
func checkReference(ref RefInstance) Check {
	lower := strings.ToLower(ref.Context)

	var hitV, hitC []string
	for _, ind := range violationIndicators {
		if strings.Contains(lower, ind) {
			hitV = append(hitV, ind)
		}
	}
	for _, ind := range complianceIndicators {
		if strings.Contains(lower, ind) {
			hitC = append(hitC, ind)
		}
	}

	status := "reference"
	switch {
	case len(hitV) > 0:
		status = "violation"
	case len(hitC) > 0:
		status = "compliant"
	}
	return Check{
		Page:                 ref.Page,
		Context:              ref.Context,
		IsViolation:          len(hitV) > 0,
		IsCompliant:          len(hitC) > 0,
		Status:               status,
		ViolationIndicators:  hitV,
		ComplianceIndicators: hitC,
	}
}

func overallStatus(checks []Check) string {
	violations, compliances := 0, 0
	for _, c := range checks {
		if c.IsViolation {
			violations++
		}
		if c.IsCompliant {
			compliances++
		}
	}
	switch {
	case violations > compliances:
		return "mostly_violated"
	case compliances > violations:
		return "mostly_complied"
	case violations > 0:
		return "mixed_violations"
	case compliances > 0:
		return "mixed_compliance"
	}
	return "referenced_only"
}

func summarize(detailed map[string]ArticleResult) Summary {
	s := Summary{MostViolatedArticles: []ArticleCount{}}
	s.TotalArticlesReferenced = len(detailed)

	for num, res := range detailed {
		switch res.OverallStatus {
		case "mostly_violated", "mixed_violations":
			s.ArticlesWithViolations++
		case "mostly_complied", "mixed_compliance":
			s.ArticlesWithCompliance++
		}
		s.TotalViolationInstances += res.ViolationCount
		s.MostViolatedArticles = append(s.MostViolatedArticles, ArticleCount{Article: num, Count: res.ViolationCount})
	}

	sort.Slice(s.MostViolatedArticles, func(i, j int) bool {
		a, b := s.MostViolatedArticles[i], s.MostViolatedArticles[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Article < b.Article
	})
	if len(s.MostViolatedArticles) > 10 {
		s.MostViolatedArticles = s.MostViolatedArticles[:10]
	}

	if s.TotalArticlesReferenced > 0 {
		s.ViolationRate = float64(s.ArticlesWithViolations) / float64(s.TotalArticlesReferenced) * 100
	}
	return s
}

func (v *Validator) loadSafe(name string, into any) {
	path := filepath.Join(v.cfg.Stage1Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			v.cfg.Logger.Warn("extraction artifact missing", "file", name)
		} else {
			v.cfg.Logger.Error("extraction artifact unreadable", "file", name, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, into); err != nil {
		v.cfg.Logger.Error("extraction artifact corrupt", "file", name, "error", err)
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
