package consolidate

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/mwangaza-lab/auditpipe/pdfscan"
	"github.com/mwangaza-lab/auditpipe/tagger"
)

// SankeyNode is one node of the fund-flow diagram.
type SankeyNode struct {
	Name     string `json:"name"`
	Category string `json:"category"` // source, flow, destination, sink, final
	Color    string `json:"color"`
}

// SankeyLink is one flow between nodes, value in KSh billions.
type SankeyLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
}

type SankeyData struct {
	Nodes []SankeyNode `json:"nodes"`
	Links []SankeyLink `json:"links"`
}

// Chart is one named dataset for the dashboard renderers. Data and Metadata
// stay loosely typed; every chart carries a different series shape.
type Chart struct {
	Title       string         `json:"title"`
	Type        string         `json:"type"` // line, bar, pie
	Description string         `json:"description"`
	Data        map[string]any `json:"data"`
	Metadata    map[string]any `json:"metadata"`
}

type ChartsData struct {
	DebtTimeline       Chart `json:"debt_timeline"`
	CorruptionBySector Chart `json:"corruption_by_sector"`
	BudgetAllocation   Chart `json:"budget_allocation"`
	DebtServiceRatio   Chart `json:"debt_service_ratio"`
	SocialIndicators   Chart `json:"social_indicators"`
}

// CuratedEvent is one curated timeline entry.
type CuratedEvent struct {
	Year         string `json:"year"`
	Month        string `json:"month"`
	Event        string `json:"event"`
	Category     string `json:"category"`
	Significance string `json:"significance"` // critical, high, medium
	Description  string `json:"description"`
}

type TimelineData struct {
	Events []CuratedEvent `json:"events"`
	// ExtractedEvents carries the year-anchored paragraphs mined from the
	// report itself, alongside the curated series.
	ExtractedEvents []tagger.TimelineEvent `json:"extracted_events"`
	Metadata        map[string]any         `json:"metadata"`
}

// MatrixViolation is one documented violation under an article.
type MatrixViolation struct {
	Description    string `json:"description"`
	Severity       string `json:"severity"`
	Evidence       string `json:"evidence"`
	PageReferences []int  `json:"page_references"`
}

// MatrixEntry is the violation record for one constitutional article. The
// Observed* fields are filled from extraction; the rest is curated.
type MatrixEntry struct {
	ArticleNumber    string            `json:"article_number"`
	Title            string            `json:"title"`
	ViolationCount   int               `json:"violation_count"`
	ViolationTypes   []string          `json:"violation_types"`
	Violations       []MatrixViolation `json:"violations"`
	RelevantSections []string          `json:"relevant_sections"`
	ImpactScore      int               `json:"impact_score"`
	ObservedMentions int               `json:"observed_mentions"`
	ObservedPages    []int             `json:"observed_pages"`
}

// CorruptionCase is one row of corruption_cases.csv; AmountStolen is in
// KSh millions.
type CorruptionCase struct {
	ID              string
	Name            string
	Year            int
	AmountStolen    float64
	Sector          string
	Status          string
	RecoveryRate    string
	KeyPerpetrators string
	Impact          string
}

// DebtCompositionRow breaks the debt stock down by creditor class.
type DebtCompositionRow struct {
	Year         int
	DebtType     string
	Amount       float64 // KSh trillions
	Percentage   float64
	InterestRate float64
}

// BudgetRow is one row of budget_analysis.csv, amounts in KSh billions.
type BudgetRow struct {
	Sector           string
	Amount2024       float64
	Amount2025       float64
	PercentageChange float64
	Priority         string
	EfficiencyScore  int
	CorruptionRisk   string
	Notes            string
}

// Reform is one actionable reform item.
type Reform struct {
	ID                     string   `json:"id"`
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	Impact                 string   `json:"impact"`
	Cost                   string   `json:"cost"`
	LegalBasis             string   `json:"legal_basis"`
	ResponsibleInstitution string   `json:"responsible_institution"`
	KeyMetrics             []string `json:"key_metrics"`
}

// ReformArea groups reforms under one governance theme.
type ReformArea struct {
	Title     string   `json:"title"`
	Priority  string   `json:"priority"`
	Timeframe string   `json:"timeframe"`
	Reforms   []Reform `json:"reforms"`
}

type StatisticsSummary struct {
	Fiscal      map[string]string `json:"fiscal_indicators"`
	Corruption  map[string]string `json:"corruption_indicators"`
	Social      map[string]string `json:"social_indicators"`
	Governance  map[string]string `json:"governance_indicators"`
	HumanRights map[string]string `json:"human_rights_indicators"`
	Comparative map[string]string `json:"comparative_analysis"`
	Extraction  map[string]any    `json:"extraction_summary"`
	Metadata    map[string]string `json:"metadata"`
}

func buildSankey() SankeyData {
	return SankeyData{Nodes: sankeyNodes, Links: sankeyLinks}
}

func buildCharts(now time.Time) ChartsData {
	totalLoss := 0.0
	for _, amt := range corruptionSectors.amounts {
		totalLoss += amt
	}
	sectorPct := make([]float64, len(corruptionSectors.amounts))
	for i, amt := range corruptionSectors.amounts {
		sectorPct[i] = round1(amt / totalLoss * 100)
	}

	return ChartsData{
		DebtTimeline: Chart{
			Title:       "Kenya Public Debt Growth (2014-2025)",
			Type:        "line",
			Description: "Shows the exponential growth of Kenya's public debt over 11 years",
			Data: map[string]any{
				"years":           debtTimeline.years,
				"debt_amounts":    debtTimeline.amounts,
				"debt_gdp":        debtTimeline.gdp,
				"per_capita_debt": debtTimeline.perCapita,
			},
			Metadata: map[string]any{
				"source":  "National Treasury, IMF, World Bank",
				"units":   "KSh Trillions",
				"updated": now.Format("2006-01-02"),
			},
		},
		CorruptionBySector: Chart{
			Title:       "Annual Corruption Losses by Sector (KSh Billions)",
			Type:        "bar",
			Description: "Estimated annual losses due to corruption across different sectors",
			Data: map[string]any{
				"sectors":     corruptionSectors.sectors,
				"amounts":     corruptionSectors.amounts,
				"percentages": sectorPct,
			},
			Metadata: map[string]any{
				"source":            "EACC Reports, Auditor-General Reports",
				"units":             "KSh Billions per year",
				"total_annual_loss": totalLoss,
			},
		},
		BudgetAllocation: Chart{
			Title:       "Government Budget Allocation 2025 (Every KSh 100)",
			Type:        "pie",
			Description: "How every 100 shillings of government revenue is allocated",
			Data: map[string]any{
				"categories":     budgetAllocation.categories,
				"percentages":    budgetAllocation.percentages,
				"actual_amounts": budgetAllocation.amounts,
			},
			Metadata: map[string]any{
				"source":       "2025 Budget Policy Statement",
				"total_budget": "KSh 3.6 Trillion",
				"year":         "2025",
			},
		},
		DebtServiceRatio: Chart{
			Title:       "Debt Service as Percentage of Revenue",
			Type:        "line",
			Description: "Percentage of government revenue consumed by debt repayment",
			Data: map[string]any{
				"years":           debtTimeline.years,
				"percentages":     debtTimeline.serviceRatio,
				"revenue_amounts": debtTimeline.revenue,
			},
			Metadata: map[string]any{
				"source":            "National Treasury Debt Bulletin",
				"warning_threshold": "55% (IMF recommended max)",
				"current_status":    "Above sustainable limit",
			},
		},
		SocialIndicators: Chart{
			Title:       "Social Indicators Comparison (2014 vs 2025)",
			Type:        "bar",
			Description: "Key social indicators showing impact of governance failures",
			Data: map[string]any{
				"indicators":        socialIndicators.names,
				"values_2014":       socialIndicators.values2014,
				"values_2025":       socialIndicators.values2025,
				"change_percentage": socialIndicators.changePct,
			},
			Metadata: map[string]any{
				"source":          "KNBS, World Bank, UNICEF",
				"units":           "Millions of People",
				"population_2025": "55 million",
			},
		},
	}
}

func buildTimeline(extracted []tagger.TimelineEvent, now time.Time) TimelineData {
	if extracted == nil {
		extracted = []tagger.TimelineEvent{}
	}
	return TimelineData{
		Events:          curatedTimeline,
		ExtractedEvents: extracted,
		Metadata: map[string]any{
			"total_events":     len(curatedTimeline),
			"extracted_events": len(extracted),
			"time_period":      "2014-2025",
			"categories":       timelineCategories,
			"generated":        now.Format(time.RFC3339),
		},
	}
}

// articleBaseRe strips sub-section suffixes: "10(2)(a)" -> "10".
var articleBaseRe = regexp.MustCompile(`^\d+[a-z]?`)

// buildMatrix joins the curated violation matrix with what extraction
// actually observed: mention counts from suspected violations and page
// provenance from constitutional references.
func buildMatrix(refs pdfscan.References, violations []tagger.Violation) map[string]MatrixEntry {
	matrix := make(map[string]MatrixEntry, len(curatedMatrix))
	for num, entry := range curatedMatrix {
		for _, v := range violations {
			if articleBaseRe.FindString(v.Article) == num {
				entry.ObservedMentions++
			}
		}

		pages := map[int]bool{}
		for _, ref := range refs.Constitutional {
			if articleBaseRe.FindString(ref.Value) == num {
				pages[ref.Page] = true
			}
		}
		entry.ObservedPages = make([]int, 0, len(pages))
		for p := range pages {
			entry.ObservedPages = append(entry.ObservedPages, p)
		}
		sort.Ints(entry.ObservedPages)

		matrix[num] = entry
	}
	return matrix
}

func buildStatisticsSummary(stats pdfscan.Statistics, res *tagger.Result, now time.Time) StatisticsSummary {
	return StatisticsSummary{
		Fiscal:      fiscalIndicators,
		Corruption:  corruptionIndicators,
		Social:      socialIndicatorSummary,
		Governance:  governanceIndicators,
		HumanRights: humanRightsIndicators,
		Comparative: comparativeAnalysis,
		Extraction: map[string]any{
			"pages_extracted":       stats.TotalPages,
			"words_extracted":       stats.TotalWords,
			"monetary_sum":          stats.TotalMonetarySum,
			"scandal_mentions":      stats.TotalScandals,
			"paragraphs_tagged":     len(res.Paragraphs),
			"recommendations_found": len(res.Recommendations),
			"findings_found":        len(res.Findings),
			"suspected_violations":  len(res.Violations),
		},
		Metadata: map[string]string{
			"data_sources":     "National Treasury, KNBS, World Bank, IMF, EACC, OAG, CoB, UNICEF",
			"period_covered":   "2014-2025",
			"last_updated":     now.Format(time.RFC3339),
			"methodology":      "Official statistics, audit reports, research data",
			"confidence_level": "High for official data, Medium for estimates",
		},
	}
}

// corruptionCaseRows flattens the case table for CSV output.
func corruptionCaseRows() (header []string, rows [][]string) {
	header = []string{"case_id", "case_name", "year", "amount_stolen", "sector",
		"status", "recovery_rate", "key_perpetrators", "impact"}
	for _, c := range corruptionCases {
		rows = append(rows, []string{
			c.ID, c.Name, strconv.Itoa(c.Year), fmtFloat(c.AmountStolen),
			c.Sector, c.Status, c.RecoveryRate, c.KeyPerpetrators, c.Impact,
		})
	}
	return header, rows
}

// debtAnalysisRows merges the yearly debt series with the 2025 composition
// breakdown; columns not applicable to a row are left blank.
func debtAnalysisRows() (header []string, rows [][]string) {
	header = []string{"year", "debt_amount_trillions", "debt_gdp_percentage",
		"per_capita_debt_thousands", "debt_service_ratio", "debt_type",
		"risk_level", "amount", "percentage", "interest_rate"}

	for i, year := range debtTimeline.years {
		risk := "Medium"
		if y, _ := strconv.Atoi(year); y >= 2020 {
			risk = "High"
		}
		rows = append(rows, []string{
			year,
			fmtFloat(debtTimeline.amounts[i]),
			fmtFloat(debtTimeline.gdp[i]),
			fmtFloat(debtTimeline.amounts[i] * 1000 / 50),
			fmtFloat(debtTimeline.gdp[i] * 0.8),
			"Total Public Debt",
			risk,
			"", "", "",
		})
	}
	for _, c := range debtComposition {
		rows = append(rows, []string{
			strconv.Itoa(c.Year), "", "", "", "",
			c.DebtType, "",
			fmtFloat(c.Amount), fmtFloat(c.Percentage), fmtFloat(c.InterestRate),
		})
	}
	return header, rows
}

func budgetAnalysisRows() (header []string, rows [][]string) {
	header = []string{"sector", "amount_2024", "amount_2025", "percentage_change",
		"priority", "efficiency_score", "corruption_risk", "notes"}
	for _, b := range budgetSectors {
		rows = append(rows, []string{
			b.Sector, fmtFloat(b.Amount2024), fmtFloat(b.Amount2025),
			fmtFloat(b.PercentageChange), b.Priority,
			strconv.Itoa(b.EfficiencyScore), b.CorruptionRisk, b.Notes,
		})
	}
	return header, rows
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
