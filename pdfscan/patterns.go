// CLAUDE:SUMMARY Pattern tables — the hand-tuned domain vocabulary the fact miners run on.
package pdfscan

import "regexp"

// The pattern tables below are the actual domain knowledge of the engine,
// hand-tuned to the vocabulary of one audit report (Kenyan shillings, named
// scandals, constitutional articles 1-274). They live here as swappable data
// so the miners stay testable in isolation.

var monetaryPatterns = []*regexp.Regexp{
	// Symbol/code prefix: "KSh 2.4 billion", "KES 500,000", "$1.2M"
	regexp.MustCompile(`(?i)\b(KSh|KES)\.?\s*([\d,]+(?:\.\d+)?)\s*(trillion|billion|million|[TBM]\b)?`),
	regexp.MustCompile(`(?i)(\$|USD)\s*([\d,]+(?:\.\d+)?)\s*(trillion|billion|million|[TBM]\b)?`),
	// Magnitude-word suffix form: "2.4 billion shillings"
	regexp.MustCompile(`(?i)()([\d,]+(?:\.\d+)?)\s*(trillion|billion|million)\s*(?:shillings|KSh)`),
}

// localCurrencyRe tags a monetary match as local currency.
var localCurrencyRe = regexp.MustCompile(`(?i)KSh|KES|\bSh\.|shilling`)

var (
	percentageRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	yearRe       = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	articleRe    = regexp.MustCompile(`(?i)Article\s*(\d+[a-z]?(?:\(\d+[a-z]?\))?)`)
	citationRe   = regexp.MustCompile(`\[(\d+(?:,\s*\d+)*)\]`)
	figureRe     = regexp.MustCompile(`(?i)Figure\s*(\d+(?:\.\d+)?)[:.\s]\s*([^.]{3,200})`)
	tableCapRe   = regexp.MustCompile(`(?i)Table\s*(\d+(?:\.\d+)?)[:.\s]\s*([^.]{3,200})`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
)

// legalPatterns match act/statute references. The named acts are curated,
// not learned.
var legalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z][a-zA-Z ]+Act(?:\s*(?:No\.)?\s*\d{4})?\b`),
	regexp.MustCompile(`(?i)\bConstitution\s*(?:of Kenya)?\s*2010\b`),
	regexp.MustCompile(`(?i)\bPublic Finance Management Act\b`),
	regexp.MustCompile(`(?i)\bAnti-Corruption and Economic Crimes Act\b`),
	regexp.MustCompile(`(?i)\bLeadership and Integrity Act\b`),
	regexp.MustCompile(`(?i)\bPublic Procurement and Asset Disposal Act\b`),
}

// institutionalPatterns is the curated acronym/name list of oversight and
// fiscal institutions referenced by the report.
var institutionalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bEACC\b`),
	regexp.MustCompile(`\bODPP\b`),
	regexp.MustCompile(`\bDCI\b`),
	regexp.MustCompile(`\bOAG\b`),
	regexp.MustCompile(`\bCoB\b`),
	regexp.MustCompile(`\bKNBS\b`),
	regexp.MustCompile(`\bKRA\b`),
	regexp.MustCompile(`(?i)\bNational Treasury\b`),
	regexp.MustCompile(`(?i)\bCentral Bank\b`),
	regexp.MustCompile(`\bIMF\b`),
	regexp.MustCompile(`(?i)\bWorld Bank\b`),
	regexp.MustCompile(`(?i)\bParliament\b`),
	regexp.MustCompile(`(?i)\bSenate\b`),
	regexp.MustCompile(`(?i)\bCounty Government\b`),
	regexp.MustCompile(`(?i)\bPublic Service Commission\b`),
	regexp.MustCompile(`(?i)\bAuditor[- ]General\b`),
}

// scandalKeywords maps a canonical scandal name to its keyword variants.
// The miner records at most one mention per scandal per page, keyed by the
// first variant found.
var scandalKeywords = []struct {
	Name     string
	Keywords []string
}{
	{"NYS", []string{"NYS scandal", "National Youth Service scandal", "NYS"}},
	{"KEMSA", []string{"KEMSA scandal", "KEMSA", "COVID scandal"}},
	{"Afya House", []string{"Afya House scandal", "Afya House", "health scandal"}},
	{"Anglo Leasing", []string{"Anglo Leasing"}},
	{"Goldenberg", []string{"Goldenberg scandal", "Goldenberg"}},
	{"maize", []string{"maize scandal", "fertilizer scandal"}},
	{"Arror-Kimwarer", []string{"Arror and Kimwarer", "Arror dam", "Kimwarer dam"}},
	{"ARV", []string{"ARV scandal", "HIV drugs scandal"}},
}

// scandalAmountRe finds a nearby monetary figure to attach to a mention.
var scandalAmountRe = regexp.MustCompile(`(?i)KSh\s*[\d,]+(?:\.\d+)?\s*(?:billion|million)`)

// topicKeywords are governance-vocabulary flags collected per page.
var topicKeywords = []string{
	"debt", "corruption", "audit", "governance",
	"transparency", "accountability", "public funds",
	"misappropriation", "embezzlement", "fraud",
	"oversight", "compliance", "violation", "procurement",
}

// chapterPatterns are tried in order against each page's text; the first
// match on a page opens a new chapter.
var chapterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Chapter\s*(\d+)[:.\s]+(.{3,120})`),
	regexp.MustCompile(`\b(\d+)\.\s+([A-Z][A-Z ,'&-]{20,120})`), // numbered all-caps heading
}
