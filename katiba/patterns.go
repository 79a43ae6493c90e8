package katiba

import "regexp"

var (
	// articleStartRe anchors article boundaries. Segmentation runs between
	// consecutive starts on a page, which stands in for the lookahead the
	// boundary would otherwise need.
	articleStartRe = regexp.MustCompile(`Article\s*(\d+[a-z]?)\b`)

	chapterRe    = regexp.MustCompile(`CHAPTER\s*(\d+)[:\s]*([A-Z][A-Z\s]+)`)
	partRe       = regexp.MustCompile(`PART\s*([IVXLCDM]+)[:\s]*([A-Z][A-Z\s]+)`)
	rightsRe     = regexp.MustCompile(`(?i)right to\s+(.+?)(?:\.|;)`)
	obligationRe = regexp.MustCompile(`(?i)(?:shall|must)\s+(.+?)(?:\.|;)`)
	prohibitRe   = regexp.MustCompile(`(?i)(?:shall not|must not|no)\s+(.+?)(?:\.|;)`)
	preambleRe   = regexp.MustCompile(`(?is)WE, THE PEOPLE OF KENYA(.+?)CHAPTER`)
	amendmentRe  = regexp.MustCompile(`(?i)Amendment\s*(?:No\.)?\s*(\d+).*?(\d{4})`)
)

// chapterSpan maps an inclusive article-number range to its chapter and part
// in the 2010 constitution. The ranges are fixed by the document itself;
// articles 1-274 are covered.
type chapterSpan struct {
	lo, hi  int
	chapter string
	part    string
}

var chapterSpans = []chapterSpan{
	{1, 3, "1", "I"},
	{4, 19, "4", "II"},
	{20, 58, "4", "II"},
	{59, 72, "5", "III"},
	{73, 80, "6", "IV"},
	{81, 98, "7", "V"},
	{99, 118, "8", "VI"},
	{119, 132, "9", "VII"},
	{133, 159, "10", "VIII"},
	{160, 173, "11", "IX"},
	{174, 200, "11", "IX"},
	{201, 228, "12", "X"},
	{229, 232, "13", "XI"},
	{233, 261, "14", "XII"},
	{262, 264, "15", "XIII"},
	{265, 269, "16", "XIV"},
	{270, 274, "17", "XV"},
}

// articleLocation resolves the chapter and part for a numeric article
// number. Out-of-range or non-numeric numbers map to "Unknown".
func articleLocation(num int) (chapter, part string) {
	for _, s := range chapterSpans {
		if num >= s.lo && num <= s.hi {
			return s.chapter, s.part
		}
	}
	return "Unknown", "Unknown"
}

// Rights-index category keyword lists.
var (
	economicKeywords   = []string{"health", "food", "water", "housing", "education", "social security", "work"}
	civilKeywords      = []string{"speech", "assembly", "religion", "privacy", "life", "dignity"}
	proceduralKeywords = []string{"fair trial", "arrest", "detention", "justice", "hearing"}
	groupKeywords      = []string{"children", "women", "disabled", "youth", "minorities", "older"}
)
