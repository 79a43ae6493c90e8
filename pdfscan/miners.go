// CLAUDE:SUMMARY Fact miners — pure pattern-matchers over cleaned page text (money, years, articles, scandals...).
package pdfscan

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// Miners is the family of independent fact extractors applied per page.
// Every method is a pure function of its input text and the Miners config:
// re-running on the same text yields identical, order-stable results.
type Miners struct {
	// ContextChars is the amount of surrounding text captured on each side
	// of a match. Default 100.
	ContextChars int

	// MaxYear bounds the year filter (inclusive). Normally the current year
	// plus ten, fixed at construction so results don't shift mid-run.
	MaxYear int

	logger *slog.Logger
}

// NewMiners builds the miner set with the given upper year bound.
func NewMiners(contextChars, maxYear int, logger *slog.Logger) *Miners {
	if contextChars <= 0 {
		contextChars = 100
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Miners{ContextChars: contextChars, MaxYear: maxYear, logger: logger}
}

// safe runs one miner inside an isolation boundary: a panicking miner yields
// its zero result and an error log instead of aborting the page.
func (m *Miners) safe(name string, pageNr int, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("miner failed", "miner", name, "page", pageNr, "panic", r)
		}
	}()
	fn()
}

// magnitudeFor resolves the multiplier by scanning the matched unit text in
// magnitude order; the first hit wins, default 1. Standalone single-letter
// abbreviations (T/B/M) count, substrings of ordinary words do not.
func magnitudeFor(unitText string) (float64, string) {
	lower := strings.ToLower(unitText)
	switch {
	case strings.Contains(lower, "trillion") || hasAbbrev(unitText, 'T'):
		return 1e12, "trillion"
	case strings.Contains(lower, "billion") || hasAbbrev(unitText, 'B'):
		return 1e9, "billion"
	case strings.Contains(lower, "million") || hasAbbrev(unitText, 'M'):
		return 1e6, "million"
	}
	return 1, "units"
}

// hasAbbrev reports whether the text contains letter c as a standalone
// magnitude abbreviation ("2.4B", "1.2 T").
func hasAbbrev(text string, c byte) bool {
	for i := 0; i < len(text); i++ {
		if text[i] != c {
			continue
		}
		prevOK := i == 0 || text[i-1] == ' ' || (text[i-1] >= '0' && text[i-1] <= '9')
		nextOK := i == len(text)-1 || text[i+1] == ' ' || text[i+1] == '.' || text[i+1] == ','
		if prevOK && nextOK && i > 0 {
			return true
		}
	}
	return false
}

type amountKey struct {
	amount float64
	offset int
}

// Monetary extracts currency-marked amounts, normalized to base units.
// Overlapping patterns matching the same span dedup by (amount, offset).
func (m *Miners) Monetary(text string, pageNr int) []MonetaryValue {
	var out []MonetaryValue
	seen := make(map[amountKey]bool)

	m.safe("monetary", pageNr, func() {
		for _, re := range monetaryPatterns {
			for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
				matched := text[loc[0]:loc[1]]
				numStart, numEnd := loc[4], loc[5]
				if numStart < 0 {
					continue
				}
				numStr := strings.ReplaceAll(text[numStart:numEnd], ",", "")
				amount, err := strconv.ParseFloat(numStr, 64)
				if err != nil {
					continue
				}
				mult, unit := magnitudeFor(matched)
				amount *= mult

				key := amountKey{amount, loc[0]}
				if seen[key] {
					continue
				}
				seen[key] = true

				currency := "foreign"
				if localCurrencyRe.MatchString(matched) {
					currency = "local"
				}
				out = append(out, MonetaryValue{
					Amount:   amount,
					Original: matched,
					Currency: currency,
					Unit:     unit,
					Context:  contextAround(text, loc[0], loc[1], m.ContextChars),
					Page:     pageNr,
					Offset:   loc[0],
				})
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	})
	return out
}

// Percentages extracts numeric values immediately preceding a % marker.
func (m *Miners) Percentages(text string, pageNr int) []Percentage {
	var out []Percentage
	seen := make(map[amountKey]bool)

	m.safe("percentage", pageNr, func() {
		for _, loc := range percentageRe.FindAllStringSubmatchIndex(text, -1) {
			v, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
			if err != nil {
				continue
			}
			key := amountKey{v, loc[0]}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, Percentage{
				Value:   v,
				Context: contextAround(text, loc[0], loc[1], m.ContextChars),
				Page:    pageNr,
				Offset:  loc[0],
			})
		}
	})
	return out
}

// Years extracts 4-digit tokens in [1900, MaxYear] as a sorted,
// deduplicated set. Future years up to the bound are allowed (projections).
func (m *Miners) Years(text string, pageNr int) []int {
	set := make(map[int]bool)
	m.safe("years", pageNr, func() {
		for _, match := range yearRe.FindAllString(text, -1) {
			y, err := strconv.Atoi(match)
			if err != nil {
				continue
			}
			if y >= 1900 && y <= m.MaxYear {
				set[y] = true
			}
		}
	})
	out := make([]int, 0, len(set))
	for y := range set {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// Articles extracts constitutional article references as a sorted set of
// article-number strings ("201", "10(2)(a)").
func (m *Miners) Articles(text string, pageNr int) []string {
	set := make(map[string]bool)
	m.safe("articles", pageNr, func() {
		for _, sub := range articleRe.FindAllStringSubmatch(text, -1) {
			set[sub[1]] = true
		}
	})
	return sortedSet(set)
}

// Legal extracts act/statute references from the curated pattern list.
func (m *Miners) Legal(text string, pageNr int) []string {
	set := make(map[string]bool)
	m.safe("legal", pageNr, func() {
		for _, re := range legalPatterns {
			for _, match := range re.FindAllString(text, -1) {
				set[strings.TrimSpace(match)] = true
			}
		}
	})
	return sortedSet(set)
}

// Institutions extracts oversight/fiscal institution references.
func (m *Miners) Institutions(text string, pageNr int) []string {
	set := make(map[string]bool)
	m.safe("institutions", pageNr, func() {
		for _, re := range institutionalPatterns {
			for _, match := range re.FindAllString(text, -1) {
				set[match] = true
			}
		}
	})
	return sortedSet(set)
}

// Citations extracts bracketed citation markers ("[1]", "[2, 5]").
func (m *Miners) Citations(text string, pageNr int) []string {
	set := make(map[string]bool)
	m.safe("citations", pageNr, func() {
		for _, sub := range citationRe.FindAllStringSubmatch(text, -1) {
			set["["+sub[1]+"]"] = true
		}
	})
	return sortedSet(set)
}

// Scandals scans the static scandal keyword table. The scan stops at the
// first matching keyword per scandal, so a page yields at most one mention
// per scandal. A nearby monetary figure is attached when present.
func (m *Miners) Scandals(text string, pageNr int) []ScandalMention {
	var out []ScandalMention
	m.safe("scandals", pageNr, func() {
		lower := strings.ToLower(text)
		for _, sc := range scandalKeywords {
			for _, kw := range sc.Keywords {
				idx := strings.Index(lower, strings.ToLower(kw))
				if idx < 0 {
					continue
				}
				mention := ScandalMention{
					Name:    sc.Name,
					Keyword: kw,
					Context: contextAround(text, idx, idx+len(kw), m.ContextChars),
					Page:    pageNr,
				}
				if amt := scandalAmountRe.FindString(text); amt != "" {
					mention.Amount = amt
				}
				out = append(out, mention)
				break
			}
		}
	})
	return out
}

// Keywords flags which governance-vocabulary terms appear on the page.
func (m *Miners) Keywords(text string, pageNr int) []string {
	var out []string
	m.safe("keywords", pageNr, func() {
		lower := strings.ToLower(text)
		for _, kw := range topicKeywords {
			if containsWord(lower, kw) {
				out = append(out, kw)
			}
		}
	})
	return out
}

// Figures extracts numbered figure captions.
func (m *Miners) Figures(text string, pageNr int) []Figure {
	var out []Figure
	m.safe("figures", pageNr, func() {
		for _, sub := range figureRe.FindAllStringSubmatch(text, -1) {
			caption := strings.TrimSpace(sub[2])
			if len(caption) > 200 {
				caption = caption[:200]
			}
			out = append(out, Figure{Number: sub[1], Caption: caption, Page: pageNr})
		}
	})
	return out
}

// containsWord reports a whole-word, case-folded hit (haystack must already
// be lowercase).
func containsWord(haystack, word string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], word)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isWordByte(haystack[i-1])
		afterIdx := i + len(word)
		after := afterIdx >= len(haystack) || !isWordByte(haystack[afterIdx])
		if before && after {
			return true
		}
		idx = i + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
