package pdfscan

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	pageNumLine  = regexp.MustCompile(`(?m)^\s*\d+\s*$`)
	paraSplitRe  = regexp.MustCompile(`\n\s*\n| {4,}`)
)

// extraction artifacts seen in the source report: PUA glyphs, split words
// from justified columns, form feeds.
var textRepairs = strings.NewReplacer(
	"�", "",
	"\x00", "",
	"", "•",
	"", "§",
	"\f", "\n",
	"A rticle", "Article",
	"C hapter", "Chapter",
	"P art", "Part",
	"F igure", "Figure",
	"T able", "Table",
)

// cleanText normalizes extracted page text: artifact repair, whitespace
// collapse, header/footer page-number removal. Newlines that separate
// paragraphs are preserved.
func cleanText(text string) string {
	if text == "" {
		return ""
	}
	text = textRepairs.Replace(text)
	text = pageNumLine.ReplaceAllString(text, "")
	text = multiSpaceRe.ReplaceAllString(text, " ")

	// Collapse runs of blank lines to a single paragraph break.
	lines := strings.Split(text, "\n")
	var sb strings.Builder
	blank := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			blank++
			continue
		}
		if sb.Len() > 0 {
			if blank > 0 {
				sb.WriteString("\n\n")
			} else {
				sb.WriteByte('\n')
			}
		}
		sb.WriteString(line)
		blank = 0
	}
	return strings.TrimSpace(sb.String())
}

// splitParagraphs breaks cleaned text into meaningful paragraphs, dropping
// page numbers and short header/footer fragments.
func splitParagraphs(text string) []string {
	raw := paraSplitRe.Split(text, -1)
	var out []string
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// Likely a header, footer or stray number.
		if countWords(p) < 5 && len(p) < 50 {
			continue
		}
		if isDigitsOnly(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func countWords(s string) int {
	return len(strings.Fields(s))
}

func isDigitsOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// contextAround returns up to n bytes of surrounding text on each side of
// the span [start, end), clamped to rune boundaries so a window edge never
// splits a multi-byte character.
func contextAround(text string, start, end, n int) string {
	lo := runeStart(text, start-n)
	hi := end + n
	if hi > len(text) {
		hi = len(text)
	} else {
		hi = runeStart(text, hi)
	}
	return strings.TrimSpace(text[lo:hi])
}

// runeStart backs idx up to the start of the rune containing it.
func runeStart(s string, idx int) int {
	if idx <= 0 {
		return 0
	}
	if idx >= len(s) {
		return len(s)
	}
	for idx > 0 && !utf8.RuneStart(s[idx]) {
		idx--
	}
	return idx
}
