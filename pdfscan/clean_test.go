package pdfscan

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"split word repair", "A rticle 201 applies", "Article 201 applies"},
		{"replacement char dropped", "bad�glyph", "badglyph"},
		{"page number line removed", "Some text\n42\nMore text", "Some text\n\nMore text"},
		{"whitespace collapsed", "too   many\t\tspaces", "too many spaces"},
		{"blank runs become one break", "para one\n\n\n\npara two", "para one\n\npara two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.in); got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitParagraphs(t *testing.T) {
	text := "This opening paragraph carries enough words to be kept by the splitter.\n\n" +
		"73\n\n" +
		"short\n\n" +
		"A second real paragraph also carries enough words to survive the filter."

	got := splitParagraphs(cleanText(text))
	if len(got) != 2 {
		t.Fatalf("paragraphs = %d, want 2: %q", len(got), got)
	}
	if !strings.HasPrefix(got[0], "This opening") || !strings.HasPrefix(got[1], "A second") {
		t.Errorf("unexpected paragraphs: %q", got)
	}
}

func TestContextAround(t *testing.T) {
	text := "abcdefghij"
	if got := contextAround(text, 4, 6, 2); got != "cdefgh" {
		t.Errorf("contextAround = %q, want cdefgh", got)
	}
	// Window clamps at both ends.
	if got := contextAround(text, 0, 2, 100); got != text {
		t.Errorf("clamped context = %q, want full text", got)
	}
}

// WHAT: context windows and placeholder truncation land on rune boundaries.
// WHY: byte-indexed slicing through multi-byte characters leaks invalid
// UTF-8 into the JSON artifacts.
func TestContextAround_RuneBoundaries(t *testing.T) {
	// "é" is two bytes; force window edges to fall inside it.
	text := strings.Repeat("é", 10) + "KSh 1 billion" + strings.Repeat("é", 10)
	start := strings.Index(text, "KSh")
	end := start + len("KSh 1 billion")

	for n := 1; n <= 6; n++ {
		got := contextAround(text, start, end, n)
		if !utf8.ValidString(got) {
			t.Errorf("n=%d: context %q is not valid UTF-8", n, got)
		}
	}
}

func TestPlaceholderRecord_TruncatesOnRuneBoundary(t *testing.T) {
	raw := strings.Repeat("€", 400) // 1200 bytes; byte 1000 falls mid-rune
	rec := placeholderRecord(3, raw)
	if !utf8.ValidString(rec.Text) {
		t.Fatal("truncated placeholder text is not valid UTF-8")
	}
	if len(rec.Text) > 1000 {
		t.Errorf("text length = %d, want <= 1000", len(rec.Text))
	}
}
