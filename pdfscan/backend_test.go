package pdfscan

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// stubBackend scripts PageText behavior for selection and timeout tests.
type stubBackend struct {
	name  string
	text  string
	err   error
	delay time.Duration
	boom  bool
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) PageText(ctx context.Context, pageNr int) TextResult {
	if s.boom {
		panic("scripted panic")
	}
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return TextResult{Err: ctx.Err()}
		}
	}
	return TextResult{Text: s.text, Err: s.err}
}

func (s *stubBackend) Close() error { return nil }

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestSelectText(t *testing.T) {
	tests := []struct {
		name       string
		cands      []candidate
		wantMethod string
	}{
		{
			name:       "no candidates",
			cands:      nil,
			wantMethod: "none",
		},
		{
			// 85 ≥ 0.8×100: the preferred backend wins despite fewer words.
			name: "preferred wins within ratio",
			cands: []candidate{
				{backend: "basic", words: 100},
				{backend: "layout", words: 85},
			},
			wantMethod: "layout",
		},
		{
			// 70 < 0.8×100: the alternate with the higher count wins.
			name: "preferred loses outside ratio",
			cands: []candidate{
				{backend: "basic", words: 100},
				{backend: "layout", words: 70},
			},
			wantMethod: "basic",
		},
		{
			name: "highest count wins without preferred",
			cands: []candidate{
				{backend: "basic", words: 40},
				{backend: "render", words: 90},
			},
			wantMethod: "render",
		},
		{
			name: "preferred alone wins",
			cands: []candidate{
				{backend: "layout", words: 5},
			},
			wantMethod: "layout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, method := selectText(tt.cands, 0.8)
			if method != tt.wantMethod {
				t.Errorf("selectText = %q, want %q", method, tt.wantMethod)
			}
		})
	}
}

func TestRunWithTimeout_Panic(t *testing.T) {
	b := &stubBackend{name: "boom", boom: true}
	res := runWithTimeout(context.Background(), b, 1, time.Second)
	if res.Err == nil {
		t.Fatal("expected error from panicking backend")
	}
	if !strings.Contains(res.Err.Error(), "panicked") {
		t.Errorf("error = %v, want panic wrapper", res.Err)
	}
}

func TestRunWithTimeout_Deadline(t *testing.T) {
	b := &stubBackend{name: "slow", text: "late", delay: time.Second}
	res := runWithTimeout(context.Background(), b, 1, 10*time.Millisecond)
	if res.Err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestCollectCandidates_SkipsFailures(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	backends := []TextBackend{
		&stubBackend{name: "layout", text: words(10)},
		&stubBackend{name: "boom", boom: true},
		&stubBackend{name: "blank", text: "   \n  "},
	}
	cands := collectCandidates(context.Background(), backends, 1, time.Second, logger)
	if len(cands) != 1 {
		t.Fatalf("candidates = %d, want 1 (failures and blanks skipped)", len(cands))
	}
	if cands[0].backend != "layout" || cands[0].words != 10 {
		t.Errorf("candidate = %+v", cands[0])
	}
}

func TestNeedsOCR(t *testing.T) {
	tests := []struct {
		method   string
		selected string
		want     bool
	}{
		{"none", "", true},
		{"layout", words(40), true},   // under threshold
		{"layout", words(100), false}, // at threshold
		{"basic", words(250), false},
	}
	for _, tt := range tests {
		if got := needsOCR(tt.method, tt.selected, 100); got != tt.want {
			t.Errorf("needsOCR(%q, %d words) = %v, want %v",
				tt.method, len(strings.Fields(tt.selected)), got, tt.want)
		}
	}
}

func TestMergeOCR(t *testing.T) {
	layer40 := words(40)

	// WHAT: OCR with fewer words than the selected layer must not replace it.
	// WHY: the fallback exists to recover scanned pages, not to degrade a
	// working text layer with noisy recognition output.
	text, method := mergeOCR(layer40, "layout", words(30))
	if text != layer40 || method != "layout" {
		t.Errorf("weaker OCR replaced the layer: method=%q", method)
	}

	text, method = mergeOCR(layer40, "layout", words(80))
	if method != "ocr" || len(strings.Fields(text)) != 80 {
		t.Errorf("stronger OCR not adopted: method=%q", method)
	}

	// Empty selection: any non-blank OCR output is adopted.
	text, method = mergeOCR("", "none", "recovered text")
	if method != "ocr" || text != "recovered text" {
		t.Errorf("OCR not adopted on empty selection: method=%q", method)
	}

	// Blank OCR on empty selection stays "none".
	_, method = mergeOCR("", "none", "  \n ")
	if method != "none" {
		t.Errorf("blank OCR changed method to %q", method)
	}
}
