package tagger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndLoadArtifacts(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.DiscardHandler)

	res := New(logger).Process(pagesOf(
		"The audit revealed widespread fraud in the procurement of medical supplies.",
		"The ministry should adopt open contracting for all procurement immediately.",
		"The diversion of funds violated Article 201 of the Constitution.",
	))
	if err := WriteArtifacts(res, dir, logger); err != nil {
		t.Fatalf("WriteArtifacts: %v", err)
	}

	for _, name := range []string{ArtifactParagraphs, ArtifactRecommendations,
		ArtifactFindings, ArtifactTimeline, ArtifactViolations} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	got, err := LoadResult(dir, logger)
	if err != nil {
		t.Fatalf("LoadResult: %v", err)
	}
	if len(got.Paragraphs) != len(res.Paragraphs) {
		t.Errorf("paragraphs = %d, want %d", len(got.Paragraphs), len(res.Paragraphs))
	}
	if len(got.Violations) != 1 || got.Violations[0].Article != "201" {
		t.Errorf("violations = %+v", got.Violations)
	}
	// FindingsByTag is rebuilt, not stored.
	if _, ok := got.FindingsByTag["corruption"]; !ok {
		t.Error("findings_by_tag not rebuilt on load")
	}
}

func TestLoadResult_MissingFilesTolerated(t *testing.T) {
	got, err := LoadResult(t.TempDir(), slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("LoadResult: %v", err)
	}
	if got.Paragraphs == nil || len(got.Paragraphs) != 0 {
		t.Errorf("paragraphs = %v, want empty non-nil", got.Paragraphs)
	}
}
