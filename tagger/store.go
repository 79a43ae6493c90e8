package tagger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Artifact file names. The consolidation stage loads tagging output back by
// these exact names.
const (
	ArtifactParagraphs      = "tagged_paragraphs.json"
	ArtifactRecommendations = "recommendations.json"
	ArtifactFindings        = "key_findings.json"
	ArtifactTimeline        = "timeline_events.json"
	ArtifactViolations      = "suspected_violations.json"
)

// WriteArtifacts serializes the tagging result into its artifact files under
// dir, creating it if needed.
func WriteArtifacts(res *Result, dir string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create tagging artifact dir: %w", err)
	}

	files := []struct {
		name string
		data any
	}{
		{ArtifactParagraphs, res.Paragraphs},
		{ArtifactRecommendations, res.Recommendations},
		{ArtifactFindings, res.Findings},
		{ArtifactTimeline, res.Timeline},
		{ArtifactViolations, res.Violations},
	}
	for _, f := range files {
		if err := writeJSON(filepath.Join(dir, f.name), f.data); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		logger.Debug("tagging artifact written", "file", f.name)
	}
	return nil
}

// LoadResult reads tagging artifacts back from dir. Missing files are
// tolerated with a warning and leave their slice empty, so downstream stages
// can run on partial output. FindingsByTag is recomputed rather than stored.
func LoadResult(dir string, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	res := &Result{
		Paragraphs:      []TaggedParagraph{},
		Recommendations: []Recommendation{},
		Findings:        []Finding{},
		Timeline:        []TimelineEvent{},
		Statistics:      []Statistic{},
		Violations:      []Violation{},
	}

	loads := []struct {
		name string
		into any
	}{
		{ArtifactParagraphs, &res.Paragraphs},
		{ArtifactRecommendations, &res.Recommendations},
		{ArtifactFindings, &res.Findings},
		{ArtifactTimeline, &res.Timeline},
		{ArtifactViolations, &res.Violations},
	}
	for _, l := range loads {
		path := filepath.Join(dir, l.name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("tagging artifact missing", "file", l.name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", l.name, err)
		}
		if err := json.Unmarshal(data, l.into); err != nil {
			return nil, fmt.Errorf("decode %s: %w", l.name, err)
		}
	}

	res.FindingsByTag = make(map[string][]Finding)
	for _, f := range res.Findings {
		for _, tag := range f.Tags {
			res.FindingsByTag[tag] = append(res.FindingsByTag[tag], f)
		}
	}
	return res, nil
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
