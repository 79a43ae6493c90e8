// CLAUDE:SUMMARY Artifact serialization — the seven JSON output files plus schema verification.
package pdfscan

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Artifact file names. Downstream consumers (consolidation, the dashboard,
// the validation pass) address outputs by these exact names.
const (
	ArtifactRawText    = "raw_text.json"
	ArtifactStructure  = "document_structure.json"
	ArtifactNumerics   = "numeric_facts.json"
	ArtifactReferences = "references.json"
	ArtifactMetadata   = "extraction_metadata.json"
	ArtifactStatistics = "extraction_statistics.json"
	ArtifactQuality    = "quality_metrics.json"
)

// ArtifactNames lists every file WriteArtifacts produces, in write order.
var ArtifactNames = []string{
	ArtifactRawText,
	ArtifactStructure,
	ArtifactNumerics,
	ArtifactReferences,
	ArtifactMetadata,
	ArtifactStatistics,
	ArtifactQuality,
}

// structureDoc is the shape of document_structure.json.
type structureDoc struct {
	Chapters []Chapter              `json:"chapters"`
	Pages    map[string]PageSummary `json:"pages"`
}

// PageKey formats the canonical page key used in keyed artifacts
// ("page_001", "page_042"). Zero-padding keeps lexical and numeric order
// identical for documents under 1000 pages.
func PageKey(pageNr int) string {
	return fmt.Sprintf("page_%03d", pageNr)
}

// WriteArtifacts serializes the document into the seven artifact files under
// dir, creating it if needed. Each file is written independently; the first
// failure aborts the set.
func WriteArtifacts(doc *Document, dir string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	// raw_text.json carries the full PageRecord per key: it is the one
	// artifact a later tagging run can rebuild pages from.
	rawText := make(map[string]PageRecord, len(doc.Pages))
	for _, p := range doc.Pages {
		rawText[PageKey(p.PageNumber)] = p
	}

	structure := structureDoc{
		Chapters: doc.Chapters,
		Pages:    make(map[string]PageSummary, len(doc.PageSummaries)),
	}
	if structure.Chapters == nil {
		structure.Chapters = []Chapter{}
	}
	for pageNr, s := range doc.PageSummaries {
		structure.Pages[PageKey(pageNr)] = s
	}

	files := []struct {
		name string
		data any
	}{
		{ArtifactRawText, rawText},
		{ArtifactStructure, structure},
		{ArtifactNumerics, doc.Numerics},
		{ArtifactReferences, doc.References},
		{ArtifactMetadata, doc.Metadata},
		{ArtifactStatistics, doc.Statistics},
		{ArtifactQuality, doc.QualityMetrics},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeJSON(path, f.data); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		logger.Debug("artifact written", "file", f.name)
	}
	logger.Info("artifacts written", "dir", dir, "files", len(files))
	return nil
}

// LoadPages rebuilds the page records from a previously written raw_text.json
// under dir, sorted by page number. It lets the tagging stage run over an
// earlier run's output without re-extracting the source PDF.
func LoadPages(dir string) ([]PageRecord, error) {
	path := filepath.Join(dir, ArtifactRawText)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ArtifactRawText, err)
	}
	keyed := make(map[string]PageRecord)
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ArtifactRawText, err)
	}
	pages := make([]PageRecord, 0, len(keyed))
	for _, p := range keyed {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].PageNumber < pages[j].PageNumber })
	return pages, nil
}

// writeJSON writes indented JSON through a temp file and rename so a crashed
// run never leaves a half-written artifact behind.
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
