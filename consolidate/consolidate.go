// CLAUDE:SUMMARY Stage-3 consolidation — merges extraction output with curated datasets into the visualization files.

// Package consolidate turns stage-1 extraction artifacts and stage-2 tagging
// output into the fixed set of visualization and report datasets: fund-flow
// sankey, chart series, event timeline, constitutional violation matrix,
// case/debt/budget tables, reform agenda and the statistics summary.
package consolidate

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mwangaza-lab/auditpipe/pdfscan"
	"github.com/mwangaza-lab/auditpipe/tagger"
)

// Output file names.
const (
	FileSankey     = "sankey_data.json"
	FileCharts     = "charts_data.json"
	FileTimeline   = "timeline_data.json"
	FileMatrix     = "constitutional_matrix.json"
	FileCases      = "corruption_cases.csv"
	FileDebt       = "debt_analysis.csv"
	FileBudget     = "budget_analysis.csv"
	FileReforms    = "reform_agenda.json"
	FileStatistics = "statistics_summary.json"
)

// OutputNames lists every file Run produces, in write order.
var OutputNames = []string{
	FileSankey, FileCharts, FileTimeline, FileMatrix,
	FileCases, FileDebt, FileBudget, FileReforms, FileStatistics,
}

// Config configures a consolidation run.
type Config struct {
	// Stage1Dir holds the extraction artifacts.
	Stage1Dir string
	// Stage2Dir holds the tagging artifacts.
	Stage2Dir string
	// OutputDir receives the consolidated datasets.
	OutputDir string

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Consolidator rebuilds every consolidated dataset from scratch on each run;
// there is no incremental path.
type Consolidator struct {
	cfg Config
}

func New(cfg Config) *Consolidator {
	cfg.defaults()
	return &Consolidator{cfg: cfg}
}

// Run loads both stages, builds all datasets, and writes them to the output
// directory. Missing inputs degrade to empty values with a warning; only
// write failures abort.
func (c *Consolidator) Run(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := c.cfg.Logger
	logger.Info("consolidation started",
		"stage1", c.cfg.Stage1Dir, "stage2", c.cfg.Stage2Dir)

	var stats pdfscan.Statistics
	c.loadSafe(pdfscan.ArtifactStatistics, &stats)
	var refs pdfscan.References
	c.loadSafe(pdfscan.ArtifactReferences, &refs)

	tagged, err := tagger.LoadResult(c.cfg.Stage2Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("load tagging output: %w", err)
	}

	if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	now := time.Now()
	jsonFiles := []struct {
		name string
		data any
	}{
		{FileSankey, buildSankey()},
		{FileCharts, buildCharts(now)},
		{FileTimeline, buildTimeline(tagged.Timeline, now)},
		{FileMatrix, buildMatrix(refs, tagged.Violations)},
		{FileReforms, reformAgenda},
		{FileStatistics, buildStatisticsSummary(stats, tagged, now)},
	}

	var written []string
	for _, f := range jsonFiles {
		if err := writeJSON(filepath.Join(c.cfg.OutputDir, f.name), f.data); err != nil {
			return written, fmt.Errorf("write %s: %w", f.name, err)
		}
		written = append(written, f.name)
		logger.Debug("dataset written", "file", f.name)
	}

	csvFiles := []struct {
		name  string
		build func() ([]string, [][]string)
	}{
		{FileCases, corruptionCaseRows},
		{FileDebt, debtAnalysisRows},
		{FileBudget, budgetAnalysisRows},
	}
	for _, f := range csvFiles {
		header, rows := f.build()
		if err := writeCSV(filepath.Join(c.cfg.OutputDir, f.name), header, rows); err != nil {
			return written, fmt.Errorf("write %s: %w", f.name, err)
		}
		written = append(written, f.name)
		logger.Debug("dataset written", "file", f.name, "rows", len(rows))
	}

	logger.Info("consolidation finished", "dir", c.cfg.OutputDir, "files", len(written))
	return written, nil
}

// loadSafe reads one stage-1 artifact into v; a missing or unreadable file
// leaves v at its zero value so consolidation can still run.
func (c *Consolidator) loadSafe(name string, v any) {
	path := filepath.Join(c.cfg.Stage1Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.cfg.Logger.Warn("extraction artifact missing", "file", name)
		} else {
			c.cfg.Logger.Error("extraction artifact unreadable", "file", name, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		c.cfg.Logger.Error("extraction artifact corrupt", "file", name, "error", err)
	}
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

func writeCSV(path string, header []string, rows [][]string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
