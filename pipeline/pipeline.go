// CLAUDE:SUMMARY Pipeline driver — sequences extraction, constitution, tagging, consolidation and validation.

// Package pipeline sequences the processing stages over one audit report:
// stage 1 extracts the report PDF into its artifacts, the constitution
// stage extracts the constitution PDF, stage 2 tags paragraphs, stage 3
// consolidates into visualization datasets, and stage 4 validates article
// references. Each stage's output lands in its own directory under the
// configured output root; stage durations and page quality go to the run
// log when one is configured.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mwangaza-lab/auditpipe/consolidate"
	"github.com/mwangaza-lab/auditpipe/katiba"
	"github.com/mwangaza-lab/auditpipe/pdfscan"
	"github.com/mwangaza-lab/auditpipe/runlog"
	"github.com/mwangaza-lab/auditpipe/tagger"
	"github.com/mwangaza-lab/auditpipe/validate"
)

// Pipeline runs the configured stages in order.
type Pipeline struct {
	cfg Config
	log *runlog.Log
}

// New builds a pipeline. The run log is opened lazily in Run so a pipeline
// value can be constructed without touching the filesystem.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{cfg: cfg}
}

// Result summarizes one pipeline run.
type Result struct {
	RunID      string
	Pages      int
	Paragraphs int
	Artifacts  []string
}

// Run executes the enabled stages in order. The first stage error aborts
// the run; the run log row is closed either way.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	logger := p.cfg.Logger

	if p.cfg.RunLogDB != "" {
		rl, err := runlog.Open(p.cfg.RunLogDB, runlog.Config{Logger: logger})
		if err != nil {
			// The pipeline result never depends on the run log.
			logger.Error("run log unavailable", "path", p.cfg.RunLogDB, "error", err)
		} else {
			p.log = rl
			defer rl.Close()
		}
	}

	runID := ""
	if p.log != nil {
		id, err := p.log.BeginRun(ctx, p.cfg.ReportPDF)
		if err != nil {
			logger.Error("run log begin failed", "error", err)
		} else {
			runID = id
		}
	}

	res := &Result{RunID: runID}
	err := p.runStages(ctx, runID, res)

	if p.log != nil && runID != "" {
		status, errMsg := "ok", ""
		if err != nil {
			status, errMsg = "failed", err.Error()
		}
		if ferr := p.log.FinishRun(ctx, runID, status, res.Pages, errMsg); ferr != nil {
			logger.Error("run log finish failed", "error", ferr)
		}
	}
	return res, err
}

func (p *Pipeline) runStages(ctx context.Context, runID string, res *Result) error {
	logger := p.cfg.Logger

	var doc *pdfscan.Document
	if enabled(p.cfg.Stages.Extract) {
		stop := p.timeStage(ctx, runID, "extract")
		d, err := p.extract(ctx, runID)
		stop()
		if err != nil {
			return fmt.Errorf("extraction stage: %w", err)
		}
		doc = d
		res.Pages = d.Statistics.TotalPages
		res.Artifacts = append(res.Artifacts, pdfscan.ArtifactNames...)
	}

	if enabled(p.cfg.Stages.Constitution) && p.cfg.ConstitutionPDF != "" {
		stop := p.timeStage(ctx, runID, "constitution")
		err := p.constitution(ctx)
		stop()
		if err != nil {
			return fmt.Errorf("constitution stage: %w", err)
		}
		res.Artifacts = append(res.Artifacts, katiba.ConstitutionArtifact)
	}

	if enabled(p.cfg.Stages.Tag) {
		var pages []pdfscan.PageRecord
		if doc != nil {
			pages = doc.Pages
		} else {
			// Standalone tagging over an earlier run's output.
			loaded, err := pdfscan.LoadPages(p.cfg.stage1Dir())
			if err != nil {
				logger.Warn("tagging skipped: no extraction output to load", "dir", p.cfg.stage1Dir(), "error", err)
			} else {
				pages = loaded
			}
		}
		if len(pages) > 0 {
			stop := p.timeStage(ctx, runID, "tag")
			tagged := tagger.New(logger).Process(pages)
			err := tagger.WriteArtifacts(tagged, p.cfg.stage2Dir(), logger)
			stop()
			if err != nil {
				return fmt.Errorf("tagging stage: %w", err)
			}
			res.Paragraphs = len(tagged.Paragraphs)
		}
	}

	if enabled(p.cfg.Stages.Consolidate) {
		stop := p.timeStage(ctx, runID, "consolidate")
		written, err := consolidate.New(consolidate.Config{
			Stage1Dir: p.cfg.stage1Dir(),
			Stage2Dir: p.cfg.stage2Dir(),
			OutputDir: p.cfg.stage3Dir(),
			Logger:    logger,
		}).Run(ctx)
		stop()
		if err != nil {
			return fmt.Errorf("consolidation stage: %w", err)
		}
		res.Artifacts = append(res.Artifacts, written...)
	}

	if enabled(p.cfg.Stages.Validate) {
		stop := p.timeStage(ctx, runID, "validate")
		_, err := validate.New(validate.Config{
			Stage1Dir:        p.cfg.stage1Dir(),
			ConstitutionPath: filepath.Join(p.cfg.constitutionDir(), katiba.ConstitutionArtifact),
			OutputDir:        p.cfg.validationDir(),
			Logger:           logger,
		}).Run(ctx)
		stop()
		if err != nil {
			return fmt.Errorf("validation stage: %w", err)
		}
		res.Artifacts = append(res.Artifacts, validate.ReportFile, validate.GuideFile)
	}

	return nil
}

func (p *Pipeline) extract(ctx context.Context, runID string) (*pdfscan.Document, error) {
	if _, err := os.Stat(p.cfg.ReportPDF); err != nil {
		return nil, fmt.Errorf("report pdf: %w", err)
	}

	ex := pdfscan.New(pdfscan.Config{
		OCRWordThreshold: p.cfg.Extraction.OCRWordThreshold,
		PreferredRatio:   p.cfg.Extraction.PreferredRatio,
		MaxFileSize:      p.cfg.Extraction.MaxFileSizeBytes,
		Logger:           p.cfg.Logger,
	})
	doc, err := ex.ExtractAll(ctx, p.cfg.ReportPDF)
	if err != nil {
		return nil, err
	}
	if err := pdfscan.WriteArtifacts(doc, p.cfg.stage1Dir(), p.cfg.Logger); err != nil {
		return nil, err
	}

	if p.log != nil && runID != "" {
		for _, page := range doc.Pages {
			p.log.RecordQuality(runlog.PageQuality{
				RunID:      runID,
				PageNumber: page.PageNumber,
				Score:      page.Quality.QualityScore,
				WordCount:  page.Stats.WordCount,
				Method:     page.Quality.MethodUsed,
			})
		}
		p.log.Flush()
	}
	return doc, nil
}

func (p *Pipeline) constitution(ctx context.Context) error {
	con, err := katiba.New(katiba.Config{Logger: p.cfg.Logger}).Extract(ctx, p.cfg.ConstitutionPDF)
	if err != nil {
		return err
	}
	dir := p.cfg.constitutionDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create constitution dir: %w", err)
	}
	if err := katiba.ExportJSON(con, filepath.Join(dir, katiba.ConstitutionArtifact)); err != nil {
		return err
	}
	return katiba.ExportSQLite(ctx, con, filepath.Join(dir, "constitution.db"))
}

// timeStage is a no-op without a run log.
func (p *Pipeline) timeStage(ctx context.Context, runID, stage string) func() {
	if p.log == nil || runID == "" {
		start := time.Now()
		return func() {
			p.cfg.Logger.Debug("stage finished", "stage", stage, "duration", time.Since(start))
		}
	}
	return p.log.TimeStage(ctx, runID, stage)
}
