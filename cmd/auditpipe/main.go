// CLAUDE:SUMMARY CLI entry point for auditpipe — runs the report processing pipeline end to end.
// Command auditpipe processes an audit report PDF into its datasets.
//
// Usage:
//
//	auditpipe -config auditpipe.yaml       # run with config file
//	auditpipe -pdf report.pdf -out output  # run with defaults
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "modernc.org/sqlite"

	"github.com/mwangaza-lab/auditpipe/pipeline"
)

func main() {
	configPath := flag.String("config", "", "path to auditpipe.yaml config file")
	pdfPath := flag.String("pdf", "", "audit report PDF")
	constitutionPath := flag.String("constitution", "", "constitution PDF (optional)")
	outDir := flag.String("out", "output", "output directory")
	runlogDB := flag.String("runlog", "", "run log SQLite path (optional)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := resolveConfig(*configPath, *pdfPath, *constitutionPath, *outDir, *runlogDB)
	if err != nil {
		logger.Error("auditpipe: config", "error", err)
		os.Exit(1)
	}
	cfg.Logger = logger

	res, err := pipeline.New(*cfg).Run(ctx)
	if err != nil {
		logger.Error("auditpipe: fatal", "error", err)
		os.Exit(1)
	}
	logger.Info("auditpipe: done",
		"run_id", res.RunID,
		"pages", res.Pages,
		"paragraphs", res.Paragraphs,
		"artifacts", len(res.Artifacts))
}

func resolveConfig(configPath, pdfPath, constitutionPath, outDir, runlogDB string) (*pipeline.Config, error) {
	if configPath != "" {
		return pipeline.LoadConfigFile(configPath)
	}
	if pdfPath == "" {
		fmt.Fprintln(os.Stderr, "usage: auditpipe -config <file> | -pdf <report.pdf> [-constitution <pdf>] [-out <dir>] [-runlog <db>]")
		os.Exit(1)
	}
	return &pipeline.Config{
		ReportPDF:       pdfPath,
		ConstitutionPDF: constitutionPath,
		OutputDir:       outDir,
		RunLogDB:        runlogDB,
	}, nil
}
