// CLAUDE:SUMMARY HTTP server for the produced datasets — chi static file routes, run history API, dashboard page.
// Command auditserve serves the pipeline output directory over HTTP: the
// stage artifacts and consolidated datasets as static JSON/CSV, recent run
// history from the run log, and a minimal dashboard page.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "modernc.org/sqlite"

	"github.com/mwangaza-lab/auditpipe/runlog"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dataDir := flag.String("data", "output", "pipeline output directory to serve")
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

	var rl *runlog.Log
	if *runlogDB != "" {
		l, err := runlog.Open(*runlogDB, runlog.Config{Logger: logger})
		if err != nil {
			logger.Error("auditserve: run log", "error", err)
			os.Exit(1)
		}
		rl = l
		defer rl.Close()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", dashboard(*dataDir))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Get("/api/runs", runsHandler(rl))
	r.Handle("/data/*", http.StripPrefix("/data/", http.FileServer(http.Dir(*dataDir))))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("auditserve: listening", "addr", *addr, "data", *dataDir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("auditserve: fatal", "error", err)
		os.Exit(1)
	}
}

func runsHandler(rl *runlog.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rl == nil {
			http.Error(w, `{"error":"run log not configured"}`, http.StatusNotFound)
			return
		}
		limit := 20
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
				limit = n
			}
		}
		runs, err := rl.RecentRuns(r.Context(), limit)
		if err != nil {
			slog.Error("auditserve: runs query", "error", err)
			http.Error(w, `{"error":"query failed"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(runs)
	}
}

// dashboard renders a static index page linking the served datasets.
func dashboard(dataDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, dashboardHTML, dataDir)
	}
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
<title>Audit Pipeline</title>
<style>
body { font-family: sans-serif; margin: 2rem; max-width: 60rem; }
h1 { border-bottom: 2px solid #2c3e50; padding-bottom: .5rem; }
li { margin: .3rem 0; }
code { background: #f4f4f4; padding: .1rem .3rem; }
</style>
</head>
<body>
<h1>Audit Pipeline Output</h1>
<p>Serving <code>%s</code></p>
<h2>Consolidated datasets</h2>
<ul>
<li><a href="/data/stage3/sankey_data.json">Fund flow (sankey)</a></li>
<li><a href="/data/stage3/charts_data.json">Chart series</a></li>
<li><a href="/data/stage3/timeline_data.json">Timeline</a></li>
<li><a href="/data/stage3/constitutional_matrix.json">Constitutional matrix</a></li>
<li><a href="/data/stage3/reform_agenda.json">Reform agenda</a></li>
<li><a href="/data/stage3/statistics_summary.json">Statistics summary</a></li>
<li><a href="/data/stage3/corruption_cases.csv">Corruption cases (CSV)</a></li>
<li><a href="/data/stage3/debt_analysis.csv">Debt analysis (CSV)</a></li>
<li><a href="/data/stage3/budget_analysis.csv">Budget analysis (CSV)</a></li>
</ul>
<h2>Validation</h2>
<ul>
<li><a href="/data/validation/constitutional_validation.json">Validation report</a></li>
<li><a href="/data/validation/citizen_guide.txt">Citizen guide</a></li>
</ul>
<h2>Extraction artifacts</h2>
<ul>
<li><a href="/data/stage1/">Stage 1 (extraction)</a></li>
<li><a href="/data/stage2/">Stage 2 (tagging)</a></li>
<li><a href="/data/constitution/">Constitution</a></li>
</ul>
<h2>Runs</h2>
<p><a href="/api/runs">Recent pipeline runs (JSON)</a></p>
</body>
</html>
`
