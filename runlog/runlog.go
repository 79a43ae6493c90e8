// CLAUDE:SUMMARY SQLite-backed run log — pipeline runs, stage durations, batched page-quality datapoints.

// Package runlog persists pipeline run history to SQLite: one row per run,
// wall-clock durations per stage, and per-page extraction quality
// datapoints. Quality datapoints are buffered and flushed in batches;
// recording is non-blocking and flush failures are logged, never
// propagated, so the pipeline result does not depend on the run log.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mwangaza-lab/auditpipe/dbopen"
)

// Run is one pipeline invocation.
type Run struct {
	ID         string
	SourceFile string
	StartedAt  time.Time
	FinishedAt time.Time
	Status     string // running, ok, failed
	Pages      int
	Error      string
}

// StageTiming is one recorded stage duration.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// PageQuality is one page-level quality datapoint.
type PageQuality struct {
	RunID      string
	PageNumber int
	Score      float64
	WordCount  int
	Method     string
}

// Config tunes the datapoint buffer. Zero values get defaults.
type Config struct {
	BufferSize    int           // default 100
	FlushInterval time.Duration // default 5s
	Logger        *slog.Logger
}

func (c *Config) defaults() {
	if c.BufferSize <= 0 {
		c.BufferSize = 100
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = 5 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Log is the run log handle. Safe for concurrent use.
type Log struct {
	db     *sql.DB
	owned  bool
	logger *slog.Logger

	mu     sync.Mutex
	buffer []PageQuality
	size   int

	stop chan struct{}
	done chan struct{}
}

// Open opens (creating if needed) the run log database at path and starts
// the flush loop.
func Open(path string, cfg Config) (*Log, error) {
	cfg.defaults()
	db, err := dbopen.Open(path, dbopen.WithMkdirAll(), dbopen.WithSchema(Schema))
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}
	l := newLog(db, cfg)
	l.owned = true
	return l, nil
}

// NewWithDB wraps an already opened database that has the run log schema
// applied. The caller keeps ownership of db.
func NewWithDB(db *sql.DB, cfg Config) *Log {
	cfg.defaults()
	return newLog(db, cfg)
}

func newLog(db *sql.DB, cfg Config) *Log {
	l := &Log{
		db:     db,
		logger: cfg.Logger,
		buffer: make([]PageQuality, 0, cfg.BufferSize),
		size:   cfg.BufferSize,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go l.flushLoop(cfg.FlushInterval)
	return l
}

// BeginRun inserts a new run row and returns its uuid.
func (l *Log) BeginRun(ctx context.Context, sourceFile string) (string, error) {
	id := uuid.NewString()
	_, err := dbopen.Exec(ctx, l.db,
		`INSERT INTO runs (run_id, source_file, started_at) VALUES (?,?,?)`,
		id, sourceFile, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return id, nil
}

// FinishRun closes a run row. errMsg is stored only for failed runs.
func (l *Log) FinishRun(ctx context.Context, runID, status string, pages int, errMsg string) error {
	var stored sql.NullString
	if status == "failed" && errMsg != "" {
		stored = sql.NullString{String: errMsg, Valid: true}
	}
	_, err := dbopen.Exec(ctx, l.db,
		`UPDATE runs SET finished_at = ?, status = ?, pages = ?, error = ? WHERE run_id = ?`,
		time.Now().Unix(), status, pages, stored, runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// RecordStage stores one stage duration.
func (l *Log) RecordStage(ctx context.Context, runID, stage string, d time.Duration) error {
	_, err := dbopen.Exec(ctx, l.db,
		`INSERT INTO stage_timings (run_id, stage, duration_ms) VALUES (?,?,?)`,
		runID, stage, d.Milliseconds())
	if err != nil {
		return fmt.Errorf("record stage %s: %w", stage, err)
	}
	return nil
}

// TimeStage returns a func that records the elapsed time since the call.
// Recording errors are logged, not returned.
func (l *Log) TimeStage(ctx context.Context, runID, stage string) func() {
	start := time.Now()
	return func() {
		if err := l.RecordStage(ctx, runID, stage, time.Since(start)); err != nil {
			l.logger.Error("run log stage timing dropped", "stage", stage, "error", err)
		}
	}
}

// RecordQuality queues one page quality datapoint. Non-blocking; a full
// buffer triggers a synchronous flush of the batch.
func (l *Log) RecordQuality(p PageQuality) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buffer = append(l.buffer, p)
	if len(l.buffer) >= l.size {
		l.flushLocked()
	}
}

// RecentRuns returns the latest runs, newest first.
func (l *Log) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT run_id, source_file, started_at, COALESCE(finished_at, 0),
		        status, COALESCE(pages, 0), COALESCE(error, '')
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var started, finished int64
		if err := rows.Scan(&r.ID, &r.SourceFile, &started, &finished,
			&r.Status, &r.Pages, &r.Error); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt = time.Unix(started, 0)
		if finished > 0 {
			r.FinishedAt = time.Unix(finished, 0)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// StageTimings returns the recorded durations for one run, in record order.
func (l *Log) StageTimings(ctx context.Context, runID string) ([]StageTiming, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT stage, duration_ms FROM stage_timings WHERE run_id = ? ORDER BY recorded_at, timing_id`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("query stage timings: %w", err)
	}
	defer rows.Close()

	var out []StageTiming
	for rows.Next() {
		var st StageTiming
		var ms int64
		if err := rows.Scan(&st.Stage, &ms); err != nil {
			return nil, fmt.Errorf("scan stage timing: %w", err)
		}
		st.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, st)
	}
	return out, rows.Err()
}

// QualityForRun returns the flushed page datapoints for one run in page
// order. Call Flush first if the run just finished.
func (l *Log) QualityForRun(ctx context.Context, runID string) ([]PageQuality, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT run_id, page_number, score, word_count, method
		 FROM page_quality WHERE run_id = ? ORDER BY page_number`, runID)
	if err != nil {
		return nil, fmt.Errorf("query page quality: %w", err)
	}
	defer rows.Close()

	var out []PageQuality
	for rows.Next() {
		var p PageQuality
		if err := rows.Scan(&p.RunID, &p.PageNumber, &p.Score, &p.WordCount, &p.Method); err != nil {
			return nil, fmt.Errorf("scan page quality: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Flush forces a synchronous flush of buffered datapoints.
func (l *Log) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushLocked()
}

// Close flushes remaining datapoints and stops the flush loop. Databases
// opened by Open are closed; ones passed to NewWithDB stay open.
func (l *Log) Close() error {
	close(l.stop)
	<-l.done
	if l.owned {
		return l.db.Close()
	}
	return nil
}

func (l *Log) flushLoop(interval time.Duration) {
	defer close(l.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			l.Flush()
			return
		case <-ticker.C:
			l.Flush()
		}
	}
}

// flushLocked writes the buffered batch in one transaction. Failures drop
// the batch with an error log.
func (l *Log) flushLocked() {
	if len(l.buffer) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := dbopen.RunTx(ctx, l.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO page_quality (run_id, page_number, score, word_count, method) VALUES (?,?,?,?,?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, p := range l.buffer {
			if _, err := stmt.ExecContext(ctx, p.RunID, p.PageNumber, p.Score, p.WordCount, p.Method); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.logger.Error("run log flush failed", "datapoints", len(l.buffer), "error", err)
	}
	l.buffer = l.buffer[:0]
}
