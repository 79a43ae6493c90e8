package runlog

// Schema contains the complete DDL for the run log tables. It is applied
// through dbopen.WithSchema on Open.
const Schema = `
-- Pipeline runs
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    source_file TEXT NOT NULL,
    started_at INTEGER NOT NULL,
    finished_at INTEGER,
    status TEXT NOT NULL DEFAULT 'running',
    pages INTEGER,
    error TEXT,
    created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);

-- Per-stage wall-clock durations
CREATE TABLE IF NOT EXISTS stage_timings (
    timing_id TEXT PRIMARY KEY DEFAULT ('st_' || hex(randomblob(16))),
    run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    stage TEXT NOT NULL,
    duration_ms INTEGER NOT NULL,
    recorded_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
);
CREATE INDEX IF NOT EXISTS idx_stage_timings_run ON stage_timings(run_id, recorded_at);

-- Per-page extraction quality datapoints
CREATE TABLE IF NOT EXISTS page_quality (
    datapoint_id TEXT PRIMARY KEY DEFAULT ('pq_' || hex(randomblob(16))),
    run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    page_number INTEGER NOT NULL,
    score REAL NOT NULL,
    word_count INTEGER NOT NULL,
    method TEXT NOT NULL,
    recorded_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
);
CREATE INDEX IF NOT EXISTS idx_page_quality_run ON page_quality(run_id, page_number);
`
