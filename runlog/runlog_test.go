package runlog

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mwangaza-lab/auditpipe/dbopen"
)

func testLog(t *testing.T) *Log {
	t.Helper()
	db := dbopen.OpenMemory(t, dbopen.WithSchema(Schema))
	l := NewWithDB(db, Config{
		BufferSize:    4,
		FlushInterval: time.Hour, // flushes in tests are explicit
		Logger:        slog.New(slog.DiscardHandler),
	})
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRunLifecycle(t *testing.T) {
	ctx := context.Background()
	l := testLog(t)

	id, err := l.BeginRun(ctx, "report.pdf")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if err := l.RecordStage(ctx, id, "extract", 1500*time.Millisecond); err != nil {
		t.Fatalf("RecordStage: %v", err)
	}
	if err := l.FinishRun(ctx, id, "ok", 12, ""); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	runs, err := l.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Status != "ok" || r.Pages != 12 || r.SourceFile != "report.pdf" {
		t.Errorf("run = %+v", r)
	}
	if r.FinishedAt.IsZero() {
		t.Error("finished_at not set")
	}

	timings, err := l.StageTimings(ctx, id)
	if err != nil {
		t.Fatalf("StageTimings: %v", err)
	}
	if len(timings) != 1 || timings[0].Stage != "extract" || timings[0].Duration != 1500*time.Millisecond {
		t.Errorf("timings = %+v", timings)
	}
}

func TestFinishRun_StoresErrorOnlyWhenFailed(t *testing.T) {
	ctx := context.Background()
	l := testLog(t)

	id, _ := l.BeginRun(ctx, "a.pdf")
	if err := l.FinishRun(ctx, id, "ok", 1, "ignored"); err != nil {
		t.Fatal(err)
	}
	runs, _ := l.RecentRuns(ctx, 1)
	if runs[0].Error != "" {
		t.Errorf("error = %q, want empty for ok run", runs[0].Error)
	}

	id2, _ := l.BeginRun(ctx, "b.pdf")
	if err := l.FinishRun(ctx, id2, "failed", 0, "open: no such file"); err != nil {
		t.Fatal(err)
	}
	runs, _ = l.RecentRuns(ctx, 10)
	for _, r := range runs {
		if r.ID == id2 && r.Error != "open: no such file" {
			t.Errorf("failed run error = %q", r.Error)
		}
	}
}

func TestRecordQuality_BatchedFlush(t *testing.T) {
	ctx := context.Background()
	l := testLog(t)

	id, _ := l.BeginRun(ctx, "report.pdf")
	for page := 1; page <= 3; page++ {
		l.RecordQuality(PageQuality{RunID: id, PageNumber: page, Score: 0.8, WordCount: 300, Method: "layout"})
	}

	// Below the buffer size, nothing is flushed yet.
	points, err := l.QualityForRun(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 0 {
		t.Fatalf("points before flush = %d, want 0", len(points))
	}

	// The fourth datapoint fills the buffer and triggers a flush.
	l.RecordQuality(PageQuality{RunID: id, PageNumber: 4, Score: 0.2, WordCount: 40, Method: "ocr"})
	points, err = l.QualityForRun(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 4 {
		t.Fatalf("points after flush = %d, want 4", len(points))
	}
	if points[3].Method != "ocr" || points[3].Score != 0.2 {
		t.Errorf("last point = %+v", points[3])
	}
}

func TestFlush_Explicit(t *testing.T) {
	ctx := context.Background()
	l := testLog(t)

	id, _ := l.BeginRun(ctx, "report.pdf")
	l.RecordQuality(PageQuality{RunID: id, PageNumber: 1, Score: 0.5, WordCount: 100, Method: "basic"})
	l.Flush()

	points, err := l.QualityForRun(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 1 {
		t.Fatalf("points = %d, want 1", len(points))
	}
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "runlog.db")
	l, err := Open(path, Config{Logger: slog.New(slog.DiscardHandler)})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer l.Close()

	if _, err := l.BeginRun(context.Background(), "report.pdf"); err != nil {
		t.Fatalf("BeginRun on fresh db: %v", err)
	}
}
