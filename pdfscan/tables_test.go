package pdfscan

import (
	"log/slog"
	"testing"
)

func TestDetectLatticeTables(t *testing.T) {
	text := "Preamble line\n" +
		"| Ministry | Allocation | Spent |\n" +
		"|---|---|---|\n" +
		"| Health | 120 | 98 |\n" +
		"| Education | 200 | 201 |\n" +
		"Closing line\n"

	tables := detectLatticeTables(text, 5)
	if len(tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(tables))
	}
	tab := tables[0]
	if tab.Method != "lattice" || tab.Page != 5 {
		t.Errorf("method/page = %q/%d", tab.Method, tab.Page)
	}
	if tab.Rows != 3 || tab.Columns != 3 {
		t.Errorf("shape = %dx%d, want 3x3 (separator row dropped)", tab.Rows, tab.Columns)
	}
	if tab.Cells[1][0] != "Health" {
		t.Errorf("cell[1][0] = %q, want Health", tab.Cells[1][0])
	}
}

func TestDetectStreamTables(t *testing.T) {
	text := "County allocations were as follows:\n" +
		"Nairobi     38.5     41.2     44.0\n" +
		"Mombasa     12.1     13.0     13.8\n" +
		"Kisumu      9.4      9.9      10.6\n" +
		"\nNarrative resumes here with a normal sentence.\n"

	tables := detectStreamTables(text, 2)
	if len(tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(tables))
	}
	tab := tables[0]
	if tab.Method != "stream" {
		t.Errorf("method = %q", tab.Method)
	}
	if tab.Rows != 3 || tab.Columns != 4 {
		t.Errorf("shape = %dx%d, want 3x4", tab.Rows, tab.Columns)
	}
}

func TestNormalizeTable_PadsRaggedRows(t *testing.T) {
	tab, ok := normalizeTable("stream", 1, [][]string{
		{"a", "b", "c"},
		{"d", "e"},
	})
	if !ok {
		t.Fatal("expected a table")
	}
	if tab.Columns != 3 {
		t.Fatalf("columns = %d, want 3", tab.Columns)
	}
	if tab.Cells[1][2] != "" {
		t.Errorf("missing cell = %q, want empty", tab.Cells[1][2])
	}
}

func TestNormalizeTable_RejectsDegenerate(t *testing.T) {
	if _, ok := normalizeTable("stream", 1, [][]string{{"only", "row"}}); ok {
		t.Error("single row accepted")
	}
	if _, ok := normalizeTable("stream", 1, [][]string{{"one"}, {"col"}}); ok {
		t.Error("single column accepted")
	}
}

func TestDedupTables(t *testing.T) {
	mk := func(method string, rows, cols int) Table {
		return Table{Method: method, Rows: rows, Columns: cols}
	}

	// Same shape from two detectors: keep one. Different shape: keep both.
	out := dedupTables([]Table{
		mk("lattice", 3, 4),
		mk("stream", 3, 4),
		mk("stream", 5, 2),
	})
	if len(out) != 2 {
		t.Fatalf("dedup kept %d tables, want 2", len(out))
	}
	// Area order: 3x4=12 before 5x2=10.
	if out[0].Rows != 3 || out[1].Rows != 5 {
		t.Errorf("order = %dx%d then %dx%d, want area-descending",
			out[0].Rows, out[0].Columns, out[1].Rows, out[1].Columns)
	}
}

func TestExtractTables_MergesBackends(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	text := "| a | b |\n| c | d |\n\n" +
		"x1     y1     z1\n" +
		"x2     y2     z2\n"

	tables := extractTables(text, 1, logger)
	if len(tables) != 2 {
		t.Fatalf("tables = %d, want 2 (one per backend)", len(tables))
	}
}
