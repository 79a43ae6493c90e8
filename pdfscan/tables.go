// CLAUDE:SUMMARY Multi-backend table detection with shape-keyed deduplication.
package pdfscan

import (
	"log/slog"
	"regexp"
	"strings"
)

// tableBackend is one table-detection method over raw page text. Backends
// run on the pre-clean text because whitespace alignment is the signal.
type tableBackend struct {
	name   string
	detect func(text string, pageNr int) []Table
}

var tableBackends = []tableBackend{
	{"lattice", detectLatticeTables},
	{"stream", detectStreamTables},
}

// extractTables runs every table backend inside an isolation boundary,
// normalizes candidates to rectangular matrices, then deduplicates.
//
// Dedup rule (kept as-is from the reference behavior, known limitations and
// all): candidates group by exact (rows, columns); each group keeps only the
// table with the largest rows×columns product. Two genuinely different
// tables sharing a shape merge; the same table detected with a one-row
// discrepancy does not.
func extractTables(text string, pageNr int, logger *slog.Logger) []Table {
	var candidates []Table
	for _, b := range tableBackends {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Debug("table backend failed", "backend", b.name, "page", pageNr, "panic", r)
				}
			}()
			candidates = append(candidates, b.detect(text, pageNr)...)
		}()
	}
	return dedupTables(candidates)
}

func dedupTables(candidates []Table) []Table {
	type shape struct{ rows, cols int }
	best := make(map[shape]Table)
	var order []shape

	for _, t := range candidates {
		s := shape{t.Rows, t.Columns}
		cur, ok := best[s]
		if !ok {
			best[s] = t
			order = append(order, s)
			continue
		}
		if t.Rows*t.Columns > cur.Rows*cur.Columns {
			best[s] = t
		}
	}

	out := make([]Table, 0, len(best))
	for _, s := range order {
		out = append(out, best[s])
	}
	// Largest, most informative tables first.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Rows*out[j].Columns > out[j-1].Rows*out[j-1].Columns; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// normalizeTable pads ragged rows with empty cells so every table is a
// rectangular rows×columns matrix, and fills the preview sample.
func normalizeTable(method string, pageNr int, rows [][]string) (Table, bool) {
	if len(rows) < 2 {
		return Table{}, false
	}
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	if cols < 2 {
		return Table{}, false
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		row := make([]string, cols)
		for j := 0; j < cols; j++ {
			if j < len(r) {
				row[j] = strings.TrimSpace(r[j])
			}
		}
		cells[i] = row
	}
	sample := cells
	if len(sample) > 3 {
		sample = sample[:3]
	}
	return Table{
		Method:  method,
		Page:    pageNr,
		Rows:    len(cells),
		Columns: cols,
		Cells:   cells,
		Sample:  sample,
	}, true
}

// detectLatticeTables finds runs of consecutive lines delimited by pipe
// characters (ruled/exported tables survive text extraction this way).
func detectLatticeTables(text string, pageNr int) []Table {
	var tables []Table
	var run [][]string

	flush := func() {
		if t, ok := normalizeTable("lattice", pageNr, run); ok {
			tables = append(tables, t)
		}
		run = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.Count(trimmed, "|") >= 2 {
			cells := strings.Split(strings.Trim(trimmed, "|"), "|")
			if isRuleLine(cells) {
				continue
			}
			run = append(run, cells)
			continue
		}
		if len(run) > 0 {
			flush()
		}
	}
	if len(run) > 0 {
		flush()
	}
	return tables
}

// isRuleLine skips markdown-style separator rows (---|---).
func isRuleLine(cells []string) bool {
	for _, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if strings.Trim(c, "-:") != "" {
			return false
		}
	}
	return true
}

var columnGapRe = regexp.MustCompile(`\s{2,}`)

// detectStreamTables finds runs of consecutive lines that split into the
// same number of columns on wide whitespace gaps (whitespace-aligned
// tables with no ruling).
func detectStreamTables(text string, pageNr int) []Table {
	var tables []Table
	var run [][]string
	runCols := 0

	flush := func() {
		if t, ok := normalizeTable("stream", pageNr, run); ok {
			tables = append(tables, t)
		}
		run = nil
		runCols = 0
	}

	for _, line := range strings.Split(text, "\n") {
		cells := columnGapRe.Split(strings.TrimSpace(line), -1)
		if len(cells) >= 3 {
			if runCols != 0 && len(cells) != runCols {
				flush()
			}
			runCols = len(cells)
			run = append(run, cells)
			continue
		}
		if len(run) > 0 {
			flush()
		}
	}
	if len(run) > 0 {
		flush()
	}
	return tables
}
