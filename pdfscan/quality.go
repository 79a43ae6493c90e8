// CLAUDE:SUMMARY Per-page quality scoring — heuristic completeness proxy in [0,1].
package pdfscan

// scorePage computes the page-extraction quality score from four counts.
// Weighted bands: text volume up to 0.5, structure up to 0.3, table and
// figure presence 0.1 each, capped at 1.0.
//
// The score is a completeness proxy, not a correctness measure: it says how
// much structure was recovered, not whether the text is right.
func scorePage(wordCount, paragraphCount, tableCount, figureCount int) float64 {
	score := 0.0

	switch {
	case wordCount > 500:
		score += 0.5
	case wordCount > 200:
		score += 0.3
	case wordCount > 50:
		score += 0.1
	}

	switch {
	case paragraphCount > 10:
		score += 0.3
	case paragraphCount > 5:
		score += 0.2
	case paragraphCount > 0:
		score += 0.1
	}

	if tableCount > 0 {
		score += 0.1
	}
	if figureCount > 0 {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
