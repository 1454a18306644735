package drivers

import "github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"

// SelectColumn picks the column that is the rightmost occurrence for the most
// distinct row labels. Ties go to the larger column index. It returns false
// when there are no candidates.
func SelectColumn(cands []models.Candidate) (int, bool) {
	rightmost := make(map[string]int)
	for _, c := range cands {
		if c.Col > rightmost[c.RowLabel] {
			rightmost[c.RowLabel] = c.Col
		}
	}

	counts := make(map[int]int)
	for _, col := range rightmost {
		counts[col]++
	}

	selected, best := 0, 0
	for col, n := range counts {
		if n > best || (n == best && col > selected) {
			selected, best = col, n
		}
	}
	return selected, best > 0
}

// FilterToColumn splits candidates into those in col and the rest,
// preserving order.
func FilterToColumn(cands []models.Candidate, col int) (kept, dropped []models.Candidate) {
	for _, c := range cands {
		if c.Col == col {
			kept = append(kept, c)
		} else {
			dropped = append(dropped, c)
		}
	}
	return kept, dropped
}
