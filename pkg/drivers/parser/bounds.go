package parser

import (
	"fmt"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
)

// UsedRange returns the bounding range of populated cells (e.g., "B2:F10"),
// or an empty string for a sheet without data.
func UsedRange(g models.Grid) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(g)
	if minRow < 0 {
		return ""
	}

	start := CellName(minRow, minCol)
	end := CellName(maxRow, maxCol)
	if start == end {
		return start
	}
	return fmt.Sprintf("%s:%s", start, end)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(g models.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	rows, cols := g.Dimensions()
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			if g.Cell(r, c).IsEmpty() {
				continue
			}
			if minRow < 0 || r < minRow {
				minRow = r
			}
			if r > maxRow {
				maxRow = r
			}
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}

	return
}
