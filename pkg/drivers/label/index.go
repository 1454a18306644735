package label

import "github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"

// Index answers label queries for one sheet. For each row or column it
// touches it builds a table of the nearest label once, so repeated queries
// cost O(1) instead of a fresh scan. An Index is not safe for concurrent use.
type Index struct {
	g    models.Grid
	m    Matcher
	rows int
	cols int
	up   map[int][]string // column → nearest label at or above each row
	left map[int][]string // row → nearest label at or left of each column
}

// Index returns an Index over g using the resolver's Matcher.
func (r *Resolver) Index(g models.Grid) *Index {
	rows, cols := g.Dimensions()
	return &Index{
		g:    g,
		m:    r.m,
		rows: rows,
		cols: cols,
		up:   make(map[int][]string),
		left: make(map[int][]string),
	}
}

// RowLabel returns the nearest label to the left of (row, col), or "".
func (x *Index) RowLabel(row, col int) string {
	return x.ScanLeft(row, col-1)
}

// ColumnLabel returns the nearest label above (row, col), or "".
func (x *Index) ColumnLabel(row, col int) string {
	return x.ScanUp(row-1, col)
}

// ScanLeft is Resolver.ScanLeft answered from the row table.
func (x *Index) ScanLeft(row, startCol int) string {
	if row < 1 || row > x.rows || startCol < 1 {
		return ""
	}
	startCol = min(startCol, x.cols)

	nearest, ok := x.left[row]
	if !ok {
		nearest = make([]string, x.cols+1)
		for c := 1; c <= x.cols; c++ {
			nearest[c] = nearest[c-1]
			if cell := x.g.Cell(row, c); x.m.IsLabel(cell) {
				nearest[c] = cell.Value
			}
		}
		x.left[row] = nearest
	}
	return nearest[startCol]
}

// ScanUp is Resolver.ScanUp answered from the column table.
func (x *Index) ScanUp(startRow, col int) string {
	if col < 1 || col > x.cols || startRow < 1 {
		return ""
	}
	startRow = min(startRow, x.rows)

	nearest, ok := x.up[col]
	if !ok {
		nearest = make([]string, x.rows+1)
		for r := 1; r <= x.rows; r++ {
			nearest[r] = nearest[r-1]
			if cell := x.g.Cell(r, col); x.m.IsLabel(cell) {
				nearest[r] = cell.Value
			}
		}
		x.up[col] = nearest
	}
	return nearest[startRow]
}
