// Package label finds the nearest textual row and column labels of a cell.
package label

import "github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"

// Matcher decides whether a cell can serve as a label.
type Matcher interface {
	IsLabel(c models.Cell) bool
}

// Resolver resolves labels with one Matcher.
type Resolver struct {
	m Matcher
}

// NewResolver returns a Resolver using m.
func NewResolver(m Matcher) *Resolver {
	return &Resolver{m: m}
}

// RowLabel returns the nearest label to the left of (row, col), or "".
func (r *Resolver) RowLabel(g models.Grid, row, col int) string {
	return r.ScanLeft(g, row, col-1)
}

// ColumnLabel returns the nearest label above (row, col), or "".
func (r *Resolver) ColumnLabel(g models.Grid, row, col int) string {
	return r.ScanUp(g, row-1, col)
}

// ScanLeft walks from startCol down to column 1 on row and returns the first
// label found. startCol itself is included.
func (r *Resolver) ScanLeft(g models.Grid, row, startCol int) string {
	for c := startCol; c >= 1; c-- {
		if cell := g.Cell(row, c); r.m.IsLabel(cell) {
			return cell.Value
		}
	}
	return ""
}

// ScanUp walks from startRow up to row 1 on col and returns the first label
// found. startRow itself is included.
func (r *Resolver) ScanUp(g models.Grid, startRow, col int) string {
	for row := startRow; row >= 1; row-- {
		if cell := g.Cell(row, col); r.m.IsLabel(cell) {
			return cell.Value
		}
	}
	return ""
}
