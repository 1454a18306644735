package drivers

import (
	"cmp"
	"slices"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/label"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/parser"
)

// Assemble builds one record per candidate in the selected column, adding
// the two cells to its right and their column labels. labels must index g.
func Assemble(g models.Grid, cands []models.Candidate, selected int, labels *label.Index, anchor Anchor) []models.DriverRecord {
	records := make([]models.DriverRecord, 0, len(cands))
	for _, c := range cands {
		first, second := selected+1, selected+2
		records = append(records, models.DriverRecord{
			Sheet:                  g.Name(),
			RowLabel:               c.RowLabel,
			Row:                    c.Row,
			Cell:                   c.Cell,
			Content:                c.Content,
			ColumnLabel:            c.ColumnLabel,
			FirstRightCell:         parser.CellName(c.Row, first),
			FirstRightColumnLabel:  adjacentLabel(labels, anchor, c.Row, first),
			SecondRightCell:        parser.CellName(c.Row, second),
			SecondRightColumnLabel: adjacentLabel(labels, anchor, c.Row, second),
		})
	}
	return records
}

func adjacentLabel(labels *label.Index, anchor Anchor, row, col int) string {
	if anchor == AnchorSame {
		return labels.ScanUp(row, col)
	}
	return labels.ColumnLabel(row, col)
}

// SortRecords orders records by sheet name, then row.
func SortRecords(records []models.DriverRecord) {
	slices.SortStableFunc(records, func(a, b models.DriverRecord) int {
		if c := cmp.Compare(a.Sheet, b.Sheet); c != 0 {
			return c
		}
		return cmp.Compare(a.Row, b.Row)
	})
}
