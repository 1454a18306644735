package drivers

import (
	"slices"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/formula"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/parser"
)

// Explanation describes how the analysis treats one cell.
type Explanation struct {
	Sheet string `json:"sheet"`
	Cell  string `json:"cell"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
	// Referenced reports whether any formula on the sheet names the cell.
	Referenced bool          `json:"referenced"`
	Reason     models.Reason `json:"reason"`
	Detail     string        `json:"detail,omitempty"`
	// Functions lists the functions called when the cell holds a formula.
	Functions   []string `json:"functions,omitempty"`
	RowLabel    string   `json:"row_label"`
	ColumnLabel string   `json:"column_label"`
	// Candidate reports whether the cell passes classification and labeling.
	// Whether it survives column selection depends on the rest of the sheet.
	Candidate bool `json:"candidate"`
}

// Explain looks at a sheet-qualified reference such as "Inputs!D2" and
// reports its value, classification and labels.
func Explain(wb *models.Workbook, ref string, opts Options) (*Explanation, error) {
	sheetName, cellRef, err := parser.ParseQualifiedRef(ref)
	if err != nil {
		return nil, err
	}
	g, ok := wb.Sheet(sheetName)
	if !ok {
		return nil, NewAnalysisError(sheetName, "explain", ErrSheetNotFound)
	}
	a, err := newAnalyzer(opts)
	if err != nil {
		return nil, err
	}

	cell := g.Cell(cellRef.Row, cellRef.Col)
	ex := &Explanation{
		Sheet:       sheetName,
		Cell:        cellRef.String(),
		Kind:        cell.Kind.String(),
		Value:       cell.Value,
		Referenced:  slices.Contains(formula.SheetReferences(g).Tokens, cellRef.String()),
		RowLabel:    a.resolver.RowLabel(g, cellRef.Row, cellRef.Col),
		ColumnLabel: a.resolver.ColumnLabel(g, cellRef.Row, cellRef.Col),
	}
	if cell.IsFormulaText() {
		ex.Functions = formula.Functions(cell.Value)
	}

	isDriver, reason, detail := a.classifier.Classify(cell)
	ex.Reason, ex.Detail = reason, detail
	ex.Candidate = isDriver && ex.RowLabel != "" && (ex.ColumnLabel != "" || !a.requireColumn)
	return ex, nil
}
