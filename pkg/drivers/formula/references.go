// Package formula scans formula text for cell references and function names.
//
// The scan is lexical: any run of letters immediately followed by digits is
// a reference token, wherever it appears in the formula.
package formula

import (
	"regexp"
	"strings"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
)

// RefPattern matches a candidate cell reference token such as "CP235".
var RefPattern = regexp.MustCompile(`[A-Za-z]+[0-9]+`)

// References returns every reference token in formula, in order of appearance.
func References(formula string) []string {
	return RefPattern.FindAllString(formula, -1)
}

// Scan is the result of scanning one sheet for formulas.
type Scan struct {
	// FormulaCells counts cells whose value is formula text.
	FormulaCells int
	// Tokens holds the distinct upper-cased reference tokens in first-seen
	// order (row-major over the sheet, left to right within a formula).
	Tokens []string
}

// SheetReferences collects the distinct reference tokens used by all
// formulas on the sheet.
func SheetReferences(g models.Grid) Scan {
	var scan Scan
	seen := make(map[string]bool)

	rows, cols := g.Dimensions()
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			cell := g.Cell(r, c)
			if !cell.IsFormulaText() {
				continue
			}
			scan.FormulaCells++
			for _, tok := range References(cell.Value) {
				tok = strings.ToUpper(tok)
				if seen[tok] {
					continue
				}
				seen[tok] = true
				scan.Tokens = append(scan.Tokens, tok)
			}
		}
	}
	return scan
}
