package classify

import (
	"strings"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/formula"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
)

// Classifier applies one labeling and driver policy.
type Classifier struct {
	// Operators disqualify text from being a label.
	Operators string
	// Functions are the aggregate functions allowed in driver formulas.
	Functions []string
}

// New returns a Classifier. Nil functions select DefaultAggregateFunctions.
func New(operators string, functions []string) *Classifier {
	if functions == nil {
		functions = DefaultAggregateFunctions
	}
	return &Classifier{Operators: operators, Functions: functions}
}

// IsLabel reports whether c is a non-empty text-only cell.
func (cl *Classifier) IsLabel(c models.Cell) bool {
	return c.Value != "" && IsTextOnly(c, cl.Operators)
}

// Classify decides whether a referenced cell is a driver. Anything that is
// not formula text is a driver, as are number-only and aggregate formulas.
// For other formulas the detail lists the functions they call.
func (cl *Classifier) Classify(c models.Cell) (bool, models.Reason, string) {
	switch {
	case c.IsEmpty():
		return false, models.ReasonEmpty, ""
	case !c.IsFormulaText():
		return true, models.ReasonLiteral, ""
	case IsNumberOnlyFormula(c.Value):
		return true, models.ReasonNumberOnlyFormula, ""
	case isInputDriverFormula(c.Value, cl.Functions):
		return true, models.ReasonAggregateFormula, ""
	}
	return false, models.ReasonDerivedFormula, strings.Join(formula.Functions(c.Value), ",")
}
