package drivers

import (
	"errors"
	"testing"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainInput(t *testing.T) {
	wb := workbookOf(modelSheet("Sheet1"))

	ex, err := Explain(wb, "Sheet1!D2", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, &Explanation{
		Sheet:       "Sheet1",
		Cell:        "D2",
		Kind:        "number",
		Value:       "100",
		Referenced:  true,
		Reason:      models.ReasonLiteral,
		RowLabel:    "Revenue",
		ColumnLabel: "FY2024",
		Candidate:   true,
	}, ex)
}

func TestExplainFormula(t *testing.T) {
	sheet := modelSheet("Sheet1")
	sheet.Set(4, 5, models.FormulaCell("=IF(E2>E3,E2,E3)"))

	ex, err := Explain(workbookOf(sheet), "'Sheet1'!$E$4", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "formula", ex.Kind)
	assert.False(t, ex.Referenced)
	assert.Equal(t, models.ReasonDerivedFormula, ex.Reason)
	assert.Equal(t, []string{"IF"}, ex.Functions)
	assert.False(t, ex.Candidate)

	ex, err = Explain(workbookOf(sheet), "Sheet1!E2", DefaultOptions())
	require.NoError(t, err)
	assert.True(t, ex.Referenced)
	assert.Equal(t, models.ReasonAggregateFormula, ex.Reason)
	assert.Equal(t, "Revenue", ex.RowLabel)
	assert.True(t, ex.Candidate)
}

func TestExplainStrictNeedsColumnLabel(t *testing.T) {
	sheet := models.NewSheet("S")
	sheet.Set(2, 1, models.TextCell("Units"))
	sheet.Set(2, 2, models.NumberCell(3, "3"))

	lenient, err := Explain(workbookOf(sheet), "S!B2", DefaultOptions())
	require.NoError(t, err)
	assert.True(t, lenient.Candidate)

	strict, err := Explain(workbookOf(sheet), "S!B2", Options{Variant: VariantStrict})
	require.NoError(t, err)
	assert.False(t, strict.Candidate)
}

func TestExplainErrors(t *testing.T) {
	wb := workbookOf(modelSheet("Sheet1"))

	_, err := Explain(wb, "Nope!A1", DefaultOptions())
	assert.ErrorIs(t, err, ErrSheetNotFound)
	var analysisErr *AnalysisError
	require.True(t, errors.As(err, &analysisErr))
	assert.Equal(t, "Nope", analysisErr.SheetName)
	assert.Equal(t, "explain", analysisErr.Stage)

	_, err = Explain(wb, "D2", DefaultOptions())
	assert.ErrorIs(t, err, parser.ErrMalformedReference)
}
