package parser

import (
	"testing"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		letters string
		want    int
	}{
		{"A", 1},
		{"Z", 26},
		{"AA", 27},
		{"CP", 94},
		{"XFD", 16384},
	}

	for _, tt := range tests {
		got, err := ColumnIndex(tt.letters)
		require.NoError(t, err, tt.letters)
		assert.Equal(t, tt.want, got, tt.letters)

		letters, err := ColumnLetters(tt.want)
		require.NoError(t, err)
		assert.Equal(t, tt.letters, letters)
	}

	_, err := ColumnIndex("")
	assert.ErrorIs(t, err, ErrMalformedReference)
	_, err = ColumnLetters(0)
	assert.ErrorIs(t, err, ErrMalformedReference)
}

func TestParseCellRef(t *testing.T) {
	tests := []struct {
		token string
		want  CellRef
	}{
		{"A1", CellRef{Col: 1, Row: 1}},
		{"D2", CellRef{Col: 4, Row: 2}},
		{"CP235", CellRef{Col: 94, Row: 235}},
		{"cp235", CellRef{Col: 94, Row: 235}},
	}

	for _, tt := range tests {
		got, err := ParseCellRef(tt.token)
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.want, got, tt.token)
	}

	assert.Equal(t, "CP235", CellRef{Col: 94, Row: 235}.String())
}

func TestParseCellRefMalformed(t *testing.T) {
	for _, token := range []string{"", "ABC", "123", "A1B", "SHEET2", "A0", "$A$1"} {
		_, err := ParseCellRef(token)
		assert.ErrorIs(t, err, ErrMalformedReference, token)
	}
}

func TestParseQualifiedRef(t *testing.T) {
	sheet, ref, err := ParseQualifiedRef("'My Sheet'!$B$3")
	require.NoError(t, err)
	assert.Equal(t, "My Sheet", sheet)
	assert.Equal(t, CellRef{Col: 2, Row: 3}, ref)

	sheet, ref, err = ParseQualifiedRef("Inputs!d2")
	require.NoError(t, err)
	assert.Equal(t, "Inputs", sheet)
	assert.Equal(t, CellRef{Col: 4, Row: 2}, ref)

	_, _, err = ParseQualifiedRef("A1")
	assert.ErrorIs(t, err, ErrMalformedReference)
	_, _, err = ParseQualifiedRef("Inputs!total")
	assert.ErrorIs(t, err, ErrMalformedReference)
}

func TestCellName(t *testing.T) {
	assert.Equal(t, "D2", CellName(2, 4))
	assert.Equal(t, "", CellName(1, 16385))
	assert.Equal(t, "", CellName(0, 1))
}

func TestUsedRange(t *testing.T) {
	sheet := models.NewSheet("S")
	assert.Equal(t, "", UsedRange(sheet))

	sheet.Set(3, 3, models.TextCell("x"))
	assert.Equal(t, "C3", UsedRange(sheet))

	sheet.Set(2, 2, models.NumberCell(1, "1"))
	sheet.Set(5, 4, models.NumberCell(2, "2"))
	assert.Equal(t, "B2:D5", UsedRange(sheet))
}

func TestDateFormats(t *testing.T) {
	assert.True(t, isBuiltinDateFormat(14))
	assert.True(t, isBuiltinDateFormat(22))
	assert.False(t, isBuiltinDateFormat(2))
	assert.False(t, isBuiltinDateFormat(49))

	dates := []string{"yyyy-mm-dd", "m/d/yy h:mm", "[h]:mm:ss", `d "of" mmmm`, "dd/mm/yyyy;@"}
	for _, code := range dates {
		assert.True(t, isDateFormatCode(code), code)
	}
	numbers := []string{"", "General", "0.00", "#,##0", `"Qty "0`, `0.0"h"`, "[Red]0.00"}
	for _, code := range numbers {
		assert.False(t, isDateFormatCode(code), code)
	}
}
