package parser

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX loads every sheet of an OOXML workbook (.xlsx, .xlsm, ...).
func ReadXLSX(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.Workbook{
		BookName: filepath.Base(path),
		Format:   "xlsx",
	}
	for _, sheetName := range f.GetSheetList() {
		sheet, diags, err := ExtractSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
		wb.Diagnostics = append(wb.Diagnostics, diags...)
	}
	return wb, nil
}

// cellSource is the part of *excelize.File the cell reader needs.
type cellSource interface {
	GetCellFormula(sheet, cell string) (string, error)
	GetCellType(sheet, cell string) (excelize.CellType, error)
	GetCellStyle(sheet, cell string) (int, error)
	GetStyle(idx int) (*excelize.Style, error)
}

// ExtractSheet reads one sheet into a models.Sheet. Formula cells keep their
// formula text with a leading "="; values are read raw (unformatted).
// A cell that cannot be read is left empty and reported as an
// unreadable-cell diagnostic; only sheet-level failures return an error.
func ExtractSheet(f *excelize.File, sheetName string) (*models.Sheet, []models.Diagnostic, error) {
	return extractSheet(f, f, sheetName)
}

func extractSheet(f *excelize.File, src cellSource, sheetName string) (*models.Sheet, []models.Diagnostic, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}

	maxRow, maxCol := len(rows), 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	// Formula cells without a cached value can fall outside GetRows.
	if r, c := sheetDimension(f, sheetName); r > 0 && r*c <= maxDimensionCells {
		maxRow = max(maxRow, r)
		maxCol = max(maxCol, c)
	}

	r := &xlsxReader{f: src, sheet: sheetName, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}

	sheet := models.NewSheet(sheetName)
	var diags []models.Diagnostic
	for rowIdx := 0; rowIdx < maxRow; rowIdx++ {
		for colIdx := 0; colIdx < maxCol; colIdx++ {
			raw := ""
			if rowIdx < len(rows) && colIdx < len(rows[rowIdx]) {
				raw = rows[rowIdx][colIdx]
			}
			cell, err := r.cell(rowIdx+1, colIdx+1, raw)
			if err != nil {
				cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				diags = append(diags, models.Skipped(sheetName, cellName, models.ReasonUnreadableCell, err.Error()))
				continue
			}
			sheet.Set(rowIdx+1, colIdx+1, cell)
		}
	}
	return sheet, diags, nil
}

// maxDimensionCells bounds how far a stored sheet dimension may widen the scan.
const maxDimensionCells = 4_000_000

type xlsxReader struct {
	f          cellSource
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func (r *xlsxReader) cell(row, col int, raw string) (models.Cell, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{}, err
	}

	formula, err := r.f.GetCellFormula(r.sheet, cellName)
	if err == nil && formula != "" {
		return models.FormulaCell(formula), nil
	}
	if raw == "" {
		return models.Cell{}, nil
	}

	cellType, err := r.f.GetCellType(r.sheet, cellName)
	if err != nil {
		return models.Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.TextCell(raw), nil
	case excelize.CellTypeBool:
		return models.BoolCell(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeError:
		return models.ErrorCell(raw), nil
	case excelize.CellTypeDate:
		if t, ok := parseDateValue(raw); ok {
			return models.DateCell(t, 0), nil
		}
		return models.TextCell(raw), nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.TextCell(raw), nil
	}
	if r.isDateStyled(cellName) {
		if t, err := excelize.ExcelDateToTime(n, r.date1904); err == nil {
			return models.DateCell(t, n), nil
		}
	}
	return models.NumberCell(n, raw), nil
}

func (r *xlsxReader) isDateStyled(cellName string) bool {
	styleID, err := r.f.GetCellStyle(r.sheet, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := r.f.GetStyle(styleID); err == nil && style != nil {
		isDate = isBuiltinDateFormat(style.NumFmt)
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	r.dateStyles[styleID] = isDate
	return isDate
}

// dateValueLayouts are the ISO 8601 forms a t="d" cell may store. Excel
// itself writes them without a zone.
var dateValueLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDateValue parses the stored value of a date-typed cell. Zoneless
// values are taken as UTC.
func parseDateValue(raw string) (time.Time, bool) {
	for _, layout := range dateValueLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sheetDimension returns the bottom-right corner of the sheet's stored
// dimension, or zeros when it is absent or unparsable.
func sheetDimension(f *excelize.File, sheetName string) (int, int) {
	ref, err := f.GetSheetDimension(sheetName)
	if err != nil || ref == "" {
		return 0, 0
	}
	parts := strings.Split(ref, ":")
	col, row, err := excelize.CellNameToCoordinates(parts[len(parts)-1])
	if err != nil {
		return 0, 0
	}
	return row, col
}
