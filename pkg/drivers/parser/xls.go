package parser

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/yamitzky/xlrd-go/xlrd"
)

// ReadXLS loads every sheet of a legacy BIFF workbook (.xls).
//
// xlrd exposes cached cell values only, so formula cells surface as their
// last computed value and a legacy sheet contributes no formula text.
func ReadXLS(path string) (*models.Workbook, error) {
	book, err := xlrd.OpenWorkbook(path, &xlrd.OpenWorkbookOptions{FormattingInfo: true})
	if err != nil {
		return nil, err
	}
	defer book.ReleaseResources()

	wb := &models.Workbook{
		BookName: filepath.Base(path),
		Format:   "xls",
	}
	for i, name := range book.SheetNames() {
		sh, err := book.SheetByIndex(i)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, convertXLSSheet(book, sh, name))
	}
	return wb, nil
}

// convertXLSSheet copies an xlrd sheet into a 1-based models.Sheet.
func convertXLSSheet(book *xlrd.Book, sh *xlrd.Sheet, name string) *models.Sheet {
	sheet := models.NewSheet(name)
	for rowx := 0; rowx < sh.NRows; rowx++ {
		for colx := 0; colx < sh.NCols; colx++ {
			sheet.Set(rowx+1, colx+1, xlsCell(book, sh.Cell(rowx, colx)))
		}
	}
	return sheet
}

func xlsCell(book *xlrd.Book, c *xlrd.Cell) models.Cell {
	if c == nil {
		return models.Cell{}
	}

	switch c.CType {
	case xlrd.XL_CELL_TEXT:
		s := toString(c.Value)
		if s == "" {
			return models.Cell{}
		}
		return models.TextCell(s)
	case xlrd.XL_CELL_NUMBER, xlrd.XL_CELL_DATE:
		n, ok := toFloat(c.Value)
		if !ok {
			return models.TextCell(toString(c.Value))
		}
		if c.CType == xlrd.XL_CELL_DATE || isXLSDateCell(book, c.XFIndex) {
			if !math.IsNaN(n) && !math.IsInf(n, 0) {
				if t, err := xlrd.XldateAsDatetime(n, book.Datemode); err == nil {
					return models.DateCell(t, n)
				}
			}
		}
		return models.NumberCell(n, strconv.FormatFloat(n, 'f', -1, 64))
	case xlrd.XL_CELL_BOOLEAN:
		return models.BoolCell(toBool(c.Value))
	case xlrd.XL_CELL_ERROR:
		return models.ErrorCell(xlsErrorText(c.Value))
	default:
		return models.Cell{}
	}
}

func isXLSDateCell(book *xlrd.Book, xfIndex int) bool {
	if xfIndex < 0 || xfIndex >= len(book.XFList) {
		return false
	}
	formatKey := book.XFList[xfIndex].FormatKey
	if isBuiltinDateFormat(formatKey) {
		return true
	}
	if book.FormatMap == nil {
		return false
	}
	format := book.FormatMap[formatKey]
	if format == nil || format.FormatString == "" {
		return false
	}
	return xlrd.IsDateFormatString(book, format.FormatString)
}

func xlsErrorText(value interface{}) string {
	switch v := value.(type) {
	case byte:
		if text, ok := xlrd.ErrorTextFromCode[v]; ok {
			return text
		}
	case int:
		if text, ok := xlrd.ErrorTextFromCode[byte(v)]; ok {
			return text
		}
	}
	return "#ERROR"
}

func toString(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}
