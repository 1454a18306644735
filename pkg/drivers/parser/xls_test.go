package parser

import (
	"path/filepath"
	"testing"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/stretchr/testify/assert"
	"github.com/yamitzky/xlrd-go/xlrd"
)

func TestXLSCell(t *testing.T) {
	book := &xlrd.Book{
		XFList: []*xlrd.XF{{FormatKey: 0}, {FormatKey: 14}},
	}

	tests := []struct {
		name string
		cell *xlrd.Cell
		want models.Cell
	}{
		{"nil", nil, models.Cell{}},
		{"text", &xlrd.Cell{CType: xlrd.XL_CELL_TEXT, Value: "Revenue"}, models.TextCell("Revenue")},
		{"empty text", &xlrd.Cell{CType: xlrd.XL_CELL_TEXT, Value: ""}, models.Cell{}},
		{"number", &xlrd.Cell{CType: xlrd.XL_CELL_NUMBER, Value: 100.0}, models.NumberCell(100, "100")},
		{"fraction", &xlrd.Cell{CType: xlrd.XL_CELL_NUMBER, Value: 0.25}, models.NumberCell(0.25, "0.25")},
		{"bool", &xlrd.Cell{CType: xlrd.XL_CELL_BOOLEAN, Value: 1}, models.BoolCell(true)},
		{"error", &xlrd.Cell{CType: xlrd.XL_CELL_ERROR, Value: byte(0x07)}, models.ErrorCell("#DIV/0!")},
		{"blank", &xlrd.Cell{CType: xlrd.XL_CELL_BLANK}, models.Cell{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, xlsCell(book, tt.cell))
		})
	}
}

func TestXLSCellDates(t *testing.T) {
	book := &xlrd.Book{
		XFList: []*xlrd.XF{{FormatKey: 0}, {FormatKey: 14}},
	}

	styled := xlsCell(book, &xlrd.Cell{CType: xlrd.XL_CELL_NUMBER, Value: 45322.0, XFIndex: 1})
	assert.Equal(t, models.KindDate, styled.Kind)
	assert.Equal(t, "2024-01-31 00:00:00", styled.Value)

	typed := xlsCell(book, &xlrd.Cell{CType: xlrd.XL_CELL_DATE, Value: 45322.5})
	assert.Equal(t, models.KindDate, typed.Kind)
	assert.Equal(t, "2024-01-31 12:00:00", typed.Value)

	plain := xlsCell(book, &xlrd.Cell{CType: xlrd.XL_CELL_NUMBER, Value: 45322.0, XFIndex: 5})
	assert.Equal(t, models.KindNumber, plain.Kind)
}

func TestReadXLSMissingFile(t *testing.T) {
	_, err := OpenWorkbook(filepath.Join(t.TempDir(), "missing.xls"))
	assert.Error(t, err)
}
