// Package output serializes analysis results.
package output

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
)

// Header is the CSV header row.
var Header = []string{
	"Sheet",
	"Row_Label",
	"Cell",
	"Content",
	"Column_Label",
	"FirstRight_Cell",
	"FirstRight_Column_Label",
	"SecondRight_Cell",
	"SecondRight_Column_Label",
}

// WriteCSV writes the header and one row per record. The row number is not
// emitted.
func WriteCSV(w io.Writer, records []models.DriverRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Sheet,
			r.RowLabel,
			r.Cell,
			r.Content,
			r.ColumnLabel,
			r.FirstRightCell,
			r.FirstRightColumnLabel,
			r.SecondRightCell,
			r.SecondRightColumnLabel,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToCSV renders records as CSV bytes.
func ToCSV(records []models.DriverRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSVFile renders records and writes them to path in one call, so a
// rendering failure leaves no partial file behind.
func WriteCSVFile(path string, records []models.DriverRecord) error {
	data, err := ToCSV(records)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
