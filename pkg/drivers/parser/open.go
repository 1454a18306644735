// Package parser loads workbooks into format-agnostic grids.
package parser

import (
	"path/filepath"
	"strings"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
)

// IsLegacyFormat reports whether path names a legacy BIFF workbook.
func IsLegacyFormat(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xls")
}

// OpenWorkbook loads a workbook, choosing the reader by file extension:
// ".xls" uses the legacy reader, anything else is read as OOXML.
func OpenWorkbook(path string) (*models.Workbook, error) {
	if IsLegacyFormat(path) {
		return ReadXLS(path)
	}
	return ReadXLSX(path)
}
