package drivers

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrOpenWorkbook indicates the input file could not be read as a workbook.
var ErrOpenWorkbook = errors.New("cannot open workbook")

// ErrSheetNotFound indicates a sheet name that is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidOptions indicates an unusable policy setting.
var ErrInvalidOptions = errors.New("invalid options")

// AnalysisError represents an error while analyzing one sheet.
type AnalysisError struct {
	SheetName string
	Stage     string // "filter", "explain"
	Err       error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(sheetName, stage string, err error) *AnalysisError {
	return &AnalysisError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
