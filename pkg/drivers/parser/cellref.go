package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrMalformedReference indicates a token that is not a valid A1 cell name.
var ErrMalformedReference = errors.New("malformed cell reference")

// CellRef is a 1-based cell coordinate parsed from an A1-style name.
type CellRef struct {
	// Col is the column index (A=1).
	Col int `json:"col"`
	// Row is the row number.
	Row int `json:"row"`
}

// String returns the A1-style name.
func (r CellRef) String() string {
	return CellName(r.Row, r.Col)
}

// ColumnIndex converts column letters to a 1-based index. "A"→1, "Z"→26, "AA"→27.
func ColumnIndex(letters string) (int, error) {
	n, err := excelize.ColumnNameToNumber(letters)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q: %v", ErrMalformedReference, letters, err)
	}
	return n, nil
}

// ColumnLetters converts a 1-based column index to letters.
func ColumnLetters(col int) (string, error) {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "", fmt.Errorf("%w: column %d: %v", ErrMalformedReference, col, err)
	}
	return name, nil
}

// CellName formats row, col as an A1-style name. Coordinates that cannot be
// expressed (beyond XFD or row 1048576) yield an empty string.
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	return name
}

// ParseCellRef parses a token made of letters followed by digits, such as
// "CP235". Letters are case-insensitive.
func ParseCellRef(token string) (CellRef, error) {
	i := 0
	for i < len(token) && isLetter(token[i]) {
		i++
	}
	if i == 0 || i == len(token) {
		return CellRef{}, fmt.Errorf("%w: %q", ErrMalformedReference, token)
	}
	for j := i; j < len(token); j++ {
		if token[j] < '0' || token[j] > '9' {
			return CellRef{}, fmt.Errorf("%w: %q", ErrMalformedReference, token)
		}
	}

	col, row, err := excelize.CellNameToCoordinates(strings.ToUpper(token))
	if err != nil {
		return CellRef{}, fmt.Errorf("%w: %q: %v", ErrMalformedReference, token, err)
	}
	return CellRef{Col: col, Row: row}, nil
}

// ParseQualifiedRef parses a sheet-qualified reference.
// Format: 'Sheet Name'!$A$1 or SheetName!A1
func ParseQualifiedRef(ref string) (string, CellRef, error) {
	ref = strings.TrimSpace(ref)

	idx := strings.LastIndex(ref, "!")
	if idx <= 0 {
		return "", CellRef{}, fmt.Errorf("%w: %q has no sheet name", ErrMalformedReference, ref)
	}

	sheet := strings.Trim(ref[:idx], "'")
	cellPart := strings.ReplaceAll(ref[idx+1:], "$", "")

	cell, err := ParseCellRef(cellPart)
	if err != nil {
		return "", CellRef{}, err
	}
	return sheet, cell, nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
