// Package models defines data structures for input driver analysis.
package models

import (
	"strings"
	"time"
)

// CellKind is the type tag of a cell snapshot.
type CellKind int

const (
	// KindEmpty is a cell with no value.
	KindEmpty CellKind = iota
	// KindText is a string value.
	KindText
	// KindNumber is a numeric value.
	KindNumber
	// KindDate is a numeric value carrying a date or time number format.
	KindDate
	// KindBool is a boolean value.
	KindBool
	// KindError is an error value such as #DIV/0!.
	KindError
	// KindFormula is formula text starting with "=".
	KindFormula
)

var kindNames = map[CellKind]string{
	KindEmpty:   "empty",
	KindText:    "text",
	KindNumber:  "number",
	KindDate:    "date",
	KindBool:    "boolean",
	KindError:   "error",
	KindFormula: "formula",
}

func (k CellKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// DateLayout renders date cells the way labels and contents are emitted.
const DateLayout = "2006-01-02 15:04:05"

// Cell is an immutable snapshot of one worksheet cell.
type Cell struct {
	// Kind is the type tag.
	Kind CellKind `json:"kind"`
	// Value is the raw textual value. For formulas it is the formula text
	// including the leading "=".
	Value string `json:"value"`
	// Number holds the parsed value of number and date cells.
	Number float64 `json:"number,omitempty"`
	// Time holds the converted value of date cells.
	Time time.Time `json:"time,omitempty"`
	// Bool holds the value of boolean cells.
	Bool bool `json:"bool,omitempty"`
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Value: s}
}

// NumberCell returns a number cell whose raw value is raw.
func NumberCell(n float64, raw string) Cell {
	return Cell{Kind: KindNumber, Value: raw, Number: n}
}

// DateCell returns a date cell.
func DateCell(t time.Time, serial float64) Cell {
	return Cell{Kind: KindDate, Value: t.Format(DateLayout), Number: serial, Time: t}
}

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell {
	v := "FALSE"
	if b {
		v = "TRUE"
	}
	return Cell{Kind: KindBool, Value: v, Bool: b}
}

// ErrorCell returns an error cell such as #N/A.
func ErrorCell(code string) Cell {
	return Cell{Kind: KindError, Value: code}
}

// FormulaCell returns a formula cell. A missing leading "=" is added.
func FormulaCell(formula string) Cell {
	if !strings.HasPrefix(formula, "=") {
		formula = "=" + formula
	}
	return Cell{Kind: KindFormula, Value: formula}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// IsFormulaText reports whether the cell's raw value is a string starting
// with "=". Text cells typed as strings count as well.
func (c Cell) IsFormulaText() bool {
	switch c.Kind {
	case KindFormula:
		return true
	case KindText:
		return strings.HasPrefix(c.Value, "=")
	}
	return false
}

// Content returns the cell value as it is emitted in reports.
func (c Cell) Content() string {
	return c.Value
}
