// Package classify decides whether cell contents count as labels, literal
// formulas, or driver formulas.
package classify

import (
	"strings"
	"unicode"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/formula"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
)

// LenientOperators disqualify a string from being a label.
const LenientOperators = "=+-*!"

// StrictOperators additionally treat ":" as an operator.
const StrictOperators = LenientOperators + ":"

// DefaultAggregateFunctions are the functions allowed in driver formulas.
var DefaultAggregateFunctions = []string{"SUM", "AVERAGE", "MAX", "MIN", "COUNT"}

// IsTextOnly reports whether a cell can serve as a row or column label.
// Dates always qualify. Text qualifies when it contains none of operators
// once hyphens inside words ("co-branded") and spaced hyphens ("A - B") are
// disregarded. "/" is never an operator.
func IsTextOnly(c models.Cell, operators string) bool {
	switch c.Kind {
	case models.KindDate:
		return true
	case models.KindText:
		return isTextOnlyString(c.Value, operators)
	}
	return false
}

func isTextOnlyString(s, operators string) bool {
	runes := []rune(s)
	for i, r := range runes {
		if r == '-' && neutralHyphen(runes, i) {
			continue
		}
		if strings.ContainsRune(operators, r) {
			return false
		}
	}
	return true
}

// neutralHyphen reports whether the hyphen at i sits between two ASCII
// letters or between two whitespace characters.
func neutralHyphen(runes []rune, i int) bool {
	if i == 0 || i == len(runes)-1 {
		return false
	}
	prev, next := runes[i-1], runes[i+1]
	if isASCIILetter(prev) && isASCIILetter(next) {
		return true
	}
	return unicode.IsSpace(prev) && unicode.IsSpace(next)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// stripArithmetic removes digits, decimal points, arithmetic operators and
// parentheses.
func stripArithmetic(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		switch r {
		case '.', '+', '-', '*', '/', '(', ')':
			return -1
		}
		return r
	}, s)
}

// formulaBody returns the text after "=" with surrounding whitespace removed.
func formulaBody(text string) (string, bool) {
	if !strings.HasPrefix(text, "=") {
		return "", false
	}
	return strings.TrimSpace(text[1:]), true
}

// IsNumberOnlyFormula reports whether text is a formula built from numeric
// literals and arithmetic only, e.g. "=1+2*(3-4)".
func IsNumberOnlyFormula(text string) bool {
	body, ok := formulaBody(text)
	if !ok {
		return false
	}
	return stripArithmetic(body) == ""
}

// IsInputDriverFormula reports whether text is a formula built from numbers,
// cell references, ranges and the DefaultAggregateFunctions only,
// e.g. "=SUM(A1:A10)+5".
func IsInputDriverFormula(text string) bool {
	return isInputDriverFormula(text, DefaultAggregateFunctions)
}

func isInputDriverFormula(text string, functions []string) bool {
	body, ok := formulaBody(text)
	if !ok {
		return false
	}
	// References and function names go before digits so names such as
	// A10 or LOG10 are removed whole.
	cleaned := stripReferences(body)
	for _, fn := range functions {
		cleaned = strings.ReplaceAll(cleaned, fn, "")
	}
	cleaned = stripArithmetic(cleaned)
	cleaned = strings.NewReplacer(",", "", ":", "").Replace(cleaned)
	return cleaned == ""
}

// stripReferences removes reference tokens from a formula body. A token
// followed by "(" is a function name such as LOG10 and is kept.
func stripReferences(body string) string {
	var b strings.Builder
	last := 0
	for _, loc := range formula.RefPattern.FindAllStringIndex(body, -1) {
		if loc[1] < len(body) && body[loc[1]] == '(' {
			continue
		}
		b.WriteString(body[last:loc[0]])
		last = loc[1]
	}
	b.WriteString(body[last:])
	return b.String()
}
