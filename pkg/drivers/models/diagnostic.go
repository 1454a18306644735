package models

// Outcome is the result of processing one referenced cell.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeSkipped  Outcome = "skipped"
)

// Reason explains an Outcome.
type Reason string

const (
	ReasonLiteral               Reason = "literal"
	ReasonNumberOnlyFormula     Reason = "number-only-formula"
	ReasonAggregateFormula      Reason = "aggregate-formula"
	ReasonEmpty                 Reason = "empty"
	ReasonDerivedFormula        Reason = "derived-formula"
	ReasonMalformedReference    Reason = "malformed-reference"
	ReasonNoRowLabel            Reason = "no-row-label"
	ReasonNoColumnLabel         Reason = "no-column-label"
	ReasonOutsideSelectedColumn Reason = "outside-selected-column"
	ReasonFiltered              Reason = "filtered"
	ReasonUnreadableCell        Reason = "unreadable-cell"
)

// Diagnostic records what happened to one referenced cell.
type Diagnostic struct {
	Sheet   string  `json:"sheet"`
	Cell    string  `json:"cell"`
	Outcome Outcome `json:"outcome"`
	Reason  Reason  `json:"reason"`
	// Detail carries extra context such as unrecognized function names.
	Detail string `json:"detail,omitempty"`
}

// Skipped builds a skipped diagnostic.
func Skipped(sheet, cell string, reason Reason, detail string) Diagnostic {
	return Diagnostic{Sheet: sheet, Cell: cell, Outcome: OutcomeSkipped, Reason: reason, Detail: detail}
}

// Accepted builds an accepted diagnostic.
func Accepted(sheet, cell string, reason Reason) Diagnostic {
	return Diagnostic{Sheet: sheet, Cell: cell, Outcome: OutcomeAccepted, Reason: reason}
}
