// Package drivers finds the input driver cells of a spreadsheet model.
package drivers

import (
	"fmt"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/classify"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/trace"
)

// Variant selects a preset labeling policy.
type Variant string

const (
	// VariantLenient treats "= + - * !" as operators and accepts drivers
	// without a column label. Adjacent column labels are searched from the
	// row above the driver.
	VariantLenient Variant = "lenient"
	// VariantStrict also treats ":" as an operator and drops drivers without
	// a column label. Adjacent column labels are searched from the driver's
	// own row.
	VariantStrict Variant = "strict"
)

// Anchor is the row at which the upward scan for an adjacent cell's column
// label starts.
type Anchor string

const (
	// AnchorAbove starts one row above the driver.
	AnchorAbove Anchor = "above"
	// AnchorSame starts at the driver's row.
	AnchorSame Anchor = "same"
)

// Options configures analysis behavior.
type Options struct {
	// Variant selects the preset policy (lenient, strict).
	Variant Variant
	// Operators overrides the characters that disqualify text from being a label.
	// If nil, the variant's operator set is used.
	Operators *string
	// RequireColumnLabel overrides whether drivers need a column label.
	// If nil, defaults to true for the strict variant, false otherwise.
	RequireColumnLabel *bool
	// AdjacentAnchor overrides where adjacent column label scans start.
	// If empty, defaults to same for the strict variant, above otherwise.
	AdjacentAnchor Anchor
	// AggregateFunctions overrides the functions allowed in driver formulas.
	// If nil, SUM, AVERAGE, MAX, MIN and COUNT are allowed.
	AggregateFunctions []string
	// Filter is an optional boolean expression records must satisfy.
	Filter string
	// Parallel analyzes sheets concurrently.
	Parallel bool
	// Tracer receives diagnostic events. Nil disables tracing.
	Tracer trace.Tracer
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		Variant: VariantLenient,
	}
}

// LabelOperators returns the characters that disqualify text from being a label.
func (o Options) LabelOperators() string {
	if o.Operators != nil {
		return *o.Operators
	}
	if o.Variant == VariantStrict {
		return classify.StrictOperators
	}
	return classify.LenientOperators
}

// ShouldRequireColumnLabel returns whether drivers without a column label are dropped.
func (o Options) ShouldRequireColumnLabel() bool {
	if o.RequireColumnLabel != nil {
		return *o.RequireColumnLabel
	}
	return o.Variant == VariantStrict
}

// Anchor returns where adjacent column label scans start.
func (o Options) Anchor() Anchor {
	if o.AdjacentAnchor != "" {
		return o.AdjacentAnchor
	}
	if o.Variant == VariantStrict {
		return AnchorSame
	}
	return AnchorAbove
}

// Validate checks enumerated fields.
func (o Options) Validate() error {
	switch o.Variant {
	case "", VariantLenient, VariantStrict:
	default:
		return fmt.Errorf("%w: variant %q (must be lenient or strict)", ErrInvalidOptions, o.Variant)
	}
	switch o.AdjacentAnchor {
	case "", AnchorAbove, AnchorSame:
	default:
		return fmt.Errorf("%w: adjacent anchor %q (must be above or same)", ErrInvalidOptions, o.AdjacentAnchor)
	}
	return nil
}
