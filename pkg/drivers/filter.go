package drivers

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/parser"
)

// RecordEnv is the environment a filter expression is evaluated against.
type RecordEnv struct {
	Sheet                  string
	RowLabel               string
	Cell                   string
	Content                string
	ColumnLabel            string
	FirstRightColumnLabel  string
	SecondRightColumnLabel string
	Row                    int
	Column                 int
}

// Filter is a compiled record filter expression.
type Filter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles a boolean expression such as
// `Sheet == "Inputs" && ColumnLabel != ""`.
func CompileFilter(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.Env(RecordEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: compile filter %q: %v", ErrInvalidOptions, source, err)
	}
	return &Filter{source: source, program: program}, nil
}

// Match reports whether the record satisfies the filter.
func (f *Filter) Match(r models.DriverRecord) (bool, error) {
	col := 0
	if ref, err := parser.ParseCellRef(r.Cell); err == nil {
		col = ref.Col
	}
	env := RecordEnv{
		Sheet:                  r.Sheet,
		RowLabel:               r.RowLabel,
		Cell:                   r.Cell,
		Content:                r.Content,
		ColumnLabel:            r.ColumnLabel,
		FirstRightColumnLabel:  r.FirstRightColumnLabel,
		SecondRightColumnLabel: r.SecondRightColumnLabel,
		Row:                    r.Row,
		Column:                 col,
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.source, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// String returns the filter source.
func (f *Filter) String() string {
	return f.source
}
