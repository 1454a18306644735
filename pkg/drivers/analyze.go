package drivers

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/classify"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/formula"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/label"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/parser"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/trace"
)

// Analyze finds the input drivers of the workbook at path.
func Analyze(path string, opts Options) (*models.Report, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrOpenWorkbook, path, err)
	}
	return AnalyzeWorkbook(wb, opts)
}

// AnalyzeWorkbook finds the input drivers of an already loaded workbook.
// Records are sorted by sheet name, then row.
func AnalyzeWorkbook(wb *models.Workbook, opts Options) (*models.Report, error) {
	a, err := newAnalyzer(opts)
	if err != nil {
		return nil, err
	}

	results := make([]sheetResult, len(wb.Sheets))
	if opts.Parallel {
		var wg sync.WaitGroup
		for i, sheet := range wb.Sheets {
			wg.Add(1)
			go func(i int, sheet models.Grid) {
				defer wg.Done()
				results[i] = a.analyzeSheet(sheet)
			}(i, sheet)
		}
		wg.Wait()
	} else {
		for i, sheet := range wb.Sheets {
			results[i] = a.analyzeSheet(sheet)
		}
	}

	report := &models.Report{
		BookName:    wb.BookName,
		Records:     []models.DriverRecord{},
		Diagnostics: append([]models.Diagnostic(nil), wb.Diagnostics...),
	}
	for _, res := range results {
		report.Records = append(report.Records, res.records...)
		report.Diagnostics = append(report.Diagnostics, res.diagnostics...)
		report.Sheets = append(report.Sheets, res.summary)
	}
	SortRecords(report.Records)
	return report, nil
}

// analyzer holds the resolved policy shared by every sheet. It is read-only
// once built.
type analyzer struct {
	classifier    *classify.Classifier
	resolver      *label.Resolver
	requireColumn bool
	anchor        Anchor
	filter        *Filter
	tracer        trace.Tracer
}

func newAnalyzer(opts Options) (*analyzer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cl := classify.New(opts.LabelOperators(), opts.AggregateFunctions)
	a := &analyzer{
		classifier:    cl,
		resolver:      label.NewResolver(cl),
		requireColumn: opts.ShouldRequireColumnLabel(),
		anchor:        opts.Anchor(),
		tracer:        trace.OrNop(opts.Tracer),
	}
	if opts.Filter != "" {
		f, err := CompileFilter(opts.Filter)
		if err != nil {
			return nil, err
		}
		a.filter = f
	}
	return a, nil
}

type sheetResult struct {
	records     []models.DriverRecord
	diagnostics []models.Diagnostic
	summary     models.SheetSummary
}

func (a *analyzer) analyzeSheet(g models.Grid) sheetResult {
	name := g.Name()
	res := sheetResult{summary: models.SheetSummary{
		Name:      name,
		UsedRange: parser.UsedRange(g),
	}}

	scan := formula.SheetReferences(g)
	res.summary.FormulaCells = scan.FormulaCells
	res.summary.ReferencedCells = len(scan.Tokens)
	a.tracer.Event(trace.Event{
		Stage:   trace.StageScan,
		Sheet:   name,
		Message: "scanned formulas",
		Fields:  map[string]interface{}{"formulas": scan.FormulaCells, "references": len(scan.Tokens)},
	})

	labels := a.resolver.Index(g)
	var cands []models.Candidate
	reasons := make(map[string]models.Reason)
	for _, tok := range scan.Tokens {
		cand, reason, diag, ok := a.candidate(g, labels, tok)
		if !ok {
			res.diagnostics = append(res.diagnostics, diag)
			continue
		}
		reasons[cand.Cell] = reason
		cands = append(cands, cand)
	}
	res.summary.Candidates = len(cands)

	selected, ok := SelectColumn(cands)
	if !ok {
		return res
	}
	letters, _ := parser.ColumnLetters(selected)
	res.summary.SelectedColumn = letters
	a.tracer.Event(trace.Event{
		Stage:   trace.StageSelect,
		Sheet:   name,
		Message: "selected column",
		Fields:  map[string]interface{}{"column": letters, "candidates": len(cands)},
	})

	kept, dropped := FilterToColumn(cands, selected)
	for _, c := range dropped {
		res.diagnostics = append(res.diagnostics,
			models.Skipped(name, c.Cell, models.ReasonOutsideSelectedColumn, "selected "+letters))
	}

	for _, rec := range Assemble(g, kept, selected, labels, a.anchor) {
		if a.filter != nil {
			match, err := a.filter.Match(rec)
			if err != nil || !match {
				detail := a.filter.String()
				if err != nil {
					detail = err.Error()
				}
				res.diagnostics = append(res.diagnostics, models.Skipped(name, rec.Cell, models.ReasonFiltered, detail))
				a.tracer.Event(trace.Event{Stage: trace.StageFilter, Sheet: name, Cell: rec.Cell, Message: "filtered out"})
				continue
			}
		}
		res.records = append(res.records, rec)
		res.diagnostics = append(res.diagnostics, models.Accepted(name, rec.Cell, reasons[rec.Cell]))
		a.tracer.Event(trace.Event{
			Stage:   trace.StageAssemble,
			Sheet:   name,
			Cell:    rec.Cell,
			Message: "driver",
			Fields:  map[string]interface{}{"row_label": rec.RowLabel, "column_label": rec.ColumnLabel},
		})
	}
	res.summary.Drivers = len(res.records)
	return res
}

// candidate classifies and labels one reference token. When ok is false the
// returned diagnostic says why the token was skipped.
func (a *analyzer) candidate(g models.Grid, labels *label.Index, tok string) (models.Candidate, models.Reason, models.Diagnostic, bool) {
	name := g.Name()
	skip := func(reason models.Reason, detail string) (models.Candidate, models.Reason, models.Diagnostic, bool) {
		a.tracer.Event(trace.Event{
			Stage:   stageOf(reason),
			Sheet:   name,
			Cell:    tok,
			Message: "skipped",
			Fields:  map[string]interface{}{"reason": string(reason), "detail": detail},
		})
		return models.Candidate{}, reason, models.Skipped(name, tok, reason, detail), false
	}

	ref, err := parser.ParseCellRef(tok)
	if err != nil {
		return skip(models.ReasonMalformedReference, err.Error())
	}

	cell := g.Cell(ref.Row, ref.Col)
	isDriver, reason, detail := a.classifier.Classify(cell)
	if !isDriver {
		return skip(reason, detail)
	}

	rowLabel := labels.RowLabel(ref.Row, ref.Col)
	if rowLabel == "" {
		return skip(models.ReasonNoRowLabel, "")
	}
	columnLabel := labels.ColumnLabel(ref.Row, ref.Col)
	if columnLabel == "" && a.requireColumn {
		return skip(models.ReasonNoColumnLabel, "")
	}

	a.tracer.Event(trace.Event{
		Stage:   trace.StageLabel,
		Sheet:   name,
		Cell:    tok,
		Message: "candidate",
		Fields:  map[string]interface{}{"reason": string(reason), "row_label": rowLabel, "column_label": columnLabel},
	})
	return models.Candidate{
		RowLabel:    rowLabel,
		Col:         ref.Col,
		Row:         ref.Row,
		Cell:        ref.String(),
		Content:     cell.Content(),
		ColumnLabel: columnLabel,
	}, reason, models.Diagnostic{}, true
}

func stageOf(reason models.Reason) trace.Stage {
	switch reason {
	case models.ReasonNoRowLabel, models.ReasonNoColumnLabel:
		return trace.StageLabel
	case models.ReasonMalformedReference:
		return trace.StageScan
	default:
		return trace.StageClassify
	}
}
