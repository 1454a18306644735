// Package main provides the CLI entry point for excel-input-driver-analyze.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/output"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/parser"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/trace"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type cliFlags struct {
	variant            string
	requireColumnLabel bool
	adjacentAnchor     string
	operators          string
	functions          []string
	configPath         string
	where              string
	parallel           bool
	verbose            bool
	reportJSON         string
	pretty             bool
	explain            []string
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd := newRootCmd(stdout, log)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("An error occurred: %v", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer, log *logrus.Logger) *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "excel-input-driver-analyze INPUT_EXCEL OUTPUT_CSV",
		Short: "Identify the input drivers of an Excel model",
		Long: `excel-input-driver-analyze scans an Excel model for formulas, finds the cells
those formulas reference that are raw inputs rather than derived values, and
labels each input with the nearest row and column headers.

The output CSV lists the sheet, row and column labels, the cell and its
content, and the two cells to its right with their column labels.

Both .xlsx and legacy .xls files are accepted.`,
		Example: "  excel-input-driver-analyze model.xlsx input_drivers.csv",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage is only useful for argument errors.
			cmd.SilenceUsage = true
			return run(cmd, args, flags, stdout, log)
		},
		SilenceErrors: true,
	}

	f := rootCmd.Flags()
	f.StringVar(&flags.variant, "variant", string(drivers.VariantLenient), "Labeling policy: lenient or strict")
	f.BoolVar(&flags.requireColumnLabel, "require-column-label", false, "Drop drivers without a column label (default from variant)")
	f.StringVar(&flags.adjacentAnchor, "adjacent-anchor", "", "Where adjacent column label scans start: above or same (default from variant)")
	f.StringVar(&flags.operators, "operators", "", "Characters that disqualify text from being a label (default from variant)")
	f.StringSliceVar(&flags.functions, "functions", nil, "Aggregate functions allowed in driver formulas (default SUM,AVERAGE,MAX,MIN,COUNT)")
	f.StringVar(&flags.configPath, "config", "", "YAML policy file")
	f.StringVar(&flags.where, "where", "", `Keep only records matching an expression, e.g. 'ColumnLabel != ""'`)
	f.BoolVar(&flags.parallel, "parallel", false, "Analyze sheets concurrently")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Log diagnostic events")
	f.StringVar(&flags.reportJSON, "report-json", "", "Also write the full report with diagnostics as JSON")
	f.BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	f.StringArrayVar(&flags.explain, "explain", nil, "Explain how a cell is treated, e.g. 'Sheet1!D2' (repeatable)")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, flags *cliFlags, stdout io.Writer, log *logrus.Logger) error {
	inputPath, outputPath := args[0], args[1]

	// Validate input file exists and is readable
	fh, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
		return fmt.Errorf("cannot read %s: %w", inputPath, err)
	}
	fh.Close()

	opts, err := buildOptions(cmd, flags)
	if err != nil {
		return err
	}
	if flags.verbose {
		log.SetLevel(logrus.DebugLevel)
		opts.Tracer = trace.NewLogger(log.WithField("book", inputPath))
	}

	wb, err := parser.OpenWorkbook(inputPath)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	if wb.Format == "xls" {
		log.Warn("legacy .xls files expose cached values only; formulas cannot be scanned")
	}
	for _, d := range wb.Diagnostics {
		log.WithFields(logrus.Fields{"sheet": d.Sheet, "cell": d.Cell}).Warnf("cell skipped: %s", d.Detail)
	}

	for _, ref := range flags.explain {
		ex, err := drivers.Explain(wb, ref, opts)
		if err != nil {
			return fmt.Errorf("explain %s: %w", ref, err)
		}
		data, err := output.ValueToJSON(ex, flags.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
	}

	report, err := drivers.AnalyzeWorkbook(wb, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	for _, s := range report.Sheets {
		log.WithFields(logrus.Fields{
			"sheet":      s.Name,
			"formulas":   s.FormulaCells,
			"references": s.ReferencedCells,
			"selected":   s.SelectedColumn,
			"drivers":    s.Drivers,
		}).Info("sheet analyzed")
	}

	if flags.reportJSON != "" {
		if err := writeReportJSON(flags.reportJSON, report, flags.pretty); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if len(report.Records) == 0 {
		fmt.Fprintln(stdout, "No input drivers found in the workbook.")
		return nil
	}
	if err := output.WriteCSVFile(outputPath, report.Records); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(stdout, "Found %d input drivers.\n", len(report.Records))
	fmt.Fprintf(stdout, "Results saved to %s\n", outputPath)
	return nil
}

// buildOptions layers explicitly set flags over the config file (if any)
// over defaults.
func buildOptions(cmd *cobra.Command, flags *cliFlags) (drivers.Options, error) {
	opts := drivers.DefaultOptions()
	if flags.configPath != "" {
		var err error
		if opts, err = drivers.LoadConfig(flags.configPath); err != nil {
			return drivers.Options{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("variant") {
		opts.Variant = drivers.Variant(flags.variant)
	}
	if changed("require-column-label") {
		opts.RequireColumnLabel = &flags.requireColumnLabel
	}
	if changed("adjacent-anchor") {
		opts.AdjacentAnchor = drivers.Anchor(flags.adjacentAnchor)
	}
	if changed("operators") {
		opts.Operators = &flags.operators
	}
	if changed("functions") {
		opts.AggregateFunctions = flags.functions
	}
	if changed("where") {
		opts.Filter = flags.where
	}
	if changed("parallel") {
		opts.Parallel = flags.parallel
	}

	if err := opts.Validate(); err != nil {
		return drivers.Options{}, err
	}
	return opts, nil
}

func writeReportJSON(path string, report *models.Report, pretty bool) error {
	data, err := output.ToJSON(report, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
