package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeModel(t *testing.T, withFormulas bool) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "D1", "FY2024")
	f.SetCellValue(sheet, "E1", "FY2025")
	f.SetCellValue(sheet, "C2", "Revenue")
	f.SetCellValue(sheet, "D2", 100)
	f.SetCellValue(sheet, "C3", "Cost")
	f.SetCellValue(sheet, "D3", 50)
	if withFormulas {
		f.SetCellFormula(sheet, "E2", "D2*1.1")
		f.SetCellFormula(sheet, "E3", "D3*1.1")
	}

	path := filepath.Join(t.TempDir(), "model.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExecuteWritesCSV(t *testing.T) {
	input := writeModel(t, true)
	outPath := filepath.Join(t.TempDir(), "drivers.csv")

	var stdout, stderr bytes.Buffer
	code := execute([]string{input, outPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "Found 2 input drivers.")
	assert.Contains(t, stdout.String(), "Results saved to "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t,
		"Sheet,Row_Label,Cell,Content,Column_Label,FirstRight_Cell,FirstRight_Column_Label,SecondRight_Cell,SecondRight_Column_Label\n"+
			"Sheet1,Revenue,D2,100,FY2024,E2,FY2025,F2,\n"+
			"Sheet1,Cost,D3,50,FY2024,E3,FY2025,F3,\n",
		string(data))
}

func TestExecuteNoDrivers(t *testing.T) {
	input := writeModel(t, false)
	outPath := filepath.Join(t.TempDir(), "drivers.csv")

	var stdout, stderr bytes.Buffer
	code := execute([]string{input, outPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "No input drivers found in the workbook.")
	_, err := os.Stat(outPath)
	assert.True(t, os.IsNotExist(err))
}

func TestExecuteArity(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, execute([]string{"only-input.xlsx"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "An error occurred")
	assert.Contains(t, stdout.String()+stderr.String(), "Usage:")
	assert.Contains(t, stdout.String()+stderr.String(), "INPUT_EXCEL OUTPUT_CSV")
}

func TestExecuteMissingInput(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := execute([]string{filepath.Join(dir, "missing.xlsx"), filepath.Join(dir, "out.csv")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "file not found")
}

func TestExecuteInvalidVariant(t *testing.T) {
	input := writeModel(t, true)
	var stdout, stderr bytes.Buffer
	code := execute([]string{"--variant", "loose", input, filepath.Join(t.TempDir(), "out.csv")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid options")
}

func TestExecuteFilterAndReport(t *testing.T) {
	input := writeModel(t, true)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "drivers.csv")
	reportPath := filepath.Join(dir, "report.json")

	var stdout, stderr bytes.Buffer
	code := execute([]string{
		"--where", `RowLabel == "Cost"`,
		"--report-json", reportPath,
		input, outPath,
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Found 1 input drivers.")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report struct {
		Records []struct {
			Cell string `json:"cell"`
		} `json:"records"`
		Diagnostics []struct {
			Cell   string `json:"cell"`
			Reason string `json:"reason"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	require.Len(t, report.Records, 1)
	assert.Equal(t, "D3", report.Records[0].Cell)
	assert.Contains(t, report.Diagnostics, struct {
		Cell   string `json:"cell"`
		Reason string `json:"reason"`
	}{"D2", "filtered"})
}

func TestExecuteExplain(t *testing.T) {
	input := writeModel(t, true)
	var stdout, stderr bytes.Buffer
	code := execute([]string{"--explain", "Sheet1!D2", input, filepath.Join(t.TempDir(), "out.csv")}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	first := bytes.SplitN(stdout.Bytes(), []byte("\n"), 2)[0]
	var ex map[string]interface{}
	require.NoError(t, json.Unmarshal(first, &ex))
	assert.Equal(t, "D2", ex["cell"])
	assert.Equal(t, "Revenue", ex["row_label"])
	assert.Equal(t, true, ex["candidate"])
}

func TestExecuteConfigFile(t *testing.T) {
	input := writeModel(t, true)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("variant: strict\nwhere: Row == 2\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := execute([]string{"--config", cfg, "-v", input, filepath.Join(dir, "out.csv")}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Found 1 input drivers.")
	assert.Contains(t, stderr.String(), "level=debug")
}
