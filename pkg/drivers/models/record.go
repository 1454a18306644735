package models

// Candidate is a referenced cell that passed classification and has a row label.
type Candidate struct {
	// RowLabel is the nearest text found scanning left.
	RowLabel string `json:"row_label"`
	// Col is the 1-based column index.
	Col int `json:"col"`
	// Row is the 1-based row index.
	Row int `json:"row"`
	// Cell is the cell name, e.g. "D2".
	Cell string `json:"cell"`
	// Content is the cell's raw value.
	Content string `json:"content"`
	// ColumnLabel is the nearest text found scanning up.
	ColumnLabel string `json:"column_label"`
}

// DriverRecord is one row of the output report.
type DriverRecord struct {
	Sheet                  string `json:"sheet"`
	RowLabel               string `json:"row_label"`
	Row                    int    `json:"row"`
	Cell                   string `json:"cell"`
	Content                string `json:"content"`
	ColumnLabel            string `json:"column_label"`
	FirstRightCell         string `json:"first_right_cell"`
	FirstRightColumnLabel  string `json:"first_right_column_label"`
	SecondRightCell        string `json:"second_right_cell"`
	SecondRightColumnLabel string `json:"second_right_column_label"`
}

// SheetSummary describes what the analysis saw on one sheet.
type SheetSummary struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// UsedRange is the bounding range of populated cells, e.g. "A1:F20".
	UsedRange string `json:"used_range,omitempty"`
	// FormulaCells counts cells holding formula text.
	FormulaCells int `json:"formula_cells"`
	// ReferencedCells counts distinct reference tokens found in formulas.
	ReferencedCells int `json:"referenced_cells"`
	// Candidates counts drivers that survived labeling.
	Candidates int `json:"candidates"`
	// SelectedColumn is the column letter chosen by the selector, if any.
	SelectedColumn string `json:"selected_column,omitempty"`
	// Drivers counts records emitted for the sheet.
	Drivers int `json:"drivers"`
}

// Report is the result of analyzing a workbook.
type Report struct {
	BookName    string         `json:"book_name"`
	Records     []DriverRecord `json:"records"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
	Sheets      []SheetSummary `json:"sheets"`
}
