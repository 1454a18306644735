package models

// Workbook is an ordered collection of sheets loaded from one file.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Format is "xlsx" or "xls".
	Format string `json:"format"`
	// Sheets holds the sheets in workbook order.
	Sheets []Grid `json:"-"`
	// Diagnostics holds cells the loader could not read.
	Diagnostics []Diagnostic `json:"-"`
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (Grid, bool) {
	for _, s := range w.Sheets {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// SheetNames returns sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name())
	}
	return names
}
