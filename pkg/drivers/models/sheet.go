package models

// Grid is a read-only, 1-based view over one worksheet.
type Grid interface {
	// Name returns the sheet name.
	Name() string
	// Cell returns the cell at the 1-based row and column. Coordinates
	// outside the sheet yield an empty cell.
	Cell(row, col int) Cell
	// Dimensions returns the highest populated row and column.
	Dimensions() (rows, cols int)
}

// Coord is a 1-based cell coordinate.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Sheet is a sparse in-memory Grid.
type Sheet struct {
	name  string
	cells map[Coord]Cell
	rows  int
	cols  int
}

// NewSheet creates an empty sheet.
func NewSheet(name string) *Sheet {
	return &Sheet{name: name, cells: make(map[Coord]Cell)}
}

// Set stores a cell. Empty cells and non-positive coordinates are ignored.
// Set is meant for loaders; the analysis never mutates a sheet.
func (s *Sheet) Set(row, col int, c Cell) {
	if row < 1 || col < 1 || c.IsEmpty() {
		return
	}
	s.cells[Coord{Row: row, Col: col}] = c
	if row > s.rows {
		s.rows = row
	}
	if col > s.cols {
		s.cols = col
	}
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Cell returns the cell at row, col.
func (s *Sheet) Cell(row, col int) Cell {
	return s.cells[Coord{Row: row, Col: col}]
}

// Dimensions returns the highest populated row and column.
func (s *Sheet) Dimensions() (int, int) {
	return s.rows, s.cols
}

// Len returns the number of populated cells.
func (s *Sheet) Len() int {
	return len(s.cells)
}
