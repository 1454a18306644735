package drivers

import (
	"testing"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/classify"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/label"
	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
	"github.com/stretchr/testify/assert"
)

func cand(rowLabel string, col int) models.Candidate {
	return models.Candidate{RowLabel: rowLabel, Col: col}
}

func TestSelectColumn(t *testing.T) {
	tests := []struct {
		name  string
		cands []models.Candidate
		want  int
		ok    bool
	}{
		{"none", nil, 0, false},
		{"single", []models.Candidate{cand("Revenue", 4)}, 4, true},
		{"tie goes right", []models.Candidate{cand("A", 4), cand("B", 6)}, 6, true},
		{"majority", []models.Candidate{cand("A", 3), cand("A", 4), cand("B", 4), cand("C", 6)}, 4, true},
		{"rightmost per label", []models.Candidate{cand("A", 7), cand("A", 2), cand("B", 2)}, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectColumn(tt.cands)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFilterToColumn(t *testing.T) {
	cands := []models.Candidate{cand("A", 4), cand("B", 5), cand("C", 4)}

	kept, dropped := FilterToColumn(cands, 4)
	assert.Equal(t, []models.Candidate{cand("A", 4), cand("C", 4)}, kept)
	assert.Equal(t, []models.Candidate{cand("B", 5)}, dropped)
}

func TestAssemble(t *testing.T) {
	g := models.NewSheet("Inputs")
	g.Set(1, 4, models.TextCell("Base"))
	g.Set(1, 5, models.TextCell("Growth"))
	g.Set(1, 6, models.TextCell("Notes"))
	g.Set(3, 4, models.NumberCell(7, "7"))

	res := label.NewResolver(classify.New(classify.LenientOperators, nil))
	cands := []models.Candidate{{RowLabel: "Units", Col: 4, Row: 3, Cell: "D3", Content: "7", ColumnLabel: "Base"}}

	records := Assemble(g, cands, 4, res.Index(g), AnchorAbove)
	assert.Equal(t, []models.DriverRecord{{
		Sheet:                  "Inputs",
		RowLabel:               "Units",
		Row:                    3,
		Cell:                   "D3",
		Content:                "7",
		ColumnLabel:            "Base",
		FirstRightCell:         "E3",
		FirstRightColumnLabel:  "Growth",
		SecondRightCell:        "F3",
		SecondRightColumnLabel: "Notes",
	}}, records)

	assert.Empty(t, Assemble(g, nil, 4, res.Index(g), AnchorAbove))
}

func TestSortRecords(t *testing.T) {
	records := []models.DriverRecord{
		{Sheet: "b", Row: 2, Cell: "D2"},
		{Sheet: "a", Row: 9, Cell: "D9"},
		{Sheet: "b", Row: 1, Cell: "D1"},
		{Sheet: "a", Row: 3, Cell: "D3"},
	}
	SortRecords(records)

	var cells []string
	for _, r := range records {
		cells = append(cells, r.Sheet+"!"+r.Cell)
	}
	assert.Equal(t, []string{"a!D3", "a!D9", "b!D1", "b!D2"}, cells)
}
