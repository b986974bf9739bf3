package layout

import (
	"testing"

	"github.com/MorphisHe/textractdoc/model"
)

func TestDetectColumns_EmptyInput(t *testing.T) {
	if cols := DetectColumns(nil); len(cols) != 0 {
		t.Errorf("expected 0 columns, got %d", len(cols))
	}
}

func TestDetectColumns_SingleColumn(t *testing.T) {
	lines := []model.Line{
		makeLine("a", 0.10, 0.10, 0.80, 0.02, "one"),
		makeLine("b", 0.10, 0.13, 0.70, 0.02, "two"),
		makeLine("c", 0.12, 0.16, 0.50, 0.02, "three"),
	}
	cols := DetectColumns(lines)
	if len(cols) != 1 {
		t.Fatalf("expected 1 column, got %d", len(cols))
	}
	if len(cols[0].Lines) != 3 {
		t.Errorf("expected 3 lines in column, got %d", len(cols[0].Lines))
	}
}

func TestDetectColumns_TwoColumns(t *testing.T) {
	lines := []model.Line{
		makeLine("l1", 0.05, 0.10, 0.40, 0.02, "left one"),
		makeLine("r1", 0.55, 0.10, 0.40, 0.02, "right one"),
		makeLine("l2", 0.05, 0.13, 0.40, 0.02, "left two"),
		makeLine("r2", 0.55, 0.13, 0.40, 0.02, "right two"),
	}
	cols := DetectColumns(lines)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	if cols[0].Lines[0].ID != "l1" || cols[0].Lines[1].ID != "l2" {
		t.Errorf("left column has wrong lines: %v", cols[0].Lines)
	}
	if cols[1].Lines[0].ID != "r1" || cols[1].Lines[1].ID != "r2" {
		t.Errorf("right column has wrong lines: %v", cols[1].Lines)
	}
}

func TestDetectColumns_CountStableUnderPermutation(t *testing.T) {
	l1 := makeLine("l1", 0.05, 0.10, 0.40, 0.02, "left one")
	l2 := makeLine("l2", 0.05, 0.13, 0.40, 0.02, "left two")
	l3 := makeLine("l3", 0.05, 0.16, 0.40, 0.02, "left three")
	r1 := makeLine("r1", 0.55, 0.10, 0.40, 0.02, "right one")
	r2 := makeLine("r2", 0.55, 0.13, 0.40, 0.02, "right two")
	r3 := makeLine("r3", 0.55, 0.16, 0.40, 0.02, "right three")

	orders := []struct {
		name  string
		lines []model.Line
	}{
		{"left then right", []model.Line{l1, l2, l3, r1, r2, r3}},
		{"interleaved", []model.Line{l1, r1, l2, r2, l3, r3}},
		{"right first", []model.Line{r1, l1, r2, l2, r3, l3}},
		{"reversed", []model.Line{r3, l3, r2, l2, r1, l1}},
		{"mixed", []model.Line{l2, r3, l1, r1, l3, r2}},
	}
	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			cols := DetectColumns(tt.lines)
			if len(cols) != 2 {
				t.Fatalf("expected 2 columns, got %d", len(cols))
			}
			for _, col := range cols {
				if len(col.Lines) != 3 {
					t.Errorf("column [%v, %v] has %d lines, want 3", col.Left, col.Right, len(col.Lines))
				}
			}
		})
	}
}

func TestDetectColumns_SpanningLineStartsNewColumn(t *testing.T) {
	lines := []model.Line{
		makeLine("l1", 0.05, 0.10, 0.40, 0.02, "left"),
		makeLine("r1", 0.55, 0.10, 0.40, 0.02, "right"),
		makeLine("wide", 0.05, 0.13, 0.90, 0.02, "spans both"),
	}
	cols := DetectColumns(lines)
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cols))
	}
	if cols[2].Lines[0].ID != "wide" {
		t.Errorf("expected spanning line to seed column 3, got %s", cols[2].Lines[0].ID)
	}
}

func TestDetectColumns_IntervalFixedAtSeed(t *testing.T) {
	lines := []model.Line{
		makeLine("a", 0.10, 0.10, 0.20, 0.02, "seed"),
		makeLine("b", 0.25, 0.13, 0.30, 0.02, "wider"),
		makeLine("c", 0.40, 0.16, 0.10, 0.02, "outside seed"),
	}
	cols := DetectColumns(lines)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	if cols[0].Left != 0.10 || cols[0].Right != 0.30 {
		t.Errorf("column interval moved: [%v, %v]", cols[0].Left, cols[0].Right)
	}
	if cols[0].Width() <= 0 {
		t.Error("expected positive column width")
	}
}

func TestColumnOverlapsTouching(t *testing.T) {
	col := Column{Left: 0.1, Right: 0.3}
	if !col.Overlaps(model.NewBBox(0.3, 0, 0.1, 0.1)) {
		t.Error("touching box should overlap")
	}
	if col.Overlaps(model.NewBBox(0.31, 0, 0.1, 0.1)) {
		t.Error("disjoint box should not overlap")
	}
}
