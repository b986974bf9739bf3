package layout

import "github.com/MorphisHe/textractdoc/model"

// Column is a horizontal band of lines. Left and Right are fixed at the
// interval of the line that started the column.
type Column struct {
	Left  float64
	Right float64
	Lines []model.Line
}

// Width returns the width of the column interval
func (c Column) Width() float64 {
	return c.Right - c.Left
}

// Overlaps reports whether the box's horizontal span intersects the column
// interval, touching edges included
func (c Column) Overlaps(b model.BBox) bool {
	return model.SpansOverlap(c.Left, c.Right, b.Left, b.Right())
}

// DetectColumns assigns each line, in order, to the single existing column
// it overlaps horizontally. A line overlapping no column or more than one
// starts a new column. Columns are returned in creation order.
func DetectColumns(lines []model.Line) []Column {
	var columns []Column
	for _, line := range lines {
		box := line.Geometry.BBox
		match, hits := -1, 0
		for i := range columns {
			if columns[i].Overlaps(box) {
				match = i
				hits++
			}
		}
		if hits == 1 {
			columns[match].Lines = append(columns[match].Lines, line)
			continue
		}
		columns = append(columns, Column{
			Left:  box.Left,
			Right: box.Right(),
			Lines: []model.Line{line},
		})
	}
	return columns
}
