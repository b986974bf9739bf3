package model

import (
	"strings"
	"unicode/utf8"
)

// Cell is a table cell. Row and column indices are 1-based as reported by
// the analysis service.
type Cell struct {
	ID          string
	Confidence  float64
	Geometry    Geometry
	RowIndex    int
	ColumnIndex int
	RowSpan     int
	ColumnSpan  int
	Content     []Content
	Text        string // each word followed by " ", each selection by ", "
}

func (c Cell) String() string { return c.Text }

// Covers reports whether the cell spans the given 1-based position
func (c Cell) Covers(row, col int) bool {
	rowSpan, colSpan := max(c.RowSpan, 1), max(c.ColumnSpan, 1)
	return row >= c.RowIndex && row < c.RowIndex+rowSpan &&
		col >= c.ColumnIndex && col < c.ColumnIndex+colSpan
}

// Row holds the cells sharing a row index, in encounter order
type Row struct {
	Cells []Cell
}

func (r Row) String() string {
	var sb strings.Builder
	for _, c := range r.Cells {
		sb.WriteString("[")
		sb.WriteString(c.Text)
		sb.WriteString("]")
	}
	return sb.String()
}

// Table is a detected table. Rows are ordered by ascending row index.
type Table struct {
	ID         string
	Confidence float64
	Geometry   Geometry
	Rows       []Row
}

func (t Table) Type() ElementType { return ElementTypeTable }
func (t Table) BoundingBox() BBox { return t.Geometry.BBox }

// RowCount returns the number of grid rows, spans included
func (t Table) RowCount() int {
	n := 0
	for _, row := range t.Rows {
		for _, c := range row.Cells {
			n = max(n, c.RowIndex+max(c.RowSpan, 1)-1)
		}
	}
	return n
}

// ColCount returns the number of grid columns, spans included
func (t Table) ColCount() int {
	n := 0
	for _, row := range t.Rows {
		for _, c := range row.Cells {
			n = max(n, c.ColumnIndex+max(c.ColumnSpan, 1)-1)
		}
	}
	return n
}

// Cell returns the cell covering the 1-based position
func (t Table) Cell(row, col int) (Cell, bool) {
	for _, r := range t.Rows {
		for _, c := range r.Cells {
			if c.Covers(row, col) {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// Grid returns the table as a dense RowCount x ColCount matrix of trimmed
// cell text. A spanning cell's text appears only at its origin position.
func (t Table) Grid() [][]string {
	rows, cols := t.RowCount(), t.ColCount()
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
	}
	for _, r := range t.Rows {
		for _, c := range r.Cells {
			if c.RowIndex < 1 || c.ColumnIndex < 1 {
				continue
			}
			grid[c.RowIndex-1][c.ColumnIndex-1] = c.CleanText()
		}
	}
	return grid
}

// CleanText returns the cell text without the trailing word and selection
// separators
func (c Cell) CleanText() string {
	s := strings.TrimSpace(c.Text)
	s = strings.TrimSuffix(s, ",")
	return strings.TrimSpace(s)
}

// ToMarkdown converts the table to markdown format, treating the first grid
// row as the header
func (t Table) ToMarkdown() string {
	grid := t.Grid()
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		for _, text := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(escapePipes(text), "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(grid[0])
	for range grid[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range grid[1:] {
		writeRow(row)
	}
	return sb.String()
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// ToCSV converts the table to CSV format
func (t Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Grid() {
		for j, text := range row {
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// String renders the table between banners, each cell padded to the widest
// cell text of its column
func (t Table) String() string {
	widest := make(map[int]int)
	for _, row := range t.Rows {
		for _, c := range row.Cells {
			widest[c.ColumnIndex] = max(widest[c.ColumnIndex], utf8.RuneCountInString(c.Text))
		}
	}

	var sb strings.Builder
	sb.WriteString("\n\n======= Table =======\n\n")
	for _, row := range t.Rows {
		for _, c := range row.Cells {
			sb.WriteString(c.Text)
			sb.WriteString(strings.Repeat(" ", widest[c.ColumnIndex]-utf8.RuneCountInString(c.Text)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("===== End of Table =====\n\n")
	return sb.String()
}
