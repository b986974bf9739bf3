// Package blocktest builds raw analysis blocks for tests.
package blocktest

import "github.com/MorphisHe/textractdoc/block"

// Float returns a pointer to f
func Float(f float64) *float64 { return &f }

// Int returns a pointer to i
func Int(i int) *int { return &i }

// String returns a pointer to s
func String(s string) *string { return &s }

// Box returns a geometry with the given bounding box and its four corners
// as polygon
func Box(left, top, width, height float64) *block.Geometry {
	return &block.Geometry{
		BoundingBox: &block.BoundingBox{Left: left, Top: top, Width: width, Height: height},
		Polygon: []block.Point{
			{X: left, Y: top},
			{X: left + width, Y: top},
			{X: left + width, Y: top + height},
			{X: left, Y: top + height},
		},
	}
}

// Child returns a CHILD relationship group
func Child(ids ...string) block.Relationship {
	return block.Relationship{Type: "CHILD", IDs: ids}
}

// ValueOf returns a VALUE relationship group
func ValueOf(ids ...string) block.Relationship {
	return block.Relationship{Type: "VALUE", IDs: ids}
}

// Response wraps blocks in a response whose metadata reports pages
func Response(pages int, blocks ...block.Block) block.Response {
	if blocks == nil {
		blocks = []block.Block{}
	}
	return block.Response{
		DocumentMetadata: &block.DocumentMetadata{Pages: pages},
		Blocks:           blocks,
	}
}

// Page returns a PAGE block listing children
func Page(id string, children ...string) block.Block {
	b := block.Block{
		ID:         id,
		BlockType:  "PAGE",
		Confidence: Float(100),
		Geometry:   Box(0, 0, 1, 1),
	}
	if len(children) > 0 {
		b.Relationships = []block.Relationship{Child(children...)}
	}
	return b
}

// Word returns a WORD block
func Word(id, text string, confidence float64, geo *block.Geometry) block.Block {
	return block.Block{
		ID:         id,
		BlockType:  "WORD",
		Confidence: Float(confidence),
		Text:       text,
		TextType:   "PRINTED",
		Geometry:   geo,
	}
}

// Line returns a LINE block with one CHILD group. A line with no children
// has no relationships at all.
func Line(id string, geo *block.Geometry, children ...string) block.Block {
	b := block.Block{
		ID:         id,
		BlockType:  "LINE",
		Confidence: Float(99),
		Geometry:   geo,
	}
	if len(children) > 0 {
		b.Relationships = []block.Relationship{Child(children...)}
	}
	return b
}

// Selection returns a SELECTION_ELEMENT block
func Selection(id, status string, geo *block.Geometry) block.Block {
	return block.Block{
		ID:              id,
		BlockType:       "SELECTION_ELEMENT",
		Confidence:      Float(98),
		Geometry:        geo,
		SelectionStatus: String(status),
	}
}

// Cell returns a CELL block at the 1-based position with span 1
func Cell(id string, row, col int, geo *block.Geometry, children ...string) block.Block {
	b := block.Block{
		ID:          id,
		BlockType:   "CELL",
		Confidence:  Float(90),
		Geometry:    geo,
		RowIndex:    Int(row),
		ColumnIndex: Int(col),
		RowSpan:     Int(1),
		ColumnSpan:  Int(1),
	}
	if len(children) > 0 {
		b.Relationships = []block.Relationship{Child(children...)}
	}
	return b
}

// Table returns a TABLE block listing cells
func Table(id string, geo *block.Geometry, cells ...string) block.Block {
	b := block.Block{
		ID:         id,
		BlockType:  "TABLE",
		Confidence: Float(95),
		Geometry:   geo,
	}
	if len(cells) > 0 {
		b.Relationships = []block.Relationship{Child(cells...)}
	}
	return b
}

// Key returns a KEY_VALUE_SET block with entity KEY. valueID may be empty
// for an unlinked key.
func Key(id string, geo *block.Geometry, valueID string, children ...string) block.Block {
	b := block.Block{
		ID:          id,
		BlockType:   "KEY_VALUE_SET",
		Confidence:  Float(92),
		Geometry:    geo,
		EntityTypes: []string{"KEY"},
	}
	if valueID != "" {
		b.Relationships = append(b.Relationships, ValueOf(valueID))
	}
	if len(children) > 0 {
		b.Relationships = append(b.Relationships, Child(children...))
	}
	return b
}

// Value returns a KEY_VALUE_SET block with entity VALUE
func Value(id string, geo *block.Geometry, children ...string) block.Block {
	b := block.Block{
		ID:          id,
		BlockType:   "KEY_VALUE_SET",
		Confidence:  Float(91),
		Geometry:    geo,
		EntityTypes: []string{"VALUE"},
	}
	if len(children) > 0 {
		b.Relationships = []block.Relationship{Child(children...)}
	}
	return b
}
