package builder

import (
	"strings"

	"github.com/MorphisHe/textractdoc/block"
	"github.com/MorphisHe/textractdoc/model"
	"github.com/MorphisHe/textractdoc/text"
)

// Index resolves block ids
type Index interface {
	Lookup(id string) (*block.Block, bool)
}

// Config holds builder settings
type Config struct {
	// MinWordConfidence is the confidence (0-100) a word needs to be kept
	// in a line
	MinWordConfidence float64

	// Normalization applied to word text
	Normalization text.Form
}

// DefaultConfig returns the default builder configuration
func DefaultConfig() Config {
	return Config{
		MinWordConfidence: 95.0,
		Normalization:     text.None,
	}
}

// Builder builds model values from blocks. It is not safe for concurrent
// use; create one per page.
type Builder struct {
	index   Index
	config  Config
	skipped []error
}

// New creates a builder resolving ids through index
func New(index Index, config Config) *Builder {
	return &Builder{index: index, config: config}
}

// Skipped returns every DanglingReferenceError absorbed so far
func (b *Builder) Skipped() []error {
	return b.skipped
}

// resolve looks up a child id, recording a dangling reference on failure
func (b *Builder) resolve(childID, parentID string) (*block.Block, bool) {
	child, ok := b.index.Lookup(childID)
	if !ok {
		b.skipped = append(b.skipped, &DanglingReferenceError{ChildID: childID, ParentID: parentID})
		return nil, false
	}
	return child, true
}

func confidence(blk *block.Block) (float64, error) {
	if blk.Confidence == nil {
		return 0, &MissingFieldError{Field: "Confidence", NodeID: blk.ID}
	}
	return *blk.Confidence, nil
}

func requireID(blk *block.Block) error {
	if blk.ID == "" {
		return &MissingFieldError{Field: "Id", NodeID: blk.ID}
	}
	return nil
}

// Geometry converts a block's raw geometry. A missing polygon is replaced by
// the box corners.
func (b *Builder) Geometry(blk *block.Block) (model.Geometry, error) {
	if blk.Geometry == nil {
		return model.Geometry{}, &MissingFieldError{Field: "Geometry", NodeID: blk.ID}
	}
	raw := blk.Geometry.BoundingBox
	if raw == nil {
		return model.Geometry{}, &MissingFieldError{Field: "Geometry.BoundingBox", NodeID: blk.ID}
	}
	if raw.Width < 0 || raw.Height < 0 {
		return model.Geometry{}, &InvalidFieldError{
			Field:  "Geometry.BoundingBox",
			NodeID: blk.ID,
			Reason: "negative extent",
		}
	}

	box := model.NewBBox(raw.Left, raw.Top, raw.Width, raw.Height)
	if len(blk.Geometry.Polygon) == 0 {
		return model.Geometry{BBox: box, Polygon: box.Corners()}, nil
	}
	poly := make(model.Polygon, len(blk.Geometry.Polygon))
	for i, p := range blk.Geometry.Polygon {
		poly[i] = model.Point{X: p.X, Y: p.Y}
	}
	return model.Geometry{BBox: box, Polygon: poly}, nil
}

// common reads the id, confidence and geometry every typed value carries
func (b *Builder) common(blk *block.Block) (float64, model.Geometry, error) {
	if err := requireID(blk); err != nil {
		return 0, model.Geometry{}, err
	}
	conf, err := confidence(blk)
	if err != nil {
		return 0, model.Geometry{}, err
	}
	geo, err := b.Geometry(blk)
	if err != nil {
		return 0, model.Geometry{}, err
	}
	return conf, geo, nil
}

// Word builds a WORD block
func (b *Builder) Word(blk *block.Block) (model.Word, error) {
	conf, geo, err := b.common(blk)
	if err != nil {
		return model.Word{}, err
	}
	return model.Word{
		ID:         blk.ID,
		Text:       text.Normalize(blk.Text, b.config.Normalization),
		Confidence: conf,
		Geometry:   geo,
	}, nil
}

// SelectionElement builds a SELECTION_ELEMENT block
func (b *Builder) SelectionElement(blk *block.Block) (model.SelectionElement, error) {
	conf, geo, err := b.common(blk)
	if err != nil {
		return model.SelectionElement{}, err
	}
	if blk.SelectionStatus == nil {
		return model.SelectionElement{}, &MissingFieldError{Field: "SelectionStatus", NodeID: blk.ID}
	}
	status := model.SelectionStatus(*blk.SelectionStatus)
	if !status.IsValid() {
		return model.SelectionElement{}, &InvalidFieldError{
			Field:  "SelectionStatus",
			NodeID: blk.ID,
			Reason: "unknown status " + *blk.SelectionStatus,
		}
	}
	return model.SelectionElement{
		ID:         blk.ID,
		Confidence: conf,
		Geometry:   geo,
		Status:     status,
	}, nil
}

// Line builds a LINE block from its WORD children that meet the confidence
// threshold. The line text is the space-joined word text.
func (b *Builder) Line(blk *block.Block) (model.Line, error) {
	conf, geo, err := b.common(blk)
	if err != nil {
		return model.Line{}, err
	}

	var words []model.Word
	var parts []string
	for _, id := range blk.IDs(block.RelationshipChild) {
		child, ok := b.resolve(id, blk.ID)
		if !ok || child.Kind() != block.BlockTypeWord {
			continue
		}
		w, err := b.Word(child)
		if err != nil {
			return model.Line{}, err
		}
		if w.Confidence < b.config.MinWordConfidence {
			continue
		}
		words = append(words, w)
		parts = append(parts, w.Text)
	}

	return model.Line{
		ID:         blk.ID,
		Text:       text.Join(parts, " "),
		Confidence: conf,
		Geometry:   geo,
		Words:      words,
	}, nil
}

// fieldContent builds the word and selection children listed in ids. Text is
// the space-joined word text and selection literals.
func (b *Builder) fieldContent(parentID string, ids []string) ([]model.Content, string, error) {
	var content []model.Content
	var parts []string
	for _, id := range ids {
		child, ok := b.resolve(id, parentID)
		if !ok {
			continue
		}
		switch child.Kind() {
		case block.BlockTypeWord:
			w, err := b.Word(child)
			if err != nil {
				return nil, "", err
			}
			content = append(content, w)
			parts = append(parts, w.Text)
		case block.BlockTypeSelectionElement:
			s, err := b.SelectionElement(child)
			if err != nil {
				return nil, "", err
			}
			content = append(content, s)
			parts = append(parts, string(s.Status))
		}
	}
	return content, text.Join(parts, " "), nil
}

// FieldKey builds the key side of a KEY block from the given child ids
func (b *Builder) FieldKey(blk *block.Block, childIDs []string) (model.FieldKey, error) {
	conf, geo, err := b.common(blk)
	if err != nil {
		return model.FieldKey{}, err
	}
	content, txt, err := b.fieldContent(blk.ID, childIDs)
	if err != nil {
		return model.FieldKey{}, err
	}
	return model.FieldKey{ID: blk.ID, Confidence: conf, Geometry: geo, Content: content, Text: txt}, nil
}

// FieldValue builds a VALUE block from the given child ids
func (b *Builder) FieldValue(blk *block.Block, childIDs []string) (model.FieldValue, error) {
	conf, geo, err := b.common(blk)
	if err != nil {
		return model.FieldValue{}, err
	}
	content, txt, err := b.fieldContent(blk.ID, childIDs)
	if err != nil {
		return model.FieldValue{}, err
	}
	return model.FieldValue{ID: blk.ID, Confidence: conf, Geometry: geo, Content: content, Text: txt}, nil
}

// KeyValueSet builds a form pair from a KEY block. It reports false when the
// block has no CHILD group, since such a block has no key. The value is the
// last VALUE target that carries the VALUE entity and a CHILD group; it is
// nil when no target qualifies.
func (b *Builder) KeyValueSet(blk *block.Block) (model.KeyValueSet, bool, error) {
	if !blk.HasRelationship(block.RelationshipChild) {
		return model.KeyValueSet{}, false, nil
	}
	key, err := b.FieldKey(blk, blk.IDs(block.RelationshipChild))
	if err != nil {
		return model.KeyValueSet{}, false, err
	}

	kv := model.KeyValueSet{Key: key}
	for _, id := range blk.IDs(block.RelationshipValue) {
		target, ok := b.resolve(id, blk.ID)
		if !ok {
			continue
		}
		if !target.HasEntityType(block.EntityValue) || !target.HasRelationship(block.RelationshipChild) {
			continue
		}
		value, err := b.FieldValue(target, target.IDs(block.RelationshipChild))
		if err != nil {
			return model.KeyValueSet{}, false, err
		}
		kv.Value = &value
	}
	return kv, true, nil
}

func requireIndex(blk *block.Block, field string, v *int) (int, error) {
	if v == nil {
		return 0, &MissingFieldError{Field: field, NodeID: blk.ID}
	}
	if *v < 1 {
		return 0, &InvalidFieldError{Field: field, NodeID: blk.ID, Reason: "must be at least 1"}
	}
	return *v, nil
}

func optionalSpan(v *int) int {
	if v == nil || *v < 1 {
		return 1
	}
	return *v
}

// Cell builds a CELL block. Each word contributes its text followed by a
// space and each selection its status followed by ", ".
func (b *Builder) Cell(blk *block.Block) (model.Cell, error) {
	conf, geo, err := b.common(blk)
	if err != nil {
		return model.Cell{}, err
	}
	row, err := requireIndex(blk, "RowIndex", blk.RowIndex)
	if err != nil {
		return model.Cell{}, err
	}
	col, err := requireIndex(blk, "ColumnIndex", blk.ColumnIndex)
	if err != nil {
		return model.Cell{}, err
	}

	cell := model.Cell{
		ID:          blk.ID,
		Confidence:  conf,
		Geometry:    geo,
		RowIndex:    row,
		ColumnIndex: col,
		RowSpan:     optionalSpan(blk.RowSpan),
		ColumnSpan:  optionalSpan(blk.ColumnSpan),
	}

	var txt strings.Builder
	for _, id := range blk.IDs(block.RelationshipChild) {
		child, ok := b.resolve(id, blk.ID)
		if !ok {
			continue
		}
		switch child.Kind() {
		case block.BlockTypeWord:
			w, err := b.Word(child)
			if err != nil {
				return model.Cell{}, err
			}
			cell.Content = append(cell.Content, w)
			txt.WriteString(w.Text)
			txt.WriteString(" ")
		case block.BlockTypeSelectionElement:
			s, err := b.SelectionElement(child)
			if err != nil {
				return model.Cell{}, err
			}
			cell.Content = append(cell.Content, s)
			txt.WriteString(string(s.Status))
			txt.WriteString(", ")
		}
	}
	cell.Text = txt.String()
	return cell, nil
}

// Table builds a TABLE block. Cells are taken in declared order and a new
// row starts whenever a cell's row index exceeds the current one, so the
// children are expected sorted by row. Non-CELL children are skipped.
func (b *Builder) Table(blk *block.Block) (model.Table, error) {
	conf, geo, err := b.common(blk)
	if err != nil {
		return model.Table{}, err
	}

	table := model.Table{ID: blk.ID, Confidence: conf, Geometry: geo}
	currentRow := 1
	var row model.Row
	for _, id := range blk.IDs(block.RelationshipChild) {
		child, ok := b.resolve(id, blk.ID)
		if !ok || child.Kind() != block.BlockTypeCell {
			continue
		}
		cell, err := b.Cell(child)
		if err != nil {
			return model.Table{}, err
		}
		if cell.RowIndex > currentRow {
			if len(row.Cells) > 0 {
				table.Rows = append(table.Rows, row)
			}
			row = model.Row{}
			currentRow = cell.RowIndex
		}
		row.Cells = append(row.Cells, cell)
	}
	if len(row.Cells) > 0 {
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
