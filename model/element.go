package model

// ElementType represents the type of page content element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeTable
	ElementTypeForm
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeTable:
		return "Table"
	case ElementTypeForm:
		return "Form"
	default:
		return "Unknown"
	}
}

// Element is the interface for page content: a Paragraph, a Table or a Form.
type Element interface {
	Type() ElementType
	BoundingBox() BBox
	String() string
}

// Content is an item of form field or cell content: a Word or a
// SelectionElement.
type Content interface {
	isContent()
}

// ContentText renders a content item: the word text or the selection status
// literal.
func ContentText(c Content) string {
	switch v := c.(type) {
	case Word:
		return v.Text
	case SelectionElement:
		return string(v.Status)
	default:
		return ""
	}
}

// Word is a single recognised word
type Word struct {
	ID         string
	Text       string
	Confidence float64 // 0-100
	Geometry   Geometry
}

func (Word) isContent() {}

func (w Word) String() string { return w.Text }

// Line is a line of words as detected by the analysis service, or the merge
// of several such lines that share one visual line.
type Line struct {
	ID         string
	Text       string // space-joined word text
	Confidence float64
	Geometry   Geometry
	Words      []Word
}

func (l Line) String() string { return l.Text }

// Paragraph is a run of lines grouped by layout reconstruction
type Paragraph struct {
	Lines    []Line
	Text     string // newline-joined line text
	Geometry Geometry
}

func (p Paragraph) Type() ElementType { return ElementTypeParagraph }
func (p Paragraph) BoundingBox() BBox { return p.Geometry.BBox }
func (p Paragraph) String() string    { return p.Text }

// SelectionStatus is the state of a checkbox or radio button
type SelectionStatus string

const (
	Selected    SelectionStatus = "SELECTED"
	NotSelected SelectionStatus = "NOT_SELECTED"
)

// IsValid reports whether s is one of the known statuses
func (s SelectionStatus) IsValid() bool {
	return s == Selected || s == NotSelected
}

// SelectionElement is a checkbox, radio button or similar mark
type SelectionElement struct {
	ID         string
	Confidence float64
	Geometry   Geometry
	Status     SelectionStatus
}

func (SelectionElement) isContent() {}

// IsSelected reports whether the element is checked
func (s SelectionElement) IsSelected() bool { return s.Status == Selected }

func (s SelectionElement) String() string { return string(s.Status) }
