package model

import (
	"strconv"
	"strings"
)

// Page is one assembled page of an analysed document
type Page struct {
	Number     int // 1-indexed page number
	ID         string
	Geometry   Geometry
	Lines      []Line      // built lines that survived the claimed-children filter, before merging
	Paragraphs []Paragraph // in reading order
	Form       Form
	Tables     []Table
	Content    []Element // paragraphs, then tables, then the form when non-empty
}

// Text returns the paragraph text of the page, paragraphs separated by a
// blank line
func (p Page) Text() string {
	parts := make([]string, 0, len(p.Paragraphs))
	for _, para := range p.Paragraphs {
		parts = append(parts, para.Text)
	}
	return strings.Join(parts, "\n\n")
}

// GetElementsInRegion returns content elements whose box intersects bbox
func (p Page) GetElementsInRegion(bbox BBox) []Element {
	var elements []Element
	for _, elem := range p.Content {
		if bbox.Intersects(elem.BoundingBox()) {
			elements = append(elements, elem)
		}
	}
	return elements
}

func (p Page) String() string {
	num := strconv.Itoa(p.Number)
	var sb strings.Builder
	sb.WriteString("\n***************** Page Number: " + num + " ********************\n")
	for _, elem := range p.Content {
		sb.WriteString(elem.String())
		sb.WriteString("\n")
	}
	sb.WriteString("\n***************** End of Page " + num + " ********************\n")
	return sb.String()
}
