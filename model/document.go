package model

import "strings"

const documentRule = "=========================================="

// Document is the result of assembling one or more analysis responses
type Document struct {
	Name       string
	TotalPages int
	Pages      []Page
}

// GetPage returns a page by number (1-indexed). Pages may be a selection,
// so the lookup is by page number rather than position.
func (d Document) GetPage(number int) (Page, bool) {
	for _, p := range d.Pages {
		if p.Number == number {
			return p, true
		}
	}
	return Page{}, false
}

// PageCount returns the number of assembled pages
func (d Document) PageCount() int {
	return len(d.Pages)
}

// Text returns the paragraph text of every page, pages separated by a form
// feed
func (d Document) Text() string {
	parts := make([]string, 0, len(d.Pages))
	for _, page := range d.Pages {
		parts = append(parts, page.Text())
	}
	return strings.Join(parts, "\n\f\n")
}

// Tables returns the tables of every page in page order
func (d Document) Tables() []Table {
	var tables []Table
	for _, page := range d.Pages {
		tables = append(tables, page.Tables...)
	}
	return tables
}

// KeyValueSets returns the form pairs of every page in page order
func (d Document) KeyValueSets() []KeyValueSet {
	var kvs []KeyValueSet
	for _, page := range d.Pages {
		kvs = append(kvs, page.Form.KeyValueSets...)
	}
	return kvs
}

// SearchKey searches every page form for keys containing key
func (d Document) SearchKey(key string) []KeyValueSet {
	var kvs []KeyValueSet
	for _, page := range d.Pages {
		kvs = append(kvs, page.Form.Search(key)...)
	}
	return kvs
}

func (d Document) String() string {
	header := "Document"
	if d.Name != "" {
		header = "Document: " + d.Name
	}
	var sb strings.Builder
	sb.WriteString("\n" + header + "\n" + documentRule + "\n")
	for _, page := range d.Pages {
		sb.WriteString(page.String())
		sb.WriteString("\n\n")
	}
	sb.WriteString(documentRule + "\n")
	return sb.String()
}
