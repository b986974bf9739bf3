package model

import (
	"math"
	"strings"
	"testing"
)

// ============================================================================
// Point Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{0.3, 0}, 0.3},
		{"vertical", Point{0, 0}, Point{0, 0.4}, 0.4},
		{"diagonal 3-4-5", Point{0, 0}, Point{0.3, 0.4}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p1.Distance(tt.p2)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Distance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// ============================================================================
// BBox Tests
// ============================================================================

func approxBBox(a, b BBox) bool {
	const eps = 1e-9
	return math.Abs(a.Left-b.Left) < eps && math.Abs(a.Top-b.Top) < eps &&
		math.Abs(a.Width-b.Width) < eps && math.Abs(a.Height-b.Height) < eps
}

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(0.1, 0.2, 0.3, 0.05)
	if math.Abs(b.Right()-0.4) > 1e-9 {
		t.Errorf("Right() = %v, want 0.4", b.Right())
	}
	if math.Abs(b.Bottom()-0.25) > 1e-9 {
		t.Errorf("Bottom() = %v, want 0.25", b.Bottom())
	}
	c := b.Center()
	if math.Abs(c.X-0.25) > 1e-9 || math.Abs(c.Y-0.225) > 1e-9 {
		t.Errorf("Center() = %+v, want {0.25 0.225}", c)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0.1, 0.1, 0.2, 0.1)
	b := NewBBox(0.5, 0.3, 0.1, 0.1)
	want := NewBBox(0.1, 0.1, 0.5, 0.3)
	if got := a.Union(b); !approxBBox(got, want) {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if got := b.Union(a); !approxBBox(got, want) {
		t.Errorf("Union() not commutative: %+v", got)
	}
}

func TestBBoxIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want BBox
	}{
		{"partial", NewBBox(0, 0, 0.5, 0.5), NewBBox(0.25, 0.25, 0.5, 0.5), NewBBox(0.25, 0.25, 0.25, 0.25)},
		{"contained", NewBBox(0, 0, 1, 1), NewBBox(0.2, 0.2, 0.1, 0.1), NewBBox(0.2, 0.2, 0.1, 0.1)},
		{"disjoint", NewBBox(0, 0, 0.1, 0.1), NewBBox(0.5, 0.5, 0.1, 0.1), BBox{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersection(tt.b); !approxBBox(got, tt.want) {
				t.Errorf("Intersection() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpansOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd float64
		want                       bool
	}{
		{"a end inside b", 0, 0.5, 0.4, 0.9, true},
		{"b start inside a", 0.4, 0.9, 0, 0.5, true},
		{"a contains b", 0, 1, 0.2, 0.3, true},
		{"b contains a", 0.2, 0.3, 0, 1, true},
		{"touching", 0, 0.5, 0.5, 1, true},
		{"disjoint", 0, 0.4, 0.5, 1, false},
		{"disjoint reversed", 0.5, 1, 0, 0.4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpansOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("SpansOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBBoxGaps(t *testing.T) {
	a := NewBBox(0.1, 0.1, 0.2, 0.05)
	b := NewBBox(0.305, 0.1, 0.2, 0.05)
	if g := a.HorizontalGap(b); math.Abs(g-0.005) > 1e-9 {
		t.Errorf("HorizontalGap() = %v, want 0.005", g)
	}
	below := NewBBox(0.1, 0.2, 0.2, 0.05)
	if g := a.VerticalGap(below); math.Abs(g-0.05) > 1e-9 {
		t.Errorf("VerticalGap() = %v, want 0.05", g)
	}
	if g := below.VerticalGap(a); g >= 0 {
		t.Errorf("VerticalGap() upward = %v, want negative", g)
	}
}

func TestBBoxIsEmpty(t *testing.T) {
	if !(BBox{}).IsEmpty() {
		t.Error("zero BBox should be empty")
	}
	if NewBBox(0, 0, 0.1, 0.1).IsEmpty() {
		t.Error("non-zero BBox should not be empty")
	}
}

// ============================================================================
// Geometry Tests
// ============================================================================

func TestUnionGeometryPolygon(t *testing.T) {
	g := UnionGeometry(
		Geometry{BBox: NewBBox(0.1, 0.1, 0.1, 0.1)},
		Geometry{BBox: NewBBox(0.3, 0.2, 0.1, 0.1)},
	)
	want := Polygon{{0.1, 0.1}, {0.4, 0.1}, {0.4, 0.3}, {0.1, 0.3}}
	if len(g.Polygon) != 4 {
		t.Fatalf("Polygon has %d points, want 4", len(g.Polygon))
	}
	for i, p := range want {
		if g.Polygon[i].Distance(p) > 1e-9 {
			t.Errorf("Polygon[%d] = %+v, want %+v", i, g.Polygon[i], p)
		}
	}
	if !approxBBox(g.Polygon.Bounds(), g.BBox) {
		t.Errorf("Polygon.Bounds() = %+v, want %+v", g.Polygon.Bounds(), g.BBox)
	}
}

func TestUnionGeometryEmpty(t *testing.T) {
	g := UnionGeometry()
	if g.BBox != (BBox{}) || g.Polygon != nil {
		t.Errorf("UnionGeometry() = %+v, want zero", g)
	}
}

// ============================================================================
// Content Tests
// ============================================================================

func TestContentText(t *testing.T) {
	tests := []struct {
		name string
		c    Content
		want string
	}{
		{"word", Word{Text: "Total"}, "Total"},
		{"selected", SelectionElement{Status: Selected}, "SELECTED"},
		{"not selected", SelectionElement{Status: NotSelected}, "NOT_SELECTED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentText(tt.c); got != tt.want {
				t.Errorf("ContentText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectionStatusIsValid(t *testing.T) {
	if !Selected.IsValid() || !NotSelected.IsValid() {
		t.Error("known statuses should be valid")
	}
	if SelectionStatus("MAYBE").IsValid() {
		t.Error("MAYBE should not be valid")
	}
}

// ============================================================================
// Form Tests
// ============================================================================

func kv(key, value string) KeyValueSet {
	set := KeyValueSet{Key: FieldKey{Text: key}}
	if value != "" {
		set.Value = &FieldValue{Text: value}
	}
	return set
}

func TestFormAddAndGet(t *testing.T) {
	var f Form
	f.Add(kv("Name:", "Jane"))
	f.Add(kv("Date:", ""))
	f.Add(kv("Name:", "John"))

	if f.Len() != 3 {
		t.Errorf("Len() = %d, want 3", f.Len())
	}
	got, ok := f.Get("Name:")
	if !ok {
		t.Fatal("Get(Name:) not found")
	}
	if got.ValueText() != "John" {
		t.Errorf("Get(Name:) = %q, want last write John", got.ValueText())
	}
	date, ok := f.Get("Date:")
	if !ok || date.Value != nil {
		t.Errorf("Get(Date:) = %+v, %v; want absent value", date, ok)
	}
	if _, ok := f.Get("Missing"); ok {
		t.Error("Get(Missing) should not be found")
	}
	if len(f.Map()) != 2 {
		t.Errorf("Map() has %d keys, want 2", len(f.Map()))
	}
}

func TestFormCopiesAreIndependent(t *testing.T) {
	var f Form
	f.Add(kv("a", "1"))
	g := f
	g.Add(kv("b", "2"))

	if _, ok := f.Get("b"); ok {
		t.Error("pair added to a copy should not be visible in the original")
	}
	if got, ok := g.Get("b"); !ok || got.ValueText() != "2" {
		t.Errorf("copy Get(b) = %+v, %v", got, ok)
	}
	if len(f.Map()) != 1 || len(g.Map()) != 2 {
		t.Errorf("Map() sizes = %d, %d; want 1, 2", len(f.Map()), len(g.Map()))
	}
}

func TestFormLiteralLookup(t *testing.T) {
	f := Form{KeyValueSets: []KeyValueSet{kv("Name:", "Jane"), kv("Name:", "John")}}
	got, ok := f.Get("Name:")
	if !ok || got.ValueText() != "John" {
		t.Errorf("Get(Name:) = %+v, %v; want last pair John", got, ok)
	}
	if f.Map()["Name:"].ValueText() != "John" {
		t.Error("Map() should keep the last pair")
	}
}

func TestFormSearch(t *testing.T) {
	var f Form
	f.Add(kv("First Name", "Jane"))
	f.Add(kv("Last Name", "Doe"))
	f.Add(kv("Phone", "555"))

	got := f.Search("name")
	if len(got) != 2 {
		t.Fatalf("Search(name) returned %d, want 2", len(got))
	}
	if got[0].Key.Text != "First Name" || got[1].Key.Text != "Last Name" {
		t.Errorf("Search(name) order = %q, %q", got[0].Key.Text, got[1].Key.Text)
	}
	if len(f.Search("zip")) != 0 {
		t.Error("Search(zip) should be empty")
	}
}

func TestFormString(t *testing.T) {
	var f Form
	f.Add(kv("Name:", "Jane"))
	s := f.String()
	if !strings.Contains(s, "======= Form =======") || !strings.Contains(s, "===== End of Form =====") {
		t.Errorf("String() missing banners: %q", s)
	}
	if !strings.Contains(s, "Key: Name:\nValue: Jane") {
		t.Errorf("String() missing pair: %q", s)
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func sampleTable() Table {
	return Table{
		ID: "t1",
		Rows: []Row{
			{Cells: []Cell{
				{RowIndex: 1, ColumnIndex: 1, RowSpan: 1, ColumnSpan: 1, Text: "Name "},
				{RowIndex: 1, ColumnIndex: 2, RowSpan: 1, ColumnSpan: 1, Text: "Amount "},
			}},
			{Cells: []Cell{
				{RowIndex: 2, ColumnIndex: 1, RowSpan: 1, ColumnSpan: 2, Text: "Total due "},
			}},
		},
	}
}

func TestTableDimensions(t *testing.T) {
	tbl := sampleTable()
	if tbl.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", tbl.RowCount())
	}
	if tbl.ColCount() != 2 {
		t.Errorf("ColCount() = %d, want 2", tbl.ColCount())
	}
}

func TestTableCell(t *testing.T) {
	tbl := sampleTable()
	c, ok := tbl.Cell(2, 2)
	if !ok || c.Text != "Total due " {
		t.Errorf("Cell(2,2) = %+v, %v; want spanning cell", c, ok)
	}
	if _, ok := tbl.Cell(3, 1); ok {
		t.Error("Cell(3,1) should not exist")
	}
}

func TestTableGrid(t *testing.T) {
	grid := sampleTable().Grid()
	want := [][]string{{"Name", "Amount"}, {"Total due", ""}}
	for i := range want {
		for j := range want[i] {
			if grid[i][j] != want[i][j] {
				t.Errorf("Grid[%d][%d] = %q, want %q", i, j, grid[i][j], want[i][j])
			}
		}
	}
}

func TestTableToMarkdown(t *testing.T) {
	md := sampleTable().ToMarkdown()
	want := "| Name | Amount |\n|---|---|\n| Total due |  |\n"
	if md != want {
		t.Errorf("ToMarkdown() = %q, want %q", md, want)
	}
	if (Table{}).ToMarkdown() != "" {
		t.Error("empty table should render empty markdown")
	}
}

func TestTableToCSV(t *testing.T) {
	tbl := Table{Rows: []Row{{Cells: []Cell{
		{RowIndex: 1, ColumnIndex: 1, Text: "a,b "},
		{RowIndex: 1, ColumnIndex: 2, Text: `say "hi" `},
	}}}}
	want := "\"a,b\",\"say \"\"hi\"\"\"\n"
	if got := tbl.ToCSV(); got != want {
		t.Errorf("ToCSV() = %q, want %q", got, want)
	}
}

func TestTableStringPadsColumns(t *testing.T) {
	s := sampleTable().String()
	if !strings.Contains(s, "Name      Amount \n") {
		t.Errorf("String() did not pad column 1 to widest text: %q", s)
	}
	if !strings.HasPrefix(s, "\n\n======= Table =======\n\n") || !strings.HasSuffix(s, "===== End of Table =====\n\n") {
		t.Errorf("String() missing banners: %q", s)
	}
}

// ============================================================================
// Page and Document Tests
// ============================================================================

func TestPageTextAndString(t *testing.T) {
	p1 := Paragraph{Text: "Hello world"}
	p2 := Paragraph{Text: "Second"}
	page := Page{
		Number:     1,
		Paragraphs: []Paragraph{p1, p2},
		Content:    []Element{p1, p2, sampleTable()},
	}
	if page.Text() != "Hello world\n\nSecond" {
		t.Errorf("Text() = %q", page.Text())
	}
	s := page.String()
	hello := strings.Index(s, "Hello world")
	table := strings.Index(s, "======= Table =======")
	if hello < 0 || table < 0 || hello > table {
		t.Errorf("String() content order wrong: %q", s)
	}
	if !strings.Contains(s, "Page Number: 1") || !strings.Contains(s, "End of Page 1") {
		t.Errorf("String() missing page banners: %q", s)
	}
}

func TestDocumentAccessors(t *testing.T) {
	var form Form
	form.Add(kv("Name:", "Jane"))
	doc := Document{
		Name:       "invoice",
		TotalPages: 2,
		Pages: []Page{
			{Number: 1, Paragraphs: []Paragraph{{Text: "one"}}, Tables: []Table{sampleTable()}},
			{Number: 2, Paragraphs: []Paragraph{{Text: "two"}}, Form: form},
		},
	}

	if doc.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", doc.PageCount())
	}
	if p, ok := doc.GetPage(2); !ok || p.Number != 2 {
		t.Errorf("GetPage(2) = %+v, %v", p, ok)
	}
	if _, ok := doc.GetPage(0); ok {
		t.Error("GetPage(0) should fail")
	}
	if _, ok := doc.GetPage(3); ok {
		t.Error("GetPage(3) should fail")
	}
	if len(doc.Tables()) != 1 {
		t.Errorf("Tables() = %d, want 1", len(doc.Tables()))
	}
	if len(doc.KeyValueSets()) != 1 || len(doc.SearchKey("name")) != 1 {
		t.Error("KeyValueSets()/SearchKey() should find the page 2 pair")
	}
	if doc.Text() != "one\n\f\ntwo" {
		t.Errorf("Text() = %q", doc.Text())
	}
	if !strings.HasPrefix(doc.String(), "\nDocument: invoice\n") {
		t.Errorf("String() header = %q", doc.String()[:30])
	}
}

func TestElementTypes(t *testing.T) {
	tests := []struct {
		elem Element
		want string
	}{
		{Paragraph{}, "Paragraph"},
		{Table{}, "Table"},
		{Form{}, "Form"},
	}
	for _, tt := range tests {
		if got := tt.elem.Type().String(); got != tt.want {
			t.Errorf("Type() = %q, want %q", got, tt.want)
		}
	}
	if ElementTypeUnknown.String() != "Unknown" {
		t.Error("unknown element type should render Unknown")
	}
}
