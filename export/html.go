package export

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/MorphisHe/textractdoc/model"
	"github.com/MorphisHe/textractdoc/text"
)

// HTML renders the document as an hOCR flavoured HTML page
func HTML(doc model.Document) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteHTML renders the document as an hOCR flavoured HTML page to w
func WriteHTML(w io.Writer, doc model.Document) error {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlNode := element(atom.Html)
	root.AppendChild(htmlNode)

	title := doc.Name
	if title == "" {
		title = "Document"
	}
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(element(atom.Meta, attr("name", "ocr-system"), attr("content", "textractdoc")))
	head.AppendChild(element(atom.Meta,
		attr("name", "ocr-capabilities"),
		attr("content", "ocr_page ocr_par ocr_line ocrx_word ocr_table ocr_form"),
	))
	titleNode := element(atom.Title)
	titleNode.AppendChild(textNode(title))
	head.AppendChild(titleNode)
	htmlNode.AppendChild(head)

	body := element(atom.Body)
	for _, page := range doc.Pages {
		body.AppendChild(pageNode(page))
	}
	htmlNode.AppendChild(body)

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("export: render html: %w", err)
	}
	return nil
}

func pageNode(page model.Page) *html.Node {
	n := element(atom.Div,
		attr("class", "ocr_page"),
		attr("id", "page_"+strconv.Itoa(page.Number)),
		attr("title", bboxTitle(page.Geometry.BBox)+"; ppageno "+strconv.Itoa(page.Number-1)),
	)
	for i, elem := range page.Content {
		id := fmt.Sprintf("%d_%d", page.Number, i+1)
		switch e := elem.(type) {
		case model.Paragraph:
			n.AppendChild(paragraphNode(e, id))
		case model.Table:
			n.AppendChild(tableNode(e, id))
		case model.Form:
			n.AppendChild(formNode(e, id))
		}
	}
	return n
}

func paragraphNode(p model.Paragraph, id string) *html.Node {
	attrs := []html.Attribute{
		attr("class", "ocr_par"),
		attr("id", "par_"+id),
		attr("title", bboxTitle(p.Geometry.BBox)),
	}
	if text.DetectDirection(p.Text) == text.RTL {
		attrs = append(attrs, attr("dir", "rtl"))
	}
	n := element(atom.P, attrs...)
	for i, line := range p.Lines {
		if i > 0 {
			n.AppendChild(element(atom.Br))
		}
		n.AppendChild(lineNode(line, fmt.Sprintf("%s_%d", id, i+1)))
	}
	return n
}

func lineNode(line model.Line, id string) *html.Node {
	n := element(atom.Span,
		attr("class", "ocr_line"),
		attr("id", "line_"+id),
		attr("title", bboxTitle(line.Geometry.BBox)),
	)
	if len(line.Words) == 0 {
		n.AppendChild(textNode(line.Text))
		return n
	}
	for i, w := range line.Words {
		if i > 0 {
			n.AppendChild(textNode(" "))
		}
		n.AppendChild(wordNode(w, fmt.Sprintf("%s_%d", id, i+1)))
	}
	return n
}

func wordNode(w model.Word, id string) *html.Node {
	n := element(atom.Span,
		attr("class", "ocrx_word"),
		attr("id", "word_"+id),
		attr("title", fmt.Sprintf("%s; x_wconf %d", bboxTitle(w.Geometry.BBox), int(math.Round(w.Confidence)))),
	)
	n.AppendChild(textNode(w.Text))
	return n
}

func tableNode(t model.Table, id string) *html.Node {
	n := element(atom.Table,
		attr("class", "ocr_table"),
		attr("id", "table_"+id),
		attr("title", bboxTitle(t.Geometry.BBox)),
	)
	for _, row := range t.Rows {
		tr := element(atom.Tr)
		for _, c := range row.Cells {
			attrs := []html.Attribute{attr("title", bboxTitle(c.Geometry.BBox))}
			if c.RowSpan > 1 {
				attrs = append(attrs, attr("rowspan", strconv.Itoa(c.RowSpan)))
			}
			if c.ColumnSpan > 1 {
				attrs = append(attrs, attr("colspan", strconv.Itoa(c.ColumnSpan)))
			}
			td := element(atom.Td, attrs...)
			td.AppendChild(textNode(c.CleanText()))
			tr.AppendChild(td)
		}
		n.AppendChild(tr)
	}
	return n
}

func formNode(f model.Form, id string) *html.Node {
	n := element(atom.Dl,
		attr("class", "ocr_form"),
		attr("id", "form_"+id),
		attr("title", bboxTitle(f.BoundingBox())),
	)
	for _, kv := range f.KeyValueSets {
		dt := element(atom.Dt, attr("title", bboxTitle(kv.Key.Geometry.BBox)))
		dt.AppendChild(textNode(kv.Key.Text))
		n.AppendChild(dt)

		dd := element(atom.Dd)
		if kv.Value != nil {
			dd.Attr = append(dd.Attr, attr("title", bboxTitle(kv.Value.Geometry.BBox)))
			dd.AppendChild(textNode(kv.Value.Text))
		}
		n.AppendChild(dd)
	}
	return n
}

// bboxTitle formats a box as an hOCR bbox property in per-mille page units
func bboxTitle(b model.BBox) string {
	return fmt.Sprintf("bbox %d %d %d %d", permille(b.Left), permille(b.Top), permille(b.Right()), permille(b.Bottom()))
}

func permille(v float64) int {
	return int(math.Round(v * 1000))
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
