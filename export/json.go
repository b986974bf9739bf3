package export

import (
	"encoding/json"
	"fmt"

	"github.com/MorphisHe/textractdoc/model"
)

type documentView struct {
	Name       string     `json:"name,omitempty"`
	TotalPages int        `json:"total_pages"`
	Pages      []pageView `json:"pages"`
}

type pageView struct {
	Number  int        `json:"number"`
	ID      string     `json:"id,omitempty"`
	BBox    boxView    `json:"bbox"`
	Text    string     `json:"text"`
	Content []itemView `json:"content"`
}

type boxView struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type itemView struct {
	Type       string      `json:"type"`
	ID         string      `json:"id,omitempty"`
	BBox       boxView     `json:"bbox"`
	Confidence float64     `json:"confidence,omitempty"`
	Text       string      `json:"text,omitempty"`
	Lines      []string    `json:"lines,omitempty"`
	Rows       [][]string  `json:"rows,omitempty"`
	Fields     []fieldView `json:"fields,omitempty"`
}

type fieldView struct {
	Key             string   `json:"key"`
	Value           *string  `json:"value"`
	KeyConfidence   float64  `json:"key_confidence"`
	ValueConfidence *float64 `json:"value_confidence,omitempty"`
}

func toBoxView(b model.BBox) boxView {
	return boxView{Left: b.Left, Top: b.Top, Width: b.Width, Height: b.Height}
}

// JSON returns an indented JSON view of the document. Page content is
// flattened into typed items in reading order; an absent form value is null.
func JSON(doc model.Document) ([]byte, error) {
	view := documentView{
		Name:       doc.Name,
		TotalPages: doc.TotalPages,
		Pages:      make([]pageView, 0, len(doc.Pages)),
	}
	for _, page := range doc.Pages {
		pv := pageView{
			Number:  page.Number,
			ID:      page.ID,
			BBox:    toBoxView(page.Geometry.BBox),
			Text:    page.Text(),
			Content: make([]itemView, 0, len(page.Content)),
		}
		for _, elem := range page.Content {
			pv.Content = append(pv.Content, toItemView(elem))
		}
		view.Pages = append(view.Pages, pv)
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal json: %w", err)
	}
	return data, nil
}

func toItemView(elem model.Element) itemView {
	item := itemView{
		Type: elem.Type().String(),
		BBox: toBoxView(elem.BoundingBox()),
	}
	switch e := elem.(type) {
	case model.Paragraph:
		item.Text = e.Text
		for _, l := range e.Lines {
			item.Lines = append(item.Lines, l.Text)
		}
	case model.Table:
		item.ID = e.ID
		item.Confidence = e.Confidence
		item.Rows = e.Grid()
	case model.Form:
		for _, kv := range e.KeyValueSets {
			fv := fieldView{Key: kv.Key.Text, KeyConfidence: kv.Key.Confidence}
			if kv.Value != nil {
				value, conf := kv.Value.Text, kv.Value.Confidence
				fv.Value = &value
				fv.ValueConfidence = &conf
			}
			item.Fields = append(item.Fields, fv)
		}
	}
	return item
}
