package export

import (
	"fmt"
	"io"

	"github.com/MorphisHe/textractdoc/model"
)

// Write renders doc in the given format to w
func Write(w io.Writer, doc model.Document, f Format) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, doc.Text())
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(doc))
		return err
	case FormatHTML:
		return WriteHTML(w, doc)
	case FormatJSON:
		data, err := JSON(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("export: unsupported format %s", f)
	}
}
