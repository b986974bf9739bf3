package export

import (
	"fmt"
	"strings"

	"github.com/MorphisHe/textractdoc/model"
)

// Markdown renders the document with one second-level heading per page.
// Paragraphs keep their line breaks, tables use the first row as header and
// forms become a bullet list of bold keys.
func Markdown(doc model.Document) string {
	var sb strings.Builder
	if doc.Name != "" {
		sb.WriteString("# " + doc.Name + "\n\n")
	}
	for i, page := range doc.Pages {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## Page %d\n\n", page.Number)
		for _, elem := range page.Content {
			switch e := elem.(type) {
			case model.Paragraph:
				sb.WriteString(markdownParagraph(e))
			case model.Table:
				sb.WriteString(e.ToMarkdown())
			case model.Form:
				sb.WriteString(markdownForm(e))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func markdownParagraph(p model.Paragraph) string {
	// Trailing double spaces force the line breaks to survive rendering.
	return strings.ReplaceAll(p.Text, "\n", "  \n") + "\n"
}

func markdownForm(f model.Form) string {
	var sb strings.Builder
	for _, kv := range f.KeyValueSets {
		key := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(kv.Key.Text), ":"))
		fmt.Fprintf(&sb, "- **%s**: %s\n", key, kv.ValueText())
	}
	return sb.String()
}
