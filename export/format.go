package export

import "strings"

// Format defines the available export formats
type Format int

const (
	// FormatText exports paragraph text only
	FormatText Format = iota
	// FormatMarkdown exports paragraphs, tables and forms as Markdown
	FormatMarkdown
	// FormatHTML exports an hOCR flavoured HTML document
	FormatHTML
	// FormatJSON exports an indented JSON view of the document
	FormatJSON
)

// String returns a human-readable representation of the export format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// ParseFormat parses a format name. It accepts the String names plus the
// short forms "txt", "md" and "hocr".
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, true
	case "markdown", "md":
		return FormatMarkdown, true
	case "html", "hocr":
		return FormatHTML, true
	case "json":
		return FormatJSON, true
	default:
		return FormatText, false
	}
}
