// Package format provides payload shape detection for saved analysis
// responses.
package format

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
)

// Format represents the shape of a serialised response payload.
type Format int

const (
	// Unknown indicates data that does not start with a JSON value.
	Unknown Format = iota
	// Object indicates a single response object.
	Object
	// Array indicates a JSON array of response objects, as saved from a
	// paginated result listing.
	Array
	// Lines indicates JSON Lines: one response object per line.
	Lines
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Object:
		return "Object"
	case Array:
		return "Array"
	case Lines:
		return "Lines"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Object, Array:
		return ".json"
	case Lines:
		return ".jsonl"
	default:
		return ""
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Detect inspects the leading bytes of data to determine its shape. An object
// followed by another top-level value is reported as Lines.
func Detect(data []byte) Format {
	data = trimLeading(data)
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case '[':
		return Array
	case '{':
		if hasTrailingValue(data) {
			return Lines
		}
		return Object
	default:
		return Unknown
	}
}

// DetectFilename determines the format from a file extension. ".json" is
// ambiguous between Object and Array and reports Object; callers that can read
// the content should prefer Detect.
func DetectFilename(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return Object
	case ".jsonl", ".ndjson":
		return Lines
	default:
		return Unknown
	}
}

func trimLeading(data []byte) []byte {
	data = bytes.TrimPrefix(data, utf8BOM)
	return bytes.TrimLeft(data, " \t\r\n")
}

// hasTrailingValue reports whether another JSON value follows the first one.
func hasTrailingValue(data []byte) bool {
	dec := json.NewDecoder(bytes.NewReader(data))
	var first json.RawMessage
	if err := dec.Decode(&first); err != nil {
		return false
	}
	rest := trimLeading(data[dec.InputOffset():])
	return len(rest) > 0 && rest[0] == '{'
}
