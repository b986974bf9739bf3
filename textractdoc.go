// Package textractdoc reconstructs a typed, reading-ordered document from
// the block graph returned by a document analysis service.
//
// Basic usage:
//
//	text, warnings, err := textractdoc.Open("response.json").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", textractdoc.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := textractdoc.FromResponses(responses...).
//	    Name("invoice").
//	    MinWordConfidence(80).
//	    Pages(1, 2).
//	    Document()
//
// The lower-level packages (resolver, builder, layout, pages) are available
// for callers that need the intermediate results.
package textractdoc

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/MorphisHe/textractdoc/block"
	"github.com/MorphisHe/textractdoc/model"
)

// Open returns an Extractor reading saved responses from filename. The file
// may hold one response object, a JSON array of responses or JSON Lines. It
// is read when a terminal operation runs. The document name defaults to the
// file's base name without extension.
//
// Example:
//
//	text, warnings, err := textractdoc.Open("response.json").Text()
func Open(filename string) *Extractor {
	opts := defaultOptions()
	opts.name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return &Extractor{
		filename: filename,
		options:  opts,
	}
}

// FromResponses creates an Extractor over already decoded responses, in the
// order the service returned them.
func FromResponses(responses ...block.Response) *Extractor {
	return &Extractor{
		responses: responses,
		loaded:    true,
		options:   defaultOptions(),
	}
}

// FromReader creates an Extractor from a reader holding saved responses.
// The reader is consumed immediately; a decode error is returned by the
// first terminal operation.
//
// Example:
//
//	doc, _, err := textractdoc.FromReader(os.Stdin).Document()
func FromReader(r io.Reader) *Extractor {
	responses, err := block.Decode(r)
	return &Extractor{
		responses: responses,
		loaded:    true,
		options:   defaultOptions(),
		err:       err,
	}
}

// FromJSON creates an Extractor from saved responses held in memory
func FromJSON(data []byte) *Extractor {
	return FromReader(bytes.NewReader(data))
}

// Build reconstructs a document named name from responses with the default
// settings. It is equivalent to FromResponses(responses...).Name(name).Document().
func Build(name string, responses ...block.Response) (*model.Document, []Warning, error) {
	return FromResponses(responses...).Name(name).Document()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := textractdoc.Must(textractdoc.Open("response.json").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() or Document() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	text := textractdoc.MustText(textractdoc.Open("response.json").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
