package textractdoc

import (
	"io"
	"log/slog"

	"github.com/MorphisHe/textractdoc/builder"
	"github.com/MorphisHe/textractdoc/layout"
)

// ExtractOptions holds configuration for document reconstruction.
type ExtractOptions struct {
	// Document name; when empty Open uses the file's base name
	name string

	// Page selection (1-indexed)
	pages []int

	// Typed node building
	builder builder.Config

	// Reading order reconstruction
	layout layout.Config

	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:   nil, // nil means all pages
		builder: builder.DefaultConfig(),
		layout:  layout.DefaultConfig(),
		logger:  discardLogger(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		name:    o.name,
		builder: o.builder,
		layout:  o.layout,
		logger:  o.logger,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
