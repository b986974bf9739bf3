package textractdoc

import (
	"errors"
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem met while building a document.
// Page is 0 for document-level warnings.
type Warning struct {
	Page    int
	Message string
	Err     error
}

// String formats the warning with its page and cause
func (w Warning) String() string {
	var sb strings.Builder
	if w.Page > 0 {
		fmt.Fprintf(&sb, "page %d: ", w.Page)
	}
	sb.WriteString(w.Message)
	if w.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(w.Err.Error())
	}
	return sb.String()
}

// FormatWarnings joins warnings one per line
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// ErrPageCountMismatch matches every PageCountMismatchError
var ErrPageCountMismatch = errors.New("textractdoc: page count mismatch")

// PageCountMismatchError reports a page number with no blocks. Available
// is the number of pages the blocks were split into.
type PageCountMismatchError struct {
	Page      int
	Available int
}

func (e *PageCountMismatchError) Error() string {
	return fmt.Sprintf("textractdoc: page %d has no blocks (%d pages available)", e.Page, e.Available)
}

// Is reports whether target is ErrPageCountMismatch
func (e *PageCountMismatchError) Is(target error) bool {
	return target == ErrPageCountMismatch
}
