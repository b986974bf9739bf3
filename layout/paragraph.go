package layout

import (
	"github.com/MorphisHe/textractdoc/model"
	"github.com/MorphisHe/textractdoc/text"
)

// ParagraphConfig holds configuration for paragraph segmentation
type ParagraphConfig struct {
	// Gap is the vertical distance (normalised page units) between two
	// distinct lines at or above which the current run is flushed
	Gap float64
}

// DefaultParagraphConfig returns sensible defaults for paragraph segmentation
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		Gap: 0.01,
	}
}

// NewParagraph builds a paragraph from lines. Its text is the newline-joined
// line text and its geometry the union of the line geometries.
func NewParagraph(lines []model.Line) model.Paragraph {
	parts := make([]string, 0, len(lines))
	geoms := make([]model.Geometry, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.Text)
		geoms = append(geoms, l.Geometry)
	}
	return model.Paragraph{
		Lines:    lines,
		Text:     text.Join(parts, "\n"),
		Geometry: model.UnionGeometry(geoms...),
	}
}

// Segment splits lines into runs. A run ends after line i when gaps[i] is
// between distinct lines and at least threshold. gaps must come from
// MeasureGaps over the same lines.
func Segment(lines []model.Line, gaps []Gap, threshold float64) [][]model.Line {
	if len(lines) == 0 {
		return nil
	}
	var runs [][]model.Line
	start := 0
	for _, g := range gaps {
		if g.SameLine || g.Size < threshold {
			continue
		}
		runs = append(runs, lines[start:g.Index+1])
		start = g.Index + 1
	}
	return append(runs, lines[start:])
}
