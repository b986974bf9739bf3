package layout

import (
	"math"

	"github.com/MorphisHe/textractdoc/model"
	"github.com/MorphisHe/textractdoc/text"
)

// LineConfig holds configuration for line merging
type LineConfig struct {
	// MergeTolerance is the largest horizontal gap (normalised page units)
	// between two vertically overlapping lines that still merges them
	MergeTolerance float64
}

// DefaultLineConfig returns sensible defaults for line merging
func DefaultLineConfig() LineConfig {
	return LineConfig{
		MergeTolerance: 0.01,
	}
}

// SameLine reports whether two boxes sit on one visual line: their vertical
// spans overlap, touching edges included
func SameLine(a, b model.BBox) bool {
	return a.VerticallyOverlaps(b)
}

// MergeLines collapses consecutive lines that share a visual line and are
// separated horizontally by at most tolerance. A merged line keeps the ID of
// its first fragment, the lowest confidence, the union geometry, the
// concatenated words and the space-joined text. The input is not modified.
func MergeLines(lines []model.Line, tolerance float64) []model.Line {
	if len(lines) == 0 {
		return nil
	}

	merged := make([]model.Line, 0, len(lines))
	current := lines[0]
	for _, next := range lines[1:] {
		cur, nxt := current.Geometry.BBox, next.Geometry.BBox
		if SameLine(cur, nxt) && cur.HorizontalGap(nxt) <= tolerance {
			current = mergePair(current, next)
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

func mergePair(a, b model.Line) model.Line {
	words := make([]model.Word, 0, len(a.Words)+len(b.Words))
	words = append(words, a.Words...)
	words = append(words, b.Words...)
	return model.Line{
		ID:         a.ID,
		Text:       text.Join([]string{a.Text, b.Text}, " "),
		Confidence: math.Min(a.Confidence, b.Confidence),
		Geometry:   model.UnionGeometry(a.Geometry, b.Geometry),
		Words:      words,
	}
}

// Gap is the vertical spacing between two sequential lines
type Gap struct {
	// Index of the upper line; the gap lies between lines Index and Index+1
	Index int

	// SameLine is set when both lines sit on one visual line. Such pairs
	// carry no gap.
	SameLine bool

	// Size is the signed distance from the first line's bottom to the second
	// line's top. It is negative when the second line starts higher, as at
	// the top of a new column.
	Size float64
}

// MeasureGaps returns one Gap per sequential pair of lines
func MeasureGaps(lines []model.Line) []Gap {
	if len(lines) < 2 {
		return nil
	}
	gaps := make([]Gap, 0, len(lines)-1)
	for i := 0; i < len(lines)-1; i++ {
		a, b := lines[i].Geometry.BBox, lines[i+1].Geometry.BBox
		if SameLine(a, b) {
			gaps = append(gaps, Gap{Index: i, SameLine: true})
			continue
		}
		gaps = append(gaps, Gap{Index: i, Size: a.VerticalGap(b)})
	}
	return gaps
}
