package layout

import "github.com/MorphisHe/textractdoc/model"

// Config holds configuration for layout reconstruction. Each stage has its
// own sub-configuration.
type Config struct {
	// Line merging configuration
	LineConfig LineConfig

	// Paragraph segmentation configuration
	ParagraphConfig ParagraphConfig
}

// DefaultConfig returns a configuration with the default tolerances of
// 0.01 page units for both merging and segmentation
func DefaultConfig() Config {
	return Config{
		LineConfig:      DefaultLineConfig(),
		ParagraphConfig: DefaultParagraphConfig(),
	}
}

// Result holds every intermediate product of a reconstruction
type Result struct {
	// Lines after merging same-line fragments
	Lines []model.Line

	// Gaps between sequential merged lines
	Gaps []Gap

	// Runs of lines separated by paragraph gaps
	Runs [][]model.Line

	// Paragraphs in reading order
	Paragraphs []model.Paragraph

	Stats Stats
}

// Stats summarises a reconstruction
type Stats struct {
	InputLines  int
	MergedLines int
	Runs        int
	Columns     int // summed over runs
	Paragraphs  int
}

// Reconstructor recovers paragraphs in reading order from the lines of one
// page
type Reconstructor struct {
	config Config
}

// NewReconstructor creates a reconstructor with default configuration
func NewReconstructor() *Reconstructor {
	return NewReconstructorWithConfig(DefaultConfig())
}

// NewReconstructorWithConfig creates a reconstructor with custom
// configuration
func NewReconstructorWithConfig(config Config) *Reconstructor {
	return &Reconstructor{config: config}
}

// Config returns the reconstructor configuration
func (r *Reconstructor) Config() Config {
	return r.config
}

// Reconstruct returns the paragraphs of lines in reading order: runs top to
// bottom, and within a run one paragraph per column in discovery order
func (r *Reconstructor) Reconstruct(lines []model.Line) []model.Paragraph {
	return r.Analyze(lines).Paragraphs
}

// Analyze runs every stage and keeps the intermediate results. It never
// fails: no lines yield no paragraphs and a single line yields one
// paragraph with that line's geometry.
func (r *Reconstructor) Analyze(lines []model.Line) *Result {
	result := &Result{}
	result.Stats.InputLines = len(lines)
	if len(lines) == 0 {
		return result
	}

	result.Lines = MergeLines(lines, r.config.LineConfig.MergeTolerance)
	result.Gaps = MeasureGaps(result.Lines)
	result.Runs = Segment(result.Lines, result.Gaps, r.config.ParagraphConfig.Gap)

	for _, run := range result.Runs {
		columns := DetectColumns(run)
		result.Stats.Columns += len(columns)
		for _, col := range columns {
			result.Paragraphs = append(result.Paragraphs, NewParagraph(col.Lines))
		}
	}

	result.Stats.MergedLines = len(result.Lines)
	result.Stats.Runs = len(result.Runs)
	result.Stats.Paragraphs = len(result.Paragraphs)
	return result
}
