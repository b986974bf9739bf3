package pages

import (
	"fmt"

	"github.com/MorphisHe/textractdoc/block"
	"github.com/MorphisHe/textractdoc/builder"
	"github.com/MorphisHe/textractdoc/layout"
	"github.com/MorphisHe/textractdoc/model"
)

// Report lists the non-fatal findings of assembling one page
type Report struct {
	Page int

	// Skipped holds every dangling reference omitted while building
	Skipped []error

	// Unknown holds block type tags that were not recognised
	Unknown []string

	// ExcludedLines counts lines dropped because a table or form claims
	// all of their children
	ExcludedLines int

	// KeysWithoutChildren counts KEY blocks that had no key content
	KeysWithoutChildren int

	Layout layout.Stats
}

// Assembler builds pages from raw blocks
type Assembler struct {
	builderConfig builder.Config
	reconstructor *layout.Reconstructor
}

// NewAssembler creates an assembler with the given build and layout
// settings
func NewAssembler(builderConfig builder.Config, layoutConfig layout.Config) *Assembler {
	return &Assembler{
		builderConfig: builderConfig,
		reconstructor: layout.NewReconstructorWithConfig(layoutConfig),
	}
}

// Assemble builds page num from its blocks. Ids are resolved through index,
// which may span every page of the document. A block that cannot be built
// aborts the page.
func (a *Assembler) Assemble(num int, nodes []*block.Block, index builder.Index) (model.Page, Report, error) {
	page := model.Page{Number: num}
	report := Report{Page: num}

	claims := Claimed(nodes)
	b := builder.New(index, a.builderConfig)

	var staged []model.Line
	for _, n := range nodes {
		switch n.Kind() {
		case block.BlockTypePage:
			geo, err := b.Geometry(n)
			if err != nil {
				return model.Page{}, report, fmt.Errorf("pages: page %d: %w", num, err)
			}
			page.ID = n.ID
			page.Geometry = geo

		case block.BlockTypeLine:
			if !claims.Keeps(n) {
				report.ExcludedLines++
				continue
			}
			line, err := b.Line(n)
			if err != nil {
				return model.Page{}, report, fmt.Errorf("pages: page %d: %w", num, err)
			}
			staged = append(staged, line)

		case block.BlockTypeTable:
			table, err := b.Table(n)
			if err != nil {
				return model.Page{}, report, fmt.Errorf("pages: page %d: %w", num, err)
			}
			page.Tables = append(page.Tables, table)

		case block.BlockTypeKeyValueSet:
			if !n.HasEntityType(block.EntityKey) {
				continue
			}
			kv, ok, err := b.KeyValueSet(n)
			if err != nil {
				return model.Page{}, report, fmt.Errorf("pages: page %d: %w", num, err)
			}
			if !ok {
				report.KeysWithoutChildren++
				continue
			}
			page.Form.Add(kv)

		case block.BlockTypeUnknown:
			report.Unknown = append(report.Unknown, n.BlockType)
		}
	}

	result := a.reconstructor.Analyze(staged)
	page.Lines = staged
	page.Paragraphs = result.Paragraphs
	report.Layout = result.Stats
	report.Skipped = b.Skipped()

	page.Content = make([]model.Element, 0, len(page.Paragraphs)+len(page.Tables)+1)
	for _, p := range page.Paragraphs {
		page.Content = append(page.Content, p)
	}
	for _, t := range page.Tables {
		page.Content = append(page.Content, t)
	}
	if page.Form.Len() > 0 {
		page.Content = append(page.Content, page.Form)
	}

	return page, report, nil
}
