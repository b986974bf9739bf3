package textractdoc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/MorphisHe/textractdoc/block"
	"github.com/MorphisHe/textractdoc/builder"
	"github.com/MorphisHe/textractdoc/export"
	"github.com/MorphisHe/textractdoc/model"
	"github.com/MorphisHe/textractdoc/pages"
	"github.com/MorphisHe/textractdoc/resolver"
	"github.com/MorphisHe/textractdoc/text"
)

// statusSucceeded is the job status of a complete asynchronous result
const statusSucceeded = "SUCCEEDED"

// Extractor provides a fluent interface for building documents from
// analysis responses. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename  string
	responses []block.Response
	loaded    bool // responses hold the input

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// Responses are shared; they are never modified.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		responses: e.responses,
		loaded:    e.loaded,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// load returns the input responses, reading the file on first use
func (e *Extractor) load() ([]block.Response, error) {
	if e.loaded {
		return e.responses, nil
	}
	if e.filename == "" {
		return nil, errors.New("textractdoc: no input specified")
	}

	f, err := os.Open(e.filename)
	if err != nil {
		return nil, fmt.Errorf("textractdoc: %w", err)
	}
	defer f.Close()

	responses, err := block.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("textractdoc: %s: %w", e.filename, err)
	}
	return responses, nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Name sets the document name
func (e *Extractor) Name(name string) *Extractor {
	newExt := e.clone()
	newExt.options.name = name
	return newExt
}

// Pages specifies which pages to build (1-indexed). Multiple calls are
// cumulative. Page numbers in the result keep their position in the source.
//
// Example:
//
//	doc, _, err := textractdoc.Open("response.json").Pages(1, 3).Document()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to build (1-indexed, inclusive).
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// MinWordConfidence sets the confidence (0-100) a word needs to appear in a
// line. The default is 95.
func (e *Extractor) MinWordConfidence(threshold float64) *Extractor {
	newExt := e.clone()
	if threshold < 0 || threshold > 100 {
		newExt.err = fmt.Errorf("textractdoc: word confidence %v outside 0-100", threshold)
		return newExt
	}
	newExt.options.builder.MinWordConfidence = threshold
	return newExt
}

// MergeTolerance sets the largest horizontal gap, in page units, between
// two fragments of the same visual line
func (e *Extractor) MergeTolerance(tolerance float64) *Extractor {
	newExt := e.clone()
	if tolerance < 0 {
		newExt.err = fmt.Errorf("textractdoc: negative merge tolerance %v", tolerance)
		return newExt
	}
	newExt.options.layout.LineConfig.MergeTolerance = tolerance
	return newExt
}

// ParagraphGap sets the vertical gap, in page units, that starts a new
// paragraph
func (e *Extractor) ParagraphGap(gap float64) *Extractor {
	newExt := e.clone()
	if gap < 0 {
		newExt.err = fmt.Errorf("textractdoc: negative paragraph gap %v", gap)
		return newExt
	}
	newExt.options.layout.ParagraphConfig.Gap = gap
	return newExt
}

// Normalize applies a Unicode normalization form to word text
//
// Example:
//
//	text, _, err := textractdoc.Open("response.json").Normalize(text.NFKC).Text()
func (e *Extractor) Normalize(form text.Form) *Extractor {
	newExt := e.clone()
	newExt.options.builder.Normalization = form
	return newExt
}

// Logger sets the logger receiving per-page debug records and one record
// per warning. A nil logger restores the default, which discards output.
func (e *Extractor) Logger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	if logger == nil {
		logger = discardLogger()
	}
	newExt.options.logger = logger
	return newExt
}

// ============================================================================
// Terminal Methods
// ============================================================================

// plan holds the resolved graph and the pages selected for building
type plan struct {
	graph    *resolver.Graph
	total    int
	selected []int
	warnings []Warning
}

// prepare resolves the input and validates the page split
func (e *Extractor) prepare() (*plan, error) {
	if e.err != nil {
		return nil, e.err
	}
	responses, err := e.load()
	if err != nil {
		return nil, err
	}
	graph, err := resolver.Resolve(responses)
	if err != nil {
		return nil, err
	}

	p := &plan{
		graph:    graph,
		total:    totalPages(graph, len(responses)),
		warnings: responseWarnings(responses, graph),
	}

	for n := 1; n <= p.total; n++ {
		if _, ok := graph.Page(n); !ok {
			return nil, &PageCountMismatchError{Page: n, Available: graph.PageCount()}
		}
	}
	if extra := graph.PageCount() - p.total; extra > 0 {
		p.warnings = append(p.warnings, Warning{
			Message: fmt.Sprintf("%d page(s) beyond the %d reported were ignored", extra, p.total),
		})
	}

	p.selected, err = e.resolvePages(p.total)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Document builds the document model. Warnings report non-fatal problems
// such as dangling references; a block that cannot be typed at all is an
// error.
//
// Example:
//
//	doc, warnings, err := textractdoc.Open("response.json").Document()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, t := range doc.Tables() {
//	    fmt.Println(t.ToMarkdown())
//	}
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	p, err := e.prepare()
	if err != nil {
		return nil, nil, err
	}

	log := e.options.logger
	warnings := p.warnings
	assembler := pages.NewAssembler(e.options.builder, e.options.layout)

	doc := &model.Document{
		Name:       e.options.name,
		TotalPages: p.total,
		Pages:      make([]model.Page, 0, len(p.selected)),
	}
	for _, n := range p.selected {
		nodes, _ := p.graph.Page(n)
		page, report, err := assembler.Assemble(n, nodes, p.graph)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("page assembled",
			"page", n,
			"blocks", len(nodes),
			"lines", report.Layout.MergedLines,
			"excluded_lines", report.ExcludedLines,
			"paragraphs", report.Layout.Paragraphs,
			"columns", report.Layout.Columns,
			"tables", len(page.Tables),
			"fields", page.Form.Len(),
		)
		warnings = append(warnings, reportWarnings(report)...)
		doc.Pages = append(doc.Pages, page)
	}

	for _, w := range warnings {
		log.Warn(w.Message, "page", w.Page, "err", w.Err)
	}
	log.Info("document built",
		"name", doc.Name,
		"total_pages", doc.TotalPages,
		"pages", len(doc.Pages),
		"warnings", len(warnings),
	)
	return doc, warnings, nil
}

// Text returns the paragraph text of the selected pages. Pages are separated
// by a form feed on its own line.
func (e *Extractor) Text() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return doc.Text(), warnings, nil
}

// ToMarkdown renders the document as Markdown
func (e *Extractor) ToMarkdown() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return export.Markdown(*doc), warnings, nil
}

// ToHTML renders the document as hOCR flavoured HTML
func (e *Extractor) ToHTML() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	out, err := export.HTML(*doc)
	return out, warnings, err
}

// ToJSON renders the document as indented JSON
func (e *Extractor) ToJSON() ([]byte, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, warnings, err
	}
	out, err := export.JSON(*doc)
	return out, warnings, err
}

// Export builds the document and writes it to w in format f
func (e *Extractor) Export(w io.Writer, f export.Format) ([]Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return warnings, err
	}
	return warnings, export.Write(w, *doc, f)
}

// PageCount returns the number of pages the document reports
func (e *Extractor) PageCount() (int, error) {
	p, err := e.prepare()
	if err != nil {
		return 0, err
	}
	return p.total, nil
}

// Words returns every word of the selected pages regardless of confidence.
// When the input has PAGE blocks, words are collected by walking the page's
// relationships, so a word is listed once even if several lines or cells
// reference it; otherwise the page's WORD blocks are taken in supplied order.
func (e *Extractor) Words() ([]model.Word, []Warning, error) {
	p, err := e.prepare()
	if err != nil {
		return nil, nil, err
	}

	b := builder.New(p.graph, e.options.builder)
	var words []model.Word
	for _, n := range p.selected {
		nodes, _ := p.graph.Page(n)
		blocks, err := pageWords(p.graph, nodes)
		if err != nil {
			return nil, nil, fmt.Errorf("textractdoc: page %d: %w", n, err)
		}
		for _, blk := range blocks {
			w, err := b.Word(blk)
			if err != nil {
				return nil, nil, fmt.Errorf("textractdoc: page %d: %w", n, err)
			}
			words = append(words, w)
		}
	}
	return words, p.warnings, nil
}

func pageWords(graph *resolver.Graph, nodes []*block.Block) ([]*block.Block, error) {
	if graph.HasPageBlocks() {
		for _, n := range nodes {
			if n.Kind() == block.BlockTypePage && n.ID != "" {
				return graph.Descendants(n.ID, block.BlockTypeWord)
			}
		}
	}
	var words []*block.Block
	for _, n := range nodes {
		if n.Kind() == block.BlockTypeWord {
			words = append(words, n)
		}
	}
	return words, nil
}

// ============================================================================
// Helpers
// ============================================================================

// totalPages is the metadata page count when PAGE blocks exist and the
// count is positive, else the number of responses
func totalPages(graph *resolver.Graph, responses int) int {
	if graph.HasPageBlocks() {
		if md := graph.Metadata(); md != nil && md.Pages > 0 {
			return md.Pages
		}
	}
	return responses
}

// resolvePages converts the page selection into a sorted list of unique
// 1-indexed page numbers
func (e *Extractor) resolvePages(total int) ([]int, error) {
	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		selected := make([]int, total)
		for i := range selected {
			selected[i] = i + 1
		}
		return selected, nil
	}

	seen := make(map[int]bool)
	var selected []int
	for _, p := range e.options.pages {
		if p < 1 || p > total {
			return nil, fmt.Errorf("textractdoc: page %d out of range (1-%d)", p, total)
		}
		if !seen[p] {
			seen[p] = true
			selected = append(selected, p)
		}
	}

	sort.Ints(selected)
	return selected, nil
}

func responseWarnings(responses []block.Response, graph *resolver.Graph) []Warning {
	var warnings []Warning
	for _, id := range graph.Duplicates() {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("duplicate block id %s, keeping the last occurrence", id),
		})
	}
	for i, resp := range responses {
		if resp.JobStatus == "" || resp.JobStatus == statusSucceeded {
			continue
		}
		msg := fmt.Sprintf("response %d has job status %s", i+1, resp.JobStatus)
		if resp.StatusMessage != "" {
			msg += " (" + resp.StatusMessage + ")"
		}
		warnings = append(warnings, Warning{Message: msg})
	}
	if last := responses[len(responses)-1]; last.NextToken != "" {
		warnings = append(warnings, Warning{
			Message: "last response has a continuation token, results may be incomplete",
		})
	}
	return warnings
}

func reportWarnings(r pages.Report) []Warning {
	var warnings []Warning
	for _, err := range r.Skipped {
		warnings = append(warnings, Warning{Page: r.Page, Message: "reference skipped", Err: err})
	}

	counts := make(map[string]int)
	var kinds []string
	for _, tag := range r.Unknown {
		if counts[tag] == 0 {
			kinds = append(kinds, tag)
		}
		counts[tag]++
	}
	for _, tag := range kinds {
		warnings = append(warnings, Warning{
			Page:    r.Page,
			Message: fmt.Sprintf("ignored %d block(s) of unknown type %q", counts[tag], tag),
		})
	}

	if r.KeysWithoutChildren > 0 {
		warnings = append(warnings, Warning{
			Page:    r.Page,
			Message: fmt.Sprintf("dropped %d form key(s) without content", r.KeysWithoutChildren),
		})
	}
	return warnings
}
