package resolver

import (
	"errors"
	"fmt"

	"github.com/MorphisHe/textractdoc/block"
)

// ErrMalformedResponse is matched by every MalformedResponseError
var ErrMalformedResponse = errors.New("resolver: malformed response")

// MalformedResponseError reports a structurally invalid payload set
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "resolver: malformed response: " + e.Reason
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// Graph is the resolved node graph of one logical document. Blocks live in a
// single arena; relationships stay as ids and are followed through Lookup.
type Graph struct {
	arena      []block.Block
	index      map[string]int // id -> arena position
	pages      [][]int        // page number - 1 -> arena positions
	duplicates []string
	pageBlocks bool
	metadata   *block.DocumentMetadata
	maxDepth   int
}

// Option configures a Graph
type Option func(*Graph)

// WithMaxDepth sets the maximum walk depth of Descendants (default: 100)
func WithMaxDepth(depth int) Option {
	return func(g *Graph) {
		g.maxDepth = depth
	}
}

// Resolve concatenates the blocks of every response in supplied order,
// splits them into pages and indexes them by id.
//
// A new page starts at each PAGE block met while the current page already
// holds blocks. When no response carries a PAGE block, each response becomes
// its own page. Ids are assumed unique; a collision keeps the last block and
// is recorded in Duplicates.
func Resolve(responses []block.Response, opts ...Option) (*Graph, error) {
	if len(responses) == 0 {
		return nil, &MalformedResponseError{Reason: "no responses"}
	}
	if responses[0].Blocks == nil {
		return nil, &MalformedResponseError{Reason: "first response has no Blocks"}
	}

	g := &Graph{
		index:    make(map[string]int),
		maxDepth: 100,
		metadata: responses[0].DocumentMetadata,
	}
	for _, opt := range opts {
		opt(g)
	}

	total := 0
	for _, resp := range responses {
		total += len(resp.Blocks)
		for i := range resp.Blocks {
			if resp.Blocks[i].Kind() == block.BlockTypePage {
				g.pageBlocks = true
			}
		}
	}
	g.arena = make([]block.Block, 0, total)

	if g.pageBlocks {
		var current []int
		for _, resp := range responses {
			for _, b := range resp.Blocks {
				if b.Kind() == block.BlockTypePage && len(current) > 0 {
					g.pages = append(g.pages, current)
					current = nil
				}
				current = append(current, g.add(b))
			}
		}
		g.pages = append(g.pages, current)
	} else {
		for _, resp := range responses {
			page := make([]int, 0, len(resp.Blocks))
			for _, b := range resp.Blocks {
				page = append(page, g.add(b))
			}
			g.pages = append(g.pages, page)
		}
	}

	return g, nil
}

func (g *Graph) add(b block.Block) int {
	pos := len(g.arena)
	g.arena = append(g.arena, b)
	if b.ID == "" {
		return pos
	}
	if _, exists := g.index[b.ID]; exists {
		g.duplicates = append(g.duplicates, b.ID)
	}
	g.index[b.ID] = pos
	return pos
}

// Lookup returns the block with the given id
func (g *Graph) Lookup(id string) (*block.Block, bool) {
	pos, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.arena[pos], true
}

// Page returns the blocks of a page (1-indexed) in supplied order
func (g *Graph) Page(num int) ([]*block.Block, bool) {
	if num < 1 || num > len(g.pages) {
		return nil, false
	}
	positions := g.pages[num-1]
	blocks := make([]*block.Block, len(positions))
	for i, pos := range positions {
		blocks[i] = &g.arena[pos]
	}
	return blocks, true
}

// PageCount returns the number of pages produced by splitting
func (g *Graph) PageCount() int {
	return len(g.pages)
}

// HasPageBlocks reports whether any response carried a PAGE block
func (g *Graph) HasPageBlocks() bool {
	return g.pageBlocks
}

// Len returns the number of blocks in the graph
func (g *Graph) Len() int {
	return len(g.arena)
}

// Duplicates returns ids seen more than once, once per extra occurrence
func (g *Graph) Duplicates() []string {
	return g.duplicates
}

// Metadata returns the first response's document metadata, or nil
func (g *Graph) Metadata() *block.DocumentMetadata {
	return g.metadata
}

// ErrCycle is returned when a relationship walk revisits a block on its
// own path
var ErrCycle = errors.New("resolver: circular relationship")

// ErrMaxDepth is returned when a relationship walk exceeds the depth limit
var ErrMaxDepth = errors.New("resolver: maximum relationship depth exceeded")

// Descendants walks every relationship edge below the block with the given
// id and returns the reachable blocks of the requested types (all types when
// none given) in depth-first order, each at most once. Ids that resolve to
// nothing are skipped.
func (g *Graph) Descendants(id string, types ...block.BlockType) ([]*block.Block, error) {
	root, ok := g.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("resolver: block %q not found", id)
	}

	want := make(map[block.BlockType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}

	w := &walker{
		graph:   g,
		want:    want,
		onPath:  map[string]bool{id: true},
		emitted: make(map[string]bool),
	}
	if err := w.walk(root, 0); err != nil {
		return nil, err
	}
	return w.out, nil
}

type walker struct {
	graph   *Graph
	want    map[block.BlockType]bool
	onPath  map[string]bool // cycle detection
	emitted map[string]bool
	out     []*block.Block
}

func (w *walker) walk(b *block.Block, depth int) error {
	if depth >= w.graph.maxDepth {
		return fmt.Errorf("%w (%d)", ErrMaxDepth, w.graph.maxDepth)
	}
	for _, childID := range b.AllIDs() {
		if w.onPath[childID] {
			return fmt.Errorf("%w: %s -> %s", ErrCycle, b.ID, childID)
		}
		child, ok := w.graph.Lookup(childID)
		if !ok {
			continue
		}
		if !w.emitted[childID] && (len(w.want) == 0 || w.want[child.Kind()]) {
			w.emitted[childID] = true
			w.out = append(w.out, child)
		}
		w.onPath[childID] = true
		err := w.walk(child, depth+1)
		delete(w.onPath, childID)
		if err != nil {
			return err
		}
	}
	return nil
}
