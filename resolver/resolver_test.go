package resolver

import (
	"errors"
	"testing"

	"github.com/MorphisHe/textractdoc/block"
	bt "github.com/MorphisHe/textractdoc/internal/blocktest"
)

// ============================================================================
// Resolve Tests
// ============================================================================

func TestResolveMalformed(t *testing.T) {
	tests := []struct {
		name      string
		responses []block.Response
	}{
		{"no responses", nil},
		{"first has no blocks key", []block.Response{{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.responses)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("Resolve() error = %v, want ErrMalformedResponse", err)
			}
			var me *MalformedResponseError
			if !errors.As(err, &me) || me.Reason == "" {
				t.Errorf("error should carry a reason: %v", err)
			}
		})
	}
}

func TestResolveEmptyBlocks(t *testing.T) {
	g, err := Resolve([]block.Response{bt.Response(0)})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if g.Len() != 0 || g.PageCount() != 1 || g.HasPageBlocks() {
		t.Errorf("Len=%d PageCount=%d HasPageBlocks=%v", g.Len(), g.PageCount(), g.HasPageBlocks())
	}
}

func TestResolveSplitsOnPageBlocks(t *testing.T) {
	geo := bt.Box(0.1, 0.1, 0.2, 0.05)
	responses := []block.Response{
		bt.Response(3,
			bt.Page("p1", "l1"),
			bt.Line("l1", geo, "w1"),
			bt.Word("w1", "one", 99, geo),
			bt.Page("p2"),
		),
		bt.Response(3,
			bt.Word("w2", "two", 99, geo),
			bt.Page("p3"),
		),
	}

	g, err := Resolve(responses)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !g.HasPageBlocks() {
		t.Error("HasPageBlocks() = false")
	}
	if g.PageCount() != 3 {
		t.Fatalf("PageCount() = %d, want 3", g.PageCount())
	}

	wantIDs := [][]string{{"p1", "l1", "w1"}, {"p2", "w2"}, {"p3"}}
	for i, want := range wantIDs {
		nodes, ok := g.Page(i + 1)
		if !ok {
			t.Fatalf("Page(%d) missing", i+1)
		}
		if len(nodes) != len(want) {
			t.Fatalf("Page(%d) has %d nodes, want %d", i+1, len(nodes), len(want))
		}
		for j, id := range want {
			if nodes[j].ID != id {
				t.Errorf("Page(%d)[%d] = %s, want %s", i+1, j, nodes[j].ID, id)
			}
		}
	}
	if _, ok := g.Page(0); ok {
		t.Error("Page(0) should not exist")
	}
	if _, ok := g.Page(4); ok {
		t.Error("Page(4) should not exist")
	}
	if g.Metadata() == nil || g.Metadata().Pages != 3 {
		t.Errorf("Metadata() = %+v", g.Metadata())
	}
}

func TestResolveFirstPageBlockDoesNotFlush(t *testing.T) {
	g, err := Resolve([]block.Response{bt.Response(1, bt.Page("p1"), bt.Word("w1", "a", 99, nil))})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if g.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", g.PageCount())
	}
}

func TestResolveOnePagePerResponseWithoutPageBlocks(t *testing.T) {
	responses := []block.Response{
		bt.Response(0, bt.Word("w1", "a", 99, nil)),
		bt.Response(0, bt.Word("w2", "b", 99, nil), bt.Word("w3", "c", 99, nil)),
	}
	g, err := Resolve(responses)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if g.HasPageBlocks() {
		t.Error("HasPageBlocks() = true")
	}
	if g.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", g.PageCount())
	}
	nodes, _ := g.Page(2)
	if len(nodes) != 2 {
		t.Errorf("Page(2) has %d nodes, want 2", len(nodes))
	}
}

func TestResolveDuplicateKeepsLast(t *testing.T) {
	g, err := Resolve([]block.Response{bt.Response(1,
		bt.Word("w1", "first", 99, nil),
		bt.Word("w1", "second", 99, nil),
	)})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	b, ok := g.Lookup("w1")
	if !ok || b.Text != "second" {
		t.Errorf("Lookup(w1) = %+v, want last write", b)
	}
	if d := g.Duplicates(); len(d) != 1 || d[0] != "w1" {
		t.Errorf("Duplicates() = %v, want [w1]", d)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want both blocks kept in the arena", g.Len())
	}
}

func TestLookupMissing(t *testing.T) {
	g, _ := Resolve([]block.Response{bt.Response(1)})
	if _, ok := g.Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
}

// ============================================================================
// Descendants Tests
// ============================================================================

func tableGraph(t *testing.T, opts ...Option) *Graph {
	t.Helper()
	geo := bt.Box(0.1, 0.1, 0.1, 0.1)
	g, err := Resolve([]block.Response{bt.Response(1,
		bt.Table("t1", geo, "c1", "c2", "missing"),
		bt.Cell("c1", 1, 1, geo, "w1", "s1"),
		bt.Cell("c2", 1, 2, geo, "w2"),
		bt.Word("w1", "a", 99, geo),
		bt.Word("w2", "b", 99, geo),
		bt.Selection("s1", "SELECTED", geo),
	)}, opts...)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return g
}

func TestDescendantsFiltersByType(t *testing.T) {
	g := tableGraph(t)
	words, err := g.Descendants("t1", block.BlockTypeWord)
	if err != nil {
		t.Fatalf("Descendants() error = %v", err)
	}
	if len(words) != 2 || words[0].ID != "w1" || words[1].ID != "w2" {
		t.Errorf("Descendants(WORD) = %v", ids(words))
	}

	all, err := g.Descendants("t1")
	if err != nil {
		t.Fatalf("Descendants() error = %v", err)
	}
	want := []string{"c1", "w1", "s1", "c2", "w2"}
	got := ids(all)
	if len(got) != len(want) {
		t.Fatalf("Descendants() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Descendants()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDescendantsUnknownRoot(t *testing.T) {
	g := tableGraph(t)
	if _, err := g.Descendants("nope"); err == nil {
		t.Error("Descendants(nope) should fail")
	}
}

func TestDescendantsCycle(t *testing.T) {
	a := bt.Line("a", nil, "b")
	b := bt.Line("b", nil, "a")
	g, err := Resolve([]block.Response{bt.Response(1, a, b)})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if _, err := g.Descendants("a"); !errors.Is(err, ErrCycle) {
		t.Errorf("Descendants() error = %v, want ErrCycle", err)
	}
}

func TestDescendantsSharedChildIsNotACycle(t *testing.T) {
	g, err := Resolve([]block.Response{bt.Response(1,
		bt.Line("root", nil, "x", "y"),
		bt.Line("x", nil, "shared"),
		bt.Line("y", nil, "shared"),
		bt.Word("shared", "s", 99, nil),
	)})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	got, err := g.Descendants("root", block.BlockTypeWord)
	if err != nil {
		t.Fatalf("Descendants() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Descendants() = %v, want shared once", ids(got))
	}
}

func TestDescendantsMaxDepth(t *testing.T) {
	g := tableGraph(t, WithMaxDepth(1))
	if _, err := g.Descendants("t1"); !errors.Is(err, ErrMaxDepth) {
		t.Errorf("Descendants() error = %v, want ErrMaxDepth", err)
	}
}

func ids(blocks []*block.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.ID
	}
	return out
}
