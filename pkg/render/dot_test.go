package render

import (
	"strings"
	"testing"

	"github.com/treegraft/treegraft/pkg/forest"
	"github.com/treegraft/treegraft/pkg/newick"
)

func buildCherry() *forest.Tree[newick.Label] {
	t := forest.New[newick.Label]()
	r := t.NewNode()
	a := t.NewNodeWithValue(newick.Label{Name: "A", Length: 0.5, HasLength: true})
	b := t.NewNodeWithValue(newick.Label{Name: "B"})
	t.AddEdge(r, a)
	t.AddEdge(r, b)
	return t
}

func TestToDOTRooted(t *testing.T) {
	tr := buildCherry()
	tr.SetRoot(0)

	dot := ToDOT(tr, Options{})

	if !strings.HasPrefix(dot, "digraph T {") {
		t.Errorf("rooted tree should produce a digraph, got prefix %q", dot[:20])
	}
	for _, want := range []string{`n1 [label="A"]`, `n2 [label="B"]`, "n0 -> n1;", "n0 -> n2;"} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "n1 -> n0") {
		t.Error("edge direction should follow the walk away from the root")
	}
}

func TestToDOTUnrooted(t *testing.T) {
	dot := ToDOT(buildCherry(), Options{})

	if !strings.HasPrefix(dot, "graph T {") {
		t.Errorf("unrooted tree should produce an undirected graph, got prefix %q", dot[:20])
	}
	if !strings.Contains(dot, "n0 -- n1;") || !strings.Contains(dot, "n0 -- n2;") {
		t.Errorf("ToDOT() missing undirected edges in:\n%s", dot)
	}
	if strings.Count(dot, "--") != 2 {
		t.Errorf("each edge should appear once, got:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	tr := buildCherry()
	tr.SetRoot(0)

	dot := ToDOT(tr, Options{Detailed: true})

	if !strings.Contains(dot, "#1") || !strings.Contains(dot, "0.5") {
		t.Errorf("detailed labels missing id or branch length in:\n%s", dot)
	}
}

func TestToDOTUnnamedNode(t *testing.T) {
	dot := ToDOT(buildCherry(), Options{})

	if !strings.Contains(dot, "n0 [shape=point") {
		t.Errorf("unnamed node should render as a point in:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" viewBox="4.00 4.00 100.00 50.00"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("svg without viewBox should pass through unchanged, got %s", got)
	}
}
