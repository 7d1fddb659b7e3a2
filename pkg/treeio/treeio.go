package treeio

import (
	"errors"
	"fmt"

	"github.com/treegraft/treegraft/pkg/forest"
	"github.com/treegraft/treegraft/pkg/newick"
)

var (
	// ErrUnknownNode is returned by [ToTree] when an edge or the root
	// references an id outside the node list.
	ErrUnknownNode = errors.New("treeio: unknown node id")

	// ErrSparseIDs is returned by [ToTree] when node ids are not the
	// dense range 0..n-1 the engine's arena requires.
	ErrSparseIDs = errors.New("treeio: node ids must be dense")

	// ErrCycle is returned by [ToTree] when the edge list is not a
	// forest: a self-loop, a repeated edge, or a cycle. The engine's
	// walks assume acyclic adjacency and would not terminate otherwise.
	ErrCycle = errors.New("treeio: edges must form a forest")
)

// Tree is the serialized node/edge form of a tree. The same struct tags
// serve JSON files, API payloads, and BSON archive documents.
type Tree struct {
	Root  *int32 `json:"root,omitempty" bson:"root,omitempty"`
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node carries one arena slot: its id and the payload label.
type Node struct {
	ID     int32    `json:"id" bson:"id"`
	Name   string   `json:"name,omitempty" bson:"name,omitempty"`
	Length *float64 `json:"length,omitempty" bson:"length,omitempty"`
}

// Edge is one undirected edge, listed once per pair.
type Edge struct {
	Source int32 `json:"source" bson:"source"`
	Target int32 `json:"target" bson:"target"`
}

// FromTree converts an engine tree to its serialized form. Nodes appear in
// arena order; each edge is emitted once, from its smaller endpoint.
func FromTree(t *forest.Tree[newick.Label]) Tree {
	out := Tree{
		Nodes: make([]Node, 0, t.NodeCount()),
		Edges: make([]Edge, 0, t.EdgeCount()),
	}
	if t.IsRooted() {
		root := int32(t.Root())
		out.Root = &root
	}
	for v := range t.Nodes() {
		n := Node{ID: int32(v), Name: t.Value(v).Name}
		if l := t.Value(v); l.HasLength {
			length := l.Length
			n.Length = &length
		}
		out.Nodes = append(out.Nodes, n)
		for u := range t.Adjacent(v) {
			if u > v {
				out.Edges = append(out.Edges, Edge{Source: int32(v), Target: int32(u)})
			}
		}
	}
	return out
}

// ToTree converts a serialized tree back to an engine tree. Node ids must
// form the dense range 0..n-1; edges and the root must reference listed
// ids; the edge list must be a forest.
func ToTree(doc Tree) (*forest.Tree[newick.Label], error) {
	n := len(doc.Nodes)
	seen := make([]bool, n)
	t := forest.NewWithCapacity[newick.Label](n)
	for i := 0; i < n; i++ {
		t.NewNode()
	}
	for _, nd := range doc.Nodes {
		if nd.ID < 0 || int(nd.ID) >= n || seen[nd.ID] {
			return nil, fmt.Errorf("%w: id %d with %d nodes", ErrSparseIDs, nd.ID, n)
		}
		seen[nd.ID] = true
		label := newick.Label{Name: nd.Name}
		if nd.Length != nil {
			label.Length = *nd.Length
			label.HasLength = true
		}
		t.SetValue(forest.NodeID(nd.ID), label)
	}
	comp := newComponents(n)
	for _, e := range doc.Edges {
		if !validID(e.Source, n) || !validID(e.Target, n) {
			return nil, fmt.Errorf("%w: edge %d-%d", ErrUnknownNode, e.Source, e.Target)
		}
		if !comp.union(e.Source, e.Target) {
			return nil, fmt.Errorf("%w: edge %d-%d", ErrCycle, e.Source, e.Target)
		}
		t.AddEdge(forest.NodeID(e.Source), forest.NodeID(e.Target))
	}
	if doc.Root != nil {
		if !validID(*doc.Root, n) {
			return nil, fmt.Errorf("%w: root %d", ErrUnknownNode, *doc.Root)
		}
		t.SetRoot(forest.NodeID(*doc.Root))
	}
	return t, nil
}

func validID(id int32, n int) bool { return id >= 0 && int(id) < n }

// components is a union-find over node ids, used to reject edge lists
// that are not forests.
type components []int32

func newComponents(n int) components {
	c := make(components, n)
	for i := range c {
		c[i] = int32(i)
	}
	return c
}

func (c components) find(x int32) int32 {
	for c[x] != x {
		c[x] = c[c[x]] // path halving
		x = c[x]
	}
	return x
}

// union merges the components of a and b, reporting false when they are
// already connected (the new edge would close a cycle).
func (c components) union(a, b int32) bool {
	ra, rb := c.find(a), c.find(b)
	if ra == rb {
		return false
	}
	c[ra] = rb
	return true
}
