package treeio

import (
	"github.com/treegraft/treegraft/pkg/forest"
	"github.com/treegraft/treegraft/pkg/newick"
)

// Stats summarizes the shape of a tree. The same struct serves CLI
// output and API responses.
type Stats struct {
	Nodes      int  `json:"nodes" bson:"nodes"`
	Edges      int  `json:"edges" bson:"edges"`
	Leaves     int  `json:"leaves" bson:"leaves"`
	Internal   int  `json:"internal" bson:"internal"`
	Components int  `json:"components" bson:"components"`
	Rooted     bool `json:"rooted" bson:"rooted"`
	// Depth is the maximum node depth below the root. Zero for a bare
	// root or an unrooted tree.
	Depth int `json:"depth" bson:"depth"`
}

// ComputeStats derives summary statistics from a tree. For rooted trees
// the depth comes from a full traversal; unrooted trees report zero.
func ComputeStats(t *forest.Tree[newick.Label]) Stats {
	s := Stats{
		Nodes:      t.NodeCount(),
		Edges:      t.EdgeCount(),
		Components: t.Components(),
		Rooted:     t.IsRooted(),
	}
	for v := range t.Nodes() {
		if t.IsLeaf(v) {
			s.Leaves++
		} else {
			s.Internal++
		}
	}
	if t.IsRooted() {
		w := t.WalkFrom(t.Root(), forest.None)
		for w.Next() {
			if w.Phase() == forest.Enter && w.Depth() > s.Depth {
				s.Depth = w.Depth()
			}
		}
	}
	return s
}
