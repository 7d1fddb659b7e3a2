// Package forest provides a mutable, bidirectional tree/forest engine
// addressed by dense integer node ids.
//
// # Overview
//
// Treegraft manipulates phylogenetic trees: it prunes and regrafts subtrees,
// reroots them, collapses chains left behind by edge removals, and walks the
// result in every traversal order the surrounding tools need. This package is
// the engine all of that runs on. Nodes live in a dense append-only arena and
// are identified by their slot index; edges are stored redundantly in the
// adjacency lists of both endpoints, which makes the structure inherently
// undirected. Directed (parent/child) semantics are obtained on demand by
// viewing an adjacency list through a [Children] projection that excludes one
// designated parent id.
//
// # Basic Usage
//
// Create a tree with [New], allocate nodes with [Tree.NewNode], and connect
// them with [Tree.AddEdge]:
//
//	t := forest.New[string]()
//	r := t.NewNode()
//	a := t.NewNode()
//	t.AddEdge(r, a)
//	t.SetRoot(r)
//
// Traversal orders are lazy sequences built on one generalized depth-first
// walk; see [Tree.Preorder], [Tree.Postorder], [Tree.EulerTour] and the
// stepwise [Walk].
//
// # Contract Violations
//
// Operations that can fail on misuse (removing a missing edge, contracting a
// node that is not a chain node, a rearrangement with an inconsistent node
// quadruple) report the failure as a boolean result instead of an error value.
// Callers are expected to check it: a false result from a multi-step
// rearrangement means the tree was left in whatever intermediate state the
// completed sub-steps produced. Callers that need all-or-nothing semantics
// should [Tree.Clone] first and restore on failure.
//
// # Concurrency
//
// Tree instances are not safe for concurrent use. The engine assumes a single
// mutator and no readers during mutation; live walks hold positions inside
// adjacency storage that mutation can invalidate.
package forest
