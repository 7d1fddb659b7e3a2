package forest

import (
	"iter"

	charmlog "github.com/charmbracelet/log"
)

// Phase tells where a depth-first walk currently stands relative to the
// node it reports.
type Phase uint8

const (
	// Enter is emitted on arrival at a node, before any of its children.
	Enter Phase = iota
	// Between is emitted between two child subtrees. A leaf emits it once,
	// modeling "no children to separate".
	Between
	// Exit is emitted on departure, after the last child subtree.
	Exit
	// Done means the walk is exhausted.
	Done
)

func (p Phase) String() string {
	switch p {
	case Enter:
		return "enter"
	case Between:
		return "between"
	case Exit:
		return "exit"
	case Done:
		return "done"
	}
	return "unknown"
}

// frame is one level of the walk stack: a node, the parent excluded from
// its child scan, and the scan position inside its adjacency list.
type frame struct {
	node    NodeID
	exclude NodeID
	next    int
}

// Walk is a generalized depth-first walk over a subtree. Every node is
// reported in multiple phases: Enter once, Between once per child boundary
// (a leaf gets exactly one), Exit once. All order-specific traversals are
// filters over this single event stream.
//
// A Walk reads live adjacency storage; mutating the tree mid-walk
// invalidates it.
type Walk[V any] struct {
	t       *Tree[V]
	stack   []frame
	node    NodeID
	parent  NodeID
	depth   int
	phase   Phase
	started bool
}

// WalkFrom starts a depth-first walk at v, with parent excluded from v's
// children (pass None to descend into all neighbors). The first call to
// Next positions the walk at the Enter phase of v.
func (t *Tree[V]) WalkFrom(v, parent NodeID) *Walk[V] {
	return &Walk[V]{t: t, node: v, parent: parent, phase: Done}
}

// Walk starts a depth-first walk at the declared root. On an unrooted
// non-empty tree it falls back to node 0 with a diagnostic. On an empty
// tree the walk is immediately exhausted.
func (t *Tree[V]) Walk() *Walk[V] {
	if t.Empty() {
		return &Walk[V]{t: t, node: None, parent: None, phase: Done, started: true}
	}
	start := t.root
	if start == None {
		charmlog.Warn("forest: traversal without root node, starting at node 0")
		start = 0
	}
	return t.WalkFrom(start, None)
}

// Next advances to the next visitation event and reports whether one is
// available. After it returns false the phase is Done.
func (w *Walk[V]) Next() bool {
	if !w.started {
		w.started = true
		if w.node == None {
			return false
		}
		w.stack = append(w.stack, frame{node: w.node, exclude: w.parent})
		w.depth = 0
		w.phase = Enter
		return true
	}
	if len(w.stack) == 0 {
		return false
	}
	switch w.phase {
	case Enter, Between:
		top := &w.stack[len(w.stack)-1]
		child, ok := w.child(top)
		if !ok {
			// Children exhausted: a leaf collapses Enter→Between→Exit on
			// the spot, an inner node emits its final phase.
			if w.phase == Enter {
				w.phase = Between
			} else {
				w.phase = Exit
			}
			return true
		}
		w.parent = w.node
		w.node = child
		w.depth++
		w.phase = Enter
		w.stack = append(w.stack, frame{node: child, exclude: w.parent})
		return true
	case Exit:
		w.stack = w.stack[:len(w.stack)-1]
		if len(w.stack) == 0 {
			w.node = None
			w.parent = None
			w.depth = 0
			w.phase = Done
			return false
		}
		top := &w.stack[len(w.stack)-1]
		w.node = top.node
		w.depth--
		w.parent = w.grandparent()
		top.next++ // step past the completed child
		if _, ok := w.child(top); ok {
			w.phase = Between
		} else {
			w.phase = Exit
		}
		return true
	}
	return false
}

// child returns the node at the frame's scan position, advancing the
// position past the excluded parent wherever it occurs.
func (w *Walk[V]) child(f *frame) (NodeID, bool) {
	adj := w.t.nodes[f.node].adj
	for f.next < len(adj) {
		if adj[f.next] != f.exclude {
			return adj[f.next], true
		}
		f.next++
	}
	return None, false
}

// grandparent is the node one frame below the top, or None at the walk's
// start node.
func (w *Walk[V]) grandparent() NodeID {
	if len(w.stack) < 2 {
		return None
	}
	return w.stack[len(w.stack)-2].node
}

// Node returns the node the walk currently reports, or None when Done.
func (w *Walk[V]) Node() NodeID { return w.node }

// Parent returns the walk parent of the current node, or None at the start
// node.
func (w *Walk[V]) Parent() NodeID { return w.parent }

// Depth returns the current depth, 0 at the start node.
func (w *Walk[V]) Depth() int { return w.depth }

// Phase returns the current phase.
func (w *Walk[V]) Phase() Phase { return w.phase }

// Skip marks the remaining children of the current node as exhausted, so
// the walk leaves it on the next step without descending further. Used to
// prune a subtree from traversal without touching the tree.
func (w *Walk[V]) Skip() {
	if len(w.stack) == 0 {
		return
	}
	top := &w.stack[len(w.stack)-1]
	top.next = len(w.t.nodes[top.node].adj)
}

// filtered drives a fresh walk per iteration and yields the nodes of
// events accepted by keep. Sequences built this way are lazy, finite,
// single-pass, and restart from the beginning when ranged again.
func filtered[V any](mk func() *Walk[V], keep func(*Walk[V]) bool) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		w := mk()
		for w.Next() {
			if keep(w) && !yield(w.node) {
				return
			}
		}
	}
}

// Preorder yields every node of the tree once, parents before children,
// starting at the root (with the unrooted fallback of [Tree.Walk]).
func (t *Tree[V]) Preorder() iter.Seq[NodeID] {
	return filtered(t.Walk, func(w *Walk[V]) bool { return w.phase == Enter })
}

// PreorderFrom is Preorder scoped to the subtree at v below parent.
func (t *Tree[V]) PreorderFrom(v, parent NodeID) iter.Seq[NodeID] {
	mk := func() *Walk[V] { return t.WalkFrom(v, parent) }
	return filtered(mk, func(w *Walk[V]) bool { return w.phase == Enter })
}

// Postorder yields every node of the tree once, children before parents.
func (t *Tree[V]) Postorder() iter.Seq[NodeID] {
	return filtered(t.Walk, func(w *Walk[V]) bool { return w.phase == Exit })
}

// PostorderFrom is Postorder scoped to the subtree at v below parent.
func (t *Tree[V]) PostorderFrom(v, parent NodeID) iter.Seq[NodeID] {
	mk := func() *Walk[V] { return t.WalkFrom(v, parent) }
	return filtered(mk, func(w *Walk[V]) bool { return w.phase == Exit })
}

// EulerTour yields the classical Euler-tour sequence: an inner node with k
// children appears k+1 times (its Enter, each Between, its Exit), a leaf
// exactly once (its Between). Every tree edge is traversed twice. This
// ordering underpins linear-time LCA and tree-distance algorithms.
func (t *Tree[V]) EulerTour() iter.Seq[NodeID] {
	return filtered(t.Walk, eulerKeep)
}

// EulerTourFrom is EulerTour scoped to the subtree at v below parent.
func (t *Tree[V]) EulerTourFrom(v, parent NodeID) iter.Seq[NodeID] {
	mk := func() *Walk[V] { return t.WalkFrom(v, parent) }
	return filtered(mk, eulerKeep)
}

func eulerKeep[V any](w *Walk[V]) bool {
	return !w.t.IsLeaf(w.node) || w.phase == Between
}

// Nodes yields all node ids in index order, disconnected slots included.
func (t *Tree[V]) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := range t.nodes {
			if !yield(NodeID(i)) {
				return
			}
		}
	}
}

// Leaves yields all leaf node ids in index order.
func (t *Tree[V]) Leaves() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := range t.nodes {
			if t.IsLeaf(NodeID(i)) && !yield(NodeID(i)) {
				return
			}
		}
	}
}

// InternalNodes yields all non-leaf node ids in index order.
func (t *Tree[V]) InternalNodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := range t.nodes {
			if !t.IsLeaf(NodeID(i)) && !yield(NodeID(i)) {
				return
			}
		}
	}
}
