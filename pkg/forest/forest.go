package forest

import "slices"

// NodeID identifies a node by its slot index in the tree's arena.
// Ids are dense, start at 0, and stay valid for the lifetime of the tree:
// nodes are never deleted or renumbered, they can only become disconnected.
type NodeID int32

// None is the sentinel id meaning "no node": no parent, no root, no match.
const None NodeID = -1

// node is one arena slot: a caller-owned payload plus the adjacency list.
type node[V any] struct {
	value V
	adj   adjacency
}

// Tree is a mutable, bidirectional tree (or forest, during multi-step
// rewrites) with payloads of type V attached to every node.
//
// The zero value is a usable empty unrooted tree, equivalent to New[V]().
// Tree is not safe for concurrent use.
type Tree[V any] struct {
	nodes []node[V]
	edges int
	root  NodeID
}

// New creates an empty unrooted tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{root: None}
}

// NewWithCapacity creates an empty unrooted tree with arena capacity
// reserved for n nodes.
func NewWithCapacity[V any](n int) *Tree[V] {
	return &Tree[V]{nodes: make([]node[V], 0, n), root: None}
}

// Reserve grows the arena capacity to hold at least n nodes in total.
func (t *Tree[V]) Reserve(n int) {
	t.nodes = slices.Grow(t.nodes, n-len(t.nodes))
}

// Clear drops all nodes and edges and unroots the tree.
func (t *Tree[V]) Clear() {
	t.nodes = t.nodes[:0]
	t.edges = 0
	t.root = None
}

// Swap exchanges the complete contents of two trees in O(1).
// Useful for transactional build-then-swap patterns.
func (t *Tree[V]) Swap(o *Tree[V]) {
	t.nodes, o.nodes = o.nodes, t.nodes
	t.edges, o.edges = o.edges, t.edges
	t.root, o.root = o.root, t.root
}

// Clone returns a deep copy of the tree. Payload values are copied with
// plain assignment; pointer-typed payloads share their referents.
func (t *Tree[V]) Clone() *Tree[V] {
	c := &Tree[V]{
		nodes: make([]node[V], len(t.nodes)),
		edges: t.edges,
		root:  t.root,
	}
	for i := range t.nodes {
		c.nodes[i].value = t.nodes[i].value
		c.nodes[i].adj = slices.Clone(t.nodes[i].adj)
	}
	return c
}

// Empty reports whether the tree contains no nodes.
func (t *Tree[V]) Empty() bool { return len(t.nodes) == 0 }

// NodeCount returns the number of allocated node slots, including
// disconnected ones.
func (t *Tree[V]) NodeCount() int { return len(t.nodes) }

// EdgeCount returns the number of edges.
func (t *Tree[V]) EdgeCount() int { return t.edges }

// NewNode allocates a fresh, disconnected node and returns its id.
// The payload starts as the zero value of V.
func (t *Tree[V]) NewNode() NodeID {
	t.nodes = append(t.nodes, node[V]{})
	return NodeID(len(t.nodes) - 1)
}

// NewNodeWithValue allocates a fresh, disconnected node carrying value.
func (t *Tree[V]) NewNodeWithValue(value V) NodeID {
	t.nodes = append(t.nodes, node[V]{value: value})
	return NodeID(len(t.nodes) - 1)
}

// Value returns the payload attached to v.
func (t *Tree[V]) Value(v NodeID) V { return t.nodes[v].value }

// SetValue replaces the payload attached to v.
func (t *Tree[V]) SetValue(v NodeID, value V) { t.nodes[v].value = value }

// Root returns the root id, or None if the tree is unrooted.
func (t *Tree[V]) Root() NodeID { return t.root }

// SetRoot declares v the root. The caller must pass a live node id.
func (t *Tree[V]) SetRoot(v NodeID) { t.root = v }

// Unroot undeclares the root.
func (t *Tree[V]) Unroot() { t.root = None }

// IsRooted reports whether a root is declared.
func (t *Tree[V]) IsRooted() bool { return t.root != None }

// Degree returns the number of neighbors of v.
func (t *Tree[V]) Degree(v NodeID) int { return t.nodes[v].adj.size() }

// IsLeaf reports whether v has at most one neighbor.
// A disconnected singleton counts as a leaf.
func (t *Tree[V]) IsLeaf(v NodeID) bool { return t.Degree(v) <= 1 }

// AddEdge connects v and u. No duplicate or self-loop check is performed;
// inserting a duplicate edge or a self-loop silently breaks degree and
// child counting.
func (t *Tree[V]) AddEdge(v, u NodeID) {
	t.nodes[v].adj.insert(u)
	t.nodes[u].adj.insert(v)
	t.edges++
}

// RemoveEdge disconnects v and u and reports whether the edge existed.
//
// If u is missing from v's adjacency, nothing is mutated. If the first
// removal succeeds but the reverse entry is missing, the symmetry invariant
// was already broken before the call: RemoveEdge returns false with the
// first removal in effect, and the caller must treat the tree as corrupted.
func (t *Tree[V]) RemoveEdge(v, u NodeID) bool {
	if !t.nodes[v].adj.remove(u) {
		return false
	}
	if !t.nodes[u].adj.remove(v) {
		return false
	}
	t.edges--
	return true
}

// HasEdge reports whether v and u are connected.
func (t *Tree[V]) HasEdge(v, u NodeID) bool { return t.nodes[v].adj.contains(u) }

// Disconnect removes all edges incident to v. The node itself stays
// allocated as a degree-zero slot.
func (t *Tree[V]) Disconnect(v NodeID) {
	for t.Degree(v) != 0 {
		t.RemoveEdge(v, t.nodes[v].adj[0])
	}
}
