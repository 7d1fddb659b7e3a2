package forest

import "iter"

// adjacency is the per-node neighbor list and the sole edge representation:
// an edge {a,b} is b appearing in a's adjacency and a in b's.
//
// Order is insertion order until a removal reorders the tail via swap-delete.
type adjacency []NodeID

func (a adjacency) size() int { return len(a) }

// insert appends a neighbor. O(1) amortized, no duplicate check.
func (a *adjacency) insert(v NodeID) { *a = append(*a, v) }

// remove deletes one occurrence of v by swapping it with the last entry.
// Reports whether v was present. O(degree).
func (a *adjacency) remove(v NodeID) bool {
	s := *a
	for i, u := range s {
		if u == v {
			s[i] = s[len(s)-1]
			*a = s[:len(s)-1]
			return true
		}
	}
	return false
}

func (a adjacency) contains(v NodeID) bool {
	for _, u := range a {
		if u == v {
			return true
		}
	}
	return false
}

// Adjacent returns the neighbors of v as a lazy sequence in storage order.
// The sequence reads live adjacency storage; do not mutate the tree while
// ranging over it.
func (t *Tree[V]) Adjacent(v NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, u := range t.nodes[v].adj {
			if !yield(u) {
				return
			}
		}
	}
}

// Neighbors returns a fresh slice of the neighbors of v.
func (t *Tree[V]) Neighbors(v NodeID) []NodeID {
	out := make([]NodeID, len(t.nodes[v].adj))
	copy(out, t.nodes[v].adj)
	return out
}

// Children is a directed view of a node's adjacency list: every neighbor
// except one designated parent. The view holds no storage of its own; it
// re-reads the tree on every call, so it stays valid across arena growth.
//
// Pass parent == None to view all neighbors as children.
type Children[V any] struct {
	t      *Tree[V]
	node   NodeID
	parent NodeID
}

// Children returns the child view of v with the given parent excluded.
func (t *Tree[V]) Children(v, parent NodeID) Children[V] {
	return Children[V]{t: t, node: v, parent: parent}
}

// Len returns the number of children: the adjacency size minus one if the
// parent is currently adjacent.
func (c Children[V]) Len() int {
	adj := c.t.nodes[c.node].adj
	if adj.contains(c.parent) {
		return adj.size() - 1
	}
	return adj.size()
}

// Contains reports whether u is a child (adjacent and not the parent).
func (c Children[V]) Contains(u NodeID) bool {
	if u == c.parent {
		return false
	}
	return c.t.nodes[c.node].adj.contains(u)
}

// Insert adds u as a child. It delegates to the underlying adjacency list
// and does not special-case the parent.
func (c Children[V]) Insert(u NodeID) { c.t.nodes[c.node].adj.insert(u) }

// Remove deletes u from the underlying adjacency list and reports whether
// it was present. It does not special-case the parent.
func (c Children[V]) Remove(u NodeID) bool { return c.t.nodes[c.node].adj.remove(u) }

// All returns the children as a lazy sequence, skipping the parent wherever
// it occurs in the adjacency order.
func (c Children[V]) All() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, u := range c.t.nodes[c.node].adj {
			if u == c.parent {
				continue
			}
			if !yield(u) {
				return
			}
		}
	}
}

// Slice returns the children as a fresh slice.
func (c Children[V]) Slice() []NodeID {
	adj := c.t.nodes[c.node].adj
	out := make([]NodeID, 0, len(adj))
	for _, u := range adj {
		if u != c.parent {
			out = append(out, u)
		}
	}
	return out
}
