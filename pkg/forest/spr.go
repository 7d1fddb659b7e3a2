package forest

// The rearrangement moves below share one pattern: prune a subtree together
// with its attachment junction, collapse the vacated junction so no degree-2
// node is left behind (two remaining children are joined directly; three or
// more are gathered under a freshly allocated node), then regraft into the
// destination edge. Degenerate moves where the destination already touches
// the junction succeed without mutating.
//
// A false result means an edge that was expected to exist did not: the
// caller passed an inconsistent node quadruple. The tree is left in the
// intermediate state the completed sub-steps produced.

// collapseJunction disconnects junction from its children ch and closes the
// gap: two children are joined with a direct edge, more than two are
// connected to a new node. Reports false if an expected edge was missing.
func (t *Tree[V]) collapseJunction(junction NodeID, ch []NodeID) bool {
	for _, i := range ch {
		if !t.RemoveEdge(junction, i) {
			return false
		}
	}
	switch {
	case len(ch) == 2:
		t.AddEdge(ch[0], ch[1])
	case len(ch) > 2:
		m := t.NewNode()
		for _, i := range ch {
			t.AddEdge(m, i)
		}
	}
	return true
}

// SPR prunes the subtree rooted at n, hanging below its parent pn, and
// regrafts it into the edge (u,v) so that u–pn–v becomes a path. The pn
// node is reused as the regraft junction. No-op if (u,v) already touches
// pn.
func (t *Tree[V]) SPR(n, pn, u, v NodeID) bool {
	if pn == u || pn == v {
		return true
	}
	if !t.collapseJunction(pn, t.Children(pn, n).Slice()) {
		return false
	}
	if !t.RemoveEdge(u, v) {
		return false
	}
	t.AddEdge(pn, u)
	t.AddEdge(pn, v)
	return true
}

// Reroot detaches n from its children (pn excluded), collapses the vacated
// junction around n, and reconnects n into the edge (u,v) so that u–n–v
// becomes a path. Used to re-point a subtree's internal root. No-op if n
// already equals u or v.
func (t *Tree[V]) Reroot(n, pn, u, v NodeID) bool {
	if n == u || n == v {
		return true
	}
	if !t.collapseJunction(n, t.Children(n, pn).Slice()) {
		return false
	}
	if !t.RemoveEdge(u, v) {
		return false
	}
	t.AddEdge(n, u)
	t.AddEdge(n, v)
	return true
}

// SPRToRoot prunes the subtree rooted at u, hanging below its parent pu,
// regrafts pu onto the current root, and declares pu the new root. Reports
// false if the tree is unrooted or u is the root (moving the entire tree is
// rejected). No-op if pu already is the root.
func (t *Tree[V]) SPRToRoot(u, pu NodeID) bool {
	if !t.IsRooted() {
		return false
	}
	if u == t.root {
		return false
	}
	if pu == t.root {
		return true
	}
	if !t.collapseJunction(pu, t.Children(pu, u).Slice()) {
		return false
	}
	t.AddEdge(pu, t.root)
	t.root = pu
	return true
}

// SPRFromRoot is the inverse move: it detaches the subtree rooted at child
// c of the root, regrafts the root (still carrying c) into the edge (u,v),
// and declares the sibling r the new root. No-op if (u,v) already touches
// the root.
func (t *Tree[V]) SPRFromRoot(c, r, u, v NodeID) bool {
	if !t.IsRooted() {
		return false
	}
	if t.root == u || t.root == v {
		return true
	}
	for _, i := range t.Children(t.root, c).Slice() {
		if !t.RemoveEdge(t.root, i) {
			return false
		}
	}
	if !t.RemoveEdge(u, v) {
		return false
	}
	t.AddEdge(t.root, u)
	t.AddEdge(t.root, v)
	t.root = r
	return true
}
