package forest

// ContractEdge merges u into v: the edge (v,u) is removed and every other
// neighbor of u is rewired to v. Afterwards u is a disconnected slot.
func (t *Tree[V]) ContractEdge(v, u NodeID) {
	t.RemoveEdge(v, u)
	for _, i := range t.Neighbors(u) {
		t.RemoveEdge(i, u)
		t.AddEdge(i, v)
	}
}

// ContractChainNode replaces the path a–v–b through a degree-2 node v with
// a direct edge a–b, leaving v disconnected. It reports false, without
// mutating, if v is not degree 2 or is the root.
func (t *Tree[V]) ContractChainNode(v NodeID) bool {
	if t.Degree(v) != 2 {
		return false
	}
	if v == t.root {
		return false
	}
	a, b := t.nodes[v].adj[0], t.nodes[v].adj[1]
	t.RemoveEdge(a, v)
	t.RemoveEdge(b, v)
	t.AddEdge(a, b)
	return true
}

// ContractChain contracts the maximal chain of degree-2 nodes reachable
// from v, v included. Discovery uses an explicit work stack; the moment any
// discovered node cannot be contracted the whole call reports false, with
// prior contractions left in effect.
func (t *Tree[V]) ContractChain(v NodeID) bool {
	work := []NodeID{v}
	for len(work) > 0 {
		u := work[len(work)-1]
		work = work[:len(work)-1]
		for _, i := range t.nodes[u].adj {
			if t.Degree(i) == 2 {
				work = append(work, i)
			}
		}
		if !t.ContractChainNode(u) {
			return false
		}
	}
	return true
}

// ContractAllChains applies ContractChainNode to every node index in
// ascending order, failing fast on the first node that cannot be
// contracted. Non-atomic: prior contractions stay in effect.
func (t *Tree[V]) ContractAllChains() bool {
	for i := range t.nodes {
		if !t.ContractChainNode(NodeID(i)) {
			return false
		}
	}
	return true
}

// TrimLeaf cuts the leaf v out of the tree: the edge to its sole neighbor p
// is removed, then any degree-2 chain this opens up at p is contracted.
// Reports false, without mutating, if v is not degree 1. The chain
// contraction at p is best-effort and does not affect the result.
func (t *Tree[V]) TrimLeaf(v NodeID) bool {
	if t.Degree(v) != 1 {
		return false
	}
	p := t.nodes[v].adj[0]
	t.RemoveEdge(v, p)
	t.ContractChain(p)
	return true
}

// TrimLeaves trims a set of leaves in the given order. Order matters:
// earlier trims change the degrees later ones consult. Fails fast on the
// first node that is not a leaf.
func (t *Tree[V]) TrimLeaves(leaves []NodeID) bool {
	for _, v := range leaves {
		if !t.TrimLeaf(v) {
			return false
		}
	}
	return true
}

// TrimLeavesRooted trims a set of leaves and then trims the root, so a root
// left with a single child slides down to the first junction.
func (t *Tree[V]) TrimLeavesRooted(leaves []NodeID) bool {
	ret := t.TrimLeaves(leaves)
	t.TrimRoot()
	return ret
}

// TrimRoot slides the root down to its unique neighbor, removing the
// traversed edge, for as long as the root has degree exactly 1. Reports
// false, without mutating, if the tree is unrooted or the root degree is
// not 1.
func (t *Tree[V]) TrimRoot() bool {
	if !t.IsRooted() {
		return false
	}
	if t.Degree(t.root) != 1 {
		return false
	}
	for t.Degree(t.root) == 1 {
		c := t.nodes[t.root].adj[0]
		t.RemoveEdge(c, t.root)
		t.root = c
	}
	return true
}
