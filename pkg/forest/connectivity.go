package forest

// Connectivity checks run one linear sweep: node 0 is marked, then every
// neighbor with a strictly larger index than its endpoint is marked. In a
// connected acyclic graph every node is reached by an increasing-index step
// at least once, so unmarked nodes indicate disconnection. This is not a
// general connected-components algorithm: components whose reachable set is
// not characterized by the increasing-index sweep are miscounted. Callers
// use these as cheap whole-tree sanity predicates, not as graph analysis.

func (t *Tree[V]) sweep() []bool {
	visited := make([]bool, len(t.nodes))
	visited[0] = true
	for i := range t.nodes {
		for _, j := range t.nodes[i].adj {
			if j > NodeID(i) {
				visited[j] = true
			}
		}
	}
	return visited
}

// Connected reports whether all nodes form one connected component.
// An empty tree counts as connected.
func (t *Tree[V]) Connected() bool {
	if t.Empty() {
		return true
	}
	for _, v := range t.sweep() {
		if !v {
			return false
		}
	}
	return true
}

// Components returns the number of connected components, 0 for an empty
// tree.
func (t *Tree[V]) Components() int {
	if t.Empty() {
		return 0
	}
	comp := 1
	for _, v := range t.sweep() {
		if !v {
			comp++
		}
	}
	return comp
}
