package forest

import (
	"slices"
	"testing"
)

// buildWalkTree creates
//
//	    0
//	   / \
//	  1   2
//	 / \
//	3   4
//
// with adjacency insertion order 0-1, 0-2, 1-3, 1-4, rooted at 0.
func buildWalkTree(t *testing.T) *Tree[string] {
	t.Helper()
	tr := New[string]()
	for i := 0; i < 5; i++ {
		tr.NewNode()
	}
	tr.AddEdge(0, 1)
	tr.AddEdge(0, 2)
	tr.AddEdge(1, 3)
	tr.AddEdge(1, 4)
	tr.SetRoot(0)
	return tr
}

type event struct {
	node  NodeID
	phase Phase
}

func collectEvents(w *Walk[string]) []event {
	var out []event
	for w.Next() {
		out = append(out, event{w.Node(), w.Phase()})
	}
	return out
}

func TestWalkEventStream(t *testing.T) {
	tr := buildWalkTree(t)
	got := collectEvents(tr.Walk())
	want := []event{
		{0, Enter},
		{1, Enter},
		{3, Enter}, {3, Between}, {3, Exit}, // leaf: all phases collapsed
		{1, Between},
		{4, Enter}, {4, Between}, {4, Exit},
		{1, Exit},
		{0, Between},
		{2, Enter}, {2, Between}, {2, Exit},
		{0, Exit},
	}
	if !slices.Equal(got, want) {
		t.Errorf("event stream = %v, want %v", got, want)
	}
}

func TestWalkDepthAndParent(t *testing.T) {
	tr := buildWalkTree(t)
	w := tr.Walk()
	for w.Next() {
		switch w.Node() {
		case 0:
			if w.Depth() != 0 {
				t.Errorf("depth at root = %d, want 0", w.Depth())
			}
		case 1, 2:
			if w.Depth() != 1 || w.Parent() != 0 {
				t.Errorf("node %d: depth=%d parent=%d, want 1/0", w.Node(), w.Depth(), w.Parent())
			}
		case 3, 4:
			if w.Depth() != 2 || w.Parent() != 1 {
				t.Errorf("node %d: depth=%d parent=%d, want 2/1", w.Node(), w.Depth(), w.Parent())
			}
		}
	}
	if w.Phase() != Done {
		t.Errorf("phase after exhaustion = %v, want Done", w.Phase())
	}
}

func TestWalkEmptyTree(t *testing.T) {
	tr := New[string]()
	w := tr.Walk()
	if w.Next() {
		t.Error("walk over an empty tree must be immediately exhausted")
	}
	if w.Phase() != Done {
		t.Errorf("phase = %v, want Done", w.Phase())
	}
}

func TestWalkUnrootedFallsBackToNodeZero(t *testing.T) {
	tr := buildWalkTree(t)
	tr.Unroot()
	got := slices.Collect(tr.Preorder())
	if want := []NodeID{0, 1, 3, 4, 2}; !slices.Equal(got, want) {
		t.Errorf("unrooted preorder = %v, want fallback from node 0 %v", got, want)
	}
}

func TestWalkSkip(t *testing.T) {
	tr := buildWalkTree(t)
	w := tr.Walk()
	var visited []NodeID
	for w.Next() {
		if w.Phase() != Enter {
			continue
		}
		visited = append(visited, w.Node())
		if w.Node() == 1 {
			w.Skip() // prune the subtree below 1 from the traversal
		}
	}
	if want := []NodeID{0, 1, 2}; !slices.Equal(visited, want) {
		t.Errorf("preorder with Skip at 1 = %v, want %v", visited, want)
	}
}

func TestPreorderPostorderCoverage(t *testing.T) {
	tr := buildWalkTree(t)
	want := []NodeID{0, 1, 2, 3, 4}

	pre := slices.Collect(tr.Preorder())
	slices.Sort(pre)
	if !slices.Equal(pre, want) {
		t.Errorf("preorder is not a permutation of all nodes: %v", pre)
	}

	post := slices.Collect(tr.Postorder())
	slices.Sort(post)
	if !slices.Equal(post, want) {
		t.Errorf("postorder is not a permutation of all nodes: %v", post)
	}
}

func TestTraversalOrders(t *testing.T) {
	tr := buildWalkTree(t)
	tests := []struct {
		name string
		seq  func() []NodeID
		want []NodeID
	}{
		{"Preorder", func() []NodeID { return slices.Collect(tr.Preorder()) },
			[]NodeID{0, 1, 3, 4, 2}},
		{"Postorder", func() []NodeID { return slices.Collect(tr.Postorder()) },
			[]NodeID{3, 4, 1, 2, 0}},
		{"EulerTour", func() []NodeID { return slices.Collect(tr.EulerTour()) },
			[]NodeID{0, 1, 3, 1, 4, 1, 0, 2, 0}},
		{"PreorderFromSubtree", func() []NodeID { return slices.Collect(tr.PreorderFrom(1, 0)) },
			[]NodeID{1, 3, 4}},
		{"PostorderFromSubtree", func() []NodeID { return slices.Collect(tr.PostorderFrom(1, 0)) },
			[]NodeID{3, 4, 1}},
		{"EulerTourFromSubtree", func() []NodeID { return slices.Collect(tr.EulerTourFrom(1, 0)) },
			[]NodeID{1, 3, 1, 4, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq(); !slices.Equal(got, tt.want) {
				t.Errorf("sequence = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTraversalRestartable(t *testing.T) {
	tr := buildWalkTree(t)
	seq := tr.Preorder()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("re-ranging a sequence must restart it: first %v, second %v", first, second)
	}
}

func TestEulerTourStar(t *testing.T) {
	const k = 3
	tr := buildStar(t, k)
	got := slices.Collect(tr.EulerTour())
	// Root: Enter, k-1 Betweens, Exit = k+1 events; each leaf exactly one.
	if len(got) != 2*k+1 {
		t.Fatalf("euler tour length = %d, want %d", len(got), 2*k+1)
	}
	want := []NodeID{0, 1, 0, 2, 0, 3, 0}
	if !slices.Equal(got, want) {
		t.Errorf("euler tour = %v, want %v", got, want)
	}
}

func TestEulerTourSingleton(t *testing.T) {
	tr := New[string]()
	tr.NewNode()
	tr.SetRoot(0)
	got := slices.Collect(tr.EulerTour())
	if want := []NodeID{0}; !slices.Equal(got, want) {
		t.Errorf("euler tour of a singleton = %v, want %v", got, want)
	}
}

func TestIndexOrderIterators(t *testing.T) {
	tr := buildWalkTree(t)
	tests := []struct {
		name string
		seq  func() []NodeID
		want []NodeID
	}{
		{"Nodes", func() []NodeID { return slices.Collect(tr.Nodes()) }, []NodeID{0, 1, 2, 3, 4}},
		{"Leaves", func() []NodeID { return slices.Collect(tr.Leaves()) }, []NodeID{2, 3, 4}},
		{"InternalNodes", func() []NodeID { return slices.Collect(tr.InternalNodes()) }, []NodeID{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq(); !slices.Equal(got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestWalkFromHonorsParentAnywhereInAdjacency(t *testing.T) {
	// Insert the parent edge last so it sits at the end of the child's
	// adjacency list; the walk must still exclude it.
	tr := New[string]()
	for i := 0; i < 3; i++ {
		tr.NewNode()
	}
	tr.AddEdge(1, 2)
	tr.AddEdge(1, 0) // parent of 1 inserted after its child

	got := slices.Collect(tr.PreorderFrom(1, 0))
	if want := []NodeID{1, 2}; !slices.Equal(got, want) {
		t.Errorf("PreorderFrom(1,0) = %v, want %v", got, want)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{Enter, "enter"},
		{Between, "between"},
		{Exit, "exit"},
		{Done, "done"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
