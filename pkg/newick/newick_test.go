package newick

import (
	"errors"
	"testing"

	"github.com/treegraft/treegraft/pkg/forest"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes int
		wantEdges int
		check     func(t *testing.T, tr *forest.Tree[Label])
	}{
		{
			name:      "SingleLeaf",
			input:     "A;",
			wantNodes: 1,
			wantEdges: 0,
			check: func(t *testing.T, tr *forest.Tree[Label]) {
				if got := tr.Value(tr.Root()).Name; got != "A" {
					t.Errorf("root name = %q, want A", got)
				}
			},
		},
		{
			name:      "Cherry",
			input:     "(A,B);",
			wantNodes: 3,
			wantEdges: 2,
		},
		{
			name:      "NamedWithLengths",
			input:     "((A:0.1,B:0.2)ab:0.3,C:0.4)root;",
			wantNodes: 5,
			wantEdges: 4,
			check: func(t *testing.T, tr *forest.Tree[Label]) {
				root := tr.Root()
				if got := tr.Value(root).Name; got != "root" {
					t.Errorf("root name = %q, want root", got)
				}
				var ab forest.NodeID = forest.None
				for v := range tr.Nodes() {
					if tr.Value(v).Name == "ab" {
						ab = v
					}
				}
				if ab == forest.None {
					t.Fatal("node ab not found")
				}
				if l := tr.Value(ab); !l.HasLength || l.Length != 0.3 {
					t.Errorf("ab length = %+v, want 0.3", l)
				}
			},
		},
		{
			name:      "Multifurcation",
			input:     "(A,B,C,D)r;",
			wantNodes: 5,
			wantEdges: 4,
			check: func(t *testing.T, tr *forest.Tree[Label]) {
				if got := tr.Degree(tr.Root()); got != 4 {
					t.Errorf("root degree = %d, want 4", got)
				}
			},
		},
		{
			name:      "QuotedName",
			input:     "('a name','it''s')x;",
			wantNodes: 3,
			wantEdges: 2,
			check: func(t *testing.T, tr *forest.Tree[Label]) {
				names := map[string]bool{}
				for v := range tr.Nodes() {
					names[tr.Value(v).Name] = true
				}
				if !names["a name"] || !names["it's"] {
					t.Errorf("names = %v, want quoted names decoded", names)
				}
			},
		},
		{
			name:      "Whitespace",
			input:     " ( A , B ) r ;\n",
			wantNodes: 3,
			wantEdges: 2,
		},
		{
			name:      "ScientificLength",
			input:     "(A:1e-3,B:2.5E2)r;",
			wantNodes: 3,
			wantEdges: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if tr.NodeCount() != tt.wantNodes {
				t.Errorf("NodeCount() = %d, want %d", tr.NodeCount(), tt.wantNodes)
			}
			if tr.EdgeCount() != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", tr.EdgeCount(), tt.wantEdges)
			}
			if !tr.IsRooted() {
				t.Error("parsed tree must be rooted")
			}
			if !tr.Connected() {
				t.Error("parsed tree must be connected")
			}
			if tt.check != nil {
				tt.check(t, tr)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"Empty", "", ErrEmptyInput},
		{"OnlySpace", "  \n", ErrEmptyInput},
		{"MissingSemicolon", "(A,B)", ErrSyntax},
		{"UnbalancedParen", "((A,B);", ErrSyntax},
		{"TrailingInput", "(A,B); junk", ErrSyntax},
		{"BadLength", "(A:x,B);", ErrSyntax},
		{"UnterminatedQuote", "('A,B);", ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // expected round-trip output, defaults to input
	}{
		{name: "Cherry", input: "(A,B);"},
		{name: "Nested", input: "((A:0.1,B:0.2)ab:0.3,C:0.4)root;"},
		{name: "Multifurcation", input: "(A,B,C,D)r;"},
		{name: "Quoted", input: "('a name',B)r;"},
		{name: "SingleLeaf", input: "A;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got, err := Write(tr)
			if err != nil {
				t.Fatalf("Write: %v", err)
			}
			want := tt.want
			if want == "" {
				want = tt.input
			}
			if got != want {
				t.Errorf("Write = %q, want %q", got, want)
			}
		})
	}
}

func TestWriteUnrooted(t *testing.T) {
	tr := forest.New[Label]()
	tr.NewNode()
	tr.Unroot()
	if _, err := Write(tr); !errors.Is(err, ErrUnrooted) {
		t.Errorf("Write on unrooted tree error = %v, want ErrUnrooted", err)
	}
}

func TestRoundTripPreservesTopology(t *testing.T) {
	const input = "((A,(B,C)bc)x,(D,E)y)r;"
	tr, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Write(tr)
	if err != nil {
		t.Fatal(err)
	}
	tr2, err := Parse(out)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if tr2.NodeCount() != tr.NodeCount() || tr2.EdgeCount() != tr.EdgeCount() {
		t.Errorf("round trip changed counts: %d/%d vs %d/%d",
			tr2.NodeCount(), tr2.EdgeCount(), tr.NodeCount(), tr.EdgeCount())
	}
	if out != input {
		t.Errorf("round trip = %q, want %q", out, input)
	}
}
