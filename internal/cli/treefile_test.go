package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"tree.json", "json"},
		{"tree.JSON", "json"},
		{"tree.nwk", "newick"},
		{"tree.newick", "newick"},
		{"tree.txt", "newick"},
		{"tree", "newick"},
		{"dir.json/tree", "newick"},
	}

	for _, tt := range tests {
		if got := detectFormat(tt.path); got != tt.want {
			t.Errorf("detectFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestReadTreeFileNewick(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.nwk")
	if err := os.WriteFile(path, []byte("((A:1,B:2)ab:1,C:3);\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tree, err := readTreeFile(path, "")
	if err != nil {
		t.Fatalf("readTreeFile: %v", err)
	}
	if tree.NodeCount() != 5 {
		t.Errorf("NodeCount = %d, want 5", tree.NodeCount())
	}
	if !tree.IsRooted() {
		t.Error("parsed tree should be rooted")
	}
}

func TestReadTreeFileErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.nwk")
	if err := os.WriteFile(bad, []byte("((A,B;"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		format string
	}{
		{"missing file", filepath.Join(dir, "nope.nwk"), ""},
		{"parse error", bad, ""},
		{"unknown format", bad, "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := readTreeFile(tt.path, tt.format); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestWriteTreeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.nwk")
	if err := os.WriteFile(in, []byte("((A:1,B:2)ab:1,C:3);\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tree, err := readTreeFile(in, "")
	if err != nil {
		t.Fatal(err)
	}

	// Newick to JSON and back preserves the shape.
	jsonPath := filepath.Join(dir, "out.json")
	if err := writeTree(tree, jsonPath, ""); err != nil {
		t.Fatalf("writeTree json: %v", err)
	}
	back, err := readTreeFile(jsonPath, "")
	if err != nil {
		t.Fatalf("readTreeFile json: %v", err)
	}
	if back.NodeCount() != tree.NodeCount() {
		t.Errorf("NodeCount after round trip = %d, want %d", back.NodeCount(), tree.NodeCount())
	}
	if back.EdgeCount() != tree.EdgeCount() {
		t.Errorf("EdgeCount after round trip = %d, want %d", back.EdgeCount(), tree.EdgeCount())
	}

	// Newick output ends in a semicolon line.
	nwkPath := filepath.Join(dir, "out.nwk")
	if err := writeTree(tree, nwkPath, ""); err != nil {
		t.Fatalf("writeTree newick: %v", err)
	}
	data, err := os.ReadFile(nwkPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(string(data)), ";") {
		t.Errorf("newick output %q should end with a semicolon", data)
	}
}

func TestWriteTreeUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.nwk")
	if err := os.WriteFile(in, []byte("(A,B);\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tree, err := readTreeFile(in, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := writeTree(tree, filepath.Join(dir, "out.xml"), "xml"); err == nil {
		t.Error("expected error for unknown output format")
	}
}
