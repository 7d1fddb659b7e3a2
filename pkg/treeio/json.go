package treeio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/treegraft/treegraft/pkg/forest"
	"github.com/treegraft/treegraft/pkg/newick"
)

// ReadJSON decodes a JSON tree document from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "root": 0,
//	  "nodes": [{"id": 0, "name": "r"}, {"id": 1, "name": "A", "length": 0.1}],
//	  "edges": [{"source": 0, "target": 1}]
//	}
//
// Node ids must form the dense range 0..n-1. Optional fields:
//   - root: the id of the distinguished root node
//   - name: the node's label (defaults to unnamed)
//   - length: the branch length toward the node's parent
//
// ReadJSON returns an error if the JSON is malformed, if node ids are
// sparse or duplicated, or if an edge or the root references an unknown
// id. Use errors.Is to check for [ErrSparseIDs] and [ErrUnknownNode].
//
// The returned tree is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*forest.Tree[newick.Label], error) {
	var doc Tree
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToTree(doc)
}

// ImportJSON reads a JSON file at path and returns the decoded tree.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*forest.Tree[newick.Label], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes a tree as JSON and writes it to w.
// The output includes all nodes (with labels and branch lengths), every
// edge once, and the root if one is set. This format can be re-imported
// with [ReadJSON] for round-trip processing.
func WriteJSON(t *forest.Tree[newick.Label], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromTree(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a tree to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(t *forest.Tree[newick.Label], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}
