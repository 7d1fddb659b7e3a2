// Package treeio serializes trees as explicit node/edge lists.
//
// The format is the canonical interchange representation for treegraft:
// JSON for files and the HTTP API, and the same struct tags drive the BSON
// encoding used by the archive store. Node ids in a document are the
// engine's dense arena indices, so a round trip through treeio preserves
// node identity exactly, including disconnected slots:
//
//	{
//	  "root": 0,
//	  "nodes": [{"id": 0, "name": "r"}, {"id": 1, "name": "A", "length": 0.1}],
//	  "edges": [{"source": 0, "target": 1}]
//	}
//
// Import → mutate → export → re-import is the supported workflow; see
// [FromTree] and [ToTree] for the conversion entry points.
package treeio
