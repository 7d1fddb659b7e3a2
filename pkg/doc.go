// Package pkg provides the core libraries for Treegraft tree manipulation.
//
// # Overview
//
// Treegraft is an in-memory engine for mutable, bidirectional trees and
// forests, built for phylogenetic workflows: parse trees from Newick or
// JSON, traverse and edit them (pruning, chain contraction, subtree
// regrafting), compute statistics, and render them with Graphviz. The pkg
// directory is organized into four main areas:
//
//  1. [forest] - Domain logic (arena tree storage, traversal, edit operations)
//  2. [newick] / [treeio] - Serialization (Newick text, JSON node-link documents)
//  3. [render] - Visualization (DOT generation, SVG/PDF/PNG output)
//  4. [cache] / [archive] - Infrastructure (result caching, document storage)
//
// # Architecture
//
// The typical data flow through Treegraft:
//
//	Newick / JSON input
//	         ↓
//	    [newick] or [treeio] package (parse into the engine)
//	         ↓
//	    [forest] package (traversal + edit operations)
//	         ↓
//	    [render] package (DOT generation + Graphviz)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Parse a tree, prune it, and render it:
//
//	import (
//	    "github.com/treegraft/treegraft/pkg/newick"
//	    "github.com/treegraft/treegraft/pkg/render"
//	)
//
//	// 1. Parse Newick text
//	t, _ := newick.Parse("((A:1,B:2)ab:1,C:3);")
//
//	// 2. Edit the tree
//	t.TrimLeavesRooted([]forest.NodeID{leaf})
//	t.ContractAllChains()
//
//	// 3. Render to SVG
//	dot := render.ToDOT(t, render.Options{})
//	svg, _ := render.RenderSVG(dot)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [forest] - Arena-backed tree and forest engine. Nodes are integer handles
// into a contiguous node slice, edges are bidirectional adjacency entries,
// and an optional root distinguishes rooted from unrooted trees. Provides
// stack-based traversal with subtree skipping, pruning operations (leaf
// trimming, chain contraction, root trimming), and subtree regrafting
// (SPR moves, rerooting).
//
// ## Serialization
//
// [newick] - Newick text parsing and writing with name and branch-length
// labels.
//
// [treeio] - JSON node-link documents: explicit node and edge lists with
// validation on load, plus tree statistics (node, edge, leaf, component
// counts and depth).
//
// ## Visualization
//
// [render] - DOT generation for rooted (digraph) and unrooted (neato graph)
// trees, SVG rendering via Graphviz, and conversion to PDF/PNG.
//
// ## Infrastructure
//
// [cache] - Content-addressed result caching with file, Redis, and null
// backends. Keys are stage-prefixed hashes of the inputs, so identical
// requests reuse prior results.
//
// [archive] - Named tree document storage backed by MongoDB, with an
// in-memory implementation for testing.
//
// [config] - TOML configuration for cache, archive, and server settings.
//
// [observability] - Optional hooks for cache, render, and archive events.
//
// [errors] - Coded errors with user-facing messages, shared by the CLI and
// the HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/forest/...       # Specific package
//	go test -run Example           # Examples only
//
// [forest]: https://pkg.go.dev/github.com/treegraft/treegraft/pkg/forest
// [newick]: https://pkg.go.dev/github.com/treegraft/treegraft/pkg/newick
// [treeio]: https://pkg.go.dev/github.com/treegraft/treegraft/pkg/treeio
// [render]: https://pkg.go.dev/github.com/treegraft/treegraft/pkg/render
// [cache]: https://pkg.go.dev/github.com/treegraft/treegraft/pkg/cache
// [archive]: https://pkg.go.dev/github.com/treegraft/treegraft/pkg/archive
// [config]: https://pkg.go.dev/github.com/treegraft/treegraft/pkg/config
// [observability]: https://pkg.go.dev/github.com/treegraft/treegraft/pkg/observability
// [errors]: https://pkg.go.dev/github.com/treegraft/treegraft/pkg/errors
package pkg
