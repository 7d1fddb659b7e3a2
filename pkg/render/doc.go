// Package render provides visualization rendering for trees.
//
// # Overview
//
// This package transforms trees into visual outputs:
//
//   - Graphviz DOT generation from a tree ([ToDOT])
//   - SVG rendering of DOT graphs ([RenderSVG])
//   - Generic format conversion (SVG to PDF/PNG via [ToPDF], [ToPNG])
//
// # Usage
//
// Rendering is a two-step pipeline. First convert the tree to DOT, then
// render the DOT string:
//
//	dot := render.ToDOT(t, render.Options{})
//	svg, err := render.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Rooted trees render top-down from the root. Unrooted trees render as
// undirected graphs using Graphviz's neato layout.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
package render
