package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/treegraft/treegraft/pkg/forest"
	"github.com/treegraft/treegraft/pkg/newick"
)

// Options configures tree rendering.
type Options struct {
	// Detailed includes node ids and branch lengths in labels.
	// When false, only node names are shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT format. The resulting DOT string
// can be rendered with [RenderSVG].
//
// A rooted tree becomes a digraph walked from the root, so Graphviz lays
// it out top-down. An unrooted tree becomes an undirected graph with every
// edge listed once.
//
// Leaves are filled white, internal nodes grey. Unnamed nodes render as
// small points unless opts.Detailed is set.
func ToDOT(t *forest.Tree[newick.Label], opts Options) string {
	var buf bytes.Buffer
	if t.IsRooted() {
		buf.WriteString("digraph T {\n")
		buf.WriteString("  rankdir=TB;\n")
	} else {
		buf.WriteString("graph T {\n")
		buf.WriteString("  layout=neato;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for v := range t.Nodes() {
		fmt.Fprintf(&buf, "  n%d [%s];\n", v, fmtAttrs(t, v, opts.Detailed))
	}
	buf.WriteString("\n")

	if t.IsRooted() {
		w := t.WalkFrom(t.Root(), forest.None)
		for w.Next() {
			if w.Phase() == forest.Enter && w.Parent() != forest.None {
				fmt.Fprintf(&buf, "  n%d -> n%d;\n", w.Parent(), w.Node())
			}
		}
	} else {
		for v := range t.Nodes() {
			for u := range t.Adjacent(v) {
				if u > v {
					fmt.Fprintf(&buf, "  n%d -- n%d;\n", v, u)
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(t *forest.Tree[newick.Label], v forest.NodeID, detailed bool) string {
	label := t.Value(v)
	text := label.Name
	if detailed {
		text = fmt.Sprintf("%s\n#%d", label.Name, v)
		if label.HasLength {
			text += fmt.Sprintf("\n%g", label.Length)
		}
	}
	if text == "" {
		return `shape=point, width=0.1, label=""`
	}
	attrs := fmt.Sprintf("label=%q", text)
	if !t.IsLeaf(v) {
		attrs += `, fillcolor=lightgrey`
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [ToPDF] or [ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the viewBox starts at
// the origin, which keeps downstream converters from clipping the image.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
