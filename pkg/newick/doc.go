// Package newick reads and writes trees in the Newick text format used
// throughout phylogenetics.
//
// # Format
//
// A Newick tree is a nested parenthesized list of children terminated by a
// semicolon, with optional node names and branch lengths:
//
//	((A:0.1,B:0.2)ab:0.3,C:0.4)root;
//
// Names may be quoted with single quotes to include whitespace or
// structural characters; a doubled quote inside a quoted name stands for a
// literal quote.
//
// # Mapping
//
// Parsing produces a rooted [forest.Tree] with a [Label] payload per node:
// the name and the branch length of the edge leading to the node's parent.
// Writing walks the tree through the engine's phase stream: an opening
// parenthesis on entering an internal node, a comma between child subtrees,
// the name and length on departure. Leaves surface through their single
// between-children phase, mirroring the Euler-tour collapse.
package newick
