package newick

import "errors"

var (
	// ErrEmptyInput is returned by [Parse] when the input holds no tree.
	ErrEmptyInput = errors.New("newick: empty input")

	// ErrSyntax is returned by [Parse] for malformed input. It is wrapped
	// with the byte offset and a short description of what was expected.
	ErrSyntax = errors.New("newick: syntax error")

	// ErrUnrooted is returned by [Write] when the tree has no declared
	// root to serialize from.
	ErrUnrooted = errors.New("newick: tree is unrooted")
)

// Label is the payload parsed trees carry: the node name and the branch
// length of the edge towards the parent. HasLength distinguishes a written
// ":0" from an absent length.
type Label struct {
	Name      string
	Length    float64
	HasLength bool
}
