package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/treegraft/treegraft/pkg/errors"
	"github.com/treegraft/treegraft/pkg/forest"
	"github.com/treegraft/treegraft/pkg/newick"
)

// pruneOpts holds the command-line flags for the prune command.
type pruneOpts struct {
	output   string // output file path (stdout if empty)
	from     string // input format override
	to       string // output format override
	leaves   string // comma-separated leaf names to trim
	contract bool   // contract all chains after editing
	trimRoot bool   // slide a degree-1 root down before trimming
	spr      string // subtree transfer quadruple "n,pn,u,v"
}

// pruneCommand creates the prune command for editing trees.
// Operations run in a fixed order: root trimming, leaf trimming, SPR,
// then chain contraction.
func (c *CLI) pruneCommand() *cobra.Command {
	var opts pruneOpts

	cmd := &cobra.Command{
		Use:   "prune <file>",
		Short: "Trim leaves, contract chains, or apply a subtree transfer",
		Long: `Edit a tree and write the result.

Examples:
  treegraft prune t.nwk --leaves A,B            # drop leaves A and B
  treegraft prune t.nwk --contract              # remove degree-2 nodes
  treegraft prune t.json --spr 4,3,1,2 -o out.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTreeFile(args[0], opts.from)
			if err != nil {
				return err
			}
			if err := c.runPrune(t, &opts); err != nil {
				return err
			}
			return writeTree(t, opts.output, opts.to)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.from, "from", "", "input format: newick, json (default: by extension)")
	cmd.Flags().StringVar(&opts.to, "to", "", "output format: newick, json (default: by extension)")
	cmd.Flags().StringVar(&opts.leaves, "leaves", "", "comma-separated leaf names to trim")
	cmd.Flags().BoolVar(&opts.contract, "contract", false, "contract all chains of degree-2 nodes")
	cmd.Flags().BoolVar(&opts.trimRoot, "trim-root", false, "slide a degree-1 root down to the nearest junction")
	cmd.Flags().StringVar(&opts.spr, "spr", "", "subtree transfer quadruple: n,pn,u,v (node ids)")

	return cmd
}

func (c *CLI) runPrune(t *forest.Tree[newick.Label], opts *pruneOpts) error {
	if opts.trimRoot {
		if !t.TrimRoot() {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "root trimming failed: tree is unrooted or root is isolated")
		}
		c.Logger.Debug("trimmed root", "root", t.Root())
	}

	if opts.leaves != "" {
		ids, err := leafIDs(t, strings.Split(opts.leaves, ","))
		if err != nil {
			return err
		}
		ok := false
		if t.IsRooted() {
			ok = t.TrimLeavesRooted(ids)
		} else {
			ok = t.TrimLeaves(ids)
		}
		if !ok {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "leaf trimming failed: a named node is not a trimmable leaf")
		}
		c.Logger.Debug("trimmed leaves", "count", len(ids))
	}

	if opts.spr != "" {
		n, pn, u, v, err := parseQuadruple(opts.spr)
		if err != nil {
			return err
		}
		for _, id := range []forest.NodeID{n, pn, u, v} {
			if int(id) >= t.NodeCount() {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "node id %d out of range: tree has %d nodes", id, t.NodeCount())
			}
		}
		if !t.SPR(n, pn, u, v) {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "subtree transfer failed: %s is not a consistent move", opts.spr)
		}
		c.Logger.Debug("applied subtree transfer", "quadruple", opts.spr)
	}

	if opts.contract {
		// Contract every chain node that is currently eligible. The
		// engine's all-chains sweep stops at the first non-chain node,
		// which is every leaf, so the command filters by degree itself.
		n := 0
		for v := range t.Nodes() {
			if t.Degree(v) == 2 && t.ContractChainNode(v) {
				n++
			}
		}
		c.Logger.Debug("contracted chain nodes", "count", n)
	}

	return nil
}

// leafIDs resolves leaf names to node ids. Every name must match
// exactly one current leaf.
func leafIDs(t *forest.Tree[newick.Label], names []string) ([]forest.NodeID, error) {
	byName := make(map[string]forest.NodeID, len(names))
	dup := make(map[string]bool)
	for v := range t.Leaves() {
		name := t.Value(v).Name
		if _, seen := byName[name]; seen {
			dup[name] = true
		}
		byName[name] = v
	}

	ids := make([]forest.NodeID, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if dup[name] {
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "leaf name %q is ambiguous", name)
		}
		id, ok := byName[name]
		if !ok {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "no leaf named %q", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseQuadruple parses the --spr argument "n,pn,u,v".
func parseQuadruple(s string) (n, pn, u, v forest.NodeID, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, apperrors.New(apperrors.ErrCodeInvalidInput, "expected n,pn,u,v but got %q", s)
	}
	ids := make([]forest.NodeID, 4)
	for i, p := range parts {
		var x int
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &x); err != nil || x < 0 {
			return 0, 0, 0, 0, apperrors.New(apperrors.ErrCodeInvalidInput, "bad node id %q", p)
		}
		ids[i] = forest.NodeID(x)
	}
	return ids[0], ids[1], ids[2], ids[3], nil
}
