package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treegraft/treegraft/pkg/treeio"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output string // output file path (stdout if empty)
	from   string // input format override
	to     string // output format override
}

// parseCommand creates the parse command for converting trees between
// formats. Formats are detected from file extensions (.json for the
// node/edge document, anything else for Newick) and can be overridden
// with --from/--to.
func (c *CLI) parseCommand() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a tree file and convert between Newick and JSON",
		Long: `Parse a tree from a Newick or JSON file and write it out again.

Examples:
  treegraft parse sample.nwk                    # Newick to Newick (validates)
  treegraft parse sample.nwk --to json          # Newick to JSON document
  treegraft parse sample.json -o out.nwk        # JSON back to Newick`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)

			t, err := readTreeFile(args[0], opts.from)
			if err != nil {
				return err
			}
			stats := treeio.ComputeStats(t)
			prog.done(fmt.Sprintf("Parsed %d nodes with %d edges", stats.Nodes, stats.Edges))

			if err := writeTree(t, opts.output, opts.to); err != nil {
				return err
			}
			if opts.output != "" {
				printSuccess("Wrote tree to %s", opts.output)
				printStats(stats.Nodes, stats.Edges, stats.Leaves)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.from, "from", "", "input format: newick, json (default: by extension)")
	cmd.Flags().StringVar(&opts.to, "to", "", "output format: newick, json (default: by extension)")

	return cmd
}
