package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treegraft/treegraft/pkg/treeio"
)

// statsCommand creates the stats command for printing tree statistics.
func (c *CLI) statsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Print statistics for a tree file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTreeFile(args[0], format)
			if err != nil {
				return err
			}
			s := treeio.ComputeStats(t)

			printKeyValue("Nodes", fmt.Sprintf("%d", s.Nodes))
			printKeyValue("Edges", fmt.Sprintf("%d", s.Edges))
			printKeyValue("Leaves", fmt.Sprintf("%d", s.Leaves))
			printKeyValue("Internal", fmt.Sprintf("%d", s.Internal))
			printKeyValue("Components", fmt.Sprintf("%d", s.Components))
			if s.Rooted {
				printKeyValue("Rooted", "yes")
				printKeyValue("Depth", fmt.Sprintf("%d", s.Depth))
			} else {
				printKeyValue("Rooted", "no")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "from", "", "input format: newick, json (default: by extension)")

	return cmd
}
