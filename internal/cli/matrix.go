package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/render/matrix"
	"github.com/matzehuels/graphwalk/pkg/traverse"
)

// matrixCommand creates the matrix command for printing the adjacency matrix.
func (c *CLI) matrixCommand() *cobra.Command {
	var (
		edits     editOpts
		highlight string
		plain     bool
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the adjacency matrix",
		Long: `Print the adjacency matrix of the (edited) graph.

Cells hold edge weights, 0 meaning no edge; the diagonal shows "–".
With --highlight the given traversal is run to completion first and every
cell whose row and column nodes were both visited is highlighted.`,
		Example: `  graphwalk matrix
  graphwalk matrix --add 0,2,7 --highlight dfs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := traverse.KindNone
			if highlight != "" {
				k, err := traverse.ParseKind(highlight)
				if err != nil {
					return err
				}
				kind = k
			}
			return c.runMatrix(cmd.Context(), &edits, kind, plain)
		},
	}

	edits.register(cmd)
	cmd.Flags().StringVar(&highlight, "highlight", "", "highlight a completed traversal: bfs, dfs")
	cmd.Flags().BoolVar(&plain, "plain", false, "print unstyled text")

	_ = cmd.RegisterFlagCompletionFunc("highlight", cobra.FixedCompletions([]string{"bfs", "dfs"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runMatrix applies the edits, optionally completes a traversal and prints
// the matrix.
func (c *CLI) runMatrix(ctx context.Context, edits *editOpts, kind traverse.Kind, plain bool) error {
	logger := loggerFromContext(ctx)

	sess := c.newSession(0)
	if err := edits.apply(sess, false); err != nil {
		return err
	}

	if kind != traverse.KindNone {
		run := sess.StartTraversal(kind)
		for sess.Tick(run) {
		}
		logger.Debugf("Highlighted %s: %s", kind.Label(), sess.Result())
	}

	grid := matrix.Build(sess.Frame())
	if plain {
		fmt.Println(grid.String())
	} else {
		fmt.Println(matrix.Table(grid).Render())
	}
	if kind != traverse.KindNone {
		printDetail("%s", sess.Status())
	}
	return nil
}
