package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/session"
	"github.com/matzehuels/graphwalk/pkg/traverse"
)

// traverseOpts holds the command-line flags for the traverse command.
type traverseOpts struct {
	kind     string
	edits    editOpts
	animate  bool
	detailed bool
	interval time.Duration
}

// traverseCommand creates the traverse command for printing a visit order.
func (c *CLI) traverseCommand() *cobra.Command {
	opts := traverseOpts{kind: "bfs"}

	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Print the BFS or DFS visit order from node 0",
		Long: `Print the BFS or DFS visit order from node 0.

Edges given with --add and --remove are applied to the default graph first
(all additions, then all removals). Neighbours are explored in ascending
index order and edge weights are ignored.

With --animate the order is revealed one node per tick, as in the
interactive view, and every step is logged.`,
		Example: `  graphwalk traverse --kind dfs
  graphwalk traverse --add 1,3,2 --remove 0,1 --detailed
  graphwalk traverse --animate --interval 200ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := traverse.ParseKind(opts.kind)
			if err != nil {
				return err
			}
			return c.runTraverse(cmd.Context(), kind, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", opts.kind, "traversal: bfs (default), dfs")
	opts.edits.register(cmd)
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "reveal the order one node per tick")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show depth and parent of every node")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "tick interval for --animate (default from config)")

	_ = cmd.RegisterFlagCompletionFunc("kind", cobra.FixedCompletions([]string{"bfs", "dfs"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runTraverse applies the edits, runs the traversal and prints the result.
func (c *CLI) runTraverse(ctx context.Context, kind traverse.Kind, opts *traverseOpts) error {
	logger := loggerFromContext(ctx)

	sess := c.newSession(opts.interval)
	if err := opts.edits.apply(sess, false); err != nil {
		return err
	}

	run := sess.StartTraversal(kind)
	if opts.animate {
		logger.Infof("Animating %s every %s", kind.Label(), sess.Interval())
		if err := sess.Play(ctx, session.SystemClock()); err != nil {
			return fmt.Errorf("animate: %w", err)
		}
	} else {
		for sess.Tick(run) {
		}
	}

	res := sess.Result()
	printSuccess("%s", sess.Status())
	if unreached := sess.Graph().Len() - res.Len(); unreached > 0 {
		printDetail("%d node(s) unreachable from %d", unreached, traverse.Root)
	}
	if opts.detailed {
		fmt.Println(resultTable(res).Render())
	}
	return nil
}

// resultTable lists every node with its visit position, depth and parent.
func resultTable(res *traverse.Result) *table.Table {
	position := make([]int, len(res.Depth))
	for i := range position {
		position[i] = -1
	}
	for i, v := range res.Order {
		position[v] = i
	}

	rows := make([][]string, len(res.Depth))
	for v := range res.Depth {
		rows[v] = []string{
			strconv.Itoa(v),
			dashIfNegative(position[v], 1),
			dashIfNegative(res.Depth[v], 0),
			dashIfNegative(res.Parent[v], 0),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Step", "Depth", "Parent").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Inherit(headerStyle)
			}
			if row >= 0 && row < len(res.Depth) && !res.Visited(row) {
				return cellStyle.Foreground(colorDim)
			}
			if col == 0 {
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		})
}

// dashIfNegative formats n+offset, or "–" when n is negative.
func dashIfNegative(n, offset int) string {
	if n < 0 {
		return "–"
	}
	return strconv.Itoa(n + offset)
}
