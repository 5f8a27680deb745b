package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/session"
)

// editOpts holds the --add and --remove flags shared by commands that
// operate on an edited graph.
type editOpts struct {
	adds    []string // "u,v,w"
	removes []string // "u,v"
}

func (o *editOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&o.adds, "add", nil, "add or overwrite edge u,v,w (repeatable)")
	cmd.Flags().StringArrayVar(&o.removes, "remove", nil, "remove edge u,v (repeatable)")
}

// apply runs all additions, then all removals, each in flag order.
// Validation errors abort; removing a missing edge only warns. Unless quiet,
// the session status of every edit is printed.
func (o *editOpts) apply(sess *session.Session, quiet bool) error {
	for _, arg := range o.adds {
		fields, err := splitFields(arg, 3, "u,v,w")
		if err != nil {
			return fmt.Errorf("--add %s: %w", arg, err)
		}
		if err := sess.AddEdgeInput(fields[0], fields[1], fields[2]); err != nil {
			return fmt.Errorf("--add %s: %w", arg, err)
		}
		if !quiet {
			printSuccess("%s", sess.Status())
		}
	}

	for _, arg := range o.removes {
		fields, err := splitFields(arg, 2, "u,v")
		if err != nil {
			return fmt.Errorf("--remove %s: %w", arg, err)
		}
		err = sess.RemoveEdgeInput(fields[0], fields[1])
		switch {
		case errors.IsNoOp(err):
			if !quiet {
				printWarning("%s", sess.Status())
			}
		case err != nil:
			return fmt.Errorf("--remove %s: %w", arg, err)
		case !quiet:
			printSuccess("%s", sess.Status())
		}
	}
	return nil
}

// splitFields splits a comma-separated edge argument into exactly n fields.
func splitFields(arg string, n int, form string) ([]string, error) {
	fields := strings.Split(arg, ",")
	if len(fields) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput, "expected %s, got %d field(s)", form, len(fields))
	}
	return fields, nil
}
