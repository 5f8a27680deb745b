package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/config"
)

// configCommand creates the config command for printing the active settings.
func (c *CLI) configCommand() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the active configuration as TOML",
		Long: `Print the active configuration as TOML.

The output is the config file merged over the built-in defaults, so it can
be saved as a starting point. With --default the built-in settings are
printed instead.`,
		Example: `  graphwalk config
  graphwalk config --default > ~/.config/graphwalk/config.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			if defaults {
				cfg = config.Default()
			}
			text, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "default", false, "print the built-in defaults")

	return cmd
}
