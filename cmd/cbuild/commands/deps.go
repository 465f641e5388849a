package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps [targets...]",
		Short: "Print the resolved header dependencies of each source file",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := c.app.Deps(cmd.Context(), workingDir(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range deps {
				_, _ = fmt.Fprintf(out, "%s: %s\n", d.Target, d.Source)
				for _, inc := range d.Resolved {
					if inc.Unknown() {
						_, _ = fmt.Fprintf(out, "  %s -> ? (macro)\n", inc.Raw)
						continue
					}
					_, _ = fmt.Fprintf(out, "  %s -> %s\n", inc.Raw, inc.File)
				}
			}
			return nil
		},
	}
}
