package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cbuild/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var (
		force bool
		jobs  int
	)

	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Build the specified targets, or all targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), workingDir(), app.BuildOptions{
				Targets: args,
				Jobs:    jobs,
				Force:   force,
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Recompile everything, ignoring recorded state")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of concurrent compile steps (0 = one per CPU)")

	return cmd
}
