// Package commands wires the cobra surface. Every command constructs the
// application context, hydrates it, and delegates to a runner.
package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "vita",
		Short: "An academic dashboard on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addRemove(topLevel)
	addSet(topLevel)
	addDashboard(topLevel)
	addDeadlines(topLevel)
	addImport(topLevel)
	addSettings(topLevel)
	addVersion(topLevel)
}
