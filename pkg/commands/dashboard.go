package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/runner/board"
)

func addDashboard(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	all := false

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"board", "status"},
		Short:   "render the dashboard",
		Example: `
vita dashboard
vita dashboard --all
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s := board.Board{
				ShowID: io.ShowID,
				All:    all,
				App:    app.Load(nil),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every pane regardless of settings.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
