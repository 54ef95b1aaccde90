package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/runner/deadlines"
)

func addDeadlines(topLevel *cobra.Command) {
	asOf := ""

	cmd := &cobra.Command{
		Use:   "deadlines",
		Short: "list upcoming deadlines across all modules",
		Example: `
vita deadlines
vita deadlines --as-of 2025-01-12
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s := deadlines.Deadlines{
				App: app.Load(nil),
			}
			if asOf != "" {
				now, err := time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of date %q, expected 2006-01-02", asOf)
				}
				s.Now = now
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Evaluate overdue state against this date instead of today.")

	topLevel.AddCommand(cmd)
}
