package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/runner/get"
	"tableflip.dev/vita/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm [collection] [id]",
		Aliases: []string{"remove", "delete"},
		Short:   "remove a record by id",
		Example: `
vita rm papers 6ba7b810-9dad-11d1-80b4-00c04fd430c8
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a collection and a record id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := get.KindForAlias(args[0])
			if err != nil {
				return err
			}
			s := remove.Remove{
				Kind: kind,
				ID:   args[1],
				App:  app.Load(nil),
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
