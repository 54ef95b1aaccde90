package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	long := strings.Builder{}
	long.WriteString("Get one collection, or everything.\n\nCollections:\n")

	validArgs := make([]string, 0, len(get.Kinds()))
	for _, k := range get.Kinds() {
		long.WriteString(fmt.Sprintf("  %s\n", k))
		validArgs = append(validArgs, string(k))
	}

	cmd := &cobra.Command{
		Use:   "get [collection]",
		Short: "get records",
		Long:  long.String(),
		Example: `
vita get
vita get papers
vita get reviews --show-ids
`,
		ValidArgs: validArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			s := get.Get{
				ShowID: io.ShowID,
				App:    app.Load(nil),
			}
			if len(args) > 0 {
				kind, err := get.KindForAlias(args[0])
				if err != nil {
					return err
				}
				s.Kind = kind
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
