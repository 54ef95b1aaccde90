package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/runner/importing"
)

func addImport(topLevel *cobra.Command) {
	io_ := &options.IDOptions{}
	provider := ""
	file := ""

	cmd := &cobra.Command{
		Use:   "import [text]",
		Short: "extract a record from pasted text",
		Long: `Hand an email or announcement to the configured extraction provider and
file the result as a peer review, grant, or paper. Text comes from the
arguments, from --file, or from stdin.`,
		Example: `
vita import "Dear Professor, we invite you to review ..."
vita import --file invite.txt
pbpaste | vita import
`,
		RunE: func(_ *cobra.Command, args []string) error {
			text, err := importText(args, file)
			if err != nil {
				return err
			}
			s := importing.Import{
				ShowID:   io_.ShowID,
				Text:     text,
				Provider: provider,
				App:      app.Load(nil),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "Extraction provider: gemini or openai. Defaults to settings.")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the text from a file instead of the arguments.")
	options.AddShowIDArgs(cmd, io_)

	topLevel.AddCommand(cmd)
}

func importText(args []string, file string) (string, error) {
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		if text := strings.TrimSpace(string(raw)); text != "" {
			return text, nil
		}
	}
	return "", errors.New("nothing to import, pass text, --file, or pipe stdin")
}
