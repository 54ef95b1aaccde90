package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/runner/prefs"
)

func addSettings(topLevel *cobra.Command) {
	n := &prefs.Prefs{}
	var screensaver int
	var scholarURL, aiProvider, apiKey string

	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"prefs", "config"},
		Short:   "show or change settings",
		Example: `
vita settings
vita settings --theme dark --accent emerald
vita settings --toggle-pane deadlines
vita settings --scholar-url https://scholar.google.com/citations?user=...
vita settings --reset
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("screensaver") {
				n.Screensaver = &screensaver
			}
			if cmd.Flags().Changed("scholar-url") {
				n.ScholarURL = &scholarURL
			}
			if cmd.Flags().Changed("ai-provider") {
				n.AIProvider = &aiProvider
			}
			if cmd.Flags().Changed("api-key") {
				n.APIKey = &apiKey
			}
			n.App = app.Load(nil)
			return n.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&n.Theme, "theme", "", "Color theme: light, dark, system.")
	cmd.Flags().StringVar(&n.Accent, "accent", "", "Accent color: indigo, blue, violet, emerald, rose, amber.")
	cmd.Flags().IntVar(&screensaver, "screensaver", 0, "Screensaver timeout in minutes.")
	cmd.Flags().StringVar(&scholarURL, "scholar-url", "", "Google Scholar profile URL.")
	cmd.Flags().StringVar(&aiProvider, "ai-provider", "", "Import provider: gemini or openai.")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for the import provider.")
	cmd.Flags().StringSliceVar(&n.TogglePanes, "toggle-pane", nil, "Flip a dashboard pane's visibility; repeatable.")
	cmd.Flags().BoolVar(&n.Reset, "reset", false, "Restore every setting to its default.")

	topLevel.AddCommand(cmd)
}
