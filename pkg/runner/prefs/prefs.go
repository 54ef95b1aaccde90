package prefs

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/settings"
)

// Prefs shows or mutates the settings record. Zero-valued fields leave the
// corresponding setting alone; the record is printed after any changes.
type Prefs struct {
	App *app.App

	Theme       string
	Accent      string
	Screensaver *int
	ScholarURL  *string
	AIProvider  *string
	APIKey      *string
	TogglePanes []string
	Reset       bool
}

func (n *Prefs) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not read settings, no app configured")
	}
	n.App.Hydrate(ctx)
	if !n.App.Hydrated() {
		return errors.New("can not change settings before hydration")
	}

	s := n.App.Settings

	if n.Reset {
		s.ResetToDefaults()
	}

	if n.Theme != "" {
		theme, err := parseTheme(n.Theme)
		if err != nil {
			return err
		}
		s.SetTheme(theme)
	}

	if n.Accent != "" {
		accent, err := parseAccent(n.Accent)
		if err != nil {
			return err
		}
		s.SetAccentColor(accent)
	}

	if n.Screensaver != nil {
		if *n.Screensaver < 0 {
			return fmt.Errorf("screensaver timeout must be zero or more minutes, got %d", *n.Screensaver)
		}
		s.SetScreensaverTimeout(*n.Screensaver)
	}

	if n.ScholarURL != nil {
		s.Update(func(set *settings.Settings) { set.ScholarProfileURL = *n.ScholarURL })
	}
	if n.AIProvider != nil {
		s.Update(func(set *settings.Settings) { set.AIProvider = *n.AIProvider })
	}
	if n.APIKey != nil {
		s.Update(func(set *settings.Settings) { set.APIKey = *n.APIKey })
	}

	for _, raw := range n.TogglePanes {
		pane, err := parsePane(raw)
		if err != nil {
			return err
		}
		s.TogglePane(pane)
	}

	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Title("Settings")
	pp.Settings(s.Settings())
	return nil
}

func parseTheme(raw string) (settings.Theme, error) {
	for _, t := range settings.Themes() {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", raw)
}

func parseAccent(raw string) (settings.AccentColor, error) {
	for _, a := range settings.AccentColors() {
		if string(a) == raw {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown accent color %q", raw)
}

func parsePane(raw string) (settings.Pane, error) {
	for _, p := range settings.Panes() {
		if string(p) == raw {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown pane %q", raw)
}
