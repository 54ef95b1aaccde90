package prefs

import (
	"context"
	"testing"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/backing"
	"tableflip.dev/vita/pkg/settings"
)

func testApp() *app.App {
	a := app.New(backing.NewMemory())
	a.Hydrate(context.Background())
	return a
}

func TestPrefsSetThemeAndAccent(t *testing.T) {
	a := testApp()

	n := Prefs{App: a, Theme: "dark", Accent: "emerald"}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := a.Settings.Settings()
	if got.Theme != settings.ThemeDark || got.AccentColor != settings.AccentEmerald {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestPrefsRejectsUnknownTheme(t *testing.T) {
	n := Prefs{App: testApp(), Theme: "solarized"}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("unknown theme must fail")
	}
}

func TestPrefsRejectsNegativeScreensaver(t *testing.T) {
	minutes := -1
	n := Prefs{App: testApp(), Screensaver: &minutes}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("negative timeout must fail")
	}
}

func TestPrefsTogglePane(t *testing.T) {
	a := testApp()

	n := Prefs{App: a, TogglePanes: []string{"deadlines", "teaching"}}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	if a.Settings.IsPaneVisible(settings.PaneDeadlines) {
		t.Fatalf("visible pane must toggle off")
	}
	if !a.Settings.IsPaneVisible(settings.PaneTeaching) {
		t.Fatalf("hidden pane must toggle on")
	}
}

func TestPrefsResetRunsFirst(t *testing.T) {
	a := testApp()
	a.Settings.Update(func(s *settings.Settings) {
		s.APIKey = "secret"
	})

	// Reset and set in one invocation: the reset happens before the set.
	n := Prefs{App: a, Reset: true, Theme: "dark"}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := a.Settings.Settings()
	if got.APIKey != "" {
		t.Fatalf("reset must clear credentials")
	}
	if got.Theme != settings.ThemeDark {
		t.Fatalf("set after reset must stick, got %s", got.Theme)
	}
}
