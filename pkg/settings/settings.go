// Package settings holds the single user-preferences record and its
// cell-backed store.
package settings

import (
	"encoding/json"

	"tableflip.dev/vita/pkg/backing"
	"tableflip.dev/vita/pkg/cell"
	"tableflip.dev/vita/pkg/record"
	"tableflip.dev/vita/pkg/store"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark, ThemeSystem}
}

type AccentColor string

const (
	AccentIndigo  AccentColor = "indigo"
	AccentBlue    AccentColor = "blue"
	AccentViolet  AccentColor = "violet"
	AccentEmerald AccentColor = "emerald"
	AccentRose    AccentColor = "rose"
	AccentAmber   AccentColor = "amber"
)

func AccentColors() []AccentColor {
	return []AccentColor{AccentIndigo, AccentBlue, AccentViolet, AccentEmerald, AccentRose, AccentAmber}
}

// Pane identifies one dashboard section the user can show or hide.
type Pane string

const (
	PaneStats          Pane = "stats"
	PanePapersPipeline Pane = "papers-pipeline"
	PaneDeadlines      Pane = "deadlines"
	PaneTeaching       Pane = "teaching"
	PaneGrants         Pane = "grants"
	PaneReviews        Pane = "reviews"
	PaneStudents       Pane = "students"
	PaneConferences    Pane = "conferences"
)

func Panes() []Pane {
	return []Pane{
		PaneStats,
		PanePapersPipeline,
		PaneDeadlines,
		PaneTeaching,
		PaneGrants,
		PaneReviews,
		PaneStudents,
		PaneConferences,
	}
}

// ScholarStats is the cached external-statistics snapshot, refreshed at
// most once per session.
type ScholarStats struct {
	Citations int              `json:"citations"`
	HIndex    int              `json:"hIndex"`
	I10Index  int              `json:"i10Index"`
	UpdatedAt record.Timestamp `json:"updatedAt"`
}

// Settings is the one persisted preferences record. It is never deleted,
// only reset to defaults.
type Settings struct {
	Theme              Theme       `json:"theme"`
	AccentColor        AccentColor `json:"accentColor"`
	VisiblePanes       []Pane      `json:"visiblePanes"`
	ScreensaverTimeout int         `json:"screensaverTimeout"` // minutes, 0 = disabled

	AIProvider        string        `json:"aiProvider,omitempty"`
	APIKey            string        `json:"apiKey,omitempty"`
	ScholarProfileURL string        `json:"scholarProfileUrl,omitempty"`
	ScholarStats      *ScholarStats `json:"scholarStats,omitempty"`
}

// UnmarshalJSON distinguishes a missing screensaverTimeout from an
// explicit 0. An int zero value would read as "disabled", so absence is
// flagged with -1 for reconcile to backfill; a persisted 0 stays 0.
func (s *Settings) UnmarshalJSON(data []byte) error {
	type wire Settings
	aux := struct {
		*wire
		ScreensaverTimeout *int `json:"screensaverTimeout"`
	}{wire: (*wire)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.ScreensaverTimeout != nil {
		s.ScreensaverTimeout = *aux.ScreensaverTimeout
	} else {
		s.ScreensaverTimeout = -1
	}
	return nil
}

// Defaults returns the compiled-in settings. Any field missing from a
// previously persisted payload is backfilled from here, so new fields stay
// forward compatible.
func Defaults() Settings {
	return Settings{
		Theme:              ThemeLight,
		AccentColor:        AccentIndigo,
		VisiblePanes:       []Pane{PaneStats, PanePapersPipeline, PaneDeadlines},
		ScreensaverTimeout: 5,
	}
}

// reconcile backfills zero-valued fields from the defaults. Credential and
// snapshot fields stay as persisted; their zero value means "unset".
func reconcile(def, s Settings) Settings {
	if s.Theme == "" {
		s.Theme = def.Theme
	}
	if s.AccentColor == "" {
		s.AccentColor = def.AccentColor
	}
	if s.VisiblePanes == nil {
		s.VisiblePanes = append([]Pane(nil), def.VisiblePanes...)
	}
	// -1 marks an absent screensaverTimeout; 0 is an explicit "disabled".
	if s.ScreensaverTimeout < 0 {
		s.ScreensaverTimeout = def.ScreensaverTimeout
	}
	return s
}

// Store wraps the settings cell with the operations the rest of the
// application uses.
type Store struct {
	cell *cell.Cell[Settings]
}

// NewStore binds the settings record to its backing key.
func NewStore(b backing.Backing) *Store {
	return &Store{
		cell: cell.New(b, store.KeyPrefix+"settings", Defaults(), reconcile),
	}
}

func (s *Store) Hydrate() {
	s.cell.Hydrate()
}

func (s *Store) Hydrated() bool {
	_, ok := s.cell.Read()
	return ok
}

// Settings returns the current record.
func (s *Store) Settings() Settings {
	current, _ := s.cell.Read()
	return current
}

// Update applies a field-level mutation and persists.
func (s *Store) Update(mutate func(*Settings)) {
	s.cell.Write(func(current Settings) Settings {
		mutate(&current)
		return current
	})
}

func (s *Store) SetTheme(theme Theme) {
	s.Update(func(set *Settings) { set.Theme = theme })
}

func (s *Store) SetAccentColor(accent AccentColor) {
	s.Update(func(set *Settings) { set.AccentColor = accent })
}

func (s *Store) SetScreensaverTimeout(minutes int) {
	s.Update(func(set *Settings) { set.ScreensaverTimeout = minutes })
}

// TogglePane shows a hidden pane or hides a visible one, never duplicating
// entries.
func (s *Store) TogglePane(pane Pane) {
	s.Update(func(set *Settings) {
		for i, p := range set.VisiblePanes {
			if p == pane {
				set.VisiblePanes = append(set.VisiblePanes[:i:i], set.VisiblePanes[i+1:]...)
				return
			}
		}
		set.VisiblePanes = append(set.VisiblePanes, pane)
	})
}

// IsPaneVisible reports whether the pane is currently shown.
func (s *Store) IsPaneVisible(pane Pane) bool {
	for _, p := range s.Settings().VisiblePanes {
		if p == pane {
			return true
		}
	}
	return false
}

// ResetToDefaults discards all customization, credentials included. This
// is intentionally destructive and irreversible.
func (s *Store) ResetToDefaults() {
	s.cell.Write(func(Settings) Settings {
		return Defaults()
	})
}
