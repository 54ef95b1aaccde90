// Package app wires the collection stores, the settings store, and the
// one-shot background refresh into a single explicit context object. It is
// constructed once at startup and passed by reference; there are no
// ambient singletons.
package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/vita/pkg/backing"
	"tableflip.dev/vita/pkg/record"
	"tableflip.dev/vita/pkg/scholar"
	"tableflip.dev/vita/pkg/settings"
	"tableflip.dev/vita/pkg/store"
)

// App owns one collection store per entity kind plus the settings store.
type App struct {
	Papers      *store.Collection[*record.Paper]
	Courses     *store.Collection[*record.Course]
	Grants      *store.Collection[*record.Grant]
	Reviews     *store.Collection[*record.PeerReview]
	Editorial   *store.Collection[*record.EditorialRole]
	Students    *store.Collection[*record.Student]
	Conferences *store.Collection[*record.Conference]
	Service     *store.Collection[*record.ServiceRole]
	Folders     *store.Collection[*record.LinkedFolder]

	Settings *settings.Store

	// Scholar fetches external profile statistics. Nil disables the
	// background refresh.
	Scholar scholar.Fetcher

	refreshOnce sync.Once
}

// New builds the application context over the given backing.
func New(b backing.Backing) *App {
	return &App{
		Papers:      store.New[*record.Paper](b, "papers"),
		Courses:     store.New[*record.Course](b, "courses"),
		Grants:      store.New[*record.Grant](b, "grants"),
		Reviews:     store.New[*record.PeerReview](b, "peer-reviews"),
		Editorial:   store.New[*record.EditorialRole](b, "editorial-roles"),
		Students:    store.New[*record.Student](b, "students"),
		Conferences: store.New[*record.Conference](b, "conferences"),
		Service:     store.New[*record.ServiceRole](b, "service-roles"),
		Folders:     store.New[*record.LinkedFolder](b, "linked-folders"),
		Settings:    settings.NewStore(b),
		Scholar:     &scholar.Client{},
	}
}

// Load opens the configured disk backing and builds the context over it.
// When the backing cannot be opened the app degrades to memory-only
// operation rather than failing.
func Load(cfg backing.Config) *App {
	b, err := backing.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "app: %v; continuing without persistence\n", err)
		b = backing.NewMemory()
	}
	return New(b)
}

// Hydrate is the explicit startup task: it performs the one-time load of
// every cell. After it returns, all stores report Hydrated and mutations
// are safe.
func (a *App) Hydrate(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	a.Papers.Hydrate()
	a.Courses.Hydrate()
	a.Grants.Hydrate()
	a.Reviews.Hydrate()
	a.Editorial.Hydrate()
	a.Students.Hydrate()
	a.Conferences.Hydrate()
	a.Service.Hydrate()
	a.Folders.Hydrate()
	a.Settings.Hydrate()
}

// Hydrated reports whether every store has completed its one-time load.
func (a *App) Hydrated() bool {
	return a.Papers.Hydrated() &&
		a.Courses.Hydrated() &&
		a.Grants.Hydrated() &&
		a.Reviews.Hydrated() &&
		a.Editorial.Hydrated() &&
		a.Students.Hydrated() &&
		a.Conferences.Hydrated() &&
		a.Service.Hydrated() &&
		a.Folders.Hydrated() &&
		a.Settings.Hydrated()
}

// RefreshScholarStats fetches external profile statistics at most once per
// session and caches the snapshot in settings. Failures are swallowed and
// never retried this session; a concurrent settings edit wins field by
// field. The returned channel closes when the refresh (or the no-op)
// finishes, for callers that want to wait before exiting.
func (a *App) RefreshScholarStats(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	ran := false
	a.refreshOnce.Do(func() {
		ran = true
		go func() {
			defer close(done)
			a.refreshScholarStats(ctx)
		}()
	})
	if !ran {
		close(done)
	}
	return done
}

func (a *App) refreshScholarStats(ctx context.Context) {
	if a.Scholar == nil {
		return
	}
	profileURL := a.Settings.Settings().ScholarProfileURL
	if profileURL == "" {
		return
	}
	stats, err := a.Scholar.Fetch(ctx, profileURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "app: scholar stats refresh: %v\n", err)
		return
	}
	a.Settings.Update(func(s *settings.Settings) {
		s.ScholarStats = &settings.ScholarStats{
			Citations: stats.Citations,
			HIndex:    stats.HIndex,
			I10Index:  stats.I10Index,
			UpdatedAt: record.Timestamp{Time: time.Now()},
		}
	})
}
