package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/vita/pkg/backing"
	"tableflip.dev/vita/pkg/record"
	"tableflip.dev/vita/pkg/scholar"
	"tableflip.dev/vita/pkg/settings"
)

type fakeFetcher struct {
	stats scholar.Stats
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) (scholar.Stats, error) {
	f.calls++
	return f.stats, f.err
}

func TestHydrateMakesEveryStoreReady(t *testing.T) {
	a := New(backing.NewMemory())

	assert.False(t, a.Hydrated())
	a.Hydrate(context.Background())
	assert.True(t, a.Hydrated())
}

func TestCollectionsShareOneBacking(t *testing.T) {
	b := backing.NewMemory()

	first := New(b)
	first.Hydrate(context.Background())
	first.Papers.Add(&record.Paper{Title: "Persisted", Stage: record.StageIdea})
	first.Reviews.Add(&record.PeerReview{Journal: "J. Systems", Status: record.ReviewAccepted})

	second := New(b)
	second.Hydrate(context.Background())

	require.Equal(t, 1, second.Papers.Len())
	require.Equal(t, 1, second.Reviews.Len())
	assert.Equal(t, 0, second.Grants.Len())
}

func TestRefreshScholarStatsCachesSnapshot(t *testing.T) {
	a := New(backing.NewMemory())
	a.Hydrate(context.Background())
	a.Settings.Update(func(s *settings.Settings) {
		s.ScholarProfileURL = "https://scholar.example/profile"
	})

	fetcher := &fakeFetcher{stats: scholar.Stats{Citations: 1200, HIndex: 18, I10Index: 25}}
	a.Scholar = fetcher

	<-a.RefreshScholarStats(context.Background())

	got := a.Settings.Settings().ScholarStats
	require.NotNil(t, got)
	assert.Equal(t, 1200, got.Citations)
	assert.Equal(t, 18, got.HIndex)
	assert.Equal(t, 25, got.I10Index)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestRefreshScholarStatsRunsOncePerSession(t *testing.T) {
	a := New(backing.NewMemory())
	a.Hydrate(context.Background())
	a.Settings.Update(func(s *settings.Settings) {
		s.ScholarProfileURL = "https://scholar.example/profile"
	})

	fetcher := &fakeFetcher{}
	a.Scholar = fetcher

	<-a.RefreshScholarStats(context.Background())
	<-a.RefreshScholarStats(context.Background())

	assert.Equal(t, 1, fetcher.calls)
}

func TestRefreshScholarStatsFailureKeepsSnapshot(t *testing.T) {
	a := New(backing.NewMemory())
	a.Hydrate(context.Background())
	a.Settings.Update(func(s *settings.Settings) {
		s.ScholarProfileURL = "https://scholar.example/profile"
		s.ScholarStats = &settings.ScholarStats{Citations: 900}
	})

	a.Scholar = &fakeFetcher{err: errors.New("rate limited")}

	<-a.RefreshScholarStats(context.Background())

	got := a.Settings.Settings().ScholarStats
	require.NotNil(t, got)
	assert.Equal(t, 900, got.Citations)
}

func TestRefreshScholarStatsNoProfileIsNoop(t *testing.T) {
	a := New(backing.NewMemory())
	a.Hydrate(context.Background())

	fetcher := &fakeFetcher{}
	a.Scholar = fetcher

	<-a.RefreshScholarStats(context.Background())

	assert.Equal(t, 0, fetcher.calls)
	assert.Nil(t, a.Settings.Settings().ScholarStats)
}
