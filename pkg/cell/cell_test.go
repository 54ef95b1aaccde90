package cell

import (
	"errors"
	"testing"

	"tableflip.dev/vita/pkg/backing"
)

type shape struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReadBeforeHydrateReturnsDefault(t *testing.T) {
	b := backing.NewMemory()
	c := New(b, "k", shape{Name: "default"}, nil)

	got, hydrated := c.Read()
	if hydrated {
		t.Fatalf("expected not hydrated before Hydrate")
	}
	if got.Name != "default" {
		t.Fatalf("expected default value, got %+v", got)
	}
}

func TestHydrateAbsentKeyKeepsDefault(t *testing.T) {
	b := backing.NewMemory()
	c := New(b, "k", shape{Name: "default"}, nil)

	c.Hydrate()

	got, hydrated := c.Read()
	if !hydrated {
		t.Fatalf("expected hydrated after Hydrate")
	}
	if got.Name != "default" {
		t.Fatalf("expected default value, got %+v", got)
	}
}

func TestHydrateLoadsPersistedValue(t *testing.T) {
	b := backing.NewMemory()
	if err := b.Set("k", []byte(`{"name":"persisted","count":3}`)); err != nil {
		t.Fatal(err)
	}
	c := New(b, "k", shape{Name: "default"}, nil)

	c.Hydrate()

	got, _ := c.Read()
	if got.Name != "persisted" || got.Count != 3 {
		t.Fatalf("expected persisted value, got %+v", got)
	}
}

func TestHydrateMalformedValueKeepsDefault(t *testing.T) {
	b := backing.NewMemory()
	if err := b.Set("k", []byte(`{not json`)); err != nil {
		t.Fatal(err)
	}
	c := New(b, "k", shape{Name: "default"}, nil)

	c.Hydrate()

	got, hydrated := c.Read()
	if !hydrated {
		t.Fatalf("a malformed value still counts as hydrated")
	}
	if got.Name != "default" {
		t.Fatalf("expected default value, got %+v", got)
	}
}

func TestHydrateRunsOnce(t *testing.T) {
	b := backing.NewMemory()
	c := New(b, "k", shape{Name: "default"}, nil)

	c.Hydrate()
	c.Write(func(s shape) shape {
		s.Count = 7
		return s
	})
	// A later write to the backing key must not leak into the session.
	if err := b.Set("k", []byte(`{"name":"other"}`)); err != nil {
		t.Fatal(err)
	}
	c.Hydrate()

	got, _ := c.Read()
	if got.Count != 7 {
		t.Fatalf("second Hydrate must be a no-op, got %+v", got)
	}
}

func TestWritePersistsThrough(t *testing.T) {
	b := backing.NewMemory()
	c := New(b, "k", shape{}, nil)
	c.Hydrate()

	c.Write(func(s shape) shape {
		s.Name = "written"
		return s
	})

	raw, ok, err := b.Get("k")
	if err != nil || !ok {
		t.Fatalf("expected key written, ok=%v err=%v", ok, err)
	}
	if string(raw) != `{"name":"written","count":0}` {
		t.Fatalf("unexpected payload: %s", raw)
	}
}

func TestWriteSurvivesBackingFailure(t *testing.T) {
	b := backing.NewMemory()
	b.FailSet = errors.New("disk full")
	c := New(b, "k", shape{}, nil)
	c.Hydrate()

	c.Write(func(s shape) shape {
		s.Name = "kept"
		return s
	})

	got, _ := c.Read()
	if got.Name != "kept" {
		t.Fatalf("in-memory value must survive a failed persist, got %+v", got)
	}
}

func TestReconcileBackfillsOnHydrate(t *testing.T) {
	b := backing.NewMemory()
	if err := b.Set("k", []byte(`{"count":9}`)); err != nil {
		t.Fatal(err)
	}
	c := New(b, "k", shape{Name: "default"}, func(def, loaded shape) shape {
		if loaded.Name == "" {
			loaded.Name = def.Name
		}
		return loaded
	})

	c.Hydrate()

	got, _ := c.Read()
	if got.Name != "default" || got.Count != 9 {
		t.Fatalf("expected backfilled value, got %+v", got)
	}
}
