package backing

import (
	"testing"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func TestOpenRoundTrip(t *testing.T) {
	b, err := Open(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	if _, ok, err := b.Get("missing"); ok || err != nil {
		t.Fatalf("absent key should be ok=false err=nil, got ok=%v err=%v", ok, err)
	}

	if err := b.Set("academic-dashboard-papers", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}

	val, ok, err := b.Get("academic-dashboard-papers")
	if err != nil || !ok {
		t.Fatalf("expected value, ok=%v err=%v", ok, err)
	}
	if string(val) != `[]` {
		t.Fatalf("unexpected value: %s", val)
	}
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	b, err := Open(&testConfig{path: dir})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Set("academic-dashboard-settings", []byte(`{"theme":"dark"}`)); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(&testConfig{path: dir})
	if err != nil {
		t.Fatal(err)
	}
	val, ok, err := reopened.Get("academic-dashboard-settings")
	if err != nil || !ok {
		t.Fatalf("expected value after reopen, ok=%v err=%v", ok, err)
	}
	if string(val) != `{"theme":"dark"}` {
		t.Fatalf("unexpected value: %s", val)
	}
}

func TestKeysListsWritten(t *testing.T) {
	b, err := Open(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"academic-dashboard-papers", "academic-dashboard-grants"} {
		if err := b.Set(k, []byte(`[]`)); err != nil {
			t.Fatal(err)
		}
	}

	keys := b.Keys()
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %v", keys)
	}
}

func TestMemoryFailSet(t *testing.T) {
	m := NewMemory()
	m.FailSet = ErrStorageFull

	if err := m.Set("k", []byte(`x`)); err == nil {
		t.Fatalf("expected failure")
	}
	if _, ok, _ := m.Get("k"); ok {
		t.Fatalf("failed set must not store the value")
	}
}
