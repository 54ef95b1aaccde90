// Package cell implements a hydration-safe typed value bound to one backing
// key. A cell starts out holding its default value, loads the persisted
// value exactly once, and writes through best-effort afterwards. The
// in-memory value is the source of truth for the running session.
package cell

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"tableflip.dev/vita/pkg/backing"
)

// Reconcile fills fields missing from an older persisted value with the
// compiled-in default. It runs once at hydration and after every write so
// readers never observe a partially-shaped value.
type Reconcile[T any] func(def, loaded T) T

// Cell wraps one backing key with a JSON codec and a default value.
type Cell[T any] struct {
	backing   backing.Backing
	key       string
	def       T
	reconcile Reconcile[T]

	mu       sync.Mutex
	value    T
	hydrated bool
	once     sync.Once
}

// New constructs a cell. The cell is not hydrated; Read returns def until
// Hydrate has run. reconcile may be nil for shapes that need no backfill
// (e.g. plain slices).
func New[T any](b backing.Backing, key string, def T, reconcile Reconcile[T]) *Cell[T] {
	return &Cell[T]{
		backing:   b,
		key:       key,
		def:       def,
		reconcile: reconcile,
		value:     def,
	}
}

// Hydrate consults the backing key exactly once. A present, well-formed
// value replaces the default; absence, a parse failure, or an unavailable
// backing all fall back to the default. The hydrated flag becomes true in
// every case and never reverts.
func (c *Cell[T]) Hydrate() {
	c.once.Do(func() {
		val, ok, err := c.backing.Get(c.key)
		c.mu.Lock()
		defer c.mu.Unlock()
		c.hydrated = true
		if err != nil {
			fmt.Fprintf(os.Stderr, "cell: %s: %v\n", c.key, err)
			return
		}
		if !ok {
			return
		}
		var loaded T
		if err := json.Unmarshal(val, &loaded); err != nil {
			fmt.Fprintf(os.Stderr, "cell: %s: discarding malformed value: %v\n", c.key, err)
			return
		}
		if c.reconcile != nil {
			loaded = c.reconcile(c.def, loaded)
		}
		c.value = loaded
	})
}

// Read returns the current value and whether hydration has happened.
// Consumers gate mutation UIs on the second return so defaults are never
// silently persisted over not-yet-loaded data.
func (c *Cell[T]) Read() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.hydrated
}

// Default returns the compiled-in default value.
func (c *Cell[T]) Default() T {
	return c.def
}

// Write applies updater to the current value and persists the result
// best-effort. A failed backing write keeps the in-memory value and is
// reported on stderr only.
func (c *Cell[T]) Write(updater func(T) T) {
	c.mu.Lock()
	next := updater(c.value)
	if c.reconcile != nil {
		next = c.reconcile(c.def, next)
	}
	c.value = next
	c.mu.Unlock()

	data, err := json.Marshal(next)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cell: %s: marshal: %v\n", c.key, err)
		return
	}
	if err := c.backing.Set(c.key, data); err != nil {
		fmt.Fprintf(os.Stderr, "cell: %s: %v\n", c.key, err)
	}
}
