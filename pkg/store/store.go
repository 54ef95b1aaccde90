// Package store provides the persistent collection each entity kind lives
// in: an ordered sequence of records over one hydration-safe cell.
package store

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/vita/pkg/backing"
	"tableflip.dev/vita/pkg/cell"
	"tableflip.dev/vita/pkg/record"
)

// KeyPrefix namespaces every collection and settings key in the backing.
const KeyPrefix = "academic-dashboard-"

// Collection is one persisted, ordered sequence of records of a single
// kind. Insertion order is preserved; ids are unique for the lifetime of
// the store and never reused.
type Collection[E record.Entity] struct {
	cell  *cell.Cell[[]E]
	now   func() time.Time
	newID func() string
}

// New binds a collection to its backing key.
func New[E record.Entity](b backing.Backing, kind string) *Collection[E] {
	return &Collection[E]{
		cell:  cell.New(b, KeyPrefix+kind, []E{}, nil),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Hydrate performs the one-time load from the backing. An absent or
// malformed persisted value hydrates to an empty collection.
func (c *Collection[E]) Hydrate() {
	c.cell.Hydrate()
}

// Hydrated reports whether the one-time load has happened. Mutation UIs
// gate on this so defaults never overwrite not-yet-loaded data.
func (c *Collection[E]) Hydrated() bool {
	_, ok := c.cell.Read()
	return ok
}

// List returns the current snapshot in insertion order. The returned slice
// is the caller's to re-sort or filter.
func (c *Collection[E]) List() []E {
	items, _ := c.cell.Read()
	out := make([]E, len(items))
	copy(out, items)
	return out
}

// Get is a point lookup; ok is false when the id is unknown.
func (c *Collection[E]) Get(id string) (E, bool) {
	items, _ := c.cell.Read()
	for _, item := range items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// Add assigns identity and timestamps to e, appends it, persists the full
// sequence, and returns it.
func (c *Collection[E]) Add(e E) E {
	e.Stamp(c.newID(), c.now())
	c.cell.Write(func(items []E) []E {
		next := make([]E, 0, len(items)+1)
		next = append(next, items...)
		next = append(next, e)
		return next
	})
	return e
}

// Update applies mutate to the record with the given id and refreshes its
// updatedAt where the kind carries one. A missing id is a silent no-op:
// UI callbacks legitimately race with deletions, and nothing is
// re-persisted. Unrelated records keep their identity, order, and values.
func (c *Collection[E]) Update(id string, mutate func(E)) {
	if _, ok := c.Get(id); !ok {
		return
	}
	c.cell.Write(func(items []E) []E {
		for _, item := range items {
			if item.EntityID() == id {
				if mutate != nil {
					mutate(item)
				}
				item.Touch(c.now())
				break
			}
		}
		return items
	})
}

// Delete removes the record if present; deleting an unknown id is a no-op.
func (c *Collection[E]) Delete(id string) {
	c.cell.Write(func(items []E) []E {
		for i, item := range items {
			if item.EntityID() == id {
				next := make([]E, 0, len(items)-1)
				next = append(next, items[:i]...)
				next = append(next, items[i+1:]...)
				return next
			}
		}
		return items
	})
}

// Len returns the current record count.
func (c *Collection[E]) Len() int {
	items, _ := c.cell.Read()
	return len(items)
}
