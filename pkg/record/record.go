// Package record defines the closed set of entity variants the dashboard
// tracks. Every variant embeds Meta, which carries the identity and
// creation timestamp the collection store assigns.
package record

import "time"

// Entity is implemented by every record variant, via Meta. The collection
// store drives identity and timestamps through it so record fields stay
// plain data.
type Entity interface {
	EntityID() string
	Stamp(id string, now time.Time)
	Touch(now time.Time)
}

// Meta is embedded by all record variants.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt Timestamp `json:"createdAt"`
}

func (m *Meta) EntityID() string { return m.ID }

// Stamp assigns identity and creation time. Called once, at Add.
func (m *Meta) Stamp(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = Timestamp{Time: now}
}

// Touch is a no-op for kinds without an updatedAt field.
func (m *Meta) Touch(time.Time) {}

// TrackedFile is a lightweight file-reference descriptor. It points at
// bytes owned entirely outside this system.
type TrackedFile struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	LastModified int64  `json:"lastModified"` // unix seconds
	Type         string `json:"type"`         // MIME type
}
