package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/runner/get"
)

// Remove deletes one record by id. Deleting an id that is already gone is
// a no-op, not an error.
type Remove struct {
	Kind get.Kind
	ID   string
	App  *app.App
}

func (n *Remove) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not remove, no app configured")
	}
	if n.ID == "" {
		return errors.New("requires a record id")
	}
	n.App.Hydrate(ctx)
	if !n.App.Hydrated() {
		return errors.New("can not remove before hydration")
	}

	switch n.Kind {
	case get.KindPapers:
		n.App.Papers.Delete(n.ID)
	case get.KindCourses:
		n.App.Courses.Delete(n.ID)
	case get.KindGrants:
		n.App.Grants.Delete(n.ID)
	case get.KindReviews:
		n.App.Reviews.Delete(n.ID)
	case get.KindEditorial:
		n.App.Editorial.Delete(n.ID)
	case get.KindStudents:
		n.App.Students.Delete(n.ID)
	case get.KindConferences:
		n.App.Conferences.Delete(n.ID)
	case get.KindService:
		n.App.Service.Delete(n.ID)
	case get.KindFolders:
		n.App.Folders.Delete(n.ID)
	default:
		return fmt.Errorf("unknown collection %q", n.Kind)
	}

	g := get.Get{Kind: n.Kind, App: n.App, ShowID: true}
	return g.Do(ctx)
}
