package update

import (
	"context"
	"errors"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/record"
	"tableflip.dev/vita/pkg/runner/get"
)

// Update applies a partial-field mutation to one record. A missing id is a
// silent no-op; the collection is echoed either way so the caller sees the
// current state.
type Update struct {
	ShowID bool
	Kind   get.Kind
	ID     string
	App    *app.App

	Paper      func(*record.Paper)
	Course     func(*record.Course)
	Grant      func(*record.Grant)
	Review     func(*record.PeerReview)
	Editorial  func(*record.EditorialRole)
	Student    func(*record.Student)
	Conference func(*record.Conference)
	Service    func(*record.ServiceRole)
	Folder     func(*record.LinkedFolder)
}

func (n *Update) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not update, no app configured")
	}
	if n.ID == "" {
		return errors.New("requires a record id")
	}
	n.App.Hydrate(ctx)
	if !n.App.Hydrated() {
		return errors.New("can not update before hydration")
	}

	switch n.Kind {
	case get.KindPapers:
		n.App.Papers.Update(n.ID, n.Paper)
	case get.KindCourses:
		n.App.Courses.Update(n.ID, n.Course)
	case get.KindGrants:
		n.App.Grants.Update(n.ID, n.Grant)
	case get.KindReviews:
		n.App.Reviews.Update(n.ID, n.Review)
	case get.KindEditorial:
		n.App.Editorial.Update(n.ID, n.Editorial)
	case get.KindStudents:
		n.App.Students.Update(n.ID, n.Student)
	case get.KindConferences:
		n.App.Conferences.Update(n.ID, n.Conference)
	case get.KindService:
		n.App.Service.Update(n.ID, n.Service)
	case get.KindFolders:
		n.App.Folders.Update(n.ID, n.Folder)
	default:
		return errors.New("unknown collection")
	}

	g := get.Get{Kind: n.Kind, App: n.App, ShowID: n.ShowID}
	return g.Do(ctx)
}
