package add

import (
	"context"
	"errors"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/record"
)

// Add appends one pre-filled record to its collection and echoes the
// collection back. Exactly one of the record fields should be set.
type Add struct {
	ShowID bool
	App    *app.App

	Paper      *record.Paper
	Course     *record.Course
	Grant      *record.Grant
	Review     *record.PeerReview
	Editorial  *record.EditorialRole
	Student    *record.Student
	Conference *record.Conference
	Service    *record.ServiceRole
	Folder     *record.LinkedFolder
}

func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add, no app configured")
	}
	n.App.Hydrate(ctx)
	if !n.App.Hydrated() {
		return errors.New("can not add before hydration")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	switch {
	case n.Paper != nil:
		n.App.Papers.Add(n.Paper)
		pp.Title("Papers")
		pp.Papers(n.App.Papers.List()...)
	case n.Course != nil:
		n.App.Courses.Add(n.Course)
		pp.Title("Courses")
		pp.Courses(n.App.Courses.List()...)
	case n.Grant != nil:
		n.App.Grants.Add(n.Grant)
		pp.Title("Grants")
		pp.Grants(n.App.Grants.List()...)
	case n.Review != nil:
		n.App.Reviews.Add(n.Review)
		pp.Title("Peer Reviews")
		pp.Reviews(n.App.Reviews.List()...)
	case n.Editorial != nil:
		n.App.Editorial.Add(n.Editorial)
		pp.Title("Editorial Roles")
		pp.EditorialRoles(n.App.Editorial.List()...)
	case n.Student != nil:
		n.App.Students.Add(n.Student)
		pp.Title("Students")
		pp.Students(n.App.Students.List()...)
	case n.Conference != nil:
		n.App.Conferences.Add(n.Conference)
		pp.Title("Conferences")
		pp.Conferences(n.App.Conferences.List()...)
	case n.Service != nil:
		n.App.Service.Add(n.Service)
		pp.Title("Service Roles")
		pp.ServiceRoles(n.App.Service.List()...)
	case n.Folder != nil:
		n.App.Folders.Add(n.Folder)
		pp.Title("Linked Folders")
		pp.Folders(n.App.Folders.List()...)
	default:
		return errors.New("nothing to add")
	}

	return nil
}
