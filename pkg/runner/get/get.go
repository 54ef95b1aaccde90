package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/printers"
)

// Kind names one collection for the get/rm surface.
type Kind string

const (
	KindPapers      Kind = "papers"
	KindCourses     Kind = "courses"
	KindGrants      Kind = "grants"
	KindReviews     Kind = "reviews"
	KindEditorial   Kind = "editorial"
	KindStudents    Kind = "students"
	KindConferences Kind = "conferences"
	KindService     Kind = "service"
	KindFolders     Kind = "folders"
)

// Kinds returns every collection kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindPapers,
		KindCourses,
		KindGrants,
		KindReviews,
		KindEditorial,
		KindStudents,
		KindConferences,
		KindService,
		KindFolders,
	}
}

var kindAliases = map[string]Kind{
	"paper": KindPapers, "papers": KindPapers,
	"course": KindCourses, "courses": KindCourses, "teaching": KindCourses,
	"grant": KindGrants, "grants": KindGrants,
	"review": KindReviews, "reviews": KindReviews, "peer-review": KindReviews, "peer-reviews": KindReviews,
	"editorial": KindEditorial, "editorial-role": KindEditorial, "editorial-roles": KindEditorial,
	"student": KindStudents, "students": KindStudents,
	"conference": KindConferences, "conferences": KindConferences,
	"service": KindService, "service-role": KindService, "service-roles": KindService,
	"folder": KindFolders, "folders": KindFolders, "linked-folder": KindFolders,
}

// KindForAlias resolves a user-facing collection name or alias.
func KindForAlias(alias string) (Kind, error) {
	if k, ok := kindAliases[alias]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown collection %q", alias)
}

// Get prints one collection, or all of them when Kind is empty.
type Get struct {
	ShowID bool
	Kind   Kind
	App    *app.App
}

func (n *Get) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get, no app configured")
	}
	n.App.Hydrate(ctx)

	fmt.Println("")

	if n.Kind != "" {
		n.print(n.Kind)
		return nil
	}
	for _, k := range Kinds() {
		n.print(k)
	}
	return nil
}

func (n *Get) print(kind Kind) {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	switch kind {
	case KindPapers:
		pp.TitleWithCount("Papers", n.App.Papers.Len())
		pp.Papers(n.App.Papers.List()...)
	case KindCourses:
		pp.TitleWithCount("Courses", n.App.Courses.Len())
		pp.Courses(n.App.Courses.List()...)
	case KindGrants:
		pp.TitleWithCount("Grants", n.App.Grants.Len())
		pp.Grants(n.App.Grants.List()...)
	case KindReviews:
		pp.TitleWithCount("Peer Reviews", n.App.Reviews.Len())
		pp.Reviews(n.App.Reviews.List()...)
	case KindEditorial:
		pp.TitleWithCount("Editorial Roles", n.App.Editorial.Len())
		pp.EditorialRoles(n.App.Editorial.List()...)
	case KindStudents:
		pp.TitleWithCount("Students", n.App.Students.Len())
		pp.Students(n.App.Students.List()...)
	case KindConferences:
		pp.TitleWithCount("Conferences", n.App.Conferences.Len())
		pp.Conferences(n.App.Conferences.List()...)
	case KindService:
		pp.TitleWithCount("Service Roles", n.App.Service.Len())
		pp.ServiceRoles(n.App.Service.List()...)
	case KindFolders:
		pp.TitleWithCount("Linked Folders", n.App.Folders.Len())
		pp.Folders(n.App.Folders.List()...)
	}
}
