package board

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/dashboard"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/settings"
)

// Board renders the dashboard: the panes the user has made visible, each
// derived fresh from the current collection snapshots.
type Board struct {
	ShowID bool
	App    *app.App

	// All overrides pane visibility and shows everything.
	All bool
}

func (n *Board) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not render, no app configured")
	}
	n.App.Hydrate(ctx)

	// Background statistics refresh is scheduled here, after hydration.
	// The CLI waits for it so the snapshot lands before the process exits;
	// it is a no-op unless a profile URL is configured.
	<-n.App.RefreshScholarStats(ctx)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	visible := func(pane settings.Pane) bool {
		return n.All || n.App.Settings.IsPaneVisible(pane)
	}

	papers := n.App.Papers.List()
	courses := n.App.Courses.List()
	grants := n.App.Grants.List()
	reviews := n.App.Reviews.List()
	students := n.App.Students.List()
	confs := n.App.Conferences.List()

	fmt.Println("")

	if visible(settings.PaneStats) {
		counts := dashboard.Count(papers, courses, grants, reviews, students, confs)
		pp.Title("At a Glance")
		pp.Stats(counts, dashboard.StageSummary(papers))
	}

	if visible(settings.PanePapersPipeline) {
		pp.Title("Papers Pipeline")
		pp.Pipeline(dashboard.GroupByStage(papers))
	}

	if visible(settings.PaneDeadlines) {
		pp.Title("Upcoming Deadlines")
		pp.Deadlines(dashboard.UpcomingDeadlines(reviews, confs, grants, time.Now()))
	}

	if visible(settings.PaneTeaching) {
		active := dashboard.ActiveCourses(courses)
		pp.TitleWithCount("Active Courses", len(active))
		pp.Courses(active...)
	}

	if visible(settings.PaneGrants) {
		funded := dashboard.FundedGrants(grants)
		pp.TitleWithCount("Funded Grants", len(funded))
		pp.Grants(funded...)
		open := dashboard.OpenGrants(grants)
		pp.TitleWithCount("Pending Grants", len(open))
		pp.Grants(open...)
	}

	if visible(settings.PaneReviews) {
		pending := dashboard.PendingReviews(reviews)
		pp.TitleWithCount("Pending Reviews", len(pending))
		pp.Reviews(pending...)
	}

	if visible(settings.PaneStudents) {
		active := dashboard.ActiveStudents(students)
		pp.TitleWithCount("Active Students", len(active))
		pp.Students(active...)
	}

	if visible(settings.PaneConferences) {
		upcoming := dashboard.UpcomingConferences(confs)
		pp.TitleWithCount("Upcoming Conferences", len(upcoming))
		pp.Conferences(upcoming...)
	}

	return nil
}
