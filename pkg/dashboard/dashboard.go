// Package dashboard derives the cross-cutting views from collection
// snapshots. Everything here is a pure function: no hidden state, fully
// recomputed per call, and never failing. Half-filled records degrade to
// absent fields rather than errors.
package dashboard

import (
	"fmt"
	"strings"

	"tableflip.dev/vita/pkg/record"
)

// PipelineStages returns the display-ordered stages of the active
// pipeline. The terminal published stage is excluded; published papers are
// done, not in flight.
func PipelineStages() []record.Stage {
	all := record.Stages()
	stages := make([]record.Stage, 0, len(all)-1)
	for _, s := range all {
		if s != record.StagePublished {
			stages = append(stages, s)
		}
	}
	return stages
}

// PipelinePapers filters out published papers, preserving insertion order.
func PipelinePapers(papers []*record.Paper) []*record.Paper {
	out := make([]*record.Paper, 0, len(papers))
	for _, p := range papers {
		if p.Stage != record.StagePublished {
			out = append(out, p)
		}
	}
	return out
}

// StageGroup is one pipeline stage with its papers in insertion order.
type StageGroup struct {
	Stage  record.Stage
	Papers []*record.Paper
}

// GroupByStage partitions pipeline papers into display-ordered stage
// groups. Stages with no members are omitted; an empty result is valid,
// not an error.
func GroupByStage(papers []*record.Paper) []StageGroup {
	pipeline := PipelinePapers(papers)
	groups := make([]StageGroup, 0, len(PipelineStages()))
	for _, stage := range PipelineStages() {
		var members []*record.Paper
		for _, p := range pipeline {
			if p.Stage == stage {
				members = append(members, p)
			}
		}
		if len(members) > 0 {
			groups = append(groups, StageGroup{Stage: stage, Papers: members})
		}
	}
	return groups
}

// StageSummary renders the stat-card trend line, e.g. "2 drafting, 1 under
// review". Empty when the pipeline is empty.
func StageSummary(papers []*record.Paper) string {
	parts := make([]string, 0, 4)
	for _, g := range GroupByStage(papers) {
		parts = append(parts, fmt.Sprintf("%d %s", len(g.Papers), strings.ToLower(g.Stage.Label())))
	}
	return strings.Join(parts, ", ")
}

// ActiveCourses keeps courses flagged active.
func ActiveCourses(courses []*record.Course) []*record.Course {
	out := make([]*record.Course, 0, len(courses))
	for _, c := range courses {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// FundedGrants keeps grants in the funded terminal state.
func FundedGrants(grants []*record.Grant) []*record.Grant {
	out := make([]*record.Grant, 0, len(grants))
	for _, g := range grants {
		if g.Status == record.GrantFunded {
			out = append(out, g)
		}
	}
	return out
}

// OpenGrants keeps proposals still in flight (planning through
// under-review).
func OpenGrants(grants []*record.Grant) []*record.Grant {
	out := make([]*record.Grant, 0, len(grants))
	for _, g := range grants {
		if g.Status.Open() {
			out = append(out, g)
		}
	}
	return out
}

// TotalFunded sums funded grant amounts; zero when none.
func TotalFunded(grants []*record.Grant) float64 {
	var total float64
	for _, g := range FundedGrants(grants) {
		total += g.Amount
	}
	return total
}

// PendingReviews keeps reviews that still demand work: accepted or in
// progress. This one predicate feeds both the summary count and the
// deadline timeline.
func PendingReviews(reviews []*record.PeerReview) []*record.PeerReview {
	out := make([]*record.PeerReview, 0, len(reviews))
	for _, r := range reviews {
		if r.Status.Pending() {
			out = append(out, r)
		}
	}
	return out
}

// ActiveStudents keeps current advisees.
func ActiveStudents(students []*record.Student) []*record.Student {
	out := make([]*record.Student, 0, len(students))
	for _, s := range students {
		if s.Status == record.StudentActive {
			out = append(out, s)
		}
	}
	return out
}

// UpcomingConferences keeps conferences not yet attended.
func UpcomingConferences(confs []*record.Conference) []*record.Conference {
	out := make([]*record.Conference, 0, len(confs))
	for _, c := range confs {
		if c.Status.Upcoming() {
			out = append(out, c)
		}
	}
	return out
}

// ActiveServiceRoles keeps service obligations flagged active.
func ActiveServiceRoles(roles []*record.ServiceRole) []*record.ServiceRole {
	out := make([]*record.ServiceRole, 0, len(roles))
	for _, r := range roles {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out
}

// ActiveEditorialRoles keeps standing journal positions flagged active.
func ActiveEditorialRoles(roles []*record.EditorialRole) []*record.EditorialRole {
	out := make([]*record.EditorialRole, 0, len(roles))
	for _, r := range roles {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out
}

// Counts carries the stat-card numbers.
type Counts struct {
	PipelinePapers      int
	ActiveCourses       int
	FundedGrants        int
	TotalFunded         float64
	PendingReviews      int
	ActiveStudents      int
	UpcomingConferences int
}

// Count computes the summary numbers across all collections.
func Count(
	papers []*record.Paper,
	courses []*record.Course,
	grants []*record.Grant,
	reviews []*record.PeerReview,
	students []*record.Student,
	confs []*record.Conference,
) Counts {
	return Counts{
		PipelinePapers:      len(PipelinePapers(papers)),
		ActiveCourses:       len(ActiveCourses(courses)),
		FundedGrants:        len(FundedGrants(grants)),
		TotalFunded:         TotalFunded(grants),
		PendingReviews:      len(PendingReviews(reviews)),
		ActiveStudents:      len(ActiveStudents(students)),
		UpcomingConferences: len(UpcomingConferences(confs)),
	}
}
