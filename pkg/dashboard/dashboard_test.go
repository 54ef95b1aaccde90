package dashboard

import (
	"testing"

	"tableflip.dev/vita/pkg/record"
)

func paper(id, title string, stage record.Stage) *record.Paper {
	return &record.Paper{Meta: record.Meta{ID: id}, Title: title, Stage: stage}
}

func TestPipelineExcludesPublished(t *testing.T) {
	papers := []*record.Paper{
		paper("1", "Alpha", record.StageDrafting),
		paper("2", "Beta", record.StagePublished),
		paper("3", "Gamma", record.StageUnderReview),
	}

	pipeline := PipelinePapers(papers)
	if len(pipeline) != 2 {
		t.Fatalf("expected 2 pipeline papers, got %d", len(pipeline))
	}
	for _, p := range pipeline {
		if p.Stage == record.StagePublished {
			t.Fatalf("published paper leaked into the pipeline")
		}
	}
}

func TestPipelineStagesOmitPublished(t *testing.T) {
	for _, s := range PipelineStages() {
		if s == record.StagePublished {
			t.Fatalf("published must not be a pipeline stage")
		}
	}
	if len(PipelineStages()) != len(record.Stages())-1 {
		t.Fatalf("expected every non-terminal stage")
	}
}

func TestGroupByStageOrderedAndNonEmpty(t *testing.T) {
	papers := []*record.Paper{
		paper("1", "Late", record.StageUnderReview),
		paper("2", "Early", record.StageDrafting),
		paper("3", "Also early", record.StageDrafting),
	}

	groups := GroupByStage(papers)
	if len(groups) != 2 {
		t.Fatalf("expected 2 non-empty groups, got %d", len(groups))
	}
	if groups[0].Stage != record.StageDrafting {
		t.Fatalf("groups must follow pipeline order, got %s first", groups[0].Stage)
	}
	if len(groups[0].Papers) != 2 {
		t.Fatalf("expected 2 drafting papers, got %d", len(groups[0].Papers))
	}
	if groups[0].Papers[0].Title != "Early" {
		t.Fatalf("members must keep insertion order")
	}
}

func TestGroupByStageEmptyIsValid(t *testing.T) {
	if got := GroupByStage(nil); len(got) != 0 {
		t.Fatalf("expected no groups, got %d", len(got))
	}
}

func TestStageSummary(t *testing.T) {
	papers := []*record.Paper{
		paper("1", "A", record.StageDrafting),
		paper("2", "B", record.StageDrafting),
		paper("3", "C", record.StageUnderReview),
	}
	want := "2 drafting, 1 under review"
	if got := StageSummary(papers); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPendingReviewsPredicate(t *testing.T) {
	reviews := []*record.PeerReview{
		{Meta: record.Meta{ID: "1"}, Status: record.ReviewPending},
		{Meta: record.Meta{ID: "2"}, Status: record.ReviewAccepted},
		{Meta: record.Meta{ID: "3"}, Status: record.ReviewInProgress},
		{Meta: record.Meta{ID: "4"}, Status: record.ReviewDeclined},
		{Meta: record.Meta{ID: "5"}, Status: record.ReviewCompleted},
	}

	pending := PendingReviews(reviews)
	if len(pending) != 2 {
		t.Fatalf("only accepted and in-progress demand work, got %d", len(pending))
	}
	if pending[0].ID != "2" || pending[1].ID != "3" {
		t.Fatalf("unexpected pending set: %s, %s", pending[0].ID, pending[1].ID)
	}
}

func TestCountTotals(t *testing.T) {
	grants := []*record.Grant{
		{Meta: record.Meta{ID: "1"}, Status: record.GrantFunded, Amount: 250000},
		{Meta: record.Meta{ID: "2"}, Status: record.GrantFunded, Amount: 100000},
		{Meta: record.Meta{ID: "3"}, Status: record.GrantDeclined, Amount: 500000},
	}
	courses := []*record.Course{
		{Meta: record.Meta{ID: "1"}, IsActive: true},
		{Meta: record.Meta{ID: "2"}, IsActive: false},
	}
	students := []*record.Student{
		{Meta: record.Meta{ID: "1"}, Status: record.StudentActive},
		{Meta: record.Meta{ID: "2"}, Status: record.StudentGraduated},
	}
	confs := []*record.Conference{
		{Meta: record.Meta{ID: "1"}, Status: record.ConfRegistered},
		{Meta: record.Meta{ID: "2"}, Status: record.ConfAttended},
	}

	got := Count(nil, courses, grants, nil, students, confs)

	if got.FundedGrants != 2 {
		t.Fatalf("expected 2 funded grants, got %d", got.FundedGrants)
	}
	if got.TotalFunded != 350000 {
		t.Fatalf("declined grants must not count toward funding, got %v", got.TotalFunded)
	}
	if got.ActiveCourses != 1 || got.ActiveStudents != 1 || got.UpcomingConferences != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
}
