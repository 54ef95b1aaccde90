package dashboard

import (
	"sort"
	"time"

	"tableflip.dev/vita/pkg/record"
)

// Module tags which collection a deadline item was projected from.
type Module string

const (
	ModuleReview     Module = "review"
	ModuleConference Module = "conference"
	ModuleGrant      Module = "grant"
)

func (m Module) Label() string {
	switch m {
	case ModuleReview:
		return "Peer Review"
	case ModuleConference:
		return "Conference"
	case ModuleGrant:
		return "Grant"
	}
	return string(m)
}

// Deadline is one ephemeral timeline item. It is rebuilt on every
// aggregation pass and never persisted; stale items for deleted records
// simply drop out on the next pass.
type Deadline struct {
	// Key is stable across passes: module kind, deadline sub-kind, source
	// id. A conference's submission and registration items stay distinct.
	Key     string
	Module  Module
	Date    time.Time
	DateStr string
	Label   string
	Detail  string

	// Overdue is advisory for display only; overdue items stay listed
	// until the underlying record is resolved or deleted.
	Overdue bool
}

// UpcomingDeadlines merges date-bearing fields from pending reviews,
// upcoming conferences (submission and registration independently), and
// open grants into one timeline sorted ascending by date. Records with
// empty or unparseable dates are skipped silently, many legitimately have
// no deadline yet. Ties keep discovery order: reviews, then conferences,
// then grants.
func UpcomingDeadlines(
	reviews []*record.PeerReview,
	confs []*record.Conference,
	grants []*record.Grant,
	now time.Time,
) []Deadline {
	items := make([]Deadline, 0, len(reviews)+2*len(confs)+len(grants))

	push := func(key string, module Module, dateStr, label, detail string) {
		d, ok := record.ParseDate(dateStr)
		if !ok {
			return
		}
		items = append(items, Deadline{
			Key:     key,
			Module:  module,
			Date:    d,
			DateStr: dateStr,
			Label:   label,
			Detail:  detail,
			Overdue: d.Before(now),
		})
	}

	for _, r := range PendingReviews(reviews) {
		label := r.ManuscriptTitle
		if label == "" {
			label = "Untitled manuscript"
		}
		push("review-"+r.ID, ModuleReview, r.DueDate, label, r.Journal)
	}

	for _, c := range UpcomingConferences(confs) {
		push("conf-sub-"+c.ID, ModuleConference, c.SubmissionDeadline, c.Name+" - Submission", c.PresentationTitle)
		push("conf-reg-"+c.ID, ModuleConference, c.RegistrationDeadline, c.Name+" - Registration", "")
	}

	for _, g := range OpenGrants(grants) {
		push("grant-"+g.ID, ModuleGrant, g.SubmissionDeadline, g.Title, g.Agency)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items
}
