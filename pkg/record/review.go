package record

import (
	"fmt"
	"strings"
)

// ReviewStatus tracks a peer-review request.
type ReviewStatus string

const (
	ReviewPending    ReviewStatus = "pending"
	ReviewAccepted   ReviewStatus = "accepted"
	ReviewDeclined   ReviewStatus = "declined"
	ReviewInProgress ReviewStatus = "in-progress"
	ReviewCompleted  ReviewStatus = "completed"
)

func ReviewStatuses() []ReviewStatus {
	return []ReviewStatus{
		ReviewPending,
		ReviewAccepted,
		ReviewDeclined,
		ReviewInProgress,
		ReviewCompleted,
	}
}

// Pending reports whether the review still demands work: the request was
// accepted or the review is underway. Invited-but-undecided requests do
// not count.
func (s ReviewStatus) Pending() bool {
	return s == ReviewInProgress || s == ReviewAccepted
}

func ParseReviewStatus(raw string) (ReviewStatus, error) {
	s := ReviewStatus(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return ReviewPending, nil
	}
	for _, candidate := range ReviewStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return ReviewPending, fmt.Errorf("record: unknown review status %q", raw)
}

type PeerReview struct {
	Meta
	Journal         string        `json:"journal"`
	ManuscriptTitle string        `json:"manuscriptTitle,omitempty"`
	Status          ReviewStatus  `json:"status"`
	DueDate         string        `json:"dueDate,omitempty"`
	ReceivedDate    string        `json:"receivedDate,omitempty"`
	CompletedDate   string        `json:"completedDate,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	LinkedFiles     []TrackedFile `json:"linkedFiles,omitempty"`
}

// EditorialRole is a standing position with a journal, not a one-off task.
type EditorialRole struct {
	Meta
	Journal   string `json:"journal"`
	Role      string `json:"role"` // e.g. "Associate Editor"
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	IsActive  bool   `json:"isActive"`
}
