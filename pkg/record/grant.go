package record

import (
	"fmt"
	"strings"
)

// GrantStatus tracks a proposal from planning through its terminal states.
type GrantStatus string

const (
	GrantPlanning    GrantStatus = "planning"
	GrantDrafting    GrantStatus = "drafting"
	GrantSubmitted   GrantStatus = "submitted"
	GrantUnderReview GrantStatus = "under-review"
	GrantFunded      GrantStatus = "funded"
	GrantDeclined    GrantStatus = "declined"
	GrantCompleted   GrantStatus = "completed"
)

func GrantStatuses() []GrantStatus {
	return []GrantStatus{
		GrantPlanning,
		GrantDrafting,
		GrantSubmitted,
		GrantUnderReview,
		GrantFunded,
		GrantDeclined,
		GrantCompleted,
	}
}

// Open reports whether the proposal is still in flight, i.e. its
// submission deadline still matters.
func (s GrantStatus) Open() bool {
	switch s {
	case GrantPlanning, GrantDrafting, GrantSubmitted, GrantUnderReview:
		return true
	}
	return false
}

func ParseGrantStatus(raw string) (GrantStatus, error) {
	s := GrantStatus(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return GrantPlanning, nil
	}
	for _, candidate := range GrantStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return GrantPlanning, fmt.Errorf("record: unknown grant status %q", raw)
}

type Grant struct {
	Meta
	Title              string        `json:"title"`
	Agency             string        `json:"agency,omitempty"`
	Amount             float64       `json:"amount"`
	Role               string        `json:"role,omitempty"` // PI, Co-PI, ...
	Status             GrantStatus   `json:"status"`
	SubmissionDeadline string        `json:"submissionDeadline,omitempty"`
	StartDate          string        `json:"startDate,omitempty"`
	EndDate            string        `json:"endDate,omitempty"`
	CoInvestigators    []string      `json:"coInvestigators,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	LinkedFiles        []TrackedFile `json:"linkedFiles,omitempty"`
}
