package record

import (
	"fmt"
	"strings"
)

type ConferenceStatus string

const (
	ConfConsidering       ConferenceStatus = "considering"
	ConfAbstractSubmitted ConferenceStatus = "abstract-submitted"
	ConfAccepted          ConferenceStatus = "accepted"
	ConfRegistered        ConferenceStatus = "registered"
	ConfAttended          ConferenceStatus = "attended"
)

func ConferenceStatuses() []ConferenceStatus {
	return []ConferenceStatus{
		ConfConsidering,
		ConfAbstractSubmitted,
		ConfAccepted,
		ConfRegistered,
		ConfAttended,
	}
}

// Upcoming reports whether the conference still lies ahead; attended is the
// terminal state.
func (s ConferenceStatus) Upcoming() bool {
	return s != ConfAttended
}

func ParseConferenceStatus(raw string) (ConferenceStatus, error) {
	s := ConferenceStatus(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return ConfConsidering, nil
	}
	for _, candidate := range ConferenceStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return ConfConsidering, fmt.Errorf("record: unknown conference status %q", raw)
}

type Conference struct {
	Meta
	Name                 string           `json:"name"`
	Location             string           `json:"location,omitempty"`
	StartDate            string           `json:"startDate,omitempty"`
	EndDate              string           `json:"endDate,omitempty"`
	Status               ConferenceStatus `json:"status"`
	PresentationTitle    string           `json:"presentationTitle,omitempty"`
	PresentationType     string           `json:"presentationType,omitempty"` // paper, poster, panel, invited
	SubmissionDeadline   string           `json:"submissionDeadline,omitempty"`
	RegistrationDeadline string           `json:"registrationDeadline,omitempty"`
	TravelBooked         bool             `json:"travelBooked,omitempty"`
	Notes                string           `json:"notes,omitempty"`
}
