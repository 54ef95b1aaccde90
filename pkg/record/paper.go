package record

import (
	"fmt"
	"strings"
	"time"
)

// Stage identifies where a paper sits in the publication pipeline.
type Stage string

const (
	StageIdea           Stage = "idea"
	StageDrafting       Stage = "drafting"
	StageInternalReview Stage = "internal-review"
	StageSubmitted      Stage = "submitted"
	StageUnderReview    Stage = "under-review"
	StageReviseResubmit Stage = "revise-resubmit"
	StageAccepted       Stage = "accepted"
	StagePublished      Stage = "published"
)

// Stages returns all stages in pipeline order, terminal stage last.
func Stages() []Stage {
	return []Stage{
		StageIdea,
		StageDrafting,
		StageInternalReview,
		StageSubmitted,
		StageUnderReview,
		StageReviseResubmit,
		StageAccepted,
		StagePublished,
	}
}

var stageLabels = map[Stage]string{
	StageIdea:           "Idea",
	StageDrafting:       "Drafting",
	StageInternalReview: "Internal Review",
	StageSubmitted:      "Submitted",
	StageUnderReview:    "Under Review",
	StageReviseResubmit: "Revise & Resubmit",
	StageAccepted:       "Accepted",
	StagePublished:      "Published",
}

func (s Stage) Label() string {
	if label, ok := stageLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseStage converts a string to a Stage or returns an error for unknown
// values. The empty string means the idea stage.
func ParseStage(raw string) (Stage, error) {
	s := Stage(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StageIdea, nil
	}
	for _, candidate := range Stages() {
		if candidate == s {
			return candidate, nil
		}
	}
	return StageIdea, fmt.Errorf("record: unknown paper stage %q", raw)
}

// Paper is one manuscript moving through the pipeline.
type Paper struct {
	Meta
	Title          string        `json:"title"`
	Abstract       string        `json:"abstract,omitempty"`
	CoAuthors      []string      `json:"coAuthors,omitempty"`
	Stage          Stage         `json:"stage"`
	TargetJournal  string        `json:"targetJournal,omitempty"`
	SubmissionDate string        `json:"submissionDate,omitempty"`
	DecisionDate   string        `json:"decisionDate,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	Priority       string        `json:"priority,omitempty"` // low, medium, high, urgent
	LinkedFiles    []TrackedFile `json:"linkedFiles,omitempty"`
	UpdatedAt      Timestamp     `json:"updatedAt"`
}

func (p *Paper) Stamp(id string, now time.Time) {
	p.Meta.Stamp(id, now)
	p.UpdatedAt = Timestamp{Time: now}
}

func (p *Paper) Touch(now time.Time) {
	p.UpdatedAt = Timestamp{Time: now}
}
