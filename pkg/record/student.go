package record

import (
	"fmt"
	"strings"
)

type StudentLevel string

const (
	LevelPhD           StudentLevel = "phd"
	LevelMasters       StudentLevel = "masters"
	LevelUndergraduate StudentLevel = "undergraduate"
	LevelPostdoc       StudentLevel = "postdoc"
)

type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentGraduated StudentStatus = "graduated"
	StudentOnLeave   StudentStatus = "on-leave"
	StudentWithdrawn StudentStatus = "withdrawn"
)

func ParseStudentStatus(raw string) (StudentStatus, error) {
	s := StudentStatus(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StudentActive, nil
	}
	switch s {
	case StudentActive, StudentGraduated, StudentOnLeave, StudentWithdrawn:
		return s, nil
	}
	return StudentActive, fmt.Errorf("record: unknown student status %q", raw)
}

// Student is an advisee or committee charge.
type Student struct {
	Meta
	Name               string        `json:"name"`
	Email              string        `json:"email,omitempty"`
	Level              StudentLevel  `json:"level,omitempty"`
	Status             StudentStatus `json:"status"`
	Program            string        `json:"program,omitempty"`
	DissertationTitle  string        `json:"dissertationTitle,omitempty"`
	StartDate          string        `json:"startDate,omitempty"`
	ExpectedGraduation string        `json:"expectedGraduation,omitempty"`
	CommitteeRole      string        `json:"committeeRole,omitempty"` // chair, member, reader
	Notes              string        `json:"notes,omitempty"`
}
