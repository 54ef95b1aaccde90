package record

// Course is one offering of a class in a given semester.
type Course struct {
	Meta
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Semester    string `json:"semester,omitempty"` // Fall, Spring, Summer
	Year        int    `json:"year,omitempty"`
	Enrollment  int    `json:"enrollment,omitempty"`
	Schedule    string `json:"schedule,omitempty"` // e.g. "MWF 10:00-10:50"
	Location    string `json:"location,omitempty"`
	OfficeHours string `json:"officeHours,omitempty"`
	TAName      string `json:"taName,omitempty"`
	Notes       string `json:"notes,omitempty"`
	IsActive    bool   `json:"isActive"`
}
