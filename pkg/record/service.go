package record

// ServiceRole is a committee seat, editorship-adjacent duty, or other
// service obligation.
type ServiceRole struct {
	Meta
	Title         string  `json:"title"`
	Organization  string  `json:"organization,omitempty"`
	Type          string  `json:"type,omitempty"` // department, university, professional, community
	StartDate     string  `json:"startDate,omitempty"`
	EndDate       string  `json:"endDate,omitempty"`
	IsActive      bool    `json:"isActive"`
	HoursPerMonth float64 `json:"hoursPerMonth,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// LinkedFolder points at a directory of working files for one module. The
// bytes are owned outside this system; only the pointer is tracked.
type LinkedFolder struct {
	Meta
	Name   string `json:"name"`   // user-friendly label, e.g. "Review PDFs"
	Module string `json:"module"` // papers, reviews, grants, teaching, conferences
	Path   string `json:"path"`
	Notes  string `json:"notes,omitempty"`
}
