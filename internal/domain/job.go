package domain

// Job is a single listing as the UI consumes it. The engine treats jobs as
// immutable; they are owned by whichever provider produced them.
type Job struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`  // Full-time / Part-time / Contract / Internship
	Stage        string   `json:"stage"` // funding stage label, e.g. "Seed"
	Tags         []string `json:"tags,omitempty"`
	Description  string   `json:"description,omitempty"`
	Salary       string   `json:"salary,omitempty"`
	Equity       string   `json:"equity,omitempty"`
	Applicants   int      `json:"applicants"`
	PostedDays   int      `json:"postedDays"`
	Funding      string   `json:"funding,omitempty"`
	Benefits     []string `json:"benefits,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

// HasTag reports whether the job carries the exact tag. A nil tag set is an
// empty set, never an error.
func (j Job) HasTag(tag string) bool {
	for _, t := range j.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
