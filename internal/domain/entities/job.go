package entities

// Job is a normalised offer fetched from the upstream job-search API. It is
// never persisted; the dashboard holds the latest search result only.
type Job struct {
	Id             string        `json:"job_id"`
	Title          string        `json:"job_title"`
	EmployerName   string        `json:"employer_name"`
	EmployerLogo   string        `json:"employer_logo"`
	City           string        `json:"job_city"`
	EmploymentType string        `json:"job_employment_type"`
	ApplyLink      string        `json:"job_apply_link"`
	Description    string        `json:"job_description"`
	Highlights     JobHighlights `json:"job_highlights"`
}

type JobHighlights struct {
	Qualifications   []string `json:"Qualifications,omitempty"`
	Responsibilities []string `json:"Responsibilities,omitempty"`
}
