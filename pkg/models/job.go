package models

import "time"

// Job represents a job posting as served by the JobQuest backend API.
// The shape is a contract with the backend; this service never owns or
// persists job records.
type Job struct {
	ID               string       `json:"id" validate:"required"`
	Title            string       `json:"title" validate:"required"`
	Company          string       `json:"company"`
	CompanyID        string       `json:"company_id,omitempty"`
	Location         string       `json:"location"`
	Remote           bool         `json:"remote"`
	JobType          string       `json:"job_type"`
	Category         string       `json:"category"`
	ExperienceLevel  string       `json:"experience_level"`
	Salary           *SalaryRange `json:"salary,omitempty"`
	Skills           []string     `json:"skills"`
	Description      string       `json:"description"`
	Requirements     []string     `json:"requirements"`
	Responsibilities []string     `json:"responsibilities"`
	Benefits         []string     `json:"benefits"`
	ContactEmail     string       `json:"contact_email,omitempty"`
	Link             string       `json:"link,omitempty"`
	PosterURL        string       `json:"poster_url,omitempty"`
	Deadline         *time.Time   `json:"deadline,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// SalaryRange represents the salary information for a job posting.
// A zero or negative bound means "unspecified" on that side.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
	Period   string `json:"period"` // hourly, monthly, yearly
}

// ApplyContact returns the address an application email should go to, and
// whether the job has one at all. Jobs posted without a contact email fall
// back to the link field.
func (j *Job) ApplyContact() (string, bool) {
	if j.ContactEmail != "" {
		return j.ContactEmail, true
	}
	if j.Link != "" {
		return j.Link, true
	}
	return "", false
}

// JobList is a page of job records plus pagination metadata from the backend.
type JobList struct {
	Jobs  []Job `json:"jobs"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int   `json:"total"`
}
