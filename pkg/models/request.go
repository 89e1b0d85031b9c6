package models

// JobListQuery carries the pagination, sorting and filter parameters that
// listing views forward to the backend job endpoint. Search goes upstream
// with the rest; Filter is the local search box and only narrows the page
// that came back, never the server query.
type JobListQuery struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	Sort       string `query:"sort"`
	Order      string `query:"order"`
	Search     string `query:"search"`
	Filter     string `query:"filter"`
	Location   string `query:"location"`
	Category   string `query:"category"`
	JobType    string `query:"job_type"`
	Experience string `query:"experience"`
}

// GuestApplicationRequest is the guest application form. First name, last
// name and email must be present before any backend call is made; email
// format is not checked beyond that, matching the native-input behavior.
type GuestApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone,omitempty"`
	CoverLetter string `json:"cover_letter,omitempty"`
}

// LoginRequest is the credential payload forwarded to the backend.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest creates a new account via the backend.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ProfileUpdateRequest updates the optional profile fields.
type ProfileUpdateRequest struct {
	Bio             string   `json:"bio,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
}

// AdminJobRequest is the create/update payload for admin job management.
type AdminJobRequest struct {
	Title            string       `json:"title" validate:"required"`
	Company          string       `json:"company" validate:"required"`
	Location         string       `json:"location"`
	Remote           bool         `json:"remote"`
	JobType          string       `json:"job_type"`
	Category         string       `json:"category"`
	ExperienceLevel  string       `json:"experience_level"`
	Salary           *SalaryRange `json:"salary,omitempty"`
	Skills           []string     `json:"skills,omitempty"`
	Description      string       `json:"description"`
	Requirements     []string     `json:"requirements,omitempty"`
	Responsibilities []string     `json:"responsibilities,omitempty"`
	Benefits         []string     `json:"benefits,omitempty"`
	ContactEmail     string       `json:"contact_email,omitempty"`
	Link             string       `json:"link,omitempty"`
	Deadline         string       `json:"deadline,omitempty"`
}

// RoleChangeRequest mutates a user's role from the admin dashboard.
type RoleChangeRequest struct {
	Role string `json:"role" validate:"required,oneof=seeker admin super_admin"`
}

// StatusChangeRequest mutates a record status (user accounts and guest
// applications share the shape).
type StatusChangeRequest struct {
	Status string `json:"status" validate:"required"`
}

// NewsletterRequest subscribes or unsubscribes an address.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}
