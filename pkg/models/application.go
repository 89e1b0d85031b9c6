package models

import "time"

// Guest application statuses, owned by the backend and mutated by admins.
const (
	GuestStatusPending  = "pending"
	GuestStatusReviewed = "reviewed"
	GuestStatusRejected = "rejected"
)

// Authenticated application statuses.
const (
	ApplicationStatusApplied            = "applied"
	ApplicationStatusUnderReview        = "under_review"
	ApplicationStatusInterviewScheduled = "interview_scheduled"
	ApplicationStatusOffered            = "offered"
	ApplicationStatusRejected           = "rejected"
	ApplicationStatusWithdrawn          = "withdrawn"
)

// GuestApplication is an application submitted without an account,
// identified only by the submitted contact fields.
type GuestApplication struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	JobTitle    string    `json:"job_title,omitempty"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Application is an application tied to an authenticated user.
type Application struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	UserID    string    `json:"user_id"`
	Job       *Job      `json:"job,omitempty"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidGuestStatus reports whether s is a status an admin may assign to a
// guest application.
func ValidGuestStatus(s string) bool {
	switch s {
	case GuestStatusPending, GuestStatusReviewed, GuestStatusRejected:
		return true
	}
	return false
}

// ValidApplicationStatus reports whether s is a recognised authenticated
// application status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusUnderReview,
		ApplicationStatusInterviewScheduled, ApplicationStatusOffered,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}
