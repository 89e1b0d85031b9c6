package models

import "time"

// User roles as reported by the backend.
const (
	RoleSeeker     = "seeker"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// User is the authenticated identity returned by the backend auth endpoints.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	CanChangeRoles bool      `json:"can_change_roles"`
	Profile        *Profile  `json:"profile,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Profile holds the optional job-seeker profile fields.
type Profile struct {
	Bio             string   `json:"bio,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	ResumeURL       string   `json:"resume_url,omitempty"`
}

// HasProfile is the derived gate used to route users into the
// profile-creation flow. It is not a separate backend entity.
func (u *User) HasProfile() bool {
	if u == nil || u.Profile == nil {
		return false
	}
	p := u.Profile
	return p.Bio != "" || len(p.Skills) > 0 || p.ExperienceLevel != "" || p.ResumeURL != ""
}

// IsAdmin reports whether the user may reach the admin surface at all.
// The backend is the real enforcement point; this gate is cosmetic.
func (u *User) IsAdmin() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleSuperAdmin)
}

// NewsletterSubscriber is a newsletter signup record.
type NewsletterSubscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
