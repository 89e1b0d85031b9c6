package models

import "time"

// ErrorResponse is the JSON error shape for every failed request.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable,omitempty"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Notice is a transient, user-visible banner. DismissAfterMS tells the view
// how long to keep it on screen before auto-hiding.
type Notice struct {
	Message        string `json:"message"`
	Kind           string `json:"kind"` // info, error, sign_in_required
	DismissAfterMS int64  `json:"dismiss_after_ms"`
}

// DeadlineView is the rendered deadline bucket for a job card.
type DeadlineView struct {
	Bucket   string `json:"bucket"`
	Label    string `json:"label"`
	DaysLeft int    `json:"days_left,omitempty"`
	Urgency  string `json:"urgency,omitempty"`
}

// ShareView carries the share deep links for a job card.
type ShareView struct {
	URL      string `json:"url"`
	Mailto   string `json:"mailto"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	WhatsApp string `json:"whatsapp"`
}

// JobCard is one job in a listing view with all derived display state
// computed server-side, so every listing renders it identically.
type JobCard struct {
	Job       Job           `json:"job"`
	Saved     bool          `json:"saved"`
	PostedAgo string        `json:"posted_ago"`
	Salary    string        `json:"salary_display,omitempty"`
	Deadline  *DeadlineView `json:"deadline,omitempty"`
	Share     ShareView     `json:"share"`
}

// JobCardList is a page of cards plus the pagination echo. Total is the
// backend's count across every page; Matched is how many cards survived the
// local filter on this one.
type JobCardList struct {
	Cards   []JobCard `json:"cards"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	Total   int       `json:"total"`
	Matched int       `json:"matched"`
}

// ToggleResponse reports the outcome of a bookmark toggle.
type ToggleResponse struct {
	Saved  bool    `json:"saved"`
	Status string  `json:"status"` // saved, removed, sign_in_required
	Notice *Notice `json:"notice,omitempty"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	User       *User `json:"user"`
	HasProfile bool  `json:"has_profile"`
}
