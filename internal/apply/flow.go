// Package apply drives the job application flow: guests fill a form before
// anything touches the network, authenticated users jump straight to picking
// an email provider, and every path ends in a closed flow.
package apply

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"jobquest-web/pkg/jobview"
	"jobquest-web/pkg/models"
)

// State is the current step of an application flow.
type State string

const (
	StateIdle           State = "idle"
	StateGuestForm      State = "guest_form"
	StateComposeChoice  State = "compose_choice"
	StateSubmittedGuest State = "submitted_guest"
	StateEmailChoice    State = "email_choice"
	StateClosed         State = "closed"
)

// Provider identifies an email compose target.
type Provider string

const (
	ProviderGmail   Provider = "gmail"
	ProviderOutlook Provider = "outlook"
	ProviderMailto  Provider = "mailto"
)

// ApplicationService is the slice of the backend API the flow needs.
type ApplicationService interface {
	SubmitGuestApplication(ctx context.Context, req models.GuestApplicationRequest) (*models.GuestApplication, error)
	CreateApplication(ctx context.Context, token, jobID string) (*models.Application, error)
}

// ProviderOption is one entry of the email-provider chooser.
type ProviderOption struct {
	Provider Provider `json:"provider"`
	Label    string   `json:"label"`
	URL      string   `json:"url"`
	Enabled  bool     `json:"enabled"`
}

// Snapshot is the flow state handed back to the caller after each operation.
type Snapshot struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	State       State             `json:"state"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	SubmitError string            `json:"submit_error,omitempty"`
	Providers   []ProviderOption  `json:"providers,omitempty"`
	Notice      *models.Notice    `json:"notice,omitempty"`
}

// Flow is one in-progress application. Guests walk guest_form ->
// submitted_guest -> email_choice (or straight to closed when the job has no
// contact email); authenticated users start at compose_choice.
type Flow struct {
	mu sync.Mutex

	id      string
	job     *models.Job
	user    *models.User
	token   string
	service ApplicationService

	confirmDelay time.Duration
	state        State
	fieldErrors  map[string]string
	submitError  string
	applicant    models.GuestApplicationRequest
	recorded     bool
	timer        *time.Timer
}

// NewFlow creates a flow in the right starting state for the caller's
// identity.
func NewFlow(id string, job *models.Job, user *models.User, token string, service ApplicationService, confirmDelay time.Duration) *Flow {
	state := StateGuestForm
	if user != nil {
		state = StateComposeChoice
	}

	return &Flow{
		id:           id,
		job:          job,
		user:         user,
		token:        token,
		service:      service,
		confirmDelay: confirmDelay,
		state:        state,
	}
}

// ID returns the flow identifier.
func (f *Flow) ID() string { return f.id }

// State returns the current step.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SubmitGuest validates and submits the guest form. Presence errors are
// reported without any backend call; a backend failure keeps the flow in
// guest_form so the visitor can retry without retyping.
func (f *Flow) SubmitGuest(ctx context.Context, req models.GuestApplicationRequest) (*Snapshot, error) {
	f.mu.Lock()
	if f.state != StateGuestForm {
		state := f.state
		f.mu.Unlock()
		return nil, fmt.Errorf("cannot submit guest application in state %s", state)
	}

	fieldErrors := validateGuestForm(req)
	if len(fieldErrors) > 0 {
		f.fieldErrors = fieldErrors
		f.submitError = ""
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, nil
	}
	f.fieldErrors = nil
	req.JobID = f.job.ID
	f.mu.Unlock()

	if _, err := f.service.SubmitGuestApplication(ctx, req); err != nil {
		f.mu.Lock()
		f.submitError = "Your application could not be submitted. Please try again."
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitError = ""
	f.applicant = req
	f.state = StateSubmittedGuest

	// The confirmation stays on screen briefly, then the flow moves on by
	// itself.
	f.timer = time.AfterFunc(f.confirmDelay, f.advanceFromConfirmation)
	return f.snapshotLocked(), nil
}

func (f *Flow) advanceFromConfirmation() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSubmittedGuest {
		return
	}
	if _, ok := f.job.ApplyContact(); ok {
		f.state = StateEmailChoice
	} else {
		f.state = StateClosed
	}
}

// Providers lists the email compose options for the current applicant. When
// the job carries no contact email the options are disabled and a notice
// explains why.
func (f *Flow) Providers() []ProviderOption {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.providersLocked()
}

func (f *Flow) providersLocked() []ProviderOption {
	contact, ok := f.job.ApplyContact()
	if !ok {
		return []ProviderOption{
			{Provider: ProviderGmail, Label: "Gmail", Enabled: false},
			{Provider: ProviderOutlook, Label: "Outlook", Enabled: false},
			{Provider: ProviderMailto, Label: "Default mail app", Enabled: false},
		}
	}

	subject := jobview.ApplySubject(f.job.Title)
	body := jobview.ApplyBody(f.applicantName(), f.applicantEmail(), f.applicantPhone())
	links := jobview.BuildComposeLinks(contact, subject, body)

	return []ProviderOption{
		{Provider: ProviderGmail, Label: "Gmail", URL: links.Gmail, Enabled: true},
		{Provider: ProviderOutlook, Label: "Outlook", URL: links.Outlook, Enabled: true},
		{Provider: ProviderMailto, Label: "Default mail app", URL: links.Mailto, Enabled: true},
	}
}

// ChooseProvider resolves a provider's compose URL and closes the flow. For
// authenticated users the application is recorded on the backend before the
// URL is handed out, so abandoning the compose window still leaves a record.
func (f *Flow) ChooseProvider(ctx context.Context, provider Provider) (string, error) {
	f.mu.Lock()
	if f.state != StateComposeChoice && f.state != StateEmailChoice {
		state := f.state
		f.mu.Unlock()
		return "", fmt.Errorf("cannot choose a provider in state %s", state)
	}
	if _, ok := f.job.ApplyContact(); !ok {
		f.mu.Unlock()
		return "", fmt.Errorf("job has no contact email")
	}
	needsRecord := f.user != nil && !f.recorded
	token := f.token
	jobID := f.job.ID
	f.mu.Unlock()

	if needsRecord {
		if _, err := f.service.CreateApplication(ctx, token, jobID); err != nil {
			return "", fmt.Errorf("failed to record application: %w", err)
		}
		f.mu.Lock()
		f.recorded = true
		f.mu.Unlock()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	var url string
	for _, opt := range f.providersLocked() {
		if opt.Provider == provider {
			url = opt.URL
			break
		}
	}
	if url == "" {
		return "", fmt.Errorf("unknown provider %q", provider)
	}
	f.state = StateClosed
	return url, nil
}

// CopyEmail returns the address to put on the clipboard, or a placeholder
// when the job has none.
func (f *Flow) CopyEmail() string {
	if contact, ok := f.job.ApplyContact(); ok {
		return contact
	}
	return jobview.NoContactPlaceholder
}

// Close ends the flow from any state.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.state = StateClosed
}

// Snapshot returns the flow's externally visible state.
func (f *Flow) Snapshot() *Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		ID:          f.id,
		JobID:       f.job.ID,
		State:       f.state,
		FieldErrors: f.fieldErrors,
		SubmitError: f.submitError,
	}
	if f.state == StateComposeChoice || f.state == StateEmailChoice {
		snap.Providers = f.providersLocked()
		if _, ok := f.job.ApplyContact(); !ok {
			snap.Notice = &models.Notice{
				Message: "This job has no contact email. You can still close this dialog.",
				Kind:    "no_contact",
			}
		}
	}
	return snap
}

func (f *Flow) applicantName() string {
	if f.user != nil {
		return f.user.Name
	}
	return strings.TrimSpace(f.applicant.FirstName + " " + f.applicant.LastName)
}

func (f *Flow) applicantEmail() string {
	if f.user != nil {
		return f.user.Email
	}
	return f.applicant.Email
}

func (f *Flow) applicantPhone() string {
	if f.user != nil {
		return ""
	}
	return f.applicant.Phone
}

func validateGuestForm(req models.GuestApplicationRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
