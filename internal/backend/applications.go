package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"jobquest-web/pkg/models"
)

// SubmitGuestApplication sends a guest application. No token: guests are by
// definition unauthenticated.
func (c *Client) SubmitGuestApplication(ctx context.Context, req models.GuestApplicationRequest) (*models.GuestApplication, error) {
	var app models.GuestApplication
	if err := c.do(ctx, http.MethodPost, "/api/guest-applications", "", nil, req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// CreateApplication records that an authenticated user is applying to a job.
func (c *Client) CreateApplication(ctx context.Context, token, jobID string) (*models.Application, error) {
	body := map[string]string{"job_id": jobID}

	var app models.Application
	if err := c.do(ctx, http.MethodPost, "/api/applications", token, nil, body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ListMyApplications returns the authenticated user's application history.
func (c *Client) ListMyApplications(ctx context.Context, token string) ([]models.Application, error) {
	var out struct {
		Applications []models.Application `json:"applications"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/applications/me", token, nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Applications == nil {
		out.Applications = []models.Application{}
	}
	return out.Applications, nil
}

// ListGuestApplications returns guest applications for the admin dashboard.
func (c *Client) ListGuestApplications(ctx context.Context, token string, page, limit int) ([]models.GuestApplication, int, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var out struct {
		Applications []models.GuestApplication `json:"applications"`
		Total        int                       `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/guest-applications", token, query, nil, &out); err != nil {
		return nil, 0, err
	}
	if out.Applications == nil {
		out.Applications = []models.GuestApplication{}
	}
	return out.Applications, out.Total, nil
}

// UpdateGuestApplicationStatus moves a guest application through the review
// pipeline. Admin only.
func (c *Client) UpdateGuestApplicationStatus(ctx context.Context, token, id, status string) (*models.GuestApplication, error) {
	body := models.StatusChangeRequest{Status: status}

	var app models.GuestApplication
	path := "/api/guest-applications/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, token, nil, body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}
