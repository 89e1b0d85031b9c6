package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"jobquest-web/pkg/models"
)

// AuthResult is the backend's answer to a successful login or signup.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Signup registers a new seeker account and returns its first token.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", "", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me returns the user the token belongs to, profile included when one exists.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile saves the user's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, token string, req models.ProfileUpdateRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/api/users/me/profile", token, nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UploadResume uploads a resume file and returns the updated profile.
func (c *Client) UploadResume(ctx context.Context, token, filename string, file io.Reader) (*models.User, error) {
	var user models.User
	if err := c.doMultipart(ctx, http.MethodPost, "/api/users/me/resume", token, nil, "resume", filename, file, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SavedJobIDs returns the server-side copy of the user's bookmarks.
func (c *Client) SavedJobIDs(ctx context.Context, token string) ([]string, error) {
	var out struct {
		JobIDs []string `json:"job_ids"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users/me/saved-jobs", token, nil, nil, &out); err != nil {
		return nil, err
	}
	if out.JobIDs == nil {
		out.JobIDs = []string{}
	}
	return out.JobIDs, nil
}

// SaveJobIDs replaces the server-side copy of the user's bookmarks.
func (c *Client) SaveJobIDs(ctx context.Context, token string, jobIDs []string) error {
	body := map[string][]string{"job_ids": jobIDs}
	return c.do(ctx, http.MethodPut, "/api/users/me/saved-jobs", token, nil, body, nil)
}

// ListUsers returns accounts for the admin user table.
func (c *Client) ListUsers(ctx context.Context, token string, page, limit int, role string) ([]models.User, int, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if role != "" {
		query.Set("role", role)
	}

	var out struct {
		Users []models.User `json:"users"`
		Total int           `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users", token, query, nil, &out); err != nil {
		return nil, 0, err
	}
	if out.Users == nil {
		out.Users = []models.User{}
	}
	return out.Users, out.Total, nil
}

// UpdateUserRole changes an account's role. Super admin only; the backend
// enforces that on the forwarded token.
func (c *Client) UpdateUserRole(ctx context.Context, token, id, role string) (*models.User, error) {
	body := models.RoleChangeRequest{Role: role}

	var user models.User
	path := "/api/users/" + url.PathEscape(id) + "/role"
	if err := c.do(ctx, http.MethodPatch, path, token, nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserStatus activates or suspends an account. Admin only.
func (c *Client) UpdateUserStatus(ctx context.Context, token, id, status string) (*models.User, error) {
	body := models.StatusChangeRequest{Status: status}

	var user models.User
	path := "/api/users/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, token, nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), token, nil, nil, nil)
}

// DashboardStats returns headline counts for the admin dashboard.
func (c *Client) DashboardStats(ctx context.Context, token string) (map[string]int, error) {
	var stats map[string]int
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", token, nil, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
