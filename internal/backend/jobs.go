package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"jobquest-web/pkg/models"
)

// ListJobs fetches the public job board listing.
func (c *Client) ListJobs(ctx context.Context, q models.JobListQuery) (*models.JobList, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		query.Set("sort", q.Sort)
	}
	if q.Order != "" {
		query.Set("order", q.Order)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Location != "" {
		query.Set("location", q.Location)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.JobType != "" {
		query.Set("job_type", q.JobType)
	}
	if q.Experience != "" {
		query.Set("experience", q.Experience)
	}

	var list models.JobList
	if err := c.do(ctx, http.MethodGet, "/api/jobs", "", query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetJob fetches a single job by ID.
func (c *Client) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(id), "", nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJobsByIDs fetches a batch of jobs, used to render the saved-jobs page.
// Jobs that no longer exist on the backend are silently absent from the
// result.
func (c *Client) GetJobsByIDs(ctx context.Context, ids []string) ([]models.Job, error) {
	if len(ids) == 0 {
		return []models.Job{}, nil
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	var out struct {
		Jobs []models.Job `json:"jobs"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/jobs/batch", "", query, nil, &out); err != nil {
		return nil, err
	}
	if out.Jobs == nil {
		out.Jobs = []models.Job{}
	}
	return out.Jobs, nil
}

// CreateJob creates a job posting. Admin only.
func (c *Client) CreateJob(ctx context.Context, token string, req models.AdminJobRequest) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs/admin", token, nil, req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob updates a job posting. Admin only.
func (c *Client) UpdateJob(ctx context.Context, token, id string, req models.AdminJobRequest) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodPut, "/api/jobs/admin/"+url.PathEscape(id), token, nil, req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes a job posting. Admin only.
func (c *Client) DeleteJob(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/jobs/admin/"+url.PathEscape(id), token, nil, nil, nil)
}

// UploadJobPoster attaches a poster image to a job posting. Admin only.
func (c *Client) UploadJobPoster(ctx context.Context, token, id, filename string, file io.Reader) (*models.Job, error) {
	var job models.Job
	path := fmt.Sprintf("/api/jobs/admin/%s/poster", url.PathEscape(id))
	if err := c.doMultipart(ctx, http.MethodPost, path, token, nil, "poster", filename, file, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
