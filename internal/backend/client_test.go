package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest-web/internal/config"
	"jobquest-web/internal/logging"
	"jobquest-web/pkg/models"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	cfg.Backend.Timeout = 2 * time.Second
	cfg.Backend.MaxRetries = 2
	cfg.Backend.RateLimit = 6000
	cfg.Backend.Burst = 100

	return NewClient(cfg, logging.NewMultiLogger())
}

func TestListJobsBuildsQueryAndDecodes(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(models.JobList{
			Jobs:  []models.Job{{ID: "j1", Title: "Backend Engineer"}},
			Page:  2,
			Limit: 10,
			Total: 31,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	list, err := client.ListJobs(context.Background(), models.JobListQuery{
		Page:     2,
		Limit:    10,
		Search:   "engineer",
		Location: "Remote",
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/jobs", gotPath)
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "search=engineer")
	assert.Contains(t, gotQuery, "location=Remote")
	require.Len(t, list.Jobs, 1)
	assert.Equal(t, "Backend Engineer", list.Jobs[0].Title)
	assert.Equal(t, 31, list.Total)
}

func TestBearerTokenIsForwarded(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.User{ID: "u1", Email: "a@b.com"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	user, err := client.Me(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "u1", user.ID)
}

func TestAPIErrorIsDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "NOT_FOUND",
			"message": "Job not found",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GetJob(context.Background(), "missing")

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Job not found", apiErr.Message)
	assert.False(t, apiErr.Retryable())
}

func TestServerErrorsAreRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(models.Job{ID: "j1"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	job, err := client.GetJob(context.Background(), "j1")

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, "j1", job.ID)
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GetJob(context.Background(), "j1")

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestSubmitGuestApplicationSendsBody(t *testing.T) {
	var got models.GuestApplicationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/guest-applications", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(models.GuestApplication{ID: "ga1", Status: models.GuestStatusPending})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	app, err := client.SubmitGuestApplication(context.Background(), models.GuestApplicationRequest{
		JobID:     "j1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "j1", got.JobID)
	assert.Equal(t, models.GuestStatusPending, app.Status)
}

func TestGetJobsByIDsEmptyInputSkipsNetwork(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1") // would fail if dialed
	jobs, err := client.GetJobsByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestContextCancellationStopsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, server.URL)
	_, err := client.GetJob(ctx, "j1")
	require.Error(t, err)
}
