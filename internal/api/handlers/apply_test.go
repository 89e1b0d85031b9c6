package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest-web/internal/apply"
	"jobquest-web/internal/backend"
	"jobquest-web/internal/logging"
	"jobquest-web/pkg/models"
)

func applyBackend(t *testing.T, job models.Job) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/jobs/" + job.ID:
			json.NewEncoder(w).Encode(job)
		case "/api/guest-applications":
			json.NewEncoder(w).Encode(models.GuestApplication{ID: "ga1", JobID: job.ID, Status: models.GuestStatusPending})
		case "/api/applications":
			json.NewEncoder(w).Encode(models.Application{ID: "a1", JobID: job.ID, Status: models.ApplicationStatusApplied})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestGuestApplicationFlowEndToEnd(t *testing.T) {
	job := models.Job{ID: "j1", Title: "Backend Engineer", Company: "Acme", ContactEmail: "jobs@acme.com"}
	server := applyBackend(t, job)
	defer server.Close()

	cfg := testConfig(server.URL)
	client := backend.NewClient(cfg, logging.NewMultiLogger())
	flows := apply.NewRegistry(client, 10*time.Millisecond, logging.NewMultiLogger())

	// Start as a guest.
	c, rec := newContext(t, http.MethodPost, "/api/v1/apply", `{"job_id":"j1"}`, guestSession())
	require.NoError(t, StartApplicationHandler(client, flows)(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var snap apply.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, apply.StateGuestForm, snap.State)

	// Missing fields stay on the form.
	c, rec = newContext(t, http.MethodPost, "/api/v1/apply/"+snap.ID+"/guest", `{"email":"ada@example.com"}`, guestSession())
	c.SetParamNames("id")
	c.SetParamValues(snap.ID)
	require.NoError(t, SubmitGuestApplicationHandler(flows)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var afterInvalid apply.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &afterInvalid))
	assert.Equal(t, apply.StateGuestForm, afterInvalid.State)
	assert.Contains(t, afterInvalid.FieldErrors, "first_name")
	assert.Contains(t, afterInvalid.FieldErrors, "last_name")

	// Complete form submits and confirms.
	body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}`
	c, rec = newContext(t, http.MethodPost, "/api/v1/apply/"+snap.ID+"/guest", body, guestSession())
	c.SetParamNames("id")
	c.SetParamValues(snap.ID)
	require.NoError(t, SubmitGuestApplicationHandler(flows)(c))

	var afterSubmit apply.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &afterSubmit))
	assert.Equal(t, apply.StateSubmittedGuest, afterSubmit.State)

	// The confirmation advances to the provider chooser on its own.
	flow, ok := flows.Get(snap.ID)
	require.True(t, ok)
	assert.Eventually(t, func() bool {
		return flow.State() == apply.StateEmailChoice
	}, time.Second, 5*time.Millisecond)
}

func TestMemberApplicationFlowRecordsAndComposes(t *testing.T) {
	job := models.Job{ID: "j1", Title: "Backend Engineer", Company: "Acme", ContactEmail: "jobs@acme.com"}
	server := applyBackend(t, job)
	defer server.Close()

	cfg := testConfig(server.URL)
	client := backend.NewClient(cfg, logging.NewMultiLogger())
	flows := apply.NewRegistry(client, 10*time.Millisecond, logging.NewMultiLogger())

	c, rec := newContext(t, http.MethodPost, "/api/v1/apply", `{"job_id":"j1"}`, userSession())
	require.NoError(t, StartApplicationHandler(client, flows)(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var snap apply.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, apply.StateComposeChoice, snap.State)
	require.Len(t, snap.Providers, 3)
	for _, opt := range snap.Providers {
		assert.True(t, opt.Enabled)
	}

	c, rec = newContext(t, http.MethodPost, "/api/v1/apply/"+snap.ID+"/provider", `{"provider":"gmail"}`, userSession())
	c.SetParamNames("id")
	c.SetParamValues(snap.ID)
	require.NoError(t, ChooseProviderHandler(flows)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		URL   string `json:"url"`
		State string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.URL, "mail.google.com")
	assert.Equal(t, string(apply.StateClosed), resp.State)
}

func TestCopyEmailFallsBackToPlaceholder(t *testing.T) {
	job := models.Job{ID: "j1", Title: "Backend Engineer", Company: "Acme"}
	server := applyBackend(t, job)
	defer server.Close()

	cfg := testConfig(server.URL)
	client := backend.NewClient(cfg, logging.NewMultiLogger())
	flows := apply.NewRegistry(client, 10*time.Millisecond, logging.NewMultiLogger())

	c, rec := newContext(t, http.MethodPost, "/api/v1/apply", `{"job_id":"j1"}`, userSession())
	require.NoError(t, StartApplicationHandler(client, flows)(c))

	var snap apply.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.NotNil(t, snap.Notice)

	c, rec = newContext(t, http.MethodGet, "/api/v1/apply/"+snap.ID+"/email", "", userSession())
	c.SetParamNames("id")
	c.SetParamValues(snap.ID)
	require.NoError(t, CopyEmailHandler(flows)(c))

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No contact email available", resp["email"])
}

func TestUnknownFlowReturnsNotFound(t *testing.T) {
	flows := apply.NewRegistry(nil, 10*time.Millisecond, logging.NewMultiLogger())

	c, rec := newContext(t, http.MethodGet, "/api/v1/apply/nope", "", guestSession())
	c.SetParamNames("id")
	c.SetParamValues("nope")
	require.NoError(t, ApplicationStateHandler(flows)(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
