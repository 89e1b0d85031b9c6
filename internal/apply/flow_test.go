package apply

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest-web/internal/logging"
	"jobquest-web/pkg/jobview"
	"jobquest-web/pkg/models"
)

type fakeService struct {
	mu          sync.Mutex
	guestCalls  []models.GuestApplicationRequest
	memberCalls []string
	guestErr    error
	memberErr   error
}

func (s *fakeService) SubmitGuestApplication(_ context.Context, req models.GuestApplicationRequest) (*models.GuestApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guestErr != nil {
		return nil, s.guestErr
	}
	s.guestCalls = append(s.guestCalls, req)
	return &models.GuestApplication{ID: "ga1", JobID: req.JobID, Status: models.GuestStatusPending}, nil
}

func (s *fakeService) CreateApplication(_ context.Context, _, jobID string) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.memberErr != nil {
		return nil, s.memberErr
	}
	s.memberCalls = append(s.memberCalls, jobID)
	return &models.Application{ID: "a1", JobID: jobID, Status: models.ApplicationStatusApplied}, nil
}

func (s *fakeService) guestCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.guestCalls)
}

func testJob(contact string) *models.Job {
	return &models.Job{ID: "j1", Title: "Backend Engineer", Company: "Acme", ContactEmail: contact}
}

func validForm() models.GuestApplicationRequest {
	return models.GuestApplicationRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+1 555 0100",
	}
}

func TestStartingStateDependsOnIdentity(t *testing.T) {
	svc := &fakeService{}

	guest := NewFlow("f1", testJob("jobs@acme.com"), nil, "", svc, time.Millisecond)
	assert.Equal(t, StateGuestForm, guest.State())

	member := NewFlow("f2", testJob("jobs@acme.com"), &models.User{ID: "u1", Name: "Ada"}, "tok", svc, time.Millisecond)
	assert.Equal(t, StateComposeChoice, member.State())
}

func TestGuestValidationBlocksBackendCall(t *testing.T) {
	svc := &fakeService{}
	flow := NewFlow("f1", testJob("jobs@acme.com"), nil, "", svc, time.Millisecond)

	snap, err := flow.SubmitGuest(context.Background(), models.GuestApplicationRequest{
		FirstName: "  ",
		Email:     "ada@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, StateGuestForm, snap.State)
	assert.Contains(t, snap.FieldErrors, "first_name")
	assert.Contains(t, snap.FieldErrors, "last_name")
	assert.NotContains(t, snap.FieldErrors, "email")
	assert.Zero(t, svc.guestCallCount())
}

func TestGuestSubmitAdvancesToEmailChoice(t *testing.T) {
	svc := &fakeService{}
	flow := NewFlow("f1", testJob("jobs@acme.com"), nil, "", svc, 10*time.Millisecond)

	snap, err := flow.SubmitGuest(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, StateSubmittedGuest, snap.State)
	assert.Equal(t, 1, svc.guestCallCount())
	assert.Equal(t, "j1", svc.guestCalls[0].JobID)

	assert.Eventually(t, func() bool {
		return flow.State() == StateEmailChoice
	}, time.Second, 5*time.Millisecond)
}

func TestGuestSubmitWithoutContactClosesFlow(t *testing.T) {
	svc := &fakeService{}
	flow := NewFlow("f1", testJob(""), nil, "", svc, 10*time.Millisecond)

	snap, err := flow.SubmitGuest(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, StateSubmittedGuest, snap.State)

	assert.Eventually(t, func() bool {
		return flow.State() == StateClosed
	}, time.Second, 5*time.Millisecond)
}

func TestGuestSubmitBackendFailureKeepsForm(t *testing.T) {
	svc := &fakeService{guestErr: errors.New("boom")}
	flow := NewFlow("f1", testJob("jobs@acme.com"), nil, "", svc, time.Millisecond)

	snap, err := flow.SubmitGuest(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, StateGuestForm, snap.State)
	assert.NotEmpty(t, snap.SubmitError)

	// The form data is not lost: a retry from the same state succeeds.
	svc.guestErr = nil
	snap, err = flow.SubmitGuest(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, StateSubmittedGuest, snap.State)
}

func TestChooseProviderRecordsApplicationForMembers(t *testing.T) {
	svc := &fakeService{}
	user := &models.User{ID: "u1", Name: "Ada Lovelace", Email: "ada@example.com"}
	flow := NewFlow("f1", testJob("jobs@acme.com"), user, "tok", svc, time.Millisecond)

	url, err := flow.ChooseProvider(context.Background(), ProviderGmail)
	require.NoError(t, err)
	assert.Contains(t, url, "mail.google.com")
	assert.Contains(t, url, "jobs%40acme.com")
	assert.Equal(t, []string{"j1"}, svc.memberCalls)
	assert.Equal(t, StateClosed, flow.State())

	_, err = flow.ChooseProvider(context.Background(), ProviderGmail)
	assert.Error(t, err)
}

func TestChooseProviderFailsWhenRecordingFails(t *testing.T) {
	svc := &fakeService{memberErr: errors.New("boom")}
	user := &models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	flow := NewFlow("f1", testJob("jobs@acme.com"), user, "tok", svc, time.Millisecond)

	_, err := flow.ChooseProvider(context.Background(), ProviderOutlook)
	require.Error(t, err)
	assert.Equal(t, StateComposeChoice, flow.State())
}

func TestProvidersDisabledWithoutContact(t *testing.T) {
	svc := &fakeService{}
	user := &models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	flow := NewFlow("f1", testJob(""), user, "tok", svc, time.Millisecond)

	for _, opt := range flow.Providers() {
		assert.False(t, opt.Enabled)
		assert.Empty(t, opt.URL)
	}

	snap := flow.Snapshot()
	require.NotNil(t, snap.Notice)
	assert.Equal(t, "no_contact", snap.Notice.Kind)

	_, err := flow.ChooseProvider(context.Background(), ProviderMailto)
	assert.Error(t, err)
}

func TestCopyEmail(t *testing.T) {
	svc := &fakeService{}

	withContact := NewFlow("f1", testJob("jobs@acme.com"), nil, "", svc, time.Millisecond)
	assert.Equal(t, "jobs@acme.com", withContact.CopyEmail())

	without := NewFlow("f2", testJob(""), nil, "", svc, time.Millisecond)
	assert.Equal(t, jobview.NoContactPlaceholder, without.CopyEmail())
}

func TestCloseStopsPendingAdvance(t *testing.T) {
	svc := &fakeService{}
	flow := NewFlow("f1", testJob("jobs@acme.com"), nil, "", svc, 20*time.Millisecond)

	_, err := flow.SubmitGuest(context.Background(), validForm())
	require.NoError(t, err)

	flow.Close()
	assert.Equal(t, StateClosed, flow.State())

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, StateClosed, flow.State())
}

func TestRegistryLifecycle(t *testing.T) {
	svc := &fakeService{}
	reg := NewRegistry(svc, time.Millisecond, logging.NewMultiLogger())

	flow := reg.Start(testJob("jobs@acme.com"), nil, "")
	require.NotEmpty(t, flow.ID())

	got, ok := reg.Get(flow.ID())
	require.True(t, ok)
	assert.Same(t, flow, got)

	reg.Remove(flow.ID())
	_, ok = reg.Get(flow.ID())
	assert.False(t, ok)
	assert.Equal(t, StateClosed, flow.State())
	assert.Zero(t, reg.Len())
}

func TestRegistryEvictsAbandonedFlows(t *testing.T) {
	svc := &fakeService{}
	reg := NewRegistry(svc, time.Hour, logging.NewMultiLogger())

	// flows started and never closed, as when the browser just leaves
	stale := reg.Start(testJob("jobs@acme.com"), nil, "")
	reg.Start(testJob("jobs@acme.com"), nil, "")
	require.Equal(t, 2, reg.Len())

	// nothing is idle yet
	assert.Zero(t, reg.evictStale(time.Now(), 30*time.Minute))
	require.Equal(t, 2, reg.Len())

	// past the TTL everything goes, and stopped flows read as closed
	assert.Equal(t, 2, reg.evictStale(time.Now().Add(time.Hour), 30*time.Minute))
	assert.Zero(t, reg.Len())
	_, ok := reg.Get(stale.ID())
	assert.False(t, ok)
	assert.Equal(t, StateClosed, stale.State())
}

func TestRegistryGetKeepsFlowAlive(t *testing.T) {
	svc := &fakeService{}
	reg := NewRegistry(svc, time.Hour, logging.NewMultiLogger())

	flow := reg.Start(testJob("jobs@acme.com"), nil, "")
	time.Sleep(20 * time.Millisecond)

	// polling refreshes the activity timestamp
	_, ok := reg.Get(flow.ID())
	require.True(t, ok)

	assert.Zero(t, reg.evictStale(time.Now(), 15*time.Millisecond))
	require.Equal(t, 1, reg.Len())
}
