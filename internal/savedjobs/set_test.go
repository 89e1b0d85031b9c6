package savedjobs

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest-web/pkg/models"
)

var member = &models.User{ID: "u1", Email: "u1@example.com", Role: models.RoleSeeker}

func TestToggleParity(t *testing.T) {
	set := NewSet(5*time.Second, nil)

	assert.False(t, set.IsJobSaved("j1"))

	res := set.Toggle(member, "j1")
	assert.Equal(t, StatusSaved, res.Status)
	assert.True(t, res.Saved)
	assert.True(t, set.IsJobSaved("j1"))

	// involution: a second toggle returns to the prior state
	res = set.Toggle(member, "j1")
	assert.Equal(t, StatusRemoved, res.Status)
	assert.False(t, res.Saved)
	assert.False(t, set.IsJobSaved("j1"))

	// odd number of calls leaves the job saved
	for i := 0; i < 3; i++ {
		set.Toggle(member, "j1")
	}
	assert.True(t, set.IsJobSaved("j1"))
}

func TestToggleRequiresAuth(t *testing.T) {
	persisted := make(chan []string, 1)
	set := NewSet(5*time.Second, func(ids []string) { persisted <- ids })

	res := set.Toggle(nil, "j1")

	assert.Equal(t, StatusSignInRequired, res.Status)
	assert.False(t, set.IsJobSaved("j1"))
	require.NotNil(t, res.Notice)
	assert.Equal(t, "sign_in_required", res.Notice.Kind)
	assert.Equal(t, int64(5000), res.Notice.DismissAfterMS)

	// the gate short-circuits before any persistence attempt
	select {
	case <-persisted:
		t.Fatal("persist must not run for an unauthenticated toggle")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTogglePersistsSnapshot(t *testing.T) {
	persisted := make(chan []string, 1)
	set := NewSet(5*time.Second, func(ids []string) { persisted <- ids })

	set.Toggle(member, "j2")

	select {
	case ids := <-persisted:
		assert.Equal(t, []string{"j2"}, ids)
	case <-time.After(time.Second):
		t.Fatal("persist was not invoked")
	}
}

func TestSubscribersAreNotified(t *testing.T) {
	set := NewSet(5*time.Second, nil)

	var mu sync.Mutex
	var events []bool
	cancel := set.Subscribe(func(jobID string, saved bool) {
		mu.Lock()
		events = append(events, saved)
		mu.Unlock()
	})

	set.Toggle(member, "j1")
	set.Toggle(member, "j1")
	cancel()
	set.Toggle(member, "j1")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{true, false}, events)
}

func TestHydrationGuard(t *testing.T) {
	set := NewSet(5*time.Second, nil)

	// a hydrate with no interleaved mutation applies
	token := set.BeginHydration()
	assert.True(t, set.CompleteHydration(token, []string{"j1", "j2"}))
	assert.True(t, set.IsJobSaved("j1"))

	// a slow hydrate that lands after a toggle must not clobber it
	token = set.BeginHydration()
	set.Toggle(member, "j3")
	assert.False(t, set.CompleteHydration(token, []string{"j1"}))
	assert.True(t, set.IsJobSaved("j3"))
}

func TestClear(t *testing.T) {
	set := NewSet(5*time.Second, nil)
	set.Toggle(member, "j1")
	set.Toggle(member, "j2")
	require.Equal(t, 2, set.Len())

	set.Clear()
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.IsJobSaved("j1"))
}

func TestClearNotifiesSubscribers(t *testing.T) {
	set := NewSet(5*time.Second, nil)
	set.Toggle(member, "j1")
	set.Toggle(member, "j2")

	var mu sync.Mutex
	removed := make(map[string]bool)
	set.Subscribe(func(jobID string, saved bool) {
		mu.Lock()
		defer mu.Unlock()
		if !saved {
			removed[jobID] = true
		}
	})

	set.Clear()

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, removed["j1"])
	assert.True(t, removed["j2"])
	assert.Len(t, removed, 2)
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	mgr := NewManager(5*time.Second, nil)

	a := mgr.ForSession("s1", []string{"j1"})
	require.Equal(t, 0, mgr.evictIdle(time.Now(), time.Hour))
	assert.Same(t, a, mgr.ForSession("s1", nil))

	// once the session cookie's lifetime has lapsed the set is dropped and
	// a later request re-seeds from the persisted IDs
	require.Equal(t, 1, mgr.evictIdle(time.Now().Add(2*time.Hour), time.Hour))
	fresh := mgr.ForSession("s1", []string{"j1"})
	assert.NotSame(t, a, fresh)
	assert.True(t, fresh.IsJobSaved("j1"))
}

func TestManagerSharesSetPerSession(t *testing.T) {
	mgr := NewManager(5*time.Second, nil)

	a := mgr.ForSession("s1", []string{"j1"})
	b := mgr.ForSession("s1", nil)
	other := mgr.ForSession("s2", nil)

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
	assert.True(t, b.IsJobSaved("j1"))

	mgr.Drop("s1")
	fresh := mgr.ForSession("s1", nil)
	assert.NotSame(t, a, fresh)
	assert.False(t, fresh.IsJobSaved("j1"))
}
