// Package savedjobs is the single source of truth for "is job X saved".
// Every listing and detail view reads and mutates bookmark state through one
// shared Set per session, so simultaneously mounted views cannot disagree.
package savedjobs

import (
	"sort"
	"sync"
	"time"

	"jobquest-web/pkg/models"
)

// ToggleStatus is the outcome of a Toggle call.
type ToggleStatus string

const (
	StatusSaved          ToggleStatus = "saved"
	StatusRemoved        ToggleStatus = "removed"
	StatusSignInRequired ToggleStatus = "sign_in_required"
)

// ToggleResult is the typed result of a bookmark toggle. The auth gate lives
// here rather than in every calling view: an unauthenticated toggle returns
// StatusSignInRequired with a transient sign-in notice and touches nothing.
type ToggleResult struct {
	Status ToggleStatus
	Saved  bool
	Notice *models.Notice
}

// PersistFunc receives the full ID snapshot after each mutation. Persistence
// is fire-and-forget: it runs on its own goroutine and failures never reach
// the caller.
type PersistFunc func(ids []string)

// SubscriberFunc is notified after each successful mutation.
type SubscriberFunc func(jobID string, saved bool)

// Set holds the saved-job identifiers for one session. A job ID appears at
// most once. Mutation happens only through Toggle, Clear and hydration, all
// behind one mutex, so there is a single writer at a time.
type Set struct {
	mu        sync.RWMutex
	ids       map[string]struct{}
	seq       uint64
	subs      map[int]SubscriberFunc
	nextSub   int
	persist   PersistFunc
	noticeTTL time.Duration
}

// NewSet creates an empty set. persist may be nil.
func NewSet(noticeTTL time.Duration, persist PersistFunc) *Set {
	return &Set{
		ids:       make(map[string]struct{}),
		subs:      make(map[int]SubscriberFunc),
		persist:   persist,
		noticeTTL: noticeTTL,
	}
}

// IsJobSaved is a pure lookup; unknown and empty state read as false.
func (s *Set) IsJobSaved(jobID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.ids[jobID]
	return ok
}

// Toggle adds jobID when absent and removes it when present. The final
// state is determined solely by the parity of calls, so a rapid double
// invocation lands back where it started. Unauthenticated sessions get
// StatusSignInRequired and the set is left untouched.
func (s *Set) Toggle(user *models.User, jobID string) ToggleResult {
	if user == nil {
		return ToggleResult{
			Status: StatusSignInRequired,
			Notice: &models.Notice{
				Message:        "Sign in to save jobs",
				Kind:           "sign_in_required",
				DismissAfterMS: s.noticeTTL.Milliseconds(),
			},
		}
	}

	s.mu.Lock()
	_, present := s.ids[jobID]
	if present {
		delete(s.ids, jobID)
	} else {
		s.ids[jobID] = struct{}{}
	}
	s.seq++
	saved := !present
	snapshot := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(jobID, saved)
	}

	if s.persist != nil {
		go s.persist(snapshot)
	}

	if saved {
		return ToggleResult{Status: StatusSaved, Saved: true}
	}
	return ToggleResult{Status: StatusRemoved, Saved: false}
}

// Snapshot returns the saved IDs in sorted order.
func (s *Set) Snapshot() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Len returns the number of saved jobs.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Clear empties the set, as happens on logout. Subscribers receive a removal
// event for every ID that was saved so mounted views un-fill their icons.
func (s *Set) Clear() {
	s.mu.Lock()
	removed := s.snapshotLocked()
	s.ids = make(map[string]struct{})
	s.seq++
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, id := range removed {
		for _, fn := range subs {
			fn(id, false)
		}
	}

	if s.persist != nil {
		go s.persist([]string{})
	}
}

// Subscribe registers an observer for mutations and returns its cancel
// function. Consumers use this to refresh bookmark icons when the shared
// set changes underneath them.
func (s *Set) Subscribe(fn SubscriberFunc) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// BeginHydration marks the start of an asynchronous load of persisted IDs
// and returns a token for CompleteHydration.
func (s *Set) BeginHydration() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// CompleteHydration replaces the set contents with ids, but only when no
// mutation happened since BeginHydration. A slow load finishing after the
// user has already toggled must not overwrite the newer state.
func (s *Set) CompleteHydration(token uint64, ids []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq != token {
		return false
	}

	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return true
}

func (s *Set) snapshotLocked() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Set) subscribersLocked() []SubscriberFunc {
	subs := make([]SubscriberFunc, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}
