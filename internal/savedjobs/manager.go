package savedjobs

import (
	"context"
	"sync"
	"time"
)

// Manager hands out the shared Set for each session, creating and hydrating
// it on first use. All views in one session observe the same Set instance.
// Sets for sessions that stop making requests are evicted by StartCleanup,
// so expired session cookies do not pin state forever; the persisted IDs
// live in the session record and re-seed the Set on the next request.
type Manager struct {
	mu        sync.Mutex
	sets      map[string]*managedSet
	noticeTTL time.Duration
	persist   func(sessionID string, ids []string)
}

type managedSet struct {
	set      *Set
	lastUsed time.Time
}

// NewManager creates a manager. persist, when non-nil, is invoked
// fire-and-forget with the session ID and the full snapshot after each
// mutation.
func NewManager(noticeTTL time.Duration, persist func(sessionID string, ids []string)) *Manager {
	return &Manager{
		sets:      make(map[string]*managedSet),
		noticeTTL: noticeTTL,
		persist:   persist,
	}
}

// ForSession returns the session's Set, creating it seeded with the
// persisted IDs when it does not exist yet.
func (m *Manager) ForSession(sessionID string, initial []string) *Set {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.sets[sessionID]; ok {
		entry.lastUsed = time.Now()
		return entry.set
	}

	var persist PersistFunc
	if m.persist != nil {
		persist = func(ids []string) {
			m.persist(sessionID, ids)
		}
	}

	set := NewSet(m.noticeTTL, persist)
	token := set.BeginHydration()
	set.CompleteHydration(token, initial)
	m.sets[sessionID] = &managedSet{set: set, lastUsed: time.Now()}
	return set
}

// Drop forgets a session's Set, as happens when the session ends.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sets, sessionID)
}

// StartCleanup launches a background sweep that drops Sets untouched for
// maxIdle. The sweep stops when ctx is canceled.
func (m *Manager) StartCleanup(ctx context.Context, interval, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				m.evictIdle(now, maxIdle)
			}
		}
	}()
}

func (m *Manager) evictIdle(now time.Time, maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, entry := range m.sets {
		if now.Sub(entry.lastUsed) > maxIdle {
			delete(m.sets, id)
			evicted++
		}
	}
	return evicted
}
