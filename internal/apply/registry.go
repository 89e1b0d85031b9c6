package apply

import (
	"context"
	"sync"
	"time"

	"jobquest-web/internal/logging"
	"jobquest-web/pkg/models"
	"jobquest-web/pkg/utils"
)

// Registry tracks in-progress application flows across requests. A flow
// normally ends with an explicit close, but a browser that just leaves the
// page never sends one, so the registry also evicts flows after a period of
// inactivity via StartCleanup.
type Registry struct {
	mu           sync.RWMutex
	flows        map[string]*flowEntry
	service      ApplicationService
	confirmDelay time.Duration
	logger       logging.Logger
}

type flowEntry struct {
	flow     *Flow
	lastSeen time.Time
}

// NewRegistry creates an empty flow registry.
func NewRegistry(service ApplicationService, confirmDelay time.Duration, logger logging.Logger) *Registry {
	return &Registry{
		flows:        make(map[string]*flowEntry),
		service:      service,
		confirmDelay: confirmDelay,
		logger:       logger.WithField("component", "apply_registry"),
	}
}

// Start opens a new flow for the given job and caller identity.
func (r *Registry) Start(job *models.Job, user *models.User, token string) *Flow {
	flow := NewFlow(utils.GenerateRequestID(), job, user, token, r.service, r.confirmDelay)

	r.mu.Lock()
	r.flows[flow.ID()] = &flowEntry{flow: flow, lastSeen: time.Now()}
	r.mu.Unlock()

	r.logger.Debug("Application flow started", map[string]interface{}{
		"flow_id": flow.ID(),
		"job_id":  job.ID,
		"state":   string(flow.State()),
	})
	return flow
}

// Get returns a flow by ID and refreshes its activity timestamp.
func (r *Registry) Get(id string) (*Flow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.flows[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = time.Now()
	return entry.flow, true
}

// Remove closes and forgets a flow.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	entry, ok := r.flows[id]
	delete(r.flows, id)
	r.mu.Unlock()

	if ok {
		entry.flow.Close()
	}
}

// Len reports the number of tracked flows.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flows)
}

// StartCleanup launches a background sweep that closes and drops flows with
// no activity for maxAge. The sweep stops when ctx is canceled.
func (r *Registry) StartCleanup(ctx context.Context, interval, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if evicted := r.evictStale(now, maxAge); evicted > 0 {
					r.logger.Debug("Evicted abandoned application flows", map[string]interface{}{
						"count": evicted,
					})
				}
			}
		}
	}()
}

// evictStale removes every flow idle for longer than maxAge, closing each so
// pending confirmation timers are stopped.
func (r *Registry) evictStale(now time.Time, maxAge time.Duration) int {
	r.mu.Lock()
	var stale []*Flow
	for id, entry := range r.flows {
		if now.Sub(entry.lastSeen) > maxAge {
			stale = append(stale, entry.flow)
			delete(r.flows, id)
		}
	}
	r.mu.Unlock()

	for _, flow := range stale {
		flow.Close()
	}
	return len(stale)
}
