package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chaosarts/chaosui/component"
)

// DefaultWatchInterval is how often Watch refreshes the monitor when no
// interval is given.
const DefaultWatchInterval = 5 * time.Second

// BindingSource yields the live bindings whose health should be reported.
// *binder.Binder satisfies this interface.
type BindingSource interface {
	Bindings() []*component.Binding
}

// Snapshot builds an aggregate status over every binding the source currently
// holds. Sub-statuses carry the per-binding detail ordered by node identity,
// and Counts summarizes the lifecycle state distribution.
func Snapshot(system string, source BindingSource) Status {
	bindings := source.Bindings()

	counts := StateCounts{Total: len(bindings)}
	subStatuses := make([]Status, 0, len(bindings))
	for _, bnd := range bindings {
		subStatuses = append(subStatuses, FromBinding(bnd))
		switch bnd.State() {
		case component.StateReady:
			counts.Ready++
		case component.StateFailed:
			counts.Failed++
		case component.StateInitializing:
			counts.Initializing++
		default:
			counts.Uninitialized++
		}
	}
	sort.Slice(subStatuses, func(i, j int) bool {
		return subStatuses[i].ID < subStatuses[j].ID
	})

	return Aggregate(system, subStatuses).WithCounts(counts)
}

// Monitor tracks health of multiple components in a thread-safe manner.
// Entries arrive from two directions: Observe derives them from a binding
// source, and the Update methods record them by hand for concerns that live
// outside the component tree (a backing API, a websocket feed).
type Monitor struct {
	mu       sync.RWMutex
	statuses map[string]Status
	observed map[string]struct{} // keys written by the last Observe
}

// NewMonitor creates a new health monitor
func NewMonitor() *Monitor {
	return &Monitor{
		statuses: make(map[string]Status),
		observed: make(map[string]struct{}),
	}
}

// Update updates the health status recorded under the given key. Bindings
// are keyed by node identity; manual entries use whatever name the caller
// chooses.
func (m *Monitor) Update(key string, status Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if status.Component == "" {
		status.Component = key
	}
	if status.Timestamp.IsZero() {
		status.Timestamp = time.Now()
	}

	m.statuses[key] = status
}

// UpdateHealthy is a convenience method to record a healthy entry
func (m *Monitor) UpdateHealthy(key, message string) {
	m.Update(key, NewHealthy(key, message))
}

// UpdateUnhealthy is a convenience method to record an unhealthy entry
func (m *Monitor) UpdateUnhealthy(key, message string) {
	m.Update(key, NewUnhealthy(key, message))
}

// UpdateDegraded is a convenience method to record a degraded entry
func (m *Monitor) UpdateDegraded(key, message string) {
	m.Update(key, NewDegraded(key, message))
}

// Observe refreshes the monitor from a snapshot of the source's bindings.
// Each binding becomes an entry keyed by its node identity. Entries written
// by a previous Observe whose binding has since been released are dropped;
// manually updated entries are left alone.
func (m *Monitor) Observe(source BindingSource) {
	bindings := source.Bindings()

	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]struct{}, len(bindings))
	for _, bnd := range bindings {
		m.statuses[bnd.ID()] = FromBinding(bnd)
		seen[bnd.ID()] = struct{}{}
	}
	for key := range m.observed {
		if _, ok := seen[key]; !ok {
			delete(m.statuses, key)
		}
	}
	m.observed = seen
}

// Watch refreshes the monitor from the source once immediately and then at
// every interval until the context is done. It blocks; callers run it in its
// own goroutine.
func (m *Monitor) Watch(ctx context.Context, source BindingSource, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	m.Observe(source)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Observe(source)
		}
	}
}

// Get retrieves the health status recorded under the given key
func (m *Monitor) Get(key string) (Status, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status, exists := m.statuses[key]
	return status, exists
}

// GetAll returns a copy of all current health statuses
func (m *Monitor) GetAll() map[string]Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]Status, len(m.statuses))
	for key, status := range m.statuses {
		result[key] = status
	}
	return result
}

// Remove removes an entry from monitoring
func (m *Monitor) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.statuses, key)
	delete(m.observed, key)
}

// AggregateHealth returns an aggregated health status for the entire system.
// Sub-statuses are ordered by key so the output is stable.
func (m *Monitor) AggregateHealth(systemName string) Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.statuses))
	for key := range m.statuses {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	subStatuses := make([]Status, 0, len(keys))
	for _, key := range keys {
		subStatuses = append(subStatuses, m.statuses[key])
	}

	return Aggregate(systemName, subStatuses)
}

// ListKeys returns a sorted list of all keys being monitored
func (m *Monitor) ListKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.statuses))
	for key := range m.statuses {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of entries being monitored
func (m *Monitor) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.statuses)
}

// Clear removes all entries from monitoring
func (m *Monitor) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.statuses = make(map[string]Status)
	m.observed = make(map[string]struct{})
}
