package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety.
type Metrics struct {
	// Counters
	actionsApplied atomic.Uint64
	noopActions    atomic.Uint64
	persistErrors  atomic.Uint64
	broadcasts     atomic.Uint64

	// Gauges
	feedClients atomic.Int32
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordAction records a state transition applied by the store.
func (m *Metrics) RecordAction() {
	m.actionsApplied.Add(1)
}

// RecordNoop records an action that degraded to a silent no-op. This is the
// observability hook for the store's not-found semantics.
func (m *Metrics) RecordNoop() {
	m.noopActions.Add(1)
}

// RecordPersistError records a failed best-effort snapshot write.
func (m *Metrics) RecordPersistError() {
	m.persistErrors.Add(1)
}

// RecordBroadcast records one snapshot pushed to feed clients.
func (m *Metrics) RecordBroadcast() {
	m.broadcasts.Add(1)
}

// IncrementFeedClients increments connected feed clients by 1.
func (m *Metrics) IncrementFeedClients() {
	m.feedClients.Add(1)
}

// DecrementFeedClients decrements connected feed clients by 1.
func (m *Metrics) DecrementFeedClients() {
	m.feedClients.Add(-1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	ActionsApplied uint64
	NoopActions    uint64
	PersistErrors  uint64
	Broadcasts     uint64
	FeedClients    int32
	Timestamp      time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ActionsApplied: m.actionsApplied.Load(),
		NoopActions:    m.noopActions.Load(),
		PersistErrors:  m.persistErrors.Load(),
		Broadcasts:     m.broadcasts.Load(),
		FeedClients:    m.feedClients.Load(),
		Timestamp:      time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.actionsApplied.Store(0)
	m.noopActions.Store(0)
	m.persistErrors.Store(0)
	m.broadcasts.Store(0)
	m.feedClients.Store(0)
}
