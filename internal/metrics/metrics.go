package metrics

import (
	"sync"
	"time"
)

type callStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about backend calls and
// logins, and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*callStats
	logins map[string]int
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:  make(map[string]*callStats),
		logins: make(map[string]int),
		otel:   otel,
	}
}

// RecordBackendCall increments counters for one service contract call and stores its latency.
func (r *Recorder) RecordBackendCall(backend, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(statsKey(backend, operation))
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBackendCall(backend, operation, duration, err)
	}
}

// RecordLogin tracks a login attempt outcome (LoginAccepted, LoginRejected, LoginRateLimited).
func (r *Recorder) RecordLogin(result string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.logins[result]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLogin(result)
	}
}

// BackendCalls returns the total calls recorded for a backend operation.
func (r *Recorder) BackendCalls(backend, operation string) int {
	return r.Snapshot(backend, operation).Calls
}

// BackendErrors returns the failed calls recorded for a backend operation.
func (r *Recorder) BackendErrors(backend, operation string) int {
	return r.Snapshot(backend, operation).Errors
}

// LoginAttempts returns how many logins ended with result.
func (r *Recorder) LoginAttempts(result string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logins[result]
}

// Snapshot is a copy of the stats for one backend operation.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(backend, operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[statsKey(backend, operation)]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(key string) *callStats {
	stats, ok := r.stats[key]
	if !ok {
		stats = &callStats{}
		r.stats[key] = stats
	}
	return stats
}

func statsKey(backend, operation string) string {
	return backend + "/" + operation
}
