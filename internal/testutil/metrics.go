package testutil

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/preston-bernstein/nexus-data-service/internal/metrics"
)

// MetricsSetup stands in for metrics.Setup. It hands out Recorder (or a fresh
// one) and counts exporter shutdowns.
type MetricsSetup struct {
	Recorder *metrics.Recorder
	Handler  http.Handler
	Err      error

	Calls     atomic.Int32
	Shutdowns atomic.Int32
}

func (m *MetricsSetup) Setup(_ context.Context, _ metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	m.Calls.Add(1)
	if m.Err != nil {
		return nil, nil, nil, m.Err
	}
	rec := m.Recorder
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	handler := m.Handler
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	return rec, handler, func(context.Context) error {
		m.Shutdowns.Add(1)
		return nil
	}, nil
}
