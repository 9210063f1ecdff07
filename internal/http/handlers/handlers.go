package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/nexus-data-service/internal/metrics"
)

// TokenVerifier checks bearer tokens on mutating routes.
type TokenVerifier interface {
	Verify(token string) error
}

// Limiter throttles login attempts per client key.
type Limiter interface {
	Allow(key string) bool
}

// Config wires a Handler. Backend and Verifier are required.
type Config struct {
	Backend  backend.Backend
	Verifier TokenVerifier
	Limiter  Limiter
	// Proxies resolves the client address that keys the login limiter; nil
	// means the TCP peer is always the client.
	Proxies  *requestutil.ProxyResolver
	Recorder *metrics.Recorder
	Logger   *slog.Logger
	// Ready reports whether the server should receive traffic; nil means always ready.
	Ready func() error
}

// Handler wires HTTP routes to the service contract.
type Handler struct {
	svc      backend.Backend
	verifier TokenVerifier
	limiter  Limiter
	proxies  *requestutil.ProxyResolver
	recorder *metrics.Recorder
	logger   *slog.Logger
	ready    func() error
}

// NewHandler constructs a Handler with defaults.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		svc:      cfg.Backend,
		verifier: cfg.Verifier,
		limiter:  cfg.Limiter,
		proxies:  cfg.Proxies,
		recorder: cfg.Recorder,
		logger:   cfg.Logger,
		ready:    cfg.Ready,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			writeError(w, r, nethttp.StatusServiceUnavailable, err.Error(), h.logger)
			return
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready", "backend": h.svc.Name()}, h.logger)
}

// NotFound answers unknown routes with the JSON error shape.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}
