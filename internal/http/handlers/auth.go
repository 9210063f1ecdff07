package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nexus-data-service/internal/domain/session"
	"github.com/preston-bernstein/nexus-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/nexus-data-service/internal/logging"
	"github.com/preston-bernstein/nexus-data-service/internal/metrics"
)

// Login exchanges the shared admin password for a bearer token.
// Wrong passwords answer 401 with {success:false}; too many attempts answer 429.
func (h *Handler) Login(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	ip := h.proxies.ClientIP(r)

	if h.limiter != nil && !h.limiter.Allow(ip) {
		h.recorder.RecordLogin(metrics.LoginRateLimited)
		logging.Warn(logger, "login rate limited", slog.String(logging.FieldClientIP, ip))
		w.Header().Set("Retry-After", "60")
		writeJSON(w, nethttp.StatusTooManyRequests, session.Rejected("too many login attempts"), logger)
		return
	}

	var req session.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, nethttp.StatusBadRequest, session.Rejected(err.Error()), logger)
		return
	}

	resp, err := h.svc.Auth().Login(r.Context(), req.Password)
	if err != nil {
		logging.Error(logger, "login failed", err)
		writeJSON(w, nethttp.StatusInternalServerError, session.Rejected("login unavailable"), logger)
		return
	}
	if !resp.Success {
		h.recorder.RecordLogin(metrics.LoginRejected)
		logging.Warn(logger, "login rejected", slog.String(logging.FieldClientIP, ip))
		writeJSON(w, nethttp.StatusUnauthorized, resp, logger)
		return
	}

	h.recorder.RecordLogin(metrics.LoginAccepted)
	logging.Info(logger, "login accepted", slog.String(logging.FieldClientIP, ip))
	writeJSON(w, nethttp.StatusOK, resp, logger)
}

// RequireAdmin rejects requests without a valid bearer token.
func (h *Handler) RequireAdmin(next nethttp.HandlerFunc) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		token, ok := requestutil.BearerToken(r)
		if !ok || h.verifier == nil || h.verifier.Verify(token) != nil {
			logging.Warn(loggerFromContext(r, h.logger), "admin unauthorized",
				slog.String(logging.FieldPath, r.URL.Path),
				slog.String(logging.FieldClientIP, h.proxies.ClientIP(r)),
			)
			writeError(w, r, nethttp.StatusUnauthorized, "unauthorized", h.logger)
			return
		}
		next(w, r)
	}
}
