package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/http/middleware"
	"github.com/preston-bernstein/nexus-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/nexus-data-service/internal/logging"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", logging.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeBackendError maps a service contract error to its HTTP status. Server
// faults are logged and hidden behind a generic message.
func writeBackendError(w http.ResponseWriter, r *http.Request, err error, notFound string, logger *slog.Logger) {
	status := backend.StatusForError(err)
	switch {
	case r.Context().Err() != nil:
		// Client went away; nobody is listening for a body.
		logging.Warn(logger, "request cancelled", logging.FieldError, err)
		return
	case status == http.StatusNotFound:
		writeError(w, r, status, notFound, logger)
	case status == http.StatusConflict:
		writeError(w, r, status, "news id already used", logger)
	case status >= 500:
		logging.Error(logger, "backend call failed", err)
		writeError(w, r, status, "internal error", logger)
	default:
		writeError(w, r, status, err.Error(), logger)
	}
}

// decodeJSON reads a single JSON document of at most maxBodyBytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
