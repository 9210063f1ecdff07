package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/logging"
)

const clubNotFound = clubs.NotFoundMessage

// ListClubs returns every club.
func (h *Handler) ListClubs(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	items, err := h.svc.Clubs().List(r.Context())
	if err != nil {
		writeBackendError(w, r, err, clubNotFound, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, items, logger)
}

// GetClub returns one club or 404.
func (h *Handler) GetClub(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	id := r.PathValue("id")

	club, ok, err := h.svc.Clubs().Get(r.Context(), id)
	if err != nil {
		writeBackendError(w, r, err, clubNotFound, logger)
		return
	}
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, clubNotFound, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, club, logger)
}

// UpdateClub merges the body into the stored club. Any "id" in the body is ignored.
func (h *Handler) UpdateClub(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	id := r.PathValue("id")

	var patch clubs.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}

	club, err := h.svc.Clubs().Update(r.Context(), id, patch)
	if err != nil {
		writeBackendError(w, r, err, clubNotFound, logger)
		return
	}
	logging.Info(logger, "club updated", slog.String(logging.FieldClubID, id))
	writeJSON(w, nethttp.StatusOK, club, logger)
}
