package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
	"github.com/preston-bernstein/nexus-data-service/internal/logging"
)

const newsNotFound = "news item not found"

// ListNews returns the feed, newest first.
func (h *Handler) ListNews(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	items, err := h.svc.News().List(r.Context())
	if err != nil {
		writeBackendError(w, r, err, newsNotFound, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, items, logger)
}

// CreateNews prepends an item. Title validation and id assignment happen in
// the backend.
func (h *Handler) CreateNews(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	var item news.Item
	if err := decodeJSON(w, r, &item); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	if item.Category != "" && !item.Category.Known() {
		logging.Warn(logger, "news item with unknown category", slog.String("category", string(item.Category)))
	}

	created, err := h.svc.News().Create(r.Context(), item)
	if err != nil {
		writeBackendError(w, r, err, newsNotFound, logger)
		return
	}
	logging.Info(logger, "news created", slog.String(logging.FieldNewsID, created.ID))
	writeJSON(w, nethttp.StatusCreated, created, logger)
}

// DeleteNews removes an item. Unknown ids still answer 204.
func (h *Handler) DeleteNews(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	id := r.PathValue("id")

	if err := h.svc.News().Delete(r.Context(), id); err != nil {
		writeBackendError(w, r, err, newsNotFound, logger)
		return
	}
	logging.Info(logger, "news deleted", slog.String(logging.FieldNewsID, id))
	w.WriteHeader(nethttp.StatusNoContent)
}

// ListFeatures returns the landing-page pillars.
func (h *Handler) ListFeatures(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	items, err := h.svc.Features().List(r.Context())
	if err != nil {
		writeBackendError(w, r, err, "feature not found", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, items, logger)
}
