package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nexus-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Mutating routes require an
// admin bearer token.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	mux.HandleFunc("GET /v1/clubs", h.ListClubs)
	mux.HandleFunc("GET /v1/clubs/{id}", h.GetClub)
	mux.HandleFunc("PATCH /v1/clubs/{id}", h.RequireAdmin(h.UpdateClub))

	mux.HandleFunc("GET /v1/news", h.ListNews)
	mux.HandleFunc("POST /v1/news", h.RequireAdmin(h.CreateNews))
	mux.HandleFunc("DELETE /v1/news/{id}", h.RequireAdmin(h.DeleteNews))

	mux.HandleFunc("GET /v1/features", h.ListFeatures)
	mux.HandleFunc("POST /v1/auth/login", h.Login)

	mux.HandleFunc("/", h.NotFound)
	return mux
}
